package models_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"hotel-orders/models"
)

func TestClient_AddCommandeLinksBothSides(t *testing.T) {
	client := models.NewClient("Imane", "imane@x.com")
	cmd := models.NewCommande(time.Now(), decimal.RequireFromString("550.00"))

	client.AddCommande(cmd)

	assert.Same(t, client, cmd.Client)
	assert.Contains(t, client.Commandes, cmd)
}

func TestClient_AddCommandeKeepsSetSemantics(t *testing.T) {
	client := models.NewClient("Imane", "imane@x.com")
	cmd := models.NewCommande(time.Now(), decimal.NewFromInt(10))

	client.AddCommande(cmd)
	client.AddCommande(cmd)
	client.AddCommande(&models.Commande{ID: 7})
	client.AddCommande(&models.Commande{ID: 7})
	client.AddCommande(nil)

	assert.Len(t, client.Commandes, 2)
}

func TestClient_TotalAmount(t *testing.T) {
	client := models.NewClient("Imane", "imane@x.com")
	client.AddCommande(models.NewCommande(time.Now(), decimal.RequireFromString("550.00")))
	client.AddCommande(models.NewCommande(time.Now(), decimal.RequireFromString("1200.00")))

	assert.True(t, decimal.RequireFromString("1750.00").Equal(client.TotalAmount()))
	assert.True(t, models.NewClient("empty", "").TotalAmount().IsZero())
}

func TestCommande_String(t *testing.T) {
	date := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	cmd := models.NewCommande(date, decimal.RequireFromString("550"))
	assert.Equal(t, "Commande{id=0, date=2024-03-15, amount=550.00, client=null}", cmd.String())

	models.NewClient("Imane", "").AddCommande(cmd)
	assert.Contains(t, cmd.String(), "client=Imane")
}
