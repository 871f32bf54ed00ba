package models

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Client owns a set of Commande rows through commandes.client_id.
type Client struct {
	ID        uint        `gorm:"primaryKey" json:"id"`
	Name      string      `gorm:"size:255;not null" json:"name"`
	Email     string      `gorm:"size:150" json:"email"`
	Commandes []*Commande `gorm:"foreignKey:ClientID;constraint:OnDelete:CASCADE" json:"commandes"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

func NewClient(name, email string) *Client {
	return &Client{Name: name, Email: email}
}

func (c *Client) Key() uint { return c.ID }

// AddCommande links cmd to the client on both sides. The commande set keeps
// one entry per identity: the same pointer, or the same persisted id.
func (c *Client) AddCommande(cmd *Commande) {
	if cmd == nil {
		return
	}
	cmd.Client = c
	cmd.ClientID = c.ID
	for _, existing := range c.Commandes {
		if existing == cmd || (cmd.ID != 0 && existing.ID == cmd.ID) {
			return
		}
	}
	c.Commandes = append(c.Commandes, cmd)
}

// TotalAmount sums the amounts of the loaded commandes.
func (c *Client) TotalAmount() decimal.Decimal {
	total := decimal.Zero
	for _, cmd := range c.Commandes {
		total = total.Add(cmd.Amount)
	}
	return total
}

func (c *Client) String() string {
	return fmt.Sprintf("Client{id=%d, name=%q, email=%q, commandes=%d}", c.ID, c.Name, c.Email, len(c.Commandes))
}
