package models

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

type Commande struct {
	ID       uint            `gorm:"primaryKey" json:"id"`
	Date     datatypes.Date  `gorm:"column:date_commande" json:"date"`
	Amount   decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"amount"`
	ClientID uint            `gorm:"column:client_id;index;not null" json:"client_id"`

	// back-reference, restored by the client repository on reads
	Client *Client `gorm:"foreignKey:ClientID" json:"-"`
}

func NewCommande(date time.Time, amount decimal.Decimal) *Commande {
	return &Commande{Date: datatypes.Date(date), Amount: amount}
}

func (c *Commande) Key() uint { return c.ID }

func (c *Commande) String() string {
	owner := "null"
	if c.Client != nil {
		owner = c.Client.Name
	}
	return fmt.Sprintf("Commande{id=%d, date=%s, amount=%s, client=%s}",
		c.ID, time.Time(c.Date).Format("2006-01-02"), c.Amount.StringFixed(2), owner)
}
