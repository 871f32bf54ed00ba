package models

type Inventory struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	ItemName string `gorm:"column:item_name;size:255;not null" json:"item_name"`
	Quantity int    `gorm:"not null;default:0" json:"quantity"`
}

func (Inventory) TableName() string { return "inventory" }

func (i *Inventory) Key() uint { return i.ID }
