// models/customer.go
package models

import (
	"time"
)

type Customer struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Name    string `gorm:"size:255;not null" json:"name"`
	Address string `gorm:"size:255" json:"address"`
	Phone   string `gorm:"size:50" json:"phone"`

	// RoomID holds the room number of the assigned room, NULL when unassigned.
	RoomID *uint `gorm:"column:room_id;index" json:"room_id,omitempty"`
	Room   *Room `gorm:"foreignKey:RoomID;references:RoomNo" json:"room,omitempty"`

	Bills     []*Bill     `gorm:"foreignKey:CustomerID;constraint:OnDelete:CASCADE" json:"bills"`
	FoodItems []*FoodItem `gorm:"many2many:customer_food;joinForeignKey:CustomerID;joinReferences:FoodID" json:"food_items"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewCustomer(name, address, phone string) *Customer {
	return &Customer{Name: name, Address: address, Phone: phone}
}

func (c *Customer) Key() uint { return c.ID }

// AssignRoom points the customer at r. A nil room clears the assignment.
func (c *Customer) AssignRoom(r *Room) {
	c.Room = r
	if r == nil {
		c.RoomID = nil
		return
	}
	roomNo := r.RoomNo
	c.RoomID = &roomNo
}

// AddBill links b to the customer on both sides.
func (c *Customer) AddBill(b *Bill) {
	if b == nil {
		return
	}
	b.Customer = c
	b.CustomerID = c.ID
	for _, existing := range c.Bills {
		if existing == b || (b.BillNo != 0 && existing.BillNo == b.BillNo) {
			return
		}
	}
	c.Bills = append(c.Bills, b)
}

func (c *Customer) HasBills() bool {
	return len(c.Bills) > 0
}
