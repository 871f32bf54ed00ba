package models

type Bill struct {
	BillNo     uint    `gorm:"primaryKey;column:bill_no" json:"bill_no"`
	Amount     float64 `gorm:"type:decimal(10,2);not null" json:"amount"`
	CustomerID uint    `gorm:"column:customer_id;index;not null" json:"customer_id"`

	Customer *Customer `gorm:"foreignKey:CustomerID" json:"-"`
}

// NewBill builds a bill owned by customer. The bill is not added to the
// customer's list until it is saved through the billing service.
func NewBill(amount float64, customer *Customer) *Bill {
	b := &Bill{Amount: amount, Customer: customer}
	if customer != nil {
		b.CustomerID = customer.ID
	}
	return b
}

func (b *Bill) Key() uint { return b.BillNo }
