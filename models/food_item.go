package models

type FoodItem struct {
	ID        uint        `gorm:"primaryKey" json:"id"`
	Name      string      `gorm:"size:255;not null" json:"name"`
	Price     float64     `gorm:"type:decimal(10,2);not null" json:"price"`
	Customers []*Customer `gorm:"many2many:customer_food;joinForeignKey:FoodID;joinReferences:CustomerID" json:"customers,omitempty"`
}

func NewFoodItem(name string, price float64) *FoodItem {
	return &FoodItem{Name: name, Price: price}
}

func (f *FoodItem) Key() uint { return f.ID }
