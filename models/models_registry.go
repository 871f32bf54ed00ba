package models

// All returns every persisted model, parents before children.
func All() []interface{} {
	return []interface{}{
		&Client{},
		&Commande{},
		&Room{},
		&Customer{},
		&Bill{},
		&FoodItem{},
		&Manager{},
		&Owner{},
		&Receptionist{},
		&Inventory{},
	}
}
