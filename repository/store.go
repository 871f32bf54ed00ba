package repository

import (
	"gorm.io/gorm"

	"hotel-orders/models"
)

// Store groups one repository per entity over a shared handle.
type Store struct {
	Clients       *ClientRepository
	Customers     *CustomerRepository
	Rooms         *RoomRepository
	FoodItems     *FoodItemRepository
	Bills         *GormRepository[models.Bill, uint]
	Managers      *GormRepository[models.Manager, uint]
	Owners        *GormRepository[models.Owner, uint]
	Receptionists *GormRepository[models.Receptionist, uint]
	Inventory     *GormRepository[models.Inventory, uint]
}

func NewStore(db *gorm.DB) *Store {
	return &Store{
		Clients:       NewClientRepository(db),
		Customers:     NewCustomerRepository(db),
		Rooms:         NewRoomRepository(db),
		FoodItems:     NewFoodItemRepository(db),
		Bills:         NewGormRepository(db, (*models.Bill).Key, WithPreload("Customer")),
		Managers:      NewGormRepository(db, (*models.Manager).Key),
		Owners:        NewGormRepository(db, (*models.Owner).Key),
		Receptionists: NewGormRepository(db, (*models.Receptionist).Key),
		Inventory:     NewGormRepository(db, (*models.Inventory).Key),
	}
}
