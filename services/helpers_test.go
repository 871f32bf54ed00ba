package services_test

import (
	"testing"

	"hotel-orders/internal/testdb"
	"hotel-orders/repository"
	"hotel-orders/services"
)

type testServices struct {
	store     *repository.Store
	clients   *services.ClientService
	customers *services.CustomerService
	rooms     *services.RoomService
	billing   *services.BillingService
	food      *services.FoodService
	staff     *services.StaffService
	inventory *services.InventoryService
}

func newTestServices(t *testing.T) *testServices {
	t.Helper()
	store := repository.NewStore(testdb.Open(t))
	return &testServices{
		store:     store,
		clients:   services.NewClientService(store.Clients),
		customers: services.NewCustomerService(store.Customers, store.FoodItems),
		rooms:     services.NewRoomService(store.Rooms),
		billing:   services.NewBillingService(store.Bills),
		food:      services.NewFoodService(store.FoodItems),
		staff:     services.NewStaffService(store.Managers, store.Owners, store.Receptionists),
		inventory: services.NewInventoryService(store.Inventory),
	}
}
