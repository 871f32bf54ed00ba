// Package app assembles the store, services and HTTP handlers over one
// database handle.
package app

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"hotel-orders/controllers"
	"hotel-orders/repository"
	"hotel-orders/routes"
	"hotel-orders/services"
)

type App struct {
	DB    *gorm.DB
	Store *repository.Store

	Clients   *services.ClientService
	Customers *services.CustomerService
	Rooms     *services.RoomService
	Billing   *services.BillingService
	Food      *services.FoodService
	Staff     *services.StaffService
	Inventory *services.InventoryService
	Seeder    *services.Seeder
}

func New(db *gorm.DB) *App {
	store := repository.NewStore(db)
	a := &App{
		DB:        db,
		Store:     store,
		Clients:   services.NewClientService(store.Clients),
		Customers: services.NewCustomerService(store.Customers, store.FoodItems),
		Rooms:     services.NewRoomService(store.Rooms),
		Billing:   services.NewBillingService(store.Bills),
		Food:      services.NewFoodService(store.FoodItems),
		Staff:     services.NewStaffService(store.Managers, store.Owners, store.Receptionists),
		Inventory: services.NewInventoryService(store.Inventory),
	}
	a.Seeder = services.NewSeeder(a.Customers, a.Rooms, a.Billing)
	return a
}

// Router builds the gin engine serving the API.
func (a *App) Router(corsOrigins []string) *gin.Engine {
	return routes.SetupRouter(routes.Controllers{
		Clients:   controllers.NewClientController(a.Clients),
		Customers: controllers.NewCustomerController(a.Customers),
		Rooms:     controllers.NewRoomController(a.Rooms),
		Billing:   controllers.NewBillingController(a.Billing),
		Food:      controllers.NewFoodController(a.Food),
		Inventory: controllers.NewInventoryController(a.Inventory),
	}, corsOrigins)
}
