package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"hotel-orders/controllers"
	"hotel-orders/middleware"
)

// Controllers bundles the handlers SetupRouter mounts.
type Controllers struct {
	Clients   *controllers.ClientController
	Customers *controllers.CustomerController
	Rooms     *controllers.RoomController
	Billing   *controllers.BillingController
	Food      *controllers.FoodController
	Inventory *controllers.InventoryController
}

func corsConfig(origins []string) cors.Config {
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}
	return cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}
}

// SetupRouter mounts the API on a new engine. corsOrigins usually comes
// from CORS_ORIGINS; "*" disables credentialed requests.
func SetupRouter(h Controllers, corsOrigins []string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.Logger())
	r.Use(cors.New(corsConfig(corsOrigins)))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		clients := api.Group("/clients")
		{
			clients.GET("", h.Clients.GetClients)
			clients.POST("", h.Clients.CreateClient)
			clients.GET("/:id", h.Clients.GetClient)
			clients.PATCH("/:id/email", h.Clients.UpdateEmail)
			clients.DELETE("/:id", h.Clients.DeleteClient)
		}
		api.DELETE("/commandes/:id", h.Clients.DeleteCommande)

		customers := api.Group("/customers")
		{
			customers.GET("", h.Customers.GetCustomers)
			customers.POST("", h.Customers.CreateCustomer)
			customers.GET("/:id", h.Customers.GetCustomer)
			customers.PUT("/:id", h.Customers.UpdateCustomer)
			customers.DELETE("/:id", h.Customers.DeleteCustomer)
			customers.POST("/:id/food", h.Customers.OrderFood)
		}

		rooms := api.Group("/rooms")
		{
			rooms.GET("", h.Rooms.GetRooms)
			// must stay ahead of /:roomNo
			rooms.GET("/available", h.Rooms.GetAvailableRooms)
			rooms.POST("", h.Rooms.CreateRoom)
			rooms.GET("/:roomNo", h.Rooms.GetRoom)
			rooms.PATCH("/:roomNo/availability", h.Rooms.SetAvailability)
			rooms.DELETE("/:roomNo", h.Rooms.DeleteRoom)
		}

		bills := api.Group("/bills")
		{
			bills.GET("", h.Billing.GetBills)
			bills.POST("", h.Billing.CreateBill)
			bills.GET("/revenue", h.Billing.GetRevenue)
			bills.DELETE("/:id", h.Billing.DeleteBill)
		}

		food := api.Group("/food-items")
		{
			food.GET("", h.Food.GetMenu)
			food.POST("", h.Food.CreateFoodItem)
			food.DELETE("/:id", h.Food.DeleteFoodItem)
		}

		inventory := api.Group("/inventory")
		{
			inventory.GET("", h.Inventory.GetInventory)
			inventory.POST("", h.Inventory.CreateItem)
		}
	}

	return r
}
