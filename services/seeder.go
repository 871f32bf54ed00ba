package services

import (
	"context"
	"fmt"
	"log"

	"hotel-orders/models"
)

// Seeder inserts the hotel fixtures into an empty store.
type Seeder struct {
	customers *CustomerService
	rooms     *RoomService
	billing   *BillingService
}

func NewSeeder(customers *CustomerService, rooms *RoomService, billing *BillingService) *Seeder {
	return &Seeder{customers: customers, rooms: rooms, billing: billing}
}

// Seed is a no-op when at least one customer exists. Failed inserts are
// logged and seeding continues with the next fixture.
func (s *Seeder) Seed(ctx context.Context) error {
	existing, err := s.customers.GetAllCustomers(ctx)
	if err != nil {
		return fmt.Errorf("check existing customers: %w", err)
	}
	if len(existing) > 0 {
		log.Println("Customers already seeded")
		return nil
	}

	log.Println("Seeding database...")

	// ---------------- Rooms ----------------
	r1 := models.NewRoom(101, "First Floor", true)
	r2 := models.NewRoom(102, "First Floor", true)
	for _, room := range []*models.Room{r1, r2} {
		if err := s.rooms.AddRoom(ctx, room); err != nil {
			log.Printf("warning: failed to create room %d: %v", room.RoomNo, err)
		}
	}

	// ---------------- Customers ----------------
	c1 := models.NewCustomer("John Doe", "123 Main St", "5551234")
	c1.AssignRoom(r1)
	c2 := models.NewCustomer("Jane Smith", "456 Oak St", "5555678")
	c2.AssignRoom(r2)
	for _, customer := range []*models.Customer{c1, c2} {
		if err := s.customers.AddCustomer(ctx, customer); err != nil {
			log.Printf("warning: failed to create customer %s: %v", customer.Name, err)
		}
	}

	// ---------------- Bills ----------------
	if c1.ID != 0 {
		if err := s.billing.CreateBill(ctx, models.NewBill(150.00, c1)); err != nil {
			log.Printf("warning: failed to create bill for %s: %v", c1.Name, err)
		}
	}

	log.Println("Database seeded.")
	return nil
}
