package services

import (
	"context"
	"fmt"
	"log"

	"hotel-orders/models"
	"hotel-orders/repository"
)

type CustomerStore interface {
	repository.Repository[models.Customer, uint]
	AttachFood(ctx context.Context, customer *models.Customer, items ...*models.FoodItem) error
}

type FoodLookup interface {
	FindByIDs(ctx context.Context, ids []uint) ([]*models.FoodItem, error)
}

type CustomerService struct {
	repo CustomerStore
	food FoodLookup
}

// NewCustomerService Constructor for dependency injection
func NewCustomerService(repo CustomerStore, food FoodLookup) *CustomerService {
	return &CustomerService{repo: repo, food: food}
}

// AddCustomer saves the customer; GORM fills customer.ID on success.
func (s *CustomerService) AddCustomer(ctx context.Context, customer *models.Customer) error {
	return s.repo.Save(ctx, customer)
}

func (s *CustomerService) GetAllCustomers(ctx context.Context) ([]models.Customer, error) {
	return s.repo.FindAll(ctx)
}

func (s *CustomerService) GetCustomer(ctx context.Context, id uint) (*models.Customer, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *CustomerService) UpdateCustomer(ctx context.Context, customer *models.Customer) error {
	return s.repo.Update(ctx, customer)
}

// DeleteCustomer removes the customer with its bills.
func (s *CustomerService) DeleteCustomer(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, &models.Customer{ID: id})
}

// GetCustomersWithBills keeps the customers that have at least one bill.
func (s *CustomerService) GetCustomersWithBills(ctx context.Context) ([]models.Customer, error) {
	customers, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]models.Customer, 0, len(customers))
	for _, c := range customers {
		if c.HasBills() {
			out = append(out, c)
		}
	}
	return out, nil
}

// CustomersInRoom keeps the customers assigned to roomNo.
func (s *CustomerService) CustomersInRoom(ctx context.Context, roomNo uint) ([]models.Customer, error) {
	customers, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	var out []models.Customer
	for _, c := range customers {
		if c.RoomID != nil && *c.RoomID == roomNo {
			out = append(out, c)
		}
	}
	return out, nil
}

// OrderFood links existing food items to the customer.
func (s *CustomerService) OrderFood(ctx context.Context, customerID uint, foodIDs ...uint) (*models.Customer, error) {
	log.Printf("➡️ CustomerService.OrderFood customer=%d food=%v", customerID, foodIDs)

	customer, err := s.repo.FindByID(ctx, customerID)
	if err != nil {
		return nil, err
	}
	items, err := s.food.FindByIDs(ctx, foodIDs)
	if err != nil {
		return nil, err
	}
	found := make(map[uint]bool, len(items))
	for _, item := range items {
		found[item.ID] = true
	}
	for _, id := range foodIDs {
		if !found[id] {
			return nil, &repository.NotFoundError{Entity: "FoodItem", ID: id}
		}
	}
	if err := s.repo.AttachFood(ctx, customer, items...); err != nil {
		return nil, fmt.Errorf("order food for customer %d: %w", customerID, err)
	}
	return customer, nil
}
