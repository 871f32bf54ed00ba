package services

import (
	"context"

	"hotel-orders/models"
	"hotel-orders/repository"
)

type InventoryService struct {
	repo repository.Repository[models.Inventory, uint]
}

func NewInventoryService(repo repository.Repository[models.Inventory, uint]) *InventoryService {
	return &InventoryService{repo: repo}
}

func (s *InventoryService) AddItem(ctx context.Context, item *models.Inventory) error {
	if item.Quantity < 0 {
		return invalidf("inventory quantity must not be negative")
	}
	return s.repo.Save(ctx, item)
}

func (s *InventoryService) ListItems(ctx context.Context) ([]models.Inventory, error) {
	return s.repo.FindAll(ctx)
}

// Restock adds qty units to the item and returns the updated record.
func (s *InventoryService) Restock(ctx context.Context, id uint, qty int) (*models.Inventory, error) {
	if qty <= 0 {
		return nil, invalidf("restock quantity must be positive")
	}
	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	item.Quantity += qty
	if err := s.repo.Update(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// LowStock keeps the items whose quantity is below threshold.
func (s *InventoryService) LowStock(ctx context.Context, threshold int) ([]models.Inventory, error) {
	items, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	var out []models.Inventory
	for _, item := range items {
		if item.Quantity < threshold {
			out = append(out, item)
		}
	}
	return out, nil
}
