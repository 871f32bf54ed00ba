package services

import (
	"context"
	"strings"

	"hotel-orders/models"
	"hotel-orders/repository"
)

type FoodService struct {
	repo repository.Repository[models.FoodItem, uint]
}

func NewFoodService(repo repository.Repository[models.FoodItem, uint]) *FoodService {
	return &FoodService{repo: repo}
}

func (s *FoodService) AddFoodItem(ctx context.Context, item *models.FoodItem) error {
	if strings.TrimSpace(item.Name) == "" {
		return invalidf("food item name is required")
	}
	if item.Price < 0 {
		return invalidf("food item price must not be negative")
	}
	return s.repo.Save(ctx, item)
}

func (s *FoodService) Menu(ctx context.Context) ([]models.FoodItem, error) {
	return s.repo.FindAll(ctx)
}

// ItemsUnder keeps the items priced at or below maxPrice.
func (s *FoodService) ItemsUnder(ctx context.Context, maxPrice float64) ([]models.FoodItem, error) {
	items, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	var out []models.FoodItem
	for _, item := range items {
		if item.Price <= maxPrice {
			out = append(out, item)
		}
	}
	return out, nil
}

// DeleteFoodItem removes the item and unlinks it from every customer.
func (s *FoodService) DeleteFoodItem(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, &models.FoodItem{ID: id})
}
