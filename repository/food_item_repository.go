package repository

import (
	"context"

	"gorm.io/gorm"

	"hotel-orders/models"
)

// FoodItemRepository drops lookup rows before the item itself.
type FoodItemRepository struct {
	*GormRepository[models.FoodItem, uint]
}

func NewFoodItemRepository(db *gorm.DB) *FoodItemRepository {
	return &FoodItemRepository{GormRepository: NewGormRepository(db, (*models.FoodItem).Key)}
}

func (r *FoodItemRepository) Delete(ctx context.Context, item *models.FoodItem) error {
	return r.transact(ctx, "delete", item, func(tx *gorm.DB, _ *undo) error {
		if err := r.exists(tx, "delete", item.ID); err != nil {
			return err
		}
		if err := tx.Where("food_id = ?", item.ID).Delete(&customerFood{}).Error; err != nil {
			return err
		}
		return r.remove(tx, item.ID)
	})
}

// FindByIDs returns the items with the given ids, skipping unknown ones.
func (r *FoodItemRepository) FindByIDs(ctx context.Context, ids []uint) ([]*models.FoodItem, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var items []*models.FoodItem
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Order("id").Find(&items).Error; err != nil {
		return nil, wrapError("find", r.entity, err)
	}
	return items, nil
}
