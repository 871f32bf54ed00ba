package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"hotel-orders/models"
)

// customerFood is one row of the customer/food lookup table that gorm
// creates for the many2many relation.
type customerFood struct {
	CustomerID uint `gorm:"primaryKey;column:customer_id"`
	FoodID     uint `gorm:"primaryKey;column:food_id"`
}

func (customerFood) TableName() string { return "customer_food" }

// CustomerRepository cascades saves to bills and food items and deletes to
// bills and lookup rows.
type CustomerRepository struct {
	*GormRepository[models.Customer, uint]
}

func NewCustomerRepository(db *gorm.DB) *CustomerRepository {
	return &CustomerRepository{
		GormRepository: NewGormRepository(db, (*models.Customer).Key, WithPreload("Room", "Bills", "FoodItems")),
	}
}

func (r *CustomerRepository) Save(ctx context.Context, customer *models.Customer) error {
	return r.transact(ctx, "save", customer, func(tx *gorm.DB, u *undo) error {
		if err := r.insert(tx, customer); err != nil {
			return err
		}
		return saveCustomerChildren(tx, u, customer)
	})
}

// Update replaces the customer row and inserts bills and food links added
// since the last save.
func (r *CustomerRepository) Update(ctx context.Context, customer *models.Customer) error {
	return r.transact(ctx, "update", customer, func(tx *gorm.DB, u *undo) error {
		if err := r.replace(tx, customer); err != nil {
			return err
		}
		return saveCustomerChildren(tx, u, customer)
	})
}

func (r *CustomerRepository) Delete(ctx context.Context, customer *models.Customer) error {
	return r.transact(ctx, "delete", customer, func(tx *gorm.DB, _ *undo) error {
		if err := r.exists(tx, "delete", customer.ID); err != nil {
			return err
		}
		if err := deleteCustomerDependents(tx, []uint{customer.ID}); err != nil {
			return err
		}
		return r.remove(tx, customer.ID)
	})
}

// AttachFood links items to an already persisted customer, inserting items
// that have no id yet.
func (r *CustomerRepository) AttachFood(ctx context.Context, customer *models.Customer, items ...*models.FoodItem) error {
	return r.transact(ctx, "attach food", customer, func(tx *gorm.DB, u *undo) error {
		if err := r.exists(tx, "attach food", customer.ID); err != nil {
			return err
		}
		for _, item := range items {
			if !containsFood(customer.FoodItems, item) {
				customer.FoodItems = append(customer.FoodItems, item)
			}
		}
		return saveFoodLinks(tx, u, customer)
	})
}

func saveCustomerChildren(tx *gorm.DB, u *undo, customer *models.Customer) error {
	for _, bill := range customer.Bills {
		snapshot(u, bill)
		bill.Customer = customer
		bill.CustomerID = customer.ID
		if bill.BillNo != 0 {
			continue
		}
		if err := tx.Omit(clause.Associations).Create(bill).Error; err != nil {
			return err
		}
	}
	return saveFoodLinks(tx, u, customer)
}

func saveFoodLinks(tx *gorm.DB, u *undo, customer *models.Customer) error {
	if len(customer.FoodItems) == 0 {
		return nil
	}
	links := make([]customerFood, 0, len(customer.FoodItems))
	for _, item := range customer.FoodItems {
		if item.ID == 0 {
			snapshot(u, item)
			if err := tx.Omit(clause.Associations).Create(item).Error; err != nil {
				return err
			}
		}
		links = append(links, customerFood{CustomerID: customer.ID, FoodID: item.ID})
	}
	return tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&links).Error
}

// deleteCustomerDependents removes the bills and food links of the given
// customers. The customers themselves are left to the caller.
func deleteCustomerDependents(tx *gorm.DB, customerIDs []uint) error {
	if len(customerIDs) == 0 {
		return nil
	}
	if err := tx.Where("customer_id IN ?", customerIDs).Delete(&models.Bill{}).Error; err != nil {
		return err
	}
	return tx.Where("customer_id IN ?", customerIDs).Delete(&customerFood{}).Error
}

func containsFood(items []*models.FoodItem, item *models.FoodItem) bool {
	for _, existing := range items {
		if existing == item || (item.ID != 0 && existing.ID == item.ID) {
			return true
		}
	}
	return false
}
