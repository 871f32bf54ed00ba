package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"hotel-orders/models"
)

// RoomRepository uses the room number as key. Deleting a room deletes the
// customers assigned to it, and their bills and food links.
type RoomRepository struct {
	*GormRepository[models.Room, uint]
}

func NewRoomRepository(db *gorm.DB) *RoomRepository {
	return &RoomRepository{
		GormRepository: NewGormRepository(db, (*models.Room).Key, WithNaturalKey(), WithPreload("Customers")),
	}
}

// Save inserts the room and any customers listed on it that have no id yet.
func (r *RoomRepository) Save(ctx context.Context, room *models.Room) error {
	return r.transact(ctx, "save", room, func(tx *gorm.DB, u *undo) error {
		if err := r.insert(tx, room); err != nil {
			return err
		}
		for _, customer := range room.Customers {
			if customer.ID != 0 {
				continue
			}
			snapshot(u, customer)
			customer.AssignRoom(room)
			if err := tx.Omit(clause.Associations).Create(customer).Error; err != nil {
				return err
			}
			if err := saveCustomerChildren(tx, u, customer); err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *RoomRepository) Delete(ctx context.Context, room *models.Room) error {
	return r.transact(ctx, "delete", room, func(tx *gorm.DB, _ *undo) error {
		if err := r.exists(tx, "delete", room.RoomNo); err != nil {
			return err
		}
		var customerIDs []uint
		if err := tx.Model(&models.Customer{}).Where("room_id = ?", room.RoomNo).Pluck("id", &customerIDs).Error; err != nil {
			return err
		}
		if err := deleteCustomerDependents(tx, customerIDs); err != nil {
			return err
		}
		if len(customerIDs) > 0 {
			if err := tx.Where("id IN ?", customerIDs).Delete(&models.Customer{}).Error; err != nil {
				return err
			}
		}
		return r.remove(tx, room.RoomNo)
	})
}
