// Package repository maps entities to rows through gorm. Every entity type
// gets the same CRUD contract; repositories with cascade rules override the
// operations those rules touch.
package repository

import "context"

// ID is the set of key types the store understands.
type ID interface {
	~uint | ~uint32 | ~uint64 | ~int | ~int32 | ~int64
}

// Repository is the persistence contract shared by every entity type.
type Repository[T any, K ID] interface {
	// Save inserts a new row. Surrogate keys are assigned by the store and
	// written back into entity; natural keys must already be set.
	Save(ctx context.Context, entity *T) error
	// Update replaces the row matching the entity key.
	Update(ctx context.Context, entity *T) error
	// Delete removes the row matching the entity key and its dependents.
	Delete(ctx context.Context, entity *T) error
	// FindByID returns a *NotFoundError when no row matches.
	FindByID(ctx context.Context, id K) (*T, error)
	FindAll(ctx context.Context) ([]T, error)
}
