package repository

import (
	"context"
	"errors"
	"log"
	"reflect"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormRepository implements Repository for one model type. Writes never
// auto-save associations; repositories that cascade do it explicitly.
type GormRepository[T any, K ID] struct {
	db         *gorm.DB
	entity     string
	keyOf      func(*T) K
	naturalKey bool
	preloads   []string
}

type Option func(*options)

type options struct {
	naturalKey bool
	preloads   []string
}

// WithNaturalKey marks the key as caller-assigned.
func WithNaturalKey() Option {
	return func(o *options) { o.naturalKey = true }
}

// WithPreload loads the named associations on every read.
func WithPreload(associations ...string) Option {
	return func(o *options) { o.preloads = append(o.preloads, associations...) }
}

// NewGormRepository builds a repository; keyOf reads the key of an entity,
// usually a method expression such as (*models.Bill).Key.
func NewGormRepository[T any, K ID](db *gorm.DB, keyOf func(*T) K, opts ...Option) *GormRepository[T, K] {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return &GormRepository[T, K]{
		db:         db,
		entity:     reflect.TypeOf((*T)(nil)).Elem().Name(),
		keyOf:      keyOf,
		naturalKey: o.naturalKey,
		preloads:   o.preloads,
	}
}

func (r *GormRepository[T, K]) Save(ctx context.Context, entity *T) error {
	return r.transact(ctx, "save", entity, func(tx *gorm.DB, _ *undo) error {
		return r.insert(tx, entity)
	})
}

func (r *GormRepository[T, K]) Update(ctx context.Context, entity *T) error {
	return r.transact(ctx, "update", entity, func(tx *gorm.DB, _ *undo) error {
		return r.replace(tx, entity)
	})
}

func (r *GormRepository[T, K]) Delete(ctx context.Context, entity *T) error {
	return r.transact(ctx, "delete", entity, func(tx *gorm.DB, _ *undo) error {
		return r.remove(tx, r.keyOf(entity))
	})
}

func (r *GormRepository[T, K]) FindByID(ctx context.Context, id K) (*T, error) {
	var out T
	if err := r.query(ctx).First(&out, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entity: r.entity, ID: id}
		}
		return nil, wrapError("find", r.entity, err)
	}
	return &out, nil
}

func (r *GormRepository[T, K]) FindAll(ctx context.Context) ([]T, error) {
	var out []T
	if err := r.query(ctx).Order(clause.OrderByColumn{Column: clause.PrimaryColumn}).Find(&out).Error; err != nil {
		return nil, wrapError("find all", r.entity, err)
	}
	return out, nil
}

func (r *GormRepository[T, K]) query(ctx context.Context) *gorm.DB {
	q := r.db.WithContext(ctx)
	for _, assoc := range r.preloads {
		q = q.Preload(assoc)
	}
	return q
}

// transact runs fn in one transaction. gorm commits when fn returns nil and
// rolls back on error or panic. On error, entity and everything fn recorded
// on u are restored to their state before the call, then the failure is
// logged and returned.
func (r *GormRepository[T, K]) transact(ctx context.Context, op string, entity *T, fn func(tx *gorm.DB, u *undo) error) error {
	u := &undo{}
	snapshot(u, entity)
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(tx, u)
	})
	if err != nil {
		u.run()
		err = wrapError(op, r.entity, err)
		log.Printf("❌ %s %s rolled back: %v", r.entity, op, err)
	}
	return err
}

func (r *GormRepository[T, K]) insert(tx *gorm.DB, entity *T) error {
	var zero K
	id := r.keyOf(entity)
	switch {
	case r.naturalKey && id == zero:
		return &PersistenceError{Op: "save", Entity: r.entity, Kind: KindInvalid, Err: errMissingKey}
	case !r.naturalKey && id != zero:
		return &PersistenceError{Op: "save", Entity: r.entity, Kind: KindInvalid, Err: errAlreadyPersisted}
	}
	return tx.Omit(clause.Associations).Create(entity).Error
}

// replace overwrites every column of the existing row except created_at.
func (r *GormRepository[T, K]) replace(tx *gorm.DB, entity *T) error {
	id := r.keyOf(entity)
	if err := r.exists(tx, "update", id); err != nil {
		return err
	}
	return tx.Model(entity).Select("*").Omit(clause.Associations, "CreatedAt").Updates(entity).Error
}

func (r *GormRepository[T, K]) remove(tx *gorm.DB, id K) error {
	var zero K
	if id == zero {
		return &PersistenceError{Op: "delete", Entity: r.entity, Kind: KindInvalid, Err: errMissingKey}
	}
	res := tx.Delete(new(T), id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return &NotFoundError{Entity: r.entity, ID: id}
	}
	return nil
}

// exists fails with a *NotFoundError when no row carries id.
func (r *GormRepository[T, K]) exists(tx *gorm.DB, op string, id K) error {
	var zero K
	if id == zero {
		return &PersistenceError{Op: op, Entity: r.entity, Kind: KindInvalid, Err: errMissingKey}
	}
	var count int64
	if err := tx.Model(new(T)).Where(clause.Eq{Column: clause.PrimaryColumn, Value: id}).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return &NotFoundError{Entity: r.entity, ID: id}
	}
	return nil
}

// IsNotFound reports whether err is a missing-row error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
