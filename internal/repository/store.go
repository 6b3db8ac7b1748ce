package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrNotFound is returned when no row matches the requested id.
var ErrNotFound = errors.New("record not found")

// Scope narrows a query, gorm style.
type Scope = func(*gorm.DB) *gorm.DB

// Store is the data access contract shared by every entity. Writes run in
// their own transaction and are rolled back on any error; reads are not
// transactional.
type Store[T any] struct {
	db *gorm.DB
}

func NewStore[T any](db *gorm.DB) *Store[T] {
	return &Store[T]{db: db}
}

// List returns every row ordered by id, after any ordering the scopes add.
func (s *Store[T]) List(ctx context.Context, scopes ...Scope) ([]T, error) {
	items := []T{}
	err := s.db.WithContext(ctx).Scopes(scopes...).Scopes(OrderByID).Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

// Get loads the row with the given id or returns ErrNotFound.
func (s *Store[T]) Get(ctx context.Context, id uint, scopes ...Scope) (*T, error) {
	var item T
	err := s.db.WithContext(ctx).Scopes(scopes...).First(&item, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// First returns the row with the lowest id or ErrNotFound when the table is
// empty.
func (s *Store[T]) First(ctx context.Context) (*T, error) {
	var item T
	err := s.db.WithContext(ctx).First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *Store[T]) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(new(T)).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (s *Store[T]) Count(ctx context.Context) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(new(T)).Count(&count).Error
	return count, err
}

func (s *Store[T]) Create(ctx context.Context, item *T) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(item).Error
	})
}

// Update writes every column of item. Loaded associations are left alone.
func (s *Store[T]) Update(ctx context.Context, item *T) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Omit(clause.Associations).Save(item).Error
	})
}

func (s *Store[T]) Delete(ctx context.Context, item *T) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Delete(item).Error
	})
}

func OrderByID(db *gorm.DB) *gorm.DB {
	return db.Order("id")
}

// Paginate selects the 1-based page of perPage rows.
func Paginate(page, perPage int) Scope {
	return func(db *gorm.DB) *gorm.DB {
		if page < 1 {
			page = 1
		}
		return db.Offset((page - 1) * perPage).Limit(perPage)
	}
}

// Preload eagerly loads the named association.
func Preload(association string) Scope {
	return func(db *gorm.DB) *gorm.DB {
		return db.Preload(association, OrderByID)
	}
}
