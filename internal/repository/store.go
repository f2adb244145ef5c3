// Package repository holds the data access layer for the content store and Redis.
package repository

import (
	"context"

	"gorm.io/gorm"
)

// Store is the CRUD surface shared by the catalog tables.
type Store[T any] interface {
	FindAll(ctx context.Context) ([]T, error)
	FindByID(ctx context.Context, id uint) (*T, error)
	Create(ctx context.Context, item *T) error
	Update(ctx context.Context, id uint, item *T) error
	Delete(ctx context.Context, id uint) error
	Count(ctx context.Context) (int64, error)
}

// gormStore implements Store for any gorm model with an integer "id" primary key.
type gormStore[T any] struct {
	db *gorm.DB
}

func (s gormStore[T]) FindAll(ctx context.Context) ([]T, error) {
	var items []T
	err := s.db.WithContext(ctx).Order("id asc").Find(&items).Error
	return items, err
}

func (s gormStore[T]) FindByID(ctx context.Context, id uint) (*T, error) {
	var item T
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (s gormStore[T]) Create(ctx context.Context, item *T) error {
	return s.db.WithContext(ctx).Create(item).Error
}

// Update overwrites every column of the row with the given id, zero values included.
// It returns gorm.ErrRecordNotFound when the row does not exist.
func (s gormStore[T]) Update(ctx context.Context, id uint, item *T) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing T
		if err := tx.Where("id = ?", id).First(&existing).Error; err != nil {
			return err
		}
		return tx.Model(&existing).Select("*").Omit("id", "created_at").Updates(item).Error
	})
}

// Delete removes the row with the given id, returning gorm.ErrRecordNotFound when nothing matched.
func (s gormStore[T]) Delete(ctx context.Context, id uint) error {
	res := s.db.WithContext(ctx).Where("id = ?", id).Delete(new(T))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (s gormStore[T]) Count(ctx context.Context) (int64, error) {
	var n int64
	err := s.db.WithContext(ctx).Model(new(T)).Count(&n).Error
	return n, err
}
