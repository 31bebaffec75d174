package store

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CartRepository owns the cached cart contents and the badge counter.
type CartRepository interface {
	ClearCart(ctx context.Context, email string) error
	SetCount(ctx context.Context, email string, count int) error
	ResetCount(ctx context.Context, email string) error
	Count(ctx context.Context, email string) (int, error)
}

type cartRepoImpl struct {
	db *gorm.DB
}

func NewCartRepository(db *gorm.DB) CartRepository {
	return &cartRepoImpl{
		db: db,
	}
}

func (r *cartRepoImpl) ClearCart(ctx context.Context, email string) error {
	return r.db.WithContext(ctx).
		Where("user_email = ?", email).
		Delete(&CartEntry{}).Error
}

func (r *cartRepoImpl) SetCount(ctx context.Context, email string, count int) error {
	counter := &CartCounter{
		UserEmail: email,
		Count:     count,
		UpdatedAt: time.Now(),
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_email"}},
			DoUpdates: clause.AssignmentColumns([]string{"count", "updated_at"}),
		}).
		Create(counter).Error
}

func (r *cartRepoImpl) ResetCount(ctx context.Context, email string) error {
	return r.SetCount(ctx, email, 0)
}

func (r *cartRepoImpl) Count(ctx context.Context, email string) (int, error) {
	var counter CartCounter
	err := r.db.WithContext(ctx).
		Where("user_email = ?", email).
		First(&counter).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}

	return counter.Count, nil
}
