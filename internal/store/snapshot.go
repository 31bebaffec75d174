package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"storefront-checkout/internal/checkout"
	"storefront-checkout/internal/model"
)

// SnapshotRepository owns the staged "items to checkout" value.
type SnapshotRepository interface {
	SaveStaged(ctx context.Context, email string, items []model.LineItem) error
	LoadStaged(ctx context.Context, email string) ([]model.LineItem, error)
	ClearStaged(ctx context.Context, email string) error
}

type snapshotRepoImpl struct {
	db *gorm.DB
}

func NewSnapshotRepository(db *gorm.DB) SnapshotRepository {
	return &snapshotRepoImpl{
		db: db,
	}
}

func (r *snapshotRepoImpl) SaveStaged(ctx context.Context, email string, items []model.LineItem) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("marshal staged items: %w", err)
	}

	staged := &StagedCheckout{
		UserEmail: email,
		ItemsJSON: string(raw),
	}
	return r.db.WithContext(ctx).Save(staged).Error
}

// LoadStaged returns the frozen snapshot for a user, or
// checkout.ErrNothingStaged when none exists.
func (r *snapshotRepoImpl) LoadStaged(ctx context.Context, email string) ([]model.LineItem, error) {
	var staged StagedCheckout
	err := r.db.WithContext(ctx).
		Where("user_email = ?", email).
		First(&staged).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, checkout.ErrNothingStaged
	}
	if err != nil {
		return nil, fmt.Errorf("load staged snapshot: %w", err)
	}

	var items []model.LineItem
	if err := json.Unmarshal([]byte(staged.ItemsJSON), &items); err != nil {
		return nil, fmt.Errorf("decode staged snapshot: %w", err)
	}
	if len(items) == 0 {
		return nil, checkout.ErrNothingStaged
	}

	return items, nil
}

func (r *snapshotRepoImpl) ClearStaged(ctx context.Context, email string) error {
	return r.db.WithContext(ctx).
		Where("user_email = ?", email).
		Delete(&StagedCheckout{}).Error
}
