package plans

import (
	"context"

	plansdomain "gym-membership-go/internal/domain/plans"
	"gym-membership-go/internal/storage"
	"gorm.io/gorm"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) ListPlans(ctx context.Context) ([]plansdomain.Plan, error) {
	var items []plansdomain.Plan
	if err := r.db.WithContext(ctx).
		Order("price_in_cents asc, name asc").
		Find(&items).Error; err != nil {
		return nil, storage.Classify(err)
	}
	return items, nil
}
