package checkins

import (
	"context"
	"time"

	checkinsdomain "gym-membership-go/internal/domain/checkins"
	"gym-membership-go/internal/storage"
	"gorm.io/gorm"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) CreateCheckIn(ctx context.Context, checkIn *checkinsdomain.CheckIn) error {
	return storage.Classify(r.db.WithContext(ctx).Create(checkIn).Error)
}

func (r *PostgresRepository) LastCheckIn(ctx context.Context, memberID string) (*checkinsdomain.CheckIn, error) {
	var items []checkinsdomain.CheckIn
	if err := r.db.WithContext(ctx).
		Where("member_id = ?", memberID).
		Order("checked_in_at desc").
		Limit(1).
		Find(&items).Error; err != nil {
		return nil, storage.Classify(err)
	}
	if len(items) == 0 {
		return nil, nil
	}
	return &items[0], nil
}

func (r *PostgresRepository) CountBetween(ctx context.Context, memberID string, from, to time.Time) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&checkinsdomain.CheckIn{}).
		Where("member_id = ? AND checked_in_at >= ? AND checked_in_at <= ?", memberID, from, to).
		Count(&count).Error; err != nil {
		return 0, storage.Classify(err)
	}
	return count, nil
}
