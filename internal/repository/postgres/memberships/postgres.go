package memberships

import (
	"context"
	"errors"
	"time"

	"gym-membership-go/internal/domain/failure"
	membershipsdomain "gym-membership-go/internal/domain/memberships"
	plansdomain "gym-membership-go/internal/domain/plans"
	"gym-membership-go/internal/storage"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Transaction(ctx context.Context, fn func(membershipsdomain.Repository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&PostgresRepository{db: tx})
	})
}

func (r *PostgresRepository) MemberExists(ctx context.Context, memberID string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Table("members").Where("id = ?", memberID).Count(&count).Error; err != nil {
		return false, storage.Classify(err)
	}
	return count > 0, nil
}

func (r *PostgresRepository) GetPlanByID(ctx context.Context, planID string) (*plansdomain.Plan, error) {
	var plan plansdomain.Plan
	if err := r.db.WithContext(ctx).Where("id = ?", planID).First(&plan).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, failure.ErrPlanNotFound
		}
		return nil, storage.Classify(err)
	}
	return &plan, nil
}

func (r *PostgresRepository) GetActiveByMember(ctx context.Context, memberID string) (*membershipsdomain.Membership, error) {
	var items []membershipsdomain.Membership
	if err := r.db.WithContext(ctx).
		Preload("Plan").
		Where("member_id = ? AND status = ?", memberID, membershipsdomain.StatusActive).
		Limit(1).
		Find(&items).Error; err != nil {
		return nil, storage.Classify(err)
	}
	if len(items) == 0 {
		return nil, nil
	}
	return &items[0], nil
}

func (r *PostgresRepository) GetGraceByMember(ctx context.Context, memberID string, at time.Time) (*membershipsdomain.Membership, error) {
	var items []membershipsdomain.Membership
	if err := r.db.WithContext(ctx).
		Preload("Plan").
		Where("member_id = ? AND status = ? AND cancelled_at > ?", memberID, membershipsdomain.StatusCancelled, at).
		Order("cancelled_at desc").
		Limit(1).
		Find(&items).Error; err != nil {
		return nil, storage.Classify(err)
	}
	if len(items) == 0 {
		return nil, nil
	}
	return &items[0], nil
}

func (r *PostgresRepository) GetActiveByID(ctx context.Context, membershipID string) (*membershipsdomain.Membership, error) {
	var membership membershipsdomain.Membership
	if err := r.db.WithContext(ctx).
		Preload("Plan").
		Where("id = ? AND status = ?", membershipID, membershipsdomain.StatusActive).
		First(&membership).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, failure.ErrActiveMembershipNotFound
		}
		return nil, storage.Classify(err)
	}
	return &membership, nil
}

func (r *PostgresRepository) CreateMembership(ctx context.Context, membership *membershipsdomain.Membership) error {
	return storage.Classify(r.db.WithContext(ctx).Omit(clause.Associations).Create(membership).Error)
}

func (r *PostgresRepository) MarkCancelled(ctx context.Context, membershipID string, cancelledAt, updatedAt time.Time) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&membershipsdomain.Membership{}).
		Where("id = ? AND status = ?", membershipID, membershipsdomain.StatusActive).
		Updates(map[string]interface{}{
			"status":       membershipsdomain.StatusCancelled,
			"cancelled_at": cancelledAt,
			"updated_at":   updatedAt,
		})
	if result.Error != nil {
		return false, storage.Classify(result.Error)
	}
	return result.RowsAffected > 0, nil
}
