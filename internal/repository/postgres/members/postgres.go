package members

import (
	"context"
	"errors"
	"strings"

	"gym-membership-go/internal/domain/failure"
	membersdomain "gym-membership-go/internal/domain/members"
	"gym-membership-go/internal/storage"
	"gorm.io/gorm"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) CreateMember(ctx context.Context, member *membersdomain.Member) error {
	return storage.Classify(r.db.WithContext(ctx).Create(member).Error)
}

func (r *PostgresRepository) ListMembers(ctx context.Context, search string) ([]membersdomain.Member, error) {
	query := r.db.WithContext(ctx).Model(&membersdomain.Member{})

	if search != "" {
		pattern := "%" + escapeLike(search) + "%"
		query = query.Where("email ILIKE ? OR first_name ILIKE ? OR last_name ILIKE ?", pattern, pattern, pattern)
	}

	var items []membersdomain.Member
	if err := query.Order("created_at desc").Find(&items).Error; err != nil {
		return nil, storage.Classify(err)
	}
	return items, nil
}

func (r *PostgresRepository) GetMemberByID(ctx context.Context, memberID string) (*membersdomain.Member, error) {
	var member membersdomain.Member
	if err := r.db.WithContext(ctx).Where("id = ?", memberID).First(&member).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, failure.ErrMemberNotFound
		}
		return nil, storage.Classify(err)
	}
	return &member, nil
}

// Backslash is the default LIKE escape character in Postgres.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(value string) string {
	return likeEscaper.Replace(value)
}
