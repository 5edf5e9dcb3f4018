package members

import (
	"context"
	"errors"
	"strings"
	"time"

	checkinsdomain "gym-membership-go/internal/domain/checkins"
	"gym-membership-go/internal/domain/failure"
	membershipsdomain "gym-membership-go/internal/domain/memberships"
	"gym-membership-go/internal/metrics"
	"gym-membership-go/internal/storage"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

const summaryWindow = 30 * 24 * time.Hour

type ActiveMembershipReader interface {
	ActiveMembership(ctx context.Context, memberID string) (*membershipsdomain.Membership, error)
}

type CheckInStats interface {
	LastCheckIn(ctx context.Context, memberID string) (*checkinsdomain.CheckIn, error)
	CountBetween(ctx context.Context, memberID string, from, to time.Time) (int64, error)
}

type Service struct {
	repo        Repository
	memberships ActiveMembershipReader
	checkIns    CheckInStats
	metrics     *metrics.Metrics
	now         func() time.Time
}

func NewService(repo Repository, memberships ActiveMembershipReader, checkIns CheckInStats, m *metrics.Metrics) *Service {
	return &Service{
		repo:        repo,
		memberships: memberships,
		checkIns:    checkIns,
		metrics:     m,
		now:         time.Now,
	}
}

func (s *Service) CreateMember(ctx context.Context, input CreateMemberInput) (*Member, error) {
	member := Member{
		ID:        uuid.NewString(),
		Email:     strings.ToLower(strings.TrimSpace(input.Email)),
		FirstName: strings.TrimSpace(input.FirstName),
		LastName:  strings.TrimSpace(input.LastName),
	}

	if err := s.repo.CreateMember(ctx, &member); err != nil {
		if storage.IsUniqueViolation(err, EmailConstraint) {
			return nil, failure.ErrEmailExists
		}
		return nil, err
	}

	if s.metrics != nil {
		s.metrics.IncMembersCreated()
	}
	return &member, nil
}

func (s *Service) ListMembers(ctx context.Context, search string) ([]Member, error) {
	return s.repo.ListMembers(ctx, strings.TrimSpace(search))
}

// GetMemberSummary returns nil, nil when the member does not exist.
func (s *Service) GetMemberSummary(ctx context.Context, memberID string) (*Summary, error) {
	member, err := s.repo.GetMemberByID(ctx, memberID)
	if err != nil {
		if errors.Is(err, failure.ErrMemberNotFound) {
			return nil, nil
		}
		return nil, err
	}

	now := s.now().UTC()
	summary := Summary{Member: *member}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		active, err := s.memberships.ActiveMembership(gctx, memberID)
		if err != nil {
			return err
		}
		summary.ActiveMembership = active
		return nil
	})

	g.Go(func() error {
		last, err := s.checkIns.LastCheckIn(gctx, memberID)
		if err != nil {
			return err
		}
		if last != nil {
			ts := last.Timestamp
			summary.LastCheckIn = &ts
		}
		return nil
	})

	g.Go(func() error {
		count, err := s.checkIns.CountBetween(gctx, memberID, now.Add(-summaryWindow), now)
		if err != nil {
			return err
		}
		summary.CheckInCountLast30Days = count
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &summary, nil
}
