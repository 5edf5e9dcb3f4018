package checkins

import (
	"context"
	"time"

	"gym-membership-go/internal/domain/failure"
	membershipsdomain "gym-membership-go/internal/domain/memberships"
	"gym-membership-go/internal/metrics"

	"github.com/google/uuid"
)

// MembershipLookup is the slice of the membership ledger the gate consults.
type MembershipLookup interface {
	CheckInCandidate(ctx context.Context, memberID string, at time.Time) (*membershipsdomain.Membership, error)
}

type Service struct {
	repo        Repository
	memberships MembershipLookup
	metrics     *metrics.Metrics
	now         func() time.Time
}

func NewService(repo Repository, memberships MembershipLookup, m *metrics.Metrics) *Service {
	return &Service{repo: repo, memberships: memberships, metrics: m, now: time.Now}
}

// CheckIn records an attendance event when the member holds a membership that
// is eligible right now. Every ineligible case, an unknown member included,
// yields failure.ErrNoActiveMembership.
func (s *Service) CheckIn(ctx context.Context, memberID string) (*CheckIn, error) {
	now := s.now().UTC()

	membership, err := s.memberships.CheckInCandidate(ctx, memberID, now)
	if err != nil {
		return nil, err
	}
	if !membership.EligibleAt(now) {
		if s.metrics != nil {
			s.metrics.IncCheckIn(false)
		}
		return nil, failure.ErrNoActiveMembership
	}

	checkIn := CheckIn{
		ID:        uuid.NewString(),
		MemberID:  memberID,
		Timestamp: now,
	}
	if err := s.repo.CreateCheckIn(ctx, &checkIn); err != nil {
		return nil, err
	}

	if s.metrics != nil {
		s.metrics.IncCheckIn(true)
	}
	return &checkIn, nil
}

func (s *Service) LastCheckIn(ctx context.Context, memberID string) (*CheckIn, error) {
	return s.repo.LastCheckIn(ctx, memberID)
}

// CountBetween counts the member's check-ins in [from, to].
func (s *Service) CountBetween(ctx context.Context, memberID string, from, to time.Time) (int64, error) {
	return s.repo.CountBetween(ctx, memberID, from, to)
}
