package memberships

import (
	"context"
	"errors"
	"time"

	"gym-membership-go/internal/domain/failure"
	"gym-membership-go/internal/metrics"
	"gym-membership-go/internal/storage"

	"github.com/google/uuid"
)

type Service struct {
	repo    Repository
	metrics *metrics.Metrics
	now     func() time.Time
}

func NewService(repo Repository, m *metrics.Metrics) *Service {
	return &Service{repo: repo, metrics: m, now: time.Now}
}

// AssignPlan opens a new ACTIVE membership. The existence checks and insert
// share one transaction; the partial unique index settles concurrent callers
// that both pass the pre-check.
func (s *Service) AssignPlan(ctx context.Context, input AssignPlanInput) (*Membership, error) {
	var created Membership

	err := s.repo.Transaction(ctx, func(tx Repository) error {
		exists, err := tx.MemberExists(ctx, input.MemberID)
		if err != nil {
			return err
		}
		if !exists {
			return failure.ErrMemberNotFound
		}

		plan, err := tx.GetPlanByID(ctx, input.PlanID)
		if err != nil {
			return err
		}

		active, err := tx.GetActiveByMember(ctx, input.MemberID)
		if err != nil {
			return err
		}
		if active != nil {
			return failure.ErrActiveMembershipExists
		}

		membership := Membership{
			ID:        uuid.NewString(),
			MemberID:  input.MemberID,
			PlanID:    plan.ID,
			StartDate: CalendarDate(input.StartDate),
			Status:    StatusActive,
		}
		if err := tx.CreateMembership(ctx, &membership); err != nil {
			return err
		}

		membership.Plan = *plan
		created = membership
		return nil
	})
	if err != nil {
		if storage.IsUniqueViolation(err, ActiveMembershipConstraint) {
			err = failure.ErrActiveMembershipExists
		}
		if errors.Is(err, failure.ErrActiveMembershipExists) && s.metrics != nil {
			s.metrics.IncAssignConflict()
		}
		return nil, err
	}

	if s.metrics != nil {
		s.metrics.IncMembershipsAssigned(created.Plan.Name)
	}
	return &created, nil
}

// CancelMembership schedules the end of an ACTIVE membership. effectiveDate
// may be in the past, today or the future. Cancelling twice fails because the
// row is no longer ACTIVE.
func (s *Service) CancelMembership(ctx context.Context, membershipID string, effectiveDate time.Time) (*Membership, error) {
	membership, err := s.repo.GetActiveByID(ctx, membershipID)
	if err != nil {
		return nil, err
	}

	cancelledAt := CalendarDate(effectiveDate)
	updatedAt := s.now().UTC()

	updated, err := s.repo.MarkCancelled(ctx, membership.ID, cancelledAt, updatedAt)
	if err != nil {
		return nil, err
	}
	if !updated {
		return nil, failure.ErrActiveMembershipNotFound
	}

	membership.Status = StatusCancelled
	membership.CancelledAt = &cancelledAt
	membership.UpdatedAt = updatedAt

	if s.metrics != nil {
		s.metrics.IncMembershipsCancelled()
	}
	return membership, nil
}

// ActiveMembership returns the member's ACTIVE membership with its plan, or nil.
func (s *Service) ActiveMembership(ctx context.Context, memberID string) (*Membership, error) {
	return s.repo.GetActiveByMember(ctx, memberID)
}

// CheckInCandidate returns the membership that decides whether the member may
// check in at instant at: the ACTIVE row when there is one, otherwise a
// cancelled row still inside its grace period. Nil means none.
func (s *Service) CheckInCandidate(ctx context.Context, memberID string, at time.Time) (*Membership, error) {
	active, err := s.repo.GetActiveByMember(ctx, memberID)
	if err != nil {
		return nil, err
	}
	if active != nil {
		return active, nil
	}
	return s.repo.GetGraceByMember(ctx, memberID, at)
}
