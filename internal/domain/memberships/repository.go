package memberships

import (
	"context"
	"time"

	plansdomain "gym-membership-go/internal/domain/plans"
)

type Repository interface {
	Transaction(ctx context.Context, fn func(Repository) error) error

	MemberExists(ctx context.Context, memberID string) (bool, error)
	GetPlanByID(ctx context.Context, planID string) (*plansdomain.Plan, error)

	// GetActiveByMember returns nil without error when the member holds no
	// ACTIVE membership.
	GetActiveByMember(ctx context.Context, memberID string) (*Membership, error)
	// GetGraceByMember returns the latest CANCELLED membership whose effective
	// cancellation date is after at, or nil.
	GetGraceByMember(ctx context.Context, memberID string, at time.Time) (*Membership, error)
	GetActiveByID(ctx context.Context, membershipID string) (*Membership, error)

	CreateMembership(ctx context.Context, membership *Membership) error
	// MarkCancelled flips an ACTIVE row to CANCELLED and reports whether a row
	// was changed.
	MarkCancelled(ctx context.Context, membershipID string, cancelledAt, updatedAt time.Time) (bool, error)
}
