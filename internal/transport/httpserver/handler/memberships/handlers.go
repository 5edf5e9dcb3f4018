package memberships

import (
	"context"
	"time"

	membershipsdomain "gym-membership-go/internal/domain/memberships"
	plansdomain "gym-membership-go/internal/domain/plans"
	"gym-membership-go/pkg/logger"
)

type PlanCatalog interface {
	ListPlans(ctx context.Context) ([]plansdomain.Plan, error)
}

type Ledger interface {
	AssignPlan(ctx context.Context, input membershipsdomain.AssignPlanInput) (*membershipsdomain.Membership, error)
	CancelMembership(ctx context.Context, membershipID string, effectiveDate time.Time) (*membershipsdomain.Membership, error)
}

type Handlers struct {
	Plans       PlanCatalog
	Memberships Ledger
	log         logger.Logger
}

func New(plans PlanCatalog, memberships Ledger, log logger.Logger) *Handlers {
	return &Handlers{
		Plans:       plans,
		Memberships: memberships,
		log:         log,
	}
}
