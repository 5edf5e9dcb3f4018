package common

import (
	"time"

	membershipsdomain "gym-membership-go/internal/domain/memberships"
	plansdomain "gym-membership-go/internal/domain/plans"
)

type PlanResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Description  *string   `json:"description"`
	PriceInCents int       `json:"priceInCents"`
	CreatedAt    time.Time `json:"createdAt"`
}

type MembershipResponse struct {
	ID          string       `json:"id"`
	MemberID    string       `json:"memberId"`
	PlanID      string       `json:"planId"`
	StartDate   time.Time    `json:"startDate"`
	CancelledAt *time.Time   `json:"cancelledAt"`
	Status      string       `json:"status"`
	CreatedAt   time.Time    `json:"createdAt"`
	UpdatedAt   time.Time    `json:"updatedAt"`
	Plan        PlanResponse `json:"plan"`
}

func ToPlanResponse(plan plansdomain.Plan) PlanResponse {
	return PlanResponse{
		ID:           plan.ID,
		Name:         plan.Name,
		Description:  plan.Description,
		PriceInCents: plan.PriceInCents,
		CreatedAt:    plan.CreatedAt,
	}
}

func ToMembershipResponse(m *membershipsdomain.Membership) *MembershipResponse {
	if m == nil {
		return nil
	}
	return &MembershipResponse{
		ID:          m.ID,
		MemberID:    m.MemberID,
		PlanID:      m.PlanID,
		StartDate:   m.StartDate,
		CancelledAt: m.CancelledAt,
		Status:      string(m.Status),
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
		Plan:        ToPlanResponse(m.Plan),
	}
}
