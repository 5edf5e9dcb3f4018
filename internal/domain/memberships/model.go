package memberships

import (
	"time"

	plansdomain "gym-membership-go/internal/domain/plans"
)

type Status string

const (
	StatusActive    Status = "ACTIVE"
	StatusCancelled Status = "CANCELLED"
)

// ActiveMembershipConstraint is the partial unique index allowing at most one
// ACTIVE membership per member.
const ActiveMembershipConstraint = "uniq_active_membership_per_member"

type Membership struct {
	ID          string     `gorm:"type:uuid;primaryKey"`
	MemberID    string     `gorm:"type:uuid;index;not null"`
	PlanID      string     `gorm:"type:uuid;not null"`
	StartDate   time.Time  `gorm:"type:date;not null"`
	Status      Status     `gorm:"type:varchar(16);not null"`
	CancelledAt *time.Time `gorm:"type:date"`
	CreatedAt   time.Time  `gorm:"autoCreateTime"`
	UpdatedAt   time.Time  `gorm:"autoUpdateTime"`

	Plan plansdomain.Plan `gorm:"foreignKey:PlanID;references:ID"`
}

// EligibleAt reports whether the membership entitles its member to check in
// at instant at. A cancelled row stays eligible until its effective date.
func (m *Membership) EligibleAt(at time.Time) bool {
	if m == nil {
		return false
	}
	if m.CancelledAt == nil {
		return m.Status == StatusActive
	}
	return m.CancelledAt.After(at)
}

type AssignPlanInput struct {
	MemberID  string
	PlanID    string
	StartDate time.Time
}

// CalendarDate drops the clock part of t, keeping its calendar day in UTC.
func CalendarDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
