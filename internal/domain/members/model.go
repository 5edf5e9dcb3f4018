package members

import (
	"time"

	membershipsdomain "gym-membership-go/internal/domain/memberships"
)

// EmailConstraint is the unique index on members.email.
const EmailConstraint = "members_email_key"

type Member struct {
	ID        string    `gorm:"type:uuid;primaryKey"`
	Email     string    `gorm:"not null;uniqueIndex:members_email_key"`
	FirstName string    `gorm:"not null"`
	LastName  string    `gorm:"not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

type CreateMemberInput struct {
	Email     string
	FirstName string
	LastName  string
}

// Summary is a display snapshot; its parts are read independently and may be
// slightly skewed against each other.
type Summary struct {
	Member
	ActiveMembership       *membershipsdomain.Membership
	LastCheckIn            *time.Time
	CheckInCountLast30Days int64
}
