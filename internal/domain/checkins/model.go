package checkins

import "time"

// CheckIn is an immutable attendance event.
type CheckIn struct {
	ID        string    `gorm:"type:uuid;primaryKey"`
	MemberID  string    `gorm:"type:uuid;index;not null"`
	Timestamp time.Time `gorm:"column:checked_in_at;not null"`
}
