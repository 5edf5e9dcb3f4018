package checkins

import (
	"context"
	"time"
)

type Repository interface {
	CreateCheckIn(ctx context.Context, checkIn *CheckIn) error
	// LastCheckIn returns nil when the member never checked in.
	LastCheckIn(ctx context.Context, memberID string) (*CheckIn, error)
	CountBetween(ctx context.Context, memberID string, from, to time.Time) (int64, error)
}
