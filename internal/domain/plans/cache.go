package plans

import (
	"context"
	"time"
)

// Cache stores the full catalog. Implementations must treat a miss and a
// backend failure the same way: report ok=false and let the caller reload.
type Cache interface {
	Get(ctx context.Context) ([]Plan, bool)
	Set(ctx context.Context, plans []Plan, ttl time.Duration)
	Clear(ctx context.Context)
}

type noopCache struct{}

func (noopCache) Get(context.Context) ([]Plan, bool) {
	return nil, false
}

func (noopCache) Set(context.Context, []Plan, time.Duration) {}

func (noopCache) Clear(context.Context) {}
