package inmemory

import (
	"context"
	"sync"
	"time"

	plansdomain "gym-membership-go/internal/domain/plans"
)

type PlansCache struct {
	mu        sync.RWMutex
	items     []plansdomain.Plan
	expiresAt time.Time
	now       func() time.Time
}

func NewPlansCache() *PlansCache {
	return &PlansCache{now: time.Now}
}

func (c *PlansCache) Get(context.Context) ([]plansdomain.Plan, bool) {
	now := c.now()

	c.mu.RLock()
	items, expiresAt := c.items, c.expiresAt
	c.mu.RUnlock()
	if items == nil {
		return nil, false
	}

	if !expiresAt.After(now) {
		c.mu.Lock()
		if c.items != nil && !c.expiresAt.After(now) {
			c.items = nil
		}
		c.mu.Unlock()
		return nil, false
	}

	out := make([]plansdomain.Plan, len(items))
	copy(out, items)
	return out, true
}

func (c *PlansCache) Set(ctx context.Context, plans []plansdomain.Plan, ttl time.Duration) {
	if plans == nil || ttl <= 0 {
		c.Clear(ctx)
		return
	}

	c.mu.Lock()
	c.items = append(make([]plansdomain.Plan, 0, len(plans)), plans...)
	c.expiresAt = c.now().Add(ttl)
	c.mu.Unlock()
}

func (c *PlansCache) Clear(context.Context) {
	c.mu.Lock()
	c.items = nil
	c.mu.Unlock()
}
