package redis

import (
	"context"
	"encoding/json"
	"time"

	plansdomain "gym-membership-go/internal/domain/plans"
	"gym-membership-go/pkg/logger"

	goredis "github.com/redis/go-redis/v9"
)

const plansKey = "gym:plans:v1"

// PlansCache keeps the plan catalog in Redis as a JSON document. Backend
// errors are logged and reported as misses.
type PlansCache struct {
	client goredis.UniversalClient
	log    logger.Logger
}

func NewPlansCache(client goredis.UniversalClient, log logger.Logger) *PlansCache {
	return &PlansCache{client: client, log: log}
}

func (c *PlansCache) Get(ctx context.Context) ([]plansdomain.Plan, bool) {
	raw, err := c.client.Get(ctx, plansKey).Bytes()
	if err != nil {
		if err != goredis.Nil {
			c.log.Warn("redis: plans cache get failed", "err", err)
		}
		return nil, false
	}

	var items []plansdomain.Plan
	if err := json.Unmarshal(raw, &items); err != nil {
		c.log.Warn("redis: plans cache decode failed", "err", err)
		return nil, false
	}
	return items, true
}

func (c *PlansCache) Set(ctx context.Context, plans []plansdomain.Plan, ttl time.Duration) {
	if plans == nil || ttl <= 0 {
		c.Clear(ctx)
		return
	}

	raw, err := json.Marshal(plans)
	if err != nil {
		c.log.Warn("redis: plans cache encode failed", "err", err)
		return
	}
	if err := c.client.Set(ctx, plansKey, raw, ttl).Err(); err != nil {
		c.log.Warn("redis: plans cache set failed", "err", err)
	}
}

func (c *PlansCache) Clear(ctx context.Context) {
	if err := c.client.Del(ctx, plansKey).Err(); err != nil {
		c.log.Warn("redis: plans cache clear failed", "err", err)
	}
}
