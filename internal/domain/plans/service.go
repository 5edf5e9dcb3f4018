package plans

import (
	"context"
	"sort"
	"time"
)

type Service struct {
	repo     Repository
	cache    Cache
	cacheTTL time.Duration
}

func NewService(repo Repository, cache Cache, cacheTTL time.Duration) *Service {
	if cache == nil || cacheTTL <= 0 {
		cache = noopCache{}
	}
	return &Service{repo: repo, cache: cache, cacheTTL: cacheTTL}
}

// ListPlans returns the catalog ordered by ascending price.
func (s *Service) ListPlans(ctx context.Context) ([]Plan, error) {
	if cached, ok := s.cache.Get(ctx); ok {
		return cached, nil
	}

	items, err := s.repo.ListPlans(ctx)
	if err != nil {
		return nil, err
	}

	// Repositories already order by price; keep the contract when they don't.
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].PriceInCents < items[j].PriceInCents
	})

	s.cache.Set(ctx, items, s.cacheTTL)
	return items, nil
}
