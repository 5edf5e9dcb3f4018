package plans

import "context"

type Repository interface {
	ListPlans(ctx context.Context) ([]Plan, error)
}
