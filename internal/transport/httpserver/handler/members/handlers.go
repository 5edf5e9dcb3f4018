package members

import (
	"context"

	membersdomain "gym-membership-go/internal/domain/members"
	"gym-membership-go/pkg/logger"
)

type Service interface {
	CreateMember(ctx context.Context, input membersdomain.CreateMemberInput) (*membersdomain.Member, error)
	ListMembers(ctx context.Context, search string) ([]membersdomain.Member, error)
	GetMemberSummary(ctx context.Context, memberID string) (*membersdomain.Summary, error)
}

type Handlers struct {
	Members Service
	log     logger.Logger
}

func New(members Service, log logger.Logger) *Handlers {
	return &Handlers{
		Members: members,
		log:     log,
	}
}
