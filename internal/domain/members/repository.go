package members

import "context"

type Repository interface {
	CreateMember(ctx context.Context, member *Member) error
	// ListMembers orders newest first; an empty search disables filtering.
	ListMembers(ctx context.Context, search string) ([]Member, error)
	GetMemberByID(ctx context.Context, memberID string) (*Member, error)
}
