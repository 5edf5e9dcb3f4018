// Package failure holds the named outcomes the membership engine reports to
// its callers. Every value carries a Kind so the transport layer can map it to
// a response category without string matching.
package failure

import "errors"

type Kind int

const (
	KindUnknown Kind = iota
	KindNotFound
	KindConflict
	KindForbidden
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	case KindForbidden:
		return "forbidden"
	default:
		return "unknown"
	}
}

// Error is a classified domain outcome. Subject names the missing entity for
// NotFound and the reason for Conflict/Forbidden.
type Error struct {
	Kind    Kind
	Subject string
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func newError(kind Kind, subject, message string) *Error {
	return &Error{Kind: kind, Subject: subject, Message: message}
}

var (
	ErrMemberNotFound           = newError(KindNotFound, "member", "member not found")
	ErrPlanNotFound             = newError(KindNotFound, "plan", "plan not found")
	ErrActiveMembershipNotFound = newError(KindNotFound, "activeMembership", "active membership not found")
	ErrActiveMembershipExists   = newError(KindConflict, "activeMembershipExists", "member already has an active membership")
	ErrEmailExists              = newError(KindConflict, "emailExists", "email already exists")
	ErrNoActiveMembership       = newError(KindForbidden, "noActiveMembership", "member does not have an active membership")
)

// KindOf reports the kind of the first classified error in err's chain.
func KindOf(err error) Kind {
	var fe *Error
	if errors.As(err, &fe) {
		return fe.Kind
	}
	return KindUnknown
}
