package common

import (
	"errors"
	"net/http"
	"strings"
	"unicode"

	"gym-membership-go/internal/domain/failure"
	"gym-membership-go/pkg/logger"
)

// WriteFailure maps a service error to a response. Classified domain
// outcomes are logged as business errors, everything else as internal.
func WriteFailure(w http.ResponseWriter, log logger.Logger, op string, err error, args ...any) {
	var fe *failure.Error
	if !errors.As(err, &fe) {
		log.InternalError(op+" failed", err, args...)
		WriteInternal(w)
		return
	}

	status := StatusFor(fe.Kind)
	if status == http.StatusInternalServerError {
		log.InternalError(op+" failed", err, args...)
		WriteInternal(w)
		return
	}

	log.BusinessError(op+": "+fe.Message, err, args...)
	writeError(w, status, CodeFor(fe), fe.Message)
}

func StatusFor(kind failure.Kind) int {
	switch kind {
	case failure.KindNotFound:
		return http.StatusNotFound
	case failure.KindConflict:
		return http.StatusConflict
	case failure.KindForbidden:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

// CodeFor derives the machine readable code from the failure subject, e.g.
// activeMembership/not_found becomes active_membership_not_found.
func CodeFor(fe *failure.Error) string {
	code := snakeCase(fe.Subject)
	if fe.Kind == failure.KindNotFound {
		code += "_not_found"
	}
	return code
}

func snakeCase(value string) string {
	var b strings.Builder
	b.Grow(len(value) + 4)
	for i, r := range value {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('_')
			}
			r = unicode.ToLower(r)
		}
		b.WriteRune(r)
	}
	return b.String()
}
