package common

import (
	"fmt"
	"net/mail"
	"strings"
	"time"
	"unicode/utf8"

	membershipsdomain "gym-membership-go/internal/domain/memberships"

	"github.com/google/uuid"
)

const (
	maxNameLength  = 100
	maxEmailLength = 255
)

// ParseID validates a uuid and returns it in canonical lower-case form.
func ParseID(value, field string) (string, error) {
	parsed, err := uuid.Parse(strings.TrimSpace(value))
	if err != nil {
		return "", fmt.Errorf("invalid %s", field)
	}
	return parsed.String(), nil
}

// ParseDate accepts a calendar date (2006-01-02) or an RFC 3339 timestamp
// and returns the calendar day in UTC.
func ParseDate(value, field string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, fmt.Errorf("%s is required", field)
	}
	if parsed, err := time.Parse(time.DateOnly, value); err == nil {
		return parsed, nil
	}
	parsed, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid %s", field)
	}
	return membershipsdomain.CalendarDate(parsed.UTC()), nil
}

func ValidateEmail(value string) error {
	value = strings.TrimSpace(value)
	if value == "" {
		return fmt.Errorf("email is required")
	}
	if len(value) > maxEmailLength {
		return fmt.Errorf("invalid email format")
	}
	addr, err := mail.ParseAddress(value)
	if err != nil || addr.Address != value || addr.Name != "" {
		return fmt.Errorf("invalid email format")
	}
	return nil
}

func ValidateName(value, field string) error {
	n := utf8.RuneCountInString(strings.TrimSpace(value))
	if n == 0 {
		return fmt.Errorf("%s is required", field)
	}
	if n > maxNameLength {
		return fmt.Errorf("%s must be at most %d characters", field, maxNameLength)
	}
	return nil
}
