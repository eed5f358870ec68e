package security

import (
	"errors"
	"regexp"
	"slices"
	"strings"
)

const (
	// MaxSortFieldLength defines the maximum allowed length for a sort field name
	MaxSortFieldLength = 64
)

var (
	// ErrSortFieldTooLong is returned when a sort field exceeds MaxSortFieldLength.
	ErrSortFieldTooLong = errors.New("sort field too long")
	// ErrSortFieldInvalid is returned when a sort field is not a plain column identifier.
	ErrSortFieldInvalid = errors.New("sort field contains invalid characters")
	// ErrSortFieldNotAllowed is returned when a sort field is not in the whitelist.
	ErrSortFieldNotAllowed = errors.New("sort field is not allowed")
)

// identifierPattern matches a bare lower-case SQL column identifier.
var identifierPattern = regexp.MustCompile(`^[a-z_][a-z0-9_]*$`)

// ValidateSortField normalizes a user supplied sort field and checks it against
// the allowed column names. An empty field is valid and means "no ordering".
// The returned name is safe to hand to the query builder as a column.
func ValidateSortField(field string, allowed []string) (string, error) {
	field = strings.ToLower(strings.TrimSpace(field))
	if field == "" {
		return "", nil
	}

	if len(field) > MaxSortFieldLength {
		return "", ErrSortFieldTooLong
	}

	if !identifierPattern.MatchString(field) {
		return "", ErrSortFieldInvalid
	}

	if !slices.Contains(allowed, field) {
		return "", ErrSortFieldNotAllowed
	}

	return field, nil
}
