package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	ErrNotFound  = errors.New("record not found")
	ErrConflict  = errors.New("conflict")
	ErrForbidden = errors.New("operation not permitted")
)

// ValidationError collects per-field violations for one operation input.
// Malformed input always fails fast with one of these; malformed rows already
// in storage are skipped on load instead.
type ValidationError struct {
	Violations map[string]string
}

func NewValidationError(field, issue string) *ValidationError {
	return &ValidationError{Violations: map[string]string{field: issue}}
}

func (e *ValidationError) Error() string {
	fields := make([]string, 0, len(e.Violations))
	for field := range e.Violations {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, fmt.Sprintf("%s %s", field, e.Violations[field]))
	}

	return strings.Join(parts, "; ")
}
