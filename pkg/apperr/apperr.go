// Package apperr defines the sentinel errors shared by the service and
// repository layers. Callers should use errors.Is to match these values;
// Status maps any of them to the HTTP status code the API contract expects.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"
)

var (
	// Repository-level errors.
	ErrNotFound = errors.New("not found")

	// Credential errors.
	ErrDuplicateEmail     = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")

	// Token errors (invalid, malformed, or expired).
	ErrInvalidToken = errors.New("invalid token")
)

// ValidationError carries field-level validation failures from the bind layer.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}

	msgs := make([]string, 0, len(e.Fields))
	for _, msg := range e.Fields {
		msgs = append(msgs, msg)
	}
	sort.Strings(msgs)
	return strings.Join(msgs, "; ")
}

// Validation wraps a field→message map into a *ValidationError.
func Validation(fields map[string]string) error {
	return &ValidationError{Fields: fields}
}

// Storage wraps an underlying persistence failure so the cause can still
// be unwrapped with errors.Is/As.
func Storage(op string, err error) error {
	return fmt.Errorf("storage: %s: %w", op, err)
}

// Status returns the HTTP status code for a domain error. Anything outside
// the taxonomy maps to 400, matching the inherited API contract where every
// non-lookup failure is a Bad Request.
func Status(err error) int {
	var verr *ValidationError

	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrInvalidToken):
		return http.StatusUnauthorized
	case errors.Is(err, ErrDuplicateEmail),
		errors.Is(err, ErrInvalidCredentials),
		errors.As(err, &verr):
		return http.StatusBadRequest
	default:
		return http.StatusBadRequest
	}
}
