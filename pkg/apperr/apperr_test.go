package apperr_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/shashiranjanraj/vyapar/pkg/apperr"
	"github.com/stretchr/testify/assert"
)

func TestStatusMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"not found", apperr.ErrNotFound, http.StatusNotFound},
		{"wrapped not found", apperr.Storage("find product", apperr.ErrNotFound), http.StatusNotFound},
		{"invalid token", apperr.ErrInvalidToken, http.StatusUnauthorized},
		{"duplicate email", apperr.ErrDuplicateEmail, http.StatusBadRequest},
		{"invalid credentials", apperr.ErrInvalidCredentials, http.StatusBadRequest},
		{"validation", apperr.Validation(map[string]string{"email": "required"}), http.StatusBadRequest},
		{"unknown", errors.New("boom"), http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, apperr.Status(tt.err))
		})
	}
}

func TestValidationErrorMessage(t *testing.T) {
	err := apperr.Validation(map[string]string{
		"email":    "The email field is required.",
		"password": "The password field is required.",
	})

	// Messages are sorted so the output is deterministic.
	assert.Equal(t,
		"The email field is required.; The password field is required.",
		err.Error(),
	)

	var verr *apperr.ValidationError
	assert.True(t, errors.As(err, &verr))
	assert.Len(t, verr.Fields, 2)
}

func TestStorageWrapsCause(t *testing.T) {
	cause := errors.New("connection reset")
	err := apperr.Storage("create user", cause)

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "create user")
}
