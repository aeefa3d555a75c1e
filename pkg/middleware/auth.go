package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/shashiranjanraj/vyapar/pkg/auth"
	"github.com/shashiranjanraj/vyapar/pkg/response"
)

// userIDKey is the unexported context key for the authenticated user ID.
type userIDKey struct{}

// UserID returns the authenticated user ID stored by Auth, or (0, false)
// when the request did not pass through it.
func UserID(ctx context.Context) (uint, bool) {
	id, ok := ctx.Value(userIDKey{}).(uint)
	return id, ok
}

// Auth verifies the Bearer token on every request it wraps and stores the
// acting user ID in the context. Requests without a valid token never reach
// the handler.
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		const prefix = "Bearer "

		header := r.Header.Get("Authorization")
		if !strings.HasPrefix(header, prefix) {
			response.Unauthorized(w, "missing bearer token")
			return
		}

		token := strings.TrimSpace(strings.TrimPrefix(header, prefix))
		if token == "" {
			response.Unauthorized(w, "missing bearer token")
			return
		}

		claims, err := auth.ValidateToken(token)
		if err != nil {
			response.Unauthorized(w, "invalid token")
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey{}, claims.UserID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
