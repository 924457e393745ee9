package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/minhdq/portfolio-tracker/internal/api/response"
)

type contextKey string

// userIDKey carries the authenticated user ID on the request context.
const userIDKey contextKey = "userID"

// TokenVerifier resolves a bearer token into a user ID.
type TokenVerifier interface {
	VerifyToken(token string) (string, error)
}

// Auth returns a middleware that requires a valid bearer token on every
// request and places the resolved user ID on the request context. All
// record-store routes sit behind it; the engines themselves never see
// authentication.
func Auth(verifier TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				response.RespondError(w, http.StatusUnauthorized, "Unauthorized", "Missing auth token")
				return
			}

			token := strings.TrimPrefix(header, "Bearer ")
			if token == header || token == "" {
				response.RespondError(w, http.StatusUnauthorized, "Unauthorized", "Malformed Authorization header")
				return
			}

			userID, err := verifier.VerifyToken(token)
			if err != nil {
				response.RespondError(w, http.StatusUnauthorized, "Unauthorized", "Invalid or expired auth token")
				return
			}

			ctx := context.WithValue(r.Context(), userIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserID returns the authenticated user ID from the request context.
// The boolean is false when the request did not pass through Auth.
func UserID(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(userIDKey).(string)
	return userID, ok
}

// WithUserID returns a context carrying the given user ID, as if the
// request had passed through Auth. Used to exercise handlers directly.
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}
