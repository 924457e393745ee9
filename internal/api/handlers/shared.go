package handlers

import (
	"net/http"

	"github.com/minhdq/portfolio-tracker/internal/api/middleware"
	"github.com/minhdq/portfolio-tracker/internal/api/response"
)

// requireUserID pulls the authenticated user ID off the request
// context. The auth middleware guarantees it for all data routes; a
// missing ID means a route was wired outside the middleware, which is
// answered with a 401 rather than a panic.
func requireUserID(w http.ResponseWriter, r *http.Request) (string, bool) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		response.RespondError(w, http.StatusUnauthorized, "Unauthorized", "Missing authenticated user")
		return "", false
	}
	return userID, true
}
