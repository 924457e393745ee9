package testutil

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"

	"github.com/go-chi/chi/v5"

	"github.com/minhdq/portfolio-tracker/internal/api/middleware"
)

// NewAuthedRequest creates an HTTP request whose context already carries
// the given user ID, as if it had passed the auth middleware.
//
// Example:
//
//	req := testutil.NewAuthedRequest(http.MethodGet, "/api/portfolio/summary", userID, nil)
func NewAuthedRequest(method, path, userID string, body io.Reader) *http.Request {
	req := httptest.NewRequest(method, path, body)
	return req.WithContext(middleware.WithUserID(req.Context(), userID))
}

// WithURLParams attaches chi URL parameters to a request.
// This helper simplifies testing chi handlers that use chi.URLParam() to extract path parameters.
//
// Example:
//
//	req := testutil.NewAuthedRequest(http.MethodGet, "/api/portfolio/symbol/VNM", userID, nil)
//	req = testutil.WithURLParams(req, map[string]string{"symbol": "VNM"})
func WithURLParams(req *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for key, value := range params {
		rctx.URLParams.Add(key, value)
	}
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

// WithQueryParams attaches query string parameters to a request.
//
// Example:
//
//	req := testutil.NewAuthedRequest(http.MethodGet, "/api/portfolio/summary", userID, nil)
//	req = testutil.WithQueryParams(req, map[string]string{"year": "2024"})
func WithQueryParams(req *http.Request, queryParams map[string]string) *http.Request {
	q := req.URL.Query()
	for key, value := range queryParams {
		q.Add(key, value)
	}
	req.URL.RawQuery = q.Encode()
	return req
}
