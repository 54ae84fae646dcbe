package auth

import (
	"net/http"
	"slices"

	"github.com/dmitrymomot/campkit/handler"
	"github.com/dmitrymomot/campkit/pkg/campapi"
	"github.com/dmitrymomot/campkit/pkg/session"
)

// BackendToken forwards the session token, when present, to backend calls
// made while serving the request. Install it after session.Middleware.
func BackendToken(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s, ok := session.FromContext(r.Context()); ok {
			r = r.WithContext(campapi.WithToken(r.Context(), s.Token))
		}
		next.ServeHTTP(w, r)
	})
}

// RequireRole rejects requests without a session (401) or whose role is not
// listed (403). Admins are always allowed. Errors go through errorHandler.
func RequireRole(errorHandler handler.ErrorHandler, roles ...campapi.Role) func(http.Handler) http.Handler {
	if errorHandler == nil {
		errorHandler = handler.DefaultErrorHandler
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			s, ok := session.FromContext(r.Context())
			if !ok {
				errorHandler(handler.NewContext(w, r), handler.ErrUnauthorized)
				return
			}
			role := campapi.Role(s.Role)
			if role != campapi.RoleAdmin && !slices.Contains(roles, role) {
				errorHandler(handler.NewContext(w, r), handler.ErrForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
