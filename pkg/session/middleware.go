package session

import (
	"errors"
	"net/http"
)

// Middleware loads the session cookie, if any, into the request context.
// Expired or tampered cookies are cleared; requests continue anonymously.
func Middleware(m *Manager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			s, err := m.Load(r)
			switch {
			case err == nil:
				r = r.WithContext(WithContext(r.Context(), s))
			case !errors.Is(err, ErrNoSession):
				m.Clear(w)
			}
			next.ServeHTTP(w, r)
		})
	}
}

// Require rejects requests without a session with 401, or calls onMissing
// when given.
func Require(onMissing http.Handler) func(http.Handler) http.Handler {
	if onMissing == nil {
		onMissing = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		})
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := FromContext(r.Context()); !ok {
				onMissing.ServeHTTP(w, r)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
