package auth_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/campkit/handler"
	"github.com/dmitrymomot/campkit/modules/auth"
	"github.com/dmitrymomot/campkit/pkg/campapi"
	"github.com/dmitrymomot/campkit/pkg/clientip"
	"github.com/dmitrymomot/campkit/pkg/ratelimiter"
	"github.com/dmitrymomot/campkit/pkg/session"
)

type fakeBackend struct{}

func (fakeBackend) Login(_ context.Context, creds campapi.Credentials) (campapi.Session, error) {
	if creds.Password != "secret" {
		return campapi.Session{}, campapi.ErrUnauthorized
	}
	return campapi.Session{
		Token:     "tok-" + creds.Username,
		ExpiresAt: time.Now().Add(time.Hour),
		User:      campapi.User{ID: 7, Name: "Awa", Role: campapi.RoleTreasurer},
	}, nil
}

func newRouter(t *testing.T) (http.Handler, *session.Manager) {
	t.Helper()
	sessions, err := session.NewManager(session.Config{Secret: strings.Repeat("k", 32)})
	require.NoError(t, err)

	r := chi.NewRouter()
	r.Use(session.Middleware(sessions), auth.BackendToken)
	r.Mount("/auth", auth.NewModule(fakeBackend{}, sessions, handler.DefaultErrorHandler, nil).Handle())
	r.With(auth.RequireRole(nil, campapi.RoleTreasurer)).Get("/treasury", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(campapi.TokenFromContext(r.Context())))
	})
	r.With(auth.RequireRole(nil)).Get("/admin", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	return r, sessions
}

func login(t *testing.T, h http.Handler, password string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(`{"username":" awa ","password":"`+password+`"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func withCookies(req *http.Request, rec *httptest.ResponseRecorder) *http.Request {
	for _, c := range rec.Result().Cookies() {
		req.AddCookie(c)
	}
	return req
}

func TestModule_Login(t *testing.T) {
	t.Parallel()

	t.Run("sets the session cookie", func(t *testing.T) {
		h, _ := newRouter(t)
		rec := login(t, h, "secret")
		require.Equal(t, http.StatusOK, rec.Code)

		var body struct {
			Data auth.Me `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, campapi.RoleTreasurer, body.Data.Role)
		assert.NotEmpty(t, rec.Result().Cookies())

		me := httptest.NewRecorder()
		h.ServeHTTP(me, withCookies(httptest.NewRequest(http.MethodGet, "/auth/me", nil), rec))
		assert.Equal(t, http.StatusOK, me.Code)
		assert.Contains(t, me.Body.String(), `"name":"Awa"`)
	})

	t.Run("wrong password", func(t *testing.T) {
		h, _ := newRouter(t)
		rec := login(t, h, "nope")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "errors.invalid_credentials")
		assert.Empty(t, rec.Result().Cookies())
	})

	t.Run("missing fields", func(t *testing.T) {
		h, _ := newRouter(t)
		req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader("username=awa"))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})
}

func TestModule_Logout(t *testing.T) {
	t.Parallel()
	h, _ := newRouter(t)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, withCookies(httptest.NewRequest(http.MethodPost, "/auth/logout", nil), login(t, h, "secret")))
	assert.Equal(t, http.StatusNoContent, rec.Code)

	cookies := rec.Result().Cookies()
	require.NotEmpty(t, cookies)
	assert.Negative(t, cookies[0].MaxAge)
}

func TestRequireRole(t *testing.T) {
	t.Parallel()
	h, _ := newRouter(t)
	signedIn := login(t, h, "secret")

	t.Run("anonymous", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/treasury", nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("allowed role receives the backend token", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, withCookies(httptest.NewRequest(http.MethodGet, "/treasury", nil), signedIn))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "tok-awa", rec.Body.String())
	})

	t.Run("other role", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, withCookies(httptest.NewRequest(http.MethodGet, "/admin", nil), signedIn))
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}

func TestModule_LoginThrottling(t *testing.T) {
	t.Parallel()

	sessions, err := session.NewManager(session.Config{Secret: strings.Repeat("k", 32)})
	require.NoError(t, err)
	store := ratelimiter.NewMemoryStore(ratelimiter.WithCleanupInterval(0))
	t.Cleanup(store.Close)
	limiter, err := ratelimiter.NewBucket(store, ratelimiter.Config{Capacity: 2, RefillRate: 1, RefillInterval: time.Hour})
	require.NoError(t, err)

	r := chi.NewRouter()
	r.Use(clientip.Middleware)
	r.Mount("/auth", auth.NewModule(fakeBackend{}, sessions, handler.DefaultErrorHandler, nil,
		auth.WithLoginLimiter(limiter),
	).Handle())

	t.Run("successful sign-in resets the counter", func(t *testing.T) {
		assert.Equal(t, http.StatusUnauthorized, login(t, r, "nope").Code)
		assert.Equal(t, http.StatusOK, login(t, r, "secret").Code)
		assert.Equal(t, http.StatusUnauthorized, login(t, r, "nope").Code)
		assert.Equal(t, http.StatusUnauthorized, login(t, r, "nope").Code)
	})

	t.Run("blocks once the attempts are spent", func(t *testing.T) {
		rec := login(t, r, "secret")
		assert.Equal(t, http.StatusTooManyRequests, rec.Code)
		assert.NotEmpty(t, rec.Header().Get("Retry-After"))
		assert.Contains(t, rec.Body.String(), "errors.too_many_attempts")
	})
}
