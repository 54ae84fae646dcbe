package session_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/campkit/pkg/session"
)

const secret = "0123456789abcdef0123456789abcdef"

type clock struct{ now time.Time }

func (c *clock) Now() time.Time { return c.now }

func newManager(t *testing.T, c *clock) *session.Manager {
	t.Helper()
	m, err := session.NewManager(session.Config{Secret: secret, TTL: time.Hour}, session.WithClock(c.Now))
	require.NoError(t, err)
	return m
}

func roundTrip(rec *httptest.ResponseRecorder) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range rec.Result().Cookies() {
		req.AddCookie(c)
	}
	return req
}

func TestNewManager(t *testing.T) {
	t.Parallel()
	_, err := session.NewManager(session.Config{Secret: "short"})
	assert.ErrorIs(t, err, session.ErrSecretTooShort)
}

func TestManager_SaveLoad(t *testing.T) {
	t.Parallel()
	c := &clock{now: time.Date(2025, 7, 1, 9, 0, 0, 0, time.UTC)}
	m := newManager(t, c)

	rec := httptest.NewRecorder()
	saved, err := m.Save(rec, session.Session{Token: "tok-1", UserID: 7, Name: "Awa", Role: "treasurer"})
	require.NoError(t, err)
	assert.Equal(t, c.now.Add(time.Hour), saved.ExpiresAt)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.True(t, cookies[0].HttpOnly)
	assert.False(t, cookies[0].Secure)
	assert.NotContains(t, cookies[0].Value, "tok-1")

	got, err := m.Load(roundTrip(rec))
	require.NoError(t, err)
	assert.Equal(t, "tok-1", got.Token)
	assert.Equal(t, 7, got.UserID)
	assert.Equal(t, "treasurer", got.Role)
}

func TestManager_Load(t *testing.T) {
	t.Parallel()

	t.Run("no cookie", func(t *testing.T) {
		m := newManager(t, &clock{now: time.Now()})
		_, err := m.Load(httptest.NewRequest(http.MethodGet, "/", nil))
		assert.ErrorIs(t, err, session.ErrNoSession)
	})

	t.Run("expired", func(t *testing.T) {
		c := &clock{now: time.Date(2025, 7, 1, 9, 0, 0, 0, time.UTC)}
		m := newManager(t, c)
		rec := httptest.NewRecorder()
		_, err := m.Save(rec, session.Session{Token: "tok"})
		require.NoError(t, err)

		c.now = c.now.Add(2 * time.Hour)
		_, err = m.Load(roundTrip(rec))
		assert.ErrorIs(t, err, session.ErrExpired)
	})

	t.Run("tampered", func(t *testing.T) {
		m := newManager(t, &clock{now: time.Now()})
		rec := httptest.NewRecorder()
		_, err := m.Save(rec, session.Session{Token: "tok"})
		require.NoError(t, err)

		cookie := rec.Result().Cookies()[0]
		value := []byte(cookie.Value)
		if value[len(value)-2] == 'A' {
			value[len(value)-2] = 'B'
		} else {
			value[len(value)-2] = 'A'
		}
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: cookie.Name, Value: string(value)})

		_, err = m.Load(req)
		assert.ErrorIs(t, err, session.ErrInvalidSession)
	})

	t.Run("other secret cannot read", func(t *testing.T) {
		m := newManager(t, &clock{now: time.Now()})
		rec := httptest.NewRecorder()
		_, err := m.Save(rec, session.Session{Token: "tok"})
		require.NoError(t, err)

		other, err := session.NewManager(session.Config{Secret: strings.Repeat("z", 32)})
		require.NoError(t, err)
		_, err = other.Load(roundTrip(rec))
		assert.ErrorIs(t, err, session.ErrInvalidSession)
	})
}

func TestMiddleware(t *testing.T) {
	t.Parallel()
	m := newManager(t, &clock{now: time.Now()})

	rec := httptest.NewRecorder()
	_, err := m.Save(rec, session.Session{Token: "tok", Name: "Moussa"})
	require.NoError(t, err)

	protected := session.Middleware(m)(session.Require(nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s, ok := session.FromContext(r.Context())
		require.True(t, ok)
		_, _ = w.Write([]byte(s.Name))
	})))

	t.Run("with session", func(t *testing.T) {
		out := httptest.NewRecorder()
		protected.ServeHTTP(out, roundTrip(rec))
		assert.Equal(t, http.StatusOK, out.Code)
		assert.Equal(t, "Moussa", out.Body.String())
	})

	t.Run("without session", func(t *testing.T) {
		out := httptest.NewRecorder()
		protected.ServeHTTP(out, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusUnauthorized, out.Code)
	})

	t.Run("garbage cookie is cleared", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: "campkit_session", Value: "!!!"})
		out := httptest.NewRecorder()
		protected.ServeHTTP(out, req)

		assert.Equal(t, http.StatusUnauthorized, out.Code)
		cleared := out.Result().Cookies()
		require.Len(t, cleared, 1)
		assert.Equal(t, -1, cleared[0].MaxAge)
	})

	t.Run("clear", func(t *testing.T) {
		out := httptest.NewRecorder()
		m.Clear(out)
		assert.Equal(t, "", out.Result().Cookies()[0].Value)
	})
}
