package session

import (
	"crypto/cipher"
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"time"
)

const minSecretLength = 32

// Manager stores sessions in an AES-GCM encrypted cookie. Nothing is kept
// server-side, so any instance sharing the secret can read the cookie.
type Manager struct {
	cfg  Config
	aead cipher.AEAD
	now  func() time.Time
}

// Option configures a Manager.
type Option func(*Manager)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(m *Manager) {
		if now != nil {
			m.now = now
		}
	}
}

// NewManager derives the cookie key from cfg.Secret with HKDF-SHA256.
func NewManager(cfg Config, opts ...Option) (*Manager, error) {
	if len(cfg.Secret) < minSecretLength {
		return nil, ErrSecretTooShort
	}
	if cfg.CookieName == "" {
		cfg.CookieName = "campkit_session"
	}
	if cfg.TTL <= 0 {
		cfg.TTL = 12 * time.Hour
	}
	if cfg.SameSite == 0 {
		cfg.SameSite = http.SameSiteLaxMode
	}

	key, err := deriveKey(cfg.Secret)
	if err != nil {
		return nil, err
	}
	aead, err := newAEAD(key)
	if err != nil {
		return nil, errors.Join(ErrKeyDerivationFailed, err)
	}

	m := &Manager{cfg: cfg, aead: aead, now: time.Now}
	for _, opt := range opts {
		opt(m)
	}
	return m, nil
}

// Save writes s to the response. A zero ExpiresAt is set to now + TTL and
// never extends past it.
func (m *Manager) Save(w http.ResponseWriter, s Session) (Session, error) {
	limit := m.now().Add(m.cfg.TTL)
	if s.ExpiresAt.IsZero() || s.ExpiresAt.After(limit) {
		s.ExpiresAt = limit
	}

	payload, err := json.Marshal(s)
	if err != nil {
		return Session{}, errors.Join(ErrEncryptionFailed, err)
	}
	sealed, err := seal(m.aead, payload, []byte(m.cfg.CookieName))
	if err != nil {
		return Session{}, err
	}

	http.SetCookie(w, m.cookie(base64.RawURLEncoding.EncodeToString(sealed), s.ExpiresAt))
	return s, nil
}

// Load reads and decrypts the session cookie.
func (m *Manager) Load(r *http.Request) (Session, error) {
	c, err := r.Cookie(m.cfg.CookieName)
	if err != nil || c.Value == "" {
		return Session{}, ErrNoSession
	}

	data, err := base64.RawURLEncoding.DecodeString(c.Value)
	if err != nil {
		return Session{}, errors.Join(ErrInvalidSession, err)
	}
	payload, err := open(m.aead, data, []byte(m.cfg.CookieName))
	if err != nil {
		return Session{}, err
	}

	var s Session
	if err := json.Unmarshal(payload, &s); err != nil {
		return Session{}, errors.Join(ErrInvalidSession, err)
	}
	if s.Token == "" {
		return Session{}, ErrInvalidSession
	}
	if s.Expired(m.now()) {
		return Session{}, ErrExpired
	}
	return s, nil
}

// Clear expires the session cookie.
func (m *Manager) Clear(w http.ResponseWriter) {
	c := m.cookie("", time.Unix(0, 0))
	c.MaxAge = -1
	http.SetCookie(w, c)
}

func (m *Manager) cookie(value string, expires time.Time) *http.Cookie {
	return &http.Cookie{
		Name:     m.cfg.CookieName,
		Value:    value,
		Path:     "/",
		Domain:   m.cfg.Domain,
		Expires:  expires,
		Secure:   m.cfg.Secure,
		HttpOnly: true,
		SameSite: m.cfg.SameSite,
	}
}
