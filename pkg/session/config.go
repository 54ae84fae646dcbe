package session

import (
	"net/http"
	"time"
)

type Config struct {
	Secret     string        `env:"SESSION_SECRET,required"`                          // Secret derives the cookie encryption key, at least 32 characters.
	CookieName string        `env:"SESSION_COOKIE_NAME" envDefault:"campkit_session"` // CookieName is the name of the session cookie.
	TTL        time.Duration `env:"SESSION_TTL" envDefault:"12h"`                     // TTL bounds the lifetime of a session.
	Domain     string        `env:"SESSION_DOMAIN"`                                   // Domain of the cookie, empty for host-only.
	Secure     bool          `env:"SESSION_SECURE" envDefault:"true"`                 // Secure restricts the cookie to HTTPS.
	SameSite   http.SameSite `env:"SESSION_SAME_SITE" envDefault:"2"`                 // 2 = SameSiteLaxMode
}
