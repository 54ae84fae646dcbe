package campapi

import "time"

// Config describes the backend REST API.
type Config struct {
	BaseURL   string        `env:"API_BASE_URL,required"`                   // BaseURL is the API root, e.g. "https://api.example.org/v1".
	Timeout   time.Duration `env:"API_TIMEOUT" envDefault:"15s"`            // Timeout bounds every request.
	UserAgent string        `env:"API_USER_AGENT" envDefault:"campkit/1.0"` // UserAgent is sent with every request.
}
