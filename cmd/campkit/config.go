package main

import (
	"time"

	"github.com/dmitrymomot/campkit/pkg/campapi"
	"github.com/dmitrymomot/campkit/pkg/httpserver"
	"github.com/dmitrymomot/campkit/pkg/qrcode"
	"github.com/dmitrymomot/campkit/pkg/ratelimiter"
	"github.com/dmitrymomot/campkit/pkg/redis"
	"github.com/dmitrymomot/campkit/pkg/session"
)

// Config is the whole application configuration, read from the environment
// and an optional .env file.
type Config struct {
	AppName         string        `env:"APP_NAME" envDefault:"campkit"`
	AppEnv          string        `env:"APP_ENV" envDefault:"development"`
	LogLevel        string        `env:"LOG_LEVEL"`
	DefaultLang     string        `env:"DEFAULT_LANG" envDefault:"fr"`
	PageSize        int           `env:"PAGE_SIZE" envDefault:"10"`
	CacheTTL        time.Duration `env:"CACHE_TTL" envDefault:"5m"`
	CacheSize       int           `env:"CACHE_SIZE" envDefault:"256"`
	DashboardMaxAge time.Duration `env:"DASHBOARD_MAX_AGE" envDefault:"1m"`

	HTTP    httpserver.Config
	API     campapi.Config
	Redis   redis.Config
	Session session.Config
	Badge   qrcode.Config
	Login   ratelimiter.Config
}
