// Package config loads application configuration from environment variables
// into typed structs.
//
// It wraps github.com/joho/godotenv for .env files and
// github.com/caarlos0/env/v11 for struct parsing, and caches each configuration
// type so it is parsed once per process:
//
//	type APIConfig struct {
//		BaseURL string        `env:"API_BASE_URL,required"`
//		Timeout time.Duration `env:"API_TIMEOUT" envDefault:"10s"`
//	}
//
//	if err := config.LoadEnv("./deploy/.env"); err != nil {
//		log.Fatal(err)
//	}
//	var api APIConfig
//	config.MustLoad(&api)
//
// Component packages (httpserver, campapi, redis, session, qrcode) each define
// their own Config struct; the binary aggregates them into one struct and
// loads it with a single call.
//
// # Error Handling
//
//   - ErrParsingConfig: env vars could not be parsed into the struct.
//   - ErrLoadingEnvFile: an explicitly requested .env file could not be read.
//   - ErrNilPointer: nil pointer passed to Load or MustLoad.
//
// A failed parse is not cached, so Load can be retried after fixing the
// environment. Tests use ResetCache or ForceReload.
package config
