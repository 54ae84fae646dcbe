package httpserver

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/dmitrymomot/campkit/pkg/logger"
)

// Check is a named readiness dependency, such as the backend API or Redis.
type Check struct {
	Name string
	Fn   func(context.Context) error
}

// HealthStatus is the JSON body written by HealthCheckHandler.
type HealthStatus struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}

// DefaultCheckTimeout bounds every readiness check.
const DefaultCheckTimeout = 2 * time.Second

// HealthCheckHandler returns a handler usable as liveness and readiness probe.
// Without checks it reports {"status":"alive"}. Otherwise every check runs
// with the request context and DefaultCheckTimeout; the response is 200
// "ready" when all pass and 503 "not_ready" naming the failures otherwise.
func HealthCheckHandler(log *slog.Logger, checks ...Check) http.HandlerFunc {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return func(w http.ResponseWriter, r *http.Request) {
		status := HealthStatus{Status: "alive"}
		code := http.StatusOK

		if len(checks) > 0 {
			status.Status = "ready"
			status.Checks = make(map[string]string, len(checks))
			for _, c := range checks {
				ctx, cancel := context.WithTimeout(r.Context(), DefaultCheckTimeout)
				err := c.Fn(ctx)
				cancel()
				if err != nil {
					log.ErrorContext(r.Context(), "readiness check failed",
						slog.String("check", c.Name),
						logger.Error(err),
					)
					status.Checks[c.Name] = "fail"
					status.Status = "not_ready"
					code = http.StatusServiceUnavailable
					continue
				}
				status.Checks[c.Name] = "ok"
			}
		}

		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.Header().Set("Cache-Control", "no-store")
		w.WriteHeader(code)
		_ = json.NewEncoder(w).Encode(status)
	}
}
