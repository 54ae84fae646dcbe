// Package httpserver runs an http.Handler with configurable timeouts,
// structured logging and graceful shutdown.
//
//	srv := httpserver.NewFromConfig(cfg.HTTP,
//		httpserver.WithLogger(log),
//		httpserver.WithStopHook(func() { notifier.Close() }),
//	)
//	if err := srv.Run(ctx, router); err != nil {
//		log.Error("server failed", logger.Error(err))
//	}
//
// Run blocks until ctx is cancelled or SIGINT/SIGTERM arrives, then drains
// in-flight requests within the shutdown timeout. Stop hooks run while
// draining so that long-lived streams can be told to finish.
//
// HealthCheckHandler serves liveness and readiness probes with named checks.
package httpserver
