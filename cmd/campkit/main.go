package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/dmitrymomot/campkit/pkg/clientip"
	"github.com/dmitrymomot/campkit/pkg/config"
	"github.com/dmitrymomot/campkit/pkg/environment"
	"github.com/dmitrymomot/campkit/pkg/httpserver"
	"github.com/dmitrymomot/campkit/pkg/logger"
	"github.com/dmitrymomot/campkit/pkg/requestid"
)

func main() {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		slog.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}

	env := environment.Parse(cfg.AppEnv)
	log := logger.New(
		logger.WithEnvironment(env, cfg.AppName),
		logger.WithLevelName(cfg.LogLevel),
		logger.WithContextExtractors(
			requestid.LoggerExtractor(),
			clientip.LoggerExtractor(),
			environment.LoggerExtractor(),
		),
	)
	logger.SetAsDefault(log)

	if err := run(context.Background(), cfg, env, log); err != nil {
		log.Error("server stopped with error", slog.Any("error", err))
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg Config, env environment.Environment, log *slog.Logger) error {
	a, err := newApp(ctx, cfg, env, log)
	if err != nil {
		return err
	}

	server := httpserver.NewFromConfig(cfg.HTTP,
		httpserver.WithLogger(log),
		httpserver.WithStopHook(a.Close),
	)
	return server.Run(ctx, a.handler)
}
