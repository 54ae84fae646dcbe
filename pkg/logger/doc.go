// Package logger builds *slog.Logger values with functional options and a
// handler decorator that copies request-scoped values from the context into
// every record.
//
//	log := logger.New(
//		logger.WithEnvironment(environment.Parse(cfg.Env), cfg.AppName),
//		logger.WithLevelName(cfg.LogLevel),
//		logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//	logger.SetAsDefault(log)
//
//	log.InfoContext(ctx, "payment recorded",
//		logger.ParticipantCode(code),
//		logger.Version(v),
//	)
//
// Attribute helpers keep key names consistent across packages. Error and
// Errors return an empty attribute for nil errors, which slog drops, so they
// can be passed unconditionally.
package logger
