// Package logger builds context-aware *slog.Logger instances.
//
// New takes functional options for format (text or json), level, output,
// static attributes and ContextExtractor callbacks. Extractors run on every
// record, which is how request-scoped values such as the request id or the
// environment end up in the log line without being passed around.
//
//	log := logger.New(
//	    logger.WithEnvironment(environment.Production, "uigen"),
//	    logger.WithContextExtractors(environment.LoggerExtractor()),
//	)
//	log.InfoContext(ctx, "session created", logger.UserID(id))
//
// Attribute helpers in attr.go keep key names consistent across packages.
package logger
