// Package httpserver runs an http.Handler with configured timeouts and
// graceful shutdown on context cancellation or SIGINT/SIGTERM.
//
//	srv := httpserver.New(cfg, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, router); err != nil {
//		log.Error("server stopped", logger.Error(err))
//	}
//
// HealthHandler serves liveness and readiness probes.
package httpserver
