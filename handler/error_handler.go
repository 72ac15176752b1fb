package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/uigen/pkg/logger"
)

// DefaultErrorHandler writes err as a JSON envelope.
func DefaultErrorHandler(ctx Context, err error) {
	_ = JSONError(err).Render(ctx.ResponseWriter(), ctx.Request())
}

// LoggingErrorHandler is DefaultErrorHandler that also logs server errors.
func LoggingErrorHandler(log *slog.Logger) ErrorHandler {
	if log == nil {
		log = logger.Discard()
	}
	return func(ctx Context, err error) {
		var httpErr HTTPError
		if !errors.As(err, &httpErr) || httpErr.Code >= http.StatusInternalServerError {
			log.ErrorContext(ctx, "request failed",
				slog.String("method", ctx.Request().Method),
				slog.String("path", ctx.Request().URL.Path),
				logger.Error(err),
			)
		}
		DefaultErrorHandler(ctx, err)
	}
}
