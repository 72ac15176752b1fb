package main

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dmitrymomot/uigen/modules/account"
	"github.com/dmitrymomot/uigen/pkg/environment"
	"github.com/dmitrymomot/uigen/pkg/httpserver"
	"github.com/dmitrymomot/uigen/pkg/logger"
	"github.com/dmitrymomot/uigen/pkg/session"
)

type routerDeps struct {
	env         environment.Environment
	logger      *slog.Logger
	sessions    *session.Manager
	account     *account.Service
	gatherer    prometheus.Gatherer
	metricsPath string
	checks      []httpserver.Check
}

func newRouter(d routerDeps) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.RequestID,
		middleware.RealIP,
		middleware.Recoverer,
		environment.Middleware(d.env),
		session.Middleware(d.sessions),
	)

	r.Get("/health", httpserver.HealthHandler(d.logger))
	r.Get("/ready", httpserver.HealthHandler(d.logger, d.checks...))
	r.Method(http.MethodGet, d.metricsPath, promhttp.HandlerFor(d.gatherer, promhttp.HandlerOpts{}))
	r.Mount("/api/auth", d.account.Router())

	return r
}

func requestIDExtractor(ctx context.Context) (slog.Attr, bool) {
	if id := middleware.GetReqID(ctx); id != "" {
		return logger.RequestID(id), true
	}
	return slog.Attr{}, false
}
