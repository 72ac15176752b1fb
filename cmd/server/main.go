package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/dmitrymomot/uigen/modules/account"
	"github.com/dmitrymomot/uigen/pkg/auth"
	"github.com/dmitrymomot/uigen/pkg/config"
	"github.com/dmitrymomot/uigen/pkg/cookie"
	"github.com/dmitrymomot/uigen/pkg/environment"
	"github.com/dmitrymomot/uigen/pkg/httpserver"
	"github.com/dmitrymomot/uigen/pkg/logger"
	"github.com/dmitrymomot/uigen/pkg/pg"
	"github.com/dmitrymomot/uigen/pkg/session"
)

func run(ctx context.Context) error {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return fmt.Errorf("config initialization failed: %w", err)
	}
	env := cfg.Environment()

	log := logger.New(
		logger.WithOutput(os.Stdout),
		logger.WithEnvironment(env, cfg.AppName),
		logger.WithContextExtractors(requestIDExtractor, environment.LoggerExtractor()),
	)

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	cookies := cookie.NewFromConfig(cfg.Cookie, cookie.WithSecure(env.IsProduction()))

	sessions, err := session.New(cfg.Session,
		session.WithLogger(log),
		session.WithMetrics(session.NewMetrics(reg)),
	)
	if err != nil {
		return fmt.Errorf("session manager initialization failed: %w", err)
	}

	storage, checks, closeStorage, err := openStorage(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer closeStorage()

	passwords, err := auth.NewPasswordService(storage,
		auth.WithPasswordLogger(log),
		auth.WithBcryptCost(cfg.BcryptCost),
	)
	if err != nil {
		return fmt.Errorf("password service initialization failed: %w", err)
	}

	router := newRouter(routerDeps{
		env:         env,
		logger:      log,
		sessions:    sessions,
		account:     account.NewService(passwords, sessions, cookies, account.WithLogger(log)),
		gatherer:    reg,
		metricsPath: cfg.MetricsPath,
		checks:      checks,
	})

	srv := httpserver.New(cfg.HTTP, httpserver.WithLogger(log))
	if err := srv.Run(ctx, router); err != nil {
		return err
	}

	log.Info("graceful shutdown complete")
	return nil
}

// openStorage connects to PostgreSQL when DATABASE_URL is set and falls
// back to in-memory users otherwise.
func openStorage(ctx context.Context, cfg Config, log *slog.Logger) (auth.Storage, []httpserver.Check, func(), error) {
	if !cfg.DB.Enabled() {
		log.Warn("DATABASE_URL is not set, users are kept in memory")
		return auth.NewMemoryStorage(), nil, func() {}, nil
	}

	pool, err := pg.Connect(ctx, cfg.DB)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("database connection failed: %w", err)
	}
	if err := pg.Migrate(ctx, pool, cfg.DB, auth.Migrations, "migrations", log); err != nil {
		pool.Close()
		return nil, nil, nil, fmt.Errorf("migration failed: %w", err)
	}
	log.Info("database ready")

	checks := []httpserver.Check{{Name: "postgres", Fn: pg.Healthcheck(pool)}}
	return auth.NewPostgresStorage(pool), checks, pool.Close, nil
}

func main() {
	if err := run(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
