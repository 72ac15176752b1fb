package main

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/dmitrymomot/uigen/modules/account"
	"github.com/dmitrymomot/uigen/pkg/auth"
	"github.com/dmitrymomot/uigen/pkg/config"
	"github.com/dmitrymomot/uigen/pkg/cookie"
	"github.com/dmitrymomot/uigen/pkg/environment"
	"github.com/dmitrymomot/uigen/pkg/logger"
	"github.com/dmitrymomot/uigen/pkg/session"
)

func TestConfigLoad(t *testing.T) {
	t.Run("development falls back without secret", func(t *testing.T) {
		t.Setenv("APP_ENV", "development")
		t.Setenv("JWT_SECRET", "")

		var cfg Config
		require.NoError(t, config.Load(&cfg))
		assert.False(t, cfg.Session.Production)
		assert.Equal(t, ":8080", cfg.HTTP.Addr)
		assert.Equal(t, "auth-token", cfg.Session.CookieName)
		assert.Equal(t, "/metrics", cfg.MetricsPath)
	})

	t.Run("production requires secret", func(t *testing.T) {
		t.Setenv("APP_ENV", "production")
		t.Setenv("JWT_SECRET", "")

		var cfg Config
		err := config.Load(&cfg)
		require.Error(t, err)
		assert.ErrorIs(t, err, session.ErrMissingSecret)
		assert.ErrorIs(t, err, config.ErrInvalidConfig)
	})

	t.Run("production with strong secret", func(t *testing.T) {
		t.Setenv("APP_ENV", "prod")
		t.Setenv("JWT_SECRET", strings.Repeat("s", 48))

		var cfg Config
		require.NoError(t, config.Load(&cfg))
		assert.True(t, cfg.Session.Production)
		assert.Equal(t, environment.Production, cfg.Environment())
	})
}

func TestRouter(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	sessions, err := session.New(session.Config{Secret: strings.Repeat("k", 32)},
		session.WithMetrics(session.NewMetrics(reg)))
	require.NoError(t, err)

	passwords, err := auth.NewPasswordService(auth.NewMemoryStorage(), auth.WithBcryptCost(bcrypt.MinCost))
	require.NoError(t, err)

	router := newRouter(routerDeps{
		env:         environment.Test,
		logger:      logger.Discard(),
		sessions:    sessions,
		account:     account.NewService(passwords, sessions, cookie.New()),
		gatherer:    reg,
		metricsPath: "/metrics",
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())

	req := httptest.NewRequest(http.MethodPost, "/api/auth/sign-up",
		strings.NewReader(`{"email":"metrics@example.com","password":"password123"}`))
	req.Header.Set("Content-Type", "application/json")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "uigen_session_created_total 1")
	assert.Contains(t, rec.Body.String(), `uigen_session_lookups_total{result="missing"}`)
}
