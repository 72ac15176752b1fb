package account

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/uigen/pkg/auth"
	"github.com/dmitrymomot/uigen/pkg/cookie"
	"github.com/dmitrymomot/uigen/pkg/logger"
	"github.com/dmitrymomot/uigen/pkg/session"
)

// Authenticator registers and verifies credentials.
type Authenticator interface {
	Register(ctx context.Context, email, password string) (*auth.User, error)
	Authenticate(ctx context.Context, email, password string) (*auth.User, error)
}

// Service serves the account HTTP API.
type Service struct {
	auth     Authenticator
	sessions *session.Manager
	cookies  *cookie.Manager
	logger   *slog.Logger
}

type Option func(*Service)

func WithLogger(l *slog.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

func NewService(authn Authenticator, sessions *session.Manager, cookies *cookie.Manager, opts ...Option) *Service {
	s := &Service{
		auth:     authn,
		sessions: sessions,
		cookies:  cookies,
		logger:   logger.Discard(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With(logger.Component("account"))
	return s
}
