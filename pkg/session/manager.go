package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/dmitrymomot/uigen/pkg/cookie"
	"github.com/dmitrymomot/uigen/pkg/jwt"
	"github.com/dmitrymomot/uigen/pkg/logger"
)

// Manager issues, reads, verifies and destroys cookie-held session tokens.
// It keeps no per-session state; the cookie is the only durable form of a
// session. A Manager is safe for concurrent use.
type Manager struct {
	cfg     Config
	codec   TokenCodec
	now     func() time.Time
	logger  *slog.Logger
	metrics *Metrics
}

// Option configures a Manager.
type Option func(*Manager)

// WithCodec replaces the default JWT codec.
func WithCodec(codec TokenCodec) Option {
	return func(m *Manager) {
		if codec != nil {
			m.codec = codec
		}
	}
}

// WithLogger sets the logger. Defaults to a discarding logger.
func WithLogger(l *slog.Logger) Option {
	return func(m *Manager) {
		if l != nil {
			m.logger = l
		}
	}
}

// WithClock overrides the time source used for issuance and expiry checks.
func WithClock(now func() time.Time) Option {
	return func(m *Manager) {
		if now != nil {
			m.now = now
		}
	}
}

// WithMetrics records session operations in the given collectors.
func WithMetrics(metrics *Metrics) Option {
	return func(m *Manager) { m.metrics = metrics }
}

// New validates cfg and builds a Manager. Unless WithCodec is given, tokens
// are HS256 JWTs signed with cfg.Secret, or with DevelopmentSecret when the
// secret is empty outside production; that fallback is logged as a warning.
func New(cfg Config, opts ...Option) (*Manager, error) {
	cfg = cfg.withDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	m := &Manager{
		cfg:    cfg,
		now:    time.Now,
		logger: logger.Discard(),
	}
	for _, opt := range opts {
		opt(m)
	}
	m.logger = m.logger.With(logger.Component("session"))

	if m.codec == nil {
		secret, fallback := cfg.SigningSecret()
		if fallback {
			m.logger.Warn("JWT_SECRET is not set, signing sessions with the insecure development secret")
		}

		svc, err := jwt.NewFromString(secret, jwt.WithTimeFunc(m.now))
		if err != nil {
			return nil, fmt.Errorf("session: create token service: %w", err)
		}
		m.codec = NewJWTCodec(svc)
	}

	return m, nil
}

// CookieName returns the name of the session cookie.
func (m *Manager) CookieName() string {
	return m.cfg.CookieName
}

// Create issues a session for the user and writes it to the store.
// Signing and cookie store errors are returned unchanged.
func (m *Manager) Create(ctx context.Context, store CookieStore, userID, email string) error {
	_, err := m.Issue(ctx, store, userID, email)
	return err
}

// Issue behaves like Create and also returns the payload it wrote.
func (m *Manager) Issue(ctx context.Context, store CookieStore, userID, email string) (*Payload, error) {
	if strings.TrimSpace(userID) == "" || strings.TrimSpace(email) == "" {
		return nil, ErrInvalidIdentity
	}

	now := m.now()
	p := Payload{
		UserID:    userID,
		Email:     email,
		ExpiresAt: now.Add(m.cfg.TTL),
	}

	token, err := m.codec.Encode(p, now)
	if err != nil {
		m.logger.ErrorContext(ctx, "failed to sign session token", logger.UserID(userID), logger.Error(err))
		return nil, err
	}

	if err := store.Set(m.cfg.CookieName, token, m.cookieOptions(p.ExpiresAt)); err != nil {
		m.logger.ErrorContext(ctx, "failed to write session cookie", logger.UserID(userID), logger.Error(err))
		return nil, err
	}

	m.metrics.created()
	m.logger.DebugContext(ctx, "session created", logger.UserID(userID))
	return &p, nil
}

// Get returns the session carried by the store's cookie.
// A missing, empty, tampered or expired token yields (nil, nil); only
// cookie store failures are returned as errors.
func (m *Manager) Get(ctx context.Context, store CookieStore) (*Payload, error) {
	var res result

	token, err := store.Get(m.cfg.CookieName)
	switch {
	case errors.Is(err, cookie.ErrCookieNotFound):
		res = missing()
	case err != nil:
		res = failed(err)
	default:
		res = m.resolve(token)
	}

	m.observe(ctx, res)
	return res.unwrap()
}

// Verify returns the session carried by an inbound request, or nil.
// It never fails: unreadable cookies are treated like missing ones.
func (m *Manager) Verify(ctx context.Context, r CookieReader) *Payload {
	var res result

	switch c, err := readCookie(r, m.cfg.CookieName); {
	case errors.Is(err, http.ErrNoCookie):
		res = missing()
	case err != nil:
		res = invalid("unreadable_cookie", err)
	default:
		res = m.resolve(c.Value)
	}

	m.observe(ctx, res)
	p, _ := res.unwrap()
	return p
}

// Delete removes the session cookie. Deleting a session that does not
// exist is not an error.
func (m *Manager) Delete(ctx context.Context, store CookieStore) error {
	if err := store.Delete(m.cfg.CookieName, m.cookieOptions(time.Time{})); err != nil {
		m.logger.ErrorContext(ctx, "failed to delete session cookie", logger.Error(err))
		return err
	}

	m.metrics.deleted()
	m.logger.DebugContext(ctx, "session deleted")
	return nil
}

// resolve verifies a raw token. Empty tokens are never decoded.
func (m *Manager) resolve(token string) result {
	if token == "" {
		return missing()
	}

	p, err := m.codec.Decode(token)
	if err != nil {
		return invalid(invalidReason(err), err)
	}

	if p == nil || p.UserID == "" || p.Email == "" {
		return invalid("incomplete_claims", nil)
	}

	if !p.ExpiresAt.IsZero() && !m.now().Before(p.ExpiresAt) {
		return invalid("expired", nil)
	}

	return valid(p)
}

func (m *Manager) observe(ctx context.Context, res result) {
	m.metrics.lookup(res.outcome)

	switch res.outcome {
	case outcomeInvalid:
		m.logger.DebugContext(ctx, "session token rejected", logger.Reason(res.reason), logger.Error(res.err))
	case outcomeFailed:
		m.logger.ErrorContext(ctx, "failed to read session cookie", logger.Error(res.err))
	}
}

func (m *Manager) cookieOptions(expires time.Time) cookie.Options {
	return cookie.Options{
		Path:     "/",
		Expires:  expires,
		Secure:   m.cfg.Production,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}

func readCookie(r CookieReader, name string) (*http.Cookie, error) {
	if r == nil {
		return nil, http.ErrNoCookie
	}

	c, err := r.Cookie(name)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, http.ErrNoCookie
	}
	return c, nil
}
