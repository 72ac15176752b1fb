package session

import (
	"fmt"
	"net/http"
	"time"
)

const (
	// DefaultCookieName is the cookie that carries the session token.
	DefaultCookieName = "auth-token"

	// DefaultTTL is the lifetime of a session and of its cookie.
	DefaultTTL = 7 * 24 * time.Hour

	// DevelopmentSecret signs tokens when no secret is configured outside
	// production. It is public and must never protect real accounts.
	DevelopmentSecret = "development-secret-key"

	// MinSecretLength is the shortest secret accepted in production.
	MinSecretLength = 32
)

// Config holds session configuration
type Config struct {
	// Secret is the HMAC signing key.
	Secret string `env:"JWT_SECRET"`

	// CookieName is the name of the session cookie (default: "auth-token")
	CookieName string `env:"SESSION_COOKIE_NAME" envDefault:"auth-token"`

	// TTL is how long a session stays valid after creation (default: 7 days)
	TTL time.Duration `env:"SESSION_TTL" envDefault:"168h"`

	// Production enables the Secure cookie flag and the strict secret rules.
	// It is derived from the application environment, not read directly.
	Production bool
}

// DefaultConfig returns default session configuration
func DefaultConfig() Config {
	return Config{
		CookieName: DefaultCookieName,
		TTL:        DefaultTTL,
	}
}

// Validate checks the configuration once at startup.
// Production refuses to run without a dedicated secret of at least
// MinSecretLength bytes; elsewhere an empty secret is allowed and replaced
// by DevelopmentSecret.
func (c Config) Validate() error {
	if c.TTL < 0 {
		return fmt.Errorf("%w: negative ttl %s", ErrInvalidConfig, c.TTL)
	}
	if c.CookieName != "" {
		nameCheck := http.Cookie{Name: c.CookieName, Value: "x"}
		if err := nameCheck.Valid(); err != nil {
			return fmt.Errorf("%w: cookie name %q: %w", ErrInvalidConfig, c.CookieName, err)
		}
	}

	if !c.Production {
		return nil
	}

	switch {
	case c.Secret == "":
		return ErrMissingSecret
	case c.Secret == DevelopmentSecret:
		return ErrInsecureSecret
	case len(c.Secret) < MinSecretLength:
		return fmt.Errorf("%w: %d bytes, need at least %d", ErrSecretTooShort, len(c.Secret), MinSecretLength)
	}

	return nil
}

// SigningSecret returns the secret to sign with and whether it is the
// development fallback.
func (c Config) SigningSecret() (string, bool) {
	if c.Secret == "" {
		return DevelopmentSecret, true
	}
	return c.Secret, false
}

func (c Config) withDefaults() Config {
	if c.CookieName == "" {
		c.CookieName = DefaultCookieName
	}
	if c.TTL == 0 {
		c.TTL = DefaultTTL
	}
	return c
}
