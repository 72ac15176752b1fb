package jwt

import (
	"errors"
	"fmt"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
)

// HeaderAlgorithm is the only algorithm the service signs with and accepts.
const HeaderAlgorithm = "HS256"

// Service handles JWT token generation and validation using HMAC-SHA256.
// It holds no mutable state after construction and is safe for concurrent use.
type Service struct {
	signingKey []byte
	leeway     time.Duration
	now        func() time.Time
}

// Option configures a Service.
type Option func(*Service)

// WithLeeway allows for clock skew when validating temporal claims.
func WithLeeway(d time.Duration) Option {
	return func(s *Service) {
		if d > 0 {
			s.leeway = d
		}
	}
}

// WithTimeFunc overrides the clock used to validate exp/nbf/iat.
func WithTimeFunc(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// New creates a new JWT service with the provided signing key.
// The key should be at least 32 bytes for adequate security with HMAC-SHA256.
func New(signingKey []byte, opts ...Option) (*Service, error) {
	if len(signingKey) == 0 {
		return nil, ErrMissingSigningKey
	}

	s := &Service{
		signingKey: signingKey,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

// NewFromString creates a new JWT service from a string signing key.
func NewFromString(signingKey string, opts ...Option) (*Service, error) {
	return New([]byte(signingKey), opts...)
}

// Generate signs the claims with HS256 and returns the compact token.
func (s *Service) Generate(claims gojwt.Claims) (string, error) {
	if claims == nil {
		return "", ErrMissingClaims
	}

	token, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, claims).SignedString(s.signingKey)
	if err != nil {
		return "", fmt.Errorf("jwt: sign token: %w", err)
	}

	return token, nil
}

// Parse verifies the token signature and temporal claims and decodes the
// claims into the provided value. Tokens without an exp claim are rejected.
func (s *Service) Parse(tokenString string, claims gojwt.Claims) error {
	if claims == nil {
		return ErrMissingClaims
	}

	opts := []gojwt.ParserOption{
		gojwt.WithExpirationRequired(),
		gojwt.WithIssuedAt(),
		gojwt.WithTimeFunc(s.now),
	}
	if s.leeway > 0 {
		opts = append(opts, gojwt.WithLeeway(s.leeway))
	}

	_, err := gojwt.ParseWithClaims(tokenString, claims, s.keyFunc, opts...)
	if err != nil {
		return mapError(err)
	}

	return nil
}

// keyFunc rejects anything but HS256 before the signature is checked so
// algorithm confusion (none, RS256 with the HMAC key as public key) is impossible.
func (s *Service) keyFunc(token *gojwt.Token) (any, error) {
	if token.Method.Alg() != HeaderAlgorithm {
		return nil, ErrUnexpectedSigningMethod
	}
	return s.signingKey, nil
}

func mapError(err error) error {
	switch {
	case errors.Is(err, ErrUnexpectedSigningMethod):
		return ErrUnexpectedSigningMethod
	case errors.Is(err, gojwt.ErrTokenSignatureInvalid):
		return ErrInvalidSignature
	case errors.Is(err, gojwt.ErrTokenExpired):
		return ErrExpiredToken
	default:
		return errors.Join(ErrInvalidToken, err)
	}
}
