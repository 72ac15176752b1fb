package session

import (
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/dmitrymomot/uigen/pkg/jwt"
)

// TokenCodec turns a payload into a signed token and back.
// Implementations must be safe for concurrent use.
type TokenCodec interface {
	// Encode signs the payload. issuedAt becomes the iat claim.
	Encode(p Payload, issuedAt time.Time) (string, error)

	// Decode verifies signature and expiry and returns the embedded payload.
	Decode(token string) (*Payload, error)
}

type jwtCodec struct {
	svc *jwt.Service
}

// NewJWTCodec returns a TokenCodec producing HS256 JWTs. The exp claim is
// the payload's ExpiresAt and every token gets a random jti.
func NewJWTCodec(svc *jwt.Service) TokenCodec {
	return &jwtCodec{svc: svc}
}

func (c *jwtCodec) Encode(p Payload, issuedAt time.Time) (string, error) {
	return c.svc.Generate(&tokenClaims{
		UserID:           p.UserID,
		Email:            p.Email,
		SessionExpiresAt: p.ExpiresAt,
		RegisteredClaims: gojwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   p.UserID,
			IssuedAt:  gojwt.NewNumericDate(issuedAt),
			ExpiresAt: gojwt.NewNumericDate(p.ExpiresAt),
		},
	})
}

func (c *jwtCodec) Decode(token string) (*Payload, error) {
	var claims tokenClaims
	if err := c.svc.Parse(token, &claims); err != nil {
		return nil, err
	}
	return claims.payload(), nil
}
