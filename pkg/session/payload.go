package session

import (
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
)

// Payload is the authenticated identity recovered from a session token.
// A Payload is only ever handed out after the token signature and expiry
// have been verified.
type Payload struct {
	UserID    string    `json:"userId"`
	Email     string    `json:"email"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// tokenClaims is the token body: the payload fields plus registered claims.
type tokenClaims struct {
	UserID           string    `json:"userId"`
	Email            string    `json:"email"`
	SessionExpiresAt time.Time `json:"expiresAt"`
	gojwt.RegisteredClaims
}

func (c *tokenClaims) payload() *Payload {
	return &Payload{
		UserID:    c.UserID,
		Email:     c.Email,
		ExpiresAt: c.SessionExpiresAt,
	}
}
