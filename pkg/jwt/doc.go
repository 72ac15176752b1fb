// Package jwt signs and verifies HS256 JSON Web Tokens on top of
// github.com/golang-jwt/jwt/v5.
//
// A Service is created once from the server secret and shared by all
// requests:
//
//	svc, err := jwt.NewFromString(os.Getenv("JWT_SECRET"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	token, err := svc.Generate(claims)
//
//	var parsed MyClaims
//	if err := svc.Parse(token, &parsed); err != nil {
//	    // token is tampered, expired or malformed
//	}
//
// Claims types embed gojwt.RegisteredClaims (or implement gojwt.Claims).
// Parse requires the exp claim, accepts HS256 only and maps library errors
// onto the package sentinels ErrExpiredToken, ErrInvalidSignature,
// ErrUnexpectedSigningMethod and ErrInvalidToken so callers can use
// errors.Is without importing the underlying library.
package jwt
