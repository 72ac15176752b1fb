package session

import "errors"

var (
	// ErrInvalidIdentity is returned by Create when user id or email is empty.
	ErrInvalidIdentity = errors.New("session.invalid_identity")

	// ErrMissingSecret indicates production was started without JWT_SECRET.
	ErrMissingSecret = errors.New("session.missing_secret")

	// ErrInsecureSecret indicates production was configured with the development fallback secret.
	ErrInsecureSecret = errors.New("session.insecure_secret")

	// ErrSecretTooShort indicates a production secret shorter than MinSecretLength.
	ErrSecretTooShort = errors.New("session.secret_too_short")

	// ErrInvalidConfig indicates a malformed cookie name or TTL.
	ErrInvalidConfig = errors.New("session.invalid_config")
)
