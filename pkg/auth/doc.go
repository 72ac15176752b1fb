// Package auth provides email/password accounts: registration with bcrypt
// hashed passwords and credential checks for sign-in.
//
// It only establishes identity. Issuing the session cookie after a
// successful Register or Authenticate is the job of package session.
//
//	svc, err := auth.NewPasswordService(auth.NewMemoryStorage())
//	user, err := svc.Register(ctx, "a@example.com", "correct horse")
//	user, err = svc.Authenticate(ctx, "a@example.com", "correct horse")
//
// Emails are trimmed and lower-cased before storage and lookup. Unknown
// emails and wrong passwords are indistinguishable to the caller
// (ErrInvalidCredentials).
package auth
