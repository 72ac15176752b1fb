// Package account exposes email/password sign-up, sign-in and sign-out
// over JSON, backed by auth.PasswordService for credentials and
// session.Manager for the session cookie.
package account
