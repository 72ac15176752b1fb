// Package session implements cookie-held authentication sessions.
//
// A session is a signed, time-limited token (HS256 JWT by default) stored in
// the "auth-token" cookie. The token is the only durable form of a session:
// the server keeps no session table, and deleting the cookie is how a session
// ends. Copies of a payload verified before deletion stay usable; there is no
// revocation.
//
// # Lifecycle
//
//   - Create signs {userId, email, expiresAt} and writes the cookie
//     (HttpOnly, SameSite=Lax, Path=/, Secure in production, Expires =
//     issuance + TTL).
//   - Get reads the cookie through a per-request CookieStore.
//   - Verify reads the cookie from an inbound request; it is what the
//     middleware uses.
//   - Delete expires the cookie and is idempotent.
//
// # Error handling
//
// Two kinds of failure are kept apart. Token problems (missing cookie, empty
// value, bad signature, expiry, malformed token) are never errors: Get and
// Verify return a nil payload, so "not logged in" looks the same whatever the
// cause. Infrastructure problems (the cookie store or signer failing) are
// returned to the caller unchanged.
//
// # Usage
//
//	cookies := cookie.New()
//	sessions, err := session.New(session.Config{
//	    Secret:     os.Getenv("JWT_SECRET"),
//	    Production: env.IsProduction(),
//	})
//	if err != nil {
//	    log.Fatal(err) // e.g. ErrMissingSecret in production
//	}
//
//	func signIn(w http.ResponseWriter, r *http.Request) {
//	    err := sessions.Create(r.Context(), cookies.Store(w, r), user.ID, user.Email)
//	    ...
//	}
//
//	mux.Handle("/app/", session.RequireSession(sessions, nil)(appHandler))
//
// # Configuration
//
// Config is loadable from the environment (JWT_SECRET, SESSION_COOKIE_NAME,
// SESSION_TTL); Production must be set from the application environment.
// Outside production an empty secret falls back to DevelopmentSecret with a
// warning; in production it is a startup error.
package session
