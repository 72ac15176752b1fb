package session

import "net/http"

// Middleware verifies the session cookie of every request and, when valid,
// attaches the payload to the request context. Requests without a valid
// session pass through untouched.
func Middleware(m *Manager) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if p := m.Verify(r.Context(), r); p != nil {
				r = r.WithContext(WithPayload(r.Context(), p))
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireSession rejects requests without a valid session. A payload already
// attached by Middleware is reused; otherwise the cookie is verified here.
// onUnauthorized defaults to a plain 401 response.
func RequireSession(m *Manager, onUnauthorized http.Handler) func(next http.Handler) http.Handler {
	if onUnauthorized == nil {
		onUnauthorized = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		})
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := FromContext(r.Context()); ok {
				next.ServeHTTP(w, r)
				return
			}

			p := m.Verify(r.Context(), r)
			if p == nil {
				onUnauthorized.ServeHTTP(w, r)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithPayload(r.Context(), p)))
		})
	}
}
