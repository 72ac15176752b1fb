package session

import "context"

// contextKey is a private type for context keys to avoid collisions.
type contextKey struct{ name string }

// String returns the name of the context key.
func (c contextKey) String() string { return c.name }

var payloadContextKey = &contextKey{name: "session_payload"}

// WithPayload stores a verified payload in the context.
func WithPayload(ctx context.Context, p *Payload) context.Context {
	return context.WithValue(ctx, payloadContextKey, p)
}

// FromContext returns the payload stored by Middleware.
// If no valid session was attached, the second return value is false.
func FromContext(ctx context.Context) (*Payload, bool) {
	p, ok := ctx.Value(payloadContextKey).(*Payload)
	if !ok || p == nil {
		return nil, false
	}
	return p, true
}
