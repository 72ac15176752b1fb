// Package environment describes the environment the application runs in
// (development, staging, production, test) and propagates it through
// context.Context, HTTP requests and structured logs.
//
// Parse converts an APP_ENV value into an Environment. Environment-gated
// behaviour, such as the Secure flag on session cookies, should be derived
// from the parsed value once at startup and passed explicitly to the
// components that need it.
//
//	env := environment.Parse(os.Getenv("APP_ENV"))
//	if env.IsProduction() {
//	    // production-specific behaviour
//	}
//
// Middleware stores the environment on every request context and
// LoggerExtractor injects it into slog records.
package environment
