// Package config loads application configuration from environment variables.
//
// It wraps `github.com/joho/godotenv` and `github.com/caarlos0/env/v11`:
//
//   - The default `.env` file in the working directory is loaded once, if it
//     exists. Additional files can be loaded with LoadEnv.
//   - Environment variables are parsed into any Go struct using field tags.
//   - Structs implementing Validator are validated right after parsing, so a
//     misconfigured process fails at startup instead of on first request.
//
// # Usage
//
//	type SessionConfig struct {
//	    Secret string        `env:"JWT_SECRET"`
//	    TTL    time.Duration `env:"SESSION_TTL" envDefault:"168h"`
//	}
//
//	func (c SessionConfig) Validate() error { ... }
//
//	var cfg SessionConfig
//	if err := config.Load(&cfg); err != nil {
//	    log.Fatalf("config: %v", err)
//	}
//
// # Error Handling
//
// The package defines sentinel errors that can be compared with `errors.Is`:
//
//   - `ErrParsingConfig`  – failed to parse env vars into struct.
//   - `ErrInvalidConfig`  – the struct's Validate method rejected it.
//   - `ErrLoadingEnvFile` – an explicitly requested .env file failed to load.
//   - `ErrNilPointer`     – nil pointer passed to `Load`/`MustLoad`.
package config
