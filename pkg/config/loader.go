package config

import (
	"errors"
	"fmt"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Validator is implemented by configuration structs that need to check
// field combinations env tags cannot express.
type Validator interface {
	Validate() error
}

var defaultEnvLoaded sync.Once

// LoadEnv loads the given .env files into the process environment.
// Variables that are already set are not overridden.
func LoadEnv(files ...string) error {
	if err := godotenv.Load(files...); err != nil {
		return errors.Join(ErrLoadingEnvFile, err)
	}
	return nil
}

// Load parses environment variables into the provided configuration struct.
//
// The default .env file in the working directory is loaded on first call;
// a missing file is not an error. After parsing, the struct is validated
// when it implements Validator.
//
// Example:
//
//	type SessionConfig struct {
//		Secret string        `env:"JWT_SECRET"`
//		TTL    time.Duration `env:"SESSION_TTL" envDefault:"168h"`
//	}
//
//	var cfg SessionConfig
//	if err := config.Load(&cfg); err != nil {
//		// Handle error
//	}
func Load[T any](v *T) error {
	defaultEnvLoaded.Do(func() {
		// The .env file is optional
		_ = godotenv.Load()
	})
	if v == nil {
		return ErrNilPointer
	}

	if err := env.Parse(v); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}

	if validator, ok := any(v).(Validator); ok {
		if err := validator.Validate(); err != nil {
			return errors.Join(ErrInvalidConfig, err)
		}
	}

	return nil
}

// MustLoad works like Load but panics if configuration loading fails.
// Use it for configuration the application cannot start without.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("Failed to load required configuration: %v", err))
	}
}
