package environment_test

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/uigen/pkg/environment"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want environment.Environment
	}{
		{"production", environment.Production},
		{"prod", environment.Production},
		{" Production ", environment.Production},
		{"staging", environment.Staging},
		{"stage", environment.Staging},
		{"test", environment.Test},
		{"development", environment.Development},
		{"", environment.Development},
		{"whatever", environment.Development},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, environment.Parse(tt.in))
		})
	}
}

func TestEnvironment_IsProduction(t *testing.T) {
	t.Parallel()

	assert.True(t, environment.Production.IsProduction())
	assert.False(t, environment.Development.IsProduction())
	assert.False(t, environment.Staging.IsProduction())
	assert.False(t, environment.Test.IsProduction())
}

func TestContext(t *testing.T) {
	t.Parallel()

	t.Run("round trip", func(t *testing.T) {
		ctx := environment.WithContext(context.Background(), environment.Staging)
		assert.Equal(t, environment.Staging, environment.FromContext(ctx))
	})

	t.Run("missing value", func(t *testing.T) {
		assert.Equal(t, environment.Environment(""), environment.FromContext(context.Background()))
	})

	t.Run("nil context", func(t *testing.T) {
		//nolint:staticcheck // nil context is handled explicitly
		assert.Equal(t, environment.Environment(""), environment.FromContext(nil))
	})
}

func TestMiddleware(t *testing.T) {
	t.Parallel()

	var got environment.Environment
	handler := environment.Middleware(environment.Production)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = environment.FromContext(r.Context())
	}))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, environment.Production, got)
}

func TestLoggerExtractor(t *testing.T) {
	t.Parallel()

	extract := environment.LoggerExtractor()

	attr, ok := extract(environment.WithContext(context.Background(), environment.Development))
	assert.True(t, ok)
	assert.Equal(t, slog.String("env", "development"), attr)

	_, ok = extract(context.Background())
	assert.False(t, ok)
}
