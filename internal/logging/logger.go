package logging

import (
	"context"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// New builds the process logger. Production output drops colour so log shippers
// see plain text.
func New(appName, env string) zerolog.Logger {
	output := zerolog.ConsoleWriter{
		Out:        os.Stdout,
		TimeFormat: time.RFC3339Nano,
		NoColor:    env == "production",
	}
	return zerolog.New(output).With().
		Timestamp().
		Str("app", appName).
		Str("env", env).
		Logger()
}

// IntoContext stores the per-request logger (request id, method, path) for handlers
// and the gorm logger further down the call chain.
func IntoContext(ctx context.Context, logger zerolog.Logger) context.Context {
	return logger.WithContext(ctx)
}

// FromContext returns the per-request logger, or a disabled logger outside a request.
func FromContext(ctx context.Context) *zerolog.Logger {
	if ctx == nil {
		ctx = context.Background()
	}
	return zerolog.Ctx(ctx)
}
