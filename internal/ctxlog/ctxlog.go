// Package ctxlog carries a *slog.Logger through a context.Context so that
// render and query paths can log without threading a logger parameter.
package ctxlog

import (
	"context"
	"log/slog"
)

// key is an unexported type so no other package can collide with our entry.
type key struct{}

var loggerKey = key{}

// WithLogger returns a child context holding logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// FromContext extracts the logger from ctx. When none was attached, the
// process-wide default logger is returned, which keeps early-startup and
// test call sites working without special cases.
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}
