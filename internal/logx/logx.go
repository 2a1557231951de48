// Package logx carries a per-request *log.Logger through the context. The
// request-id middleware builds the logger with the request prefix; handlers
// and services pick it up with FromContext.
package logx

import (
	"context"
	"log"
)

type loggerKey struct{}

func WithLogger(ctx context.Context, logger *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, logger)
}

// FromContext returns the request logger, or the process default when the
// context carries none (background jobs, tests).
func FromContext(ctx context.Context) *log.Logger {
	if logger, ok := ctx.Value(loggerKey{}).(*log.Logger); ok {
		return logger
	}
	return log.Default()
}
