package logctx

import (
	"context"
	"log/slog"
)

type loggerKey struct{}

// LoggerFromContext returns the logger stored in ctx, or a logger that
// discards everything.
func LoggerFromContext(ctx context.Context) *slog.Logger {
	logger, ok := ctx.Value(loggerKey{}).(*slog.Logger)
	if !ok || logger == nil {
		return discard
	}
	return logger
}

func LoggerToContext(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, logger)
}

var discard = slog.New(slog.DiscardHandler)
