package environment

import (
	"context"
	"log/slog"
)

// LoggerExtractor returns a logger context extractor that adds "env" for
// contexts carrying an Environment. Its signature matches
// logger.ContextExtractor; this package cannot import logger, which depends
// on it for presets.
func LoggerExtractor() func(context.Context) (slog.Attr, bool) {
	return func(ctx context.Context) (slog.Attr, bool) {
		env := FromContext(ctx)
		if env == "" {
			return slog.Attr{}, false
		}
		return slog.String("env", string(env)), true
	}
}
