package environment

import (
	"context"
	"log/slog"
)

// LoggerExtractor returns a logger.ContextExtractor compatible function that
// adds the "env" attribute when the context carries an environment.
func LoggerExtractor() func(ctx context.Context) (slog.Attr, bool) {
	return func(ctx context.Context) (slog.Attr, bool) {
		if env := FromContext(ctx); env != "" {
			return slog.String("env", string(env)), true
		}
		return slog.Attr{}, false
	}
}
