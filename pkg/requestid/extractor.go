package requestid

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/credportal/pkg/logger"
)

// LoggerExtractor returns a logger.ContextExtractor compatible function that
// adds "request_id" to records logged with a request context.
func LoggerExtractor() func(ctx context.Context) (slog.Attr, bool) {
	return func(ctx context.Context) (slog.Attr, bool) {
		if id := FromContext(ctx); id != "" {
			return logger.RequestID(id), true
		}
		return slog.Attr{}, false
	}
}
