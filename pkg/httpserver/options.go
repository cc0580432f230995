package httpserver

import "log/slog"

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the logger for life-cycle events. Nil keeps the no-op logger.
func WithLogger(log *slog.Logger) Option {
	return func(s *Server) {
		if log != nil {
			s.log = log
		}
	}
}
