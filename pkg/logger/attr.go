package logger

import (
	"log/slog"
	"time"
)

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// RequestID records the request identifier under the key "request_id".
// An empty id yields an empty Attr.
func RequestID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("request_id", id)
}

// MessageID records the provider message identifier under the key "message_id".
func MessageID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("message_id", id)
}

// Recipient records an email recipient under the key "recipient".
func Recipient(addr string) slog.Attr {
	return slog.String("recipient", addr)
}

// Provider records the email provider name under the key "provider".
func Provider(name string) slog.Attr {
	return slog.String("provider", name)
}

// ProviderCode records a provider-specific error code under the key "provider_code".
func ProviderCode(code int64) slog.Attr {
	return slog.Int64("provider_code", code)
}

// SessionKey records the storage key of a session under the key "session_key".
func SessionKey(key string) slog.Attr {
	return slog.String("session_key", key)
}

// StatusCode records an HTTP status code under the key "status_code".
func StatusCode(code int) slog.Attr {
	return slog.Int("status_code", code)
}

// Duration records an elapsed time under the key "duration".
func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}
