package email

import (
	"errors"
	"fmt"
)

var (
	ErrFailedToSendEmail = errors.New("mailer.errors.failed_to_send_email")
	ErrInvalidConfig     = errors.New("mailer.errors.invalid_config")
	ErrInvalidParams     = errors.New("mailer.errors.invalid_params")
)

// ProviderError is returned when the provider answered the request but refused
// to deliver the message. Message holds the provider's own explanation.
type ProviderError struct {
	Provider string
	Code     int64
	Message  string
}

func (e *ProviderError) Error() string {
	if e.Code != 0 {
		return fmt.Sprintf("%s error %d: %s", e.Provider, e.Code, e.Message)
	}
	return fmt.Sprintf("%s error: %s", e.Provider, e.Message)
}

// Unwrap lets callers match provider rejections with errors.Is(err, ErrFailedToSendEmail).
func (e *ProviderError) Unwrap() error {
	return ErrFailedToSendEmail
}
