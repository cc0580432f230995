package credmail

import (
	"fmt"
	"strings"
)

const (
	DefaultSender  = "Portal Access <no-reply@credportal.local>"
	DefaultSubject = "Your portal access credentials"
	DefaultTag     = "credentials"
)

// Config holds per-deployment message settings.
type Config struct {
	Sender  string `env:"CREDMAIL_SENDER" envDefault:"Portal Access <no-reply@credportal.local>"`
	Subject string `env:"CREDMAIL_SUBJECT" envDefault:"Your portal access credentials"`
	Tag     string `env:"CREDMAIL_TAG" envDefault:"credentials"`
}

// DefaultConfig returns the configuration used when nothing is set in the environment.
func DefaultConfig() Config {
	return Config{
		Sender:  DefaultSender,
		Subject: DefaultSubject,
		Tag:     DefaultTag,
	}
}

func (c Config) validate() error {
	if strings.TrimSpace(c.Sender) == "" {
		return fmt.Errorf("%w: sender is required", ErrInvalidConfig)
	}
	if strings.TrimSpace(c.Subject) == "" {
		return fmt.Errorf("%w: subject is required", ErrInvalidConfig)
	}
	return nil
}
