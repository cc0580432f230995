package email

import (
	"context"
	"fmt"
	"strings"
)

// Sender delivers a fully rendered message through a transactional email provider.
type Sender interface {
	Send(ctx context.Context, msg Message) (Result, error)
}

// Message is a provider-agnostic outbound email.
type Message struct {
	From    string   `json:"from"`          // Sender address, may include a display name
	To      []string `json:"to"`            // Recipient addresses
	Subject string   `json:"subject"`       // Subject line
	HTML    string   `json:"html"`          // HTML body
	Tag     string   `json:"tag,omitempty"` // Optional, used by providers for analytics
}

// Result is returned by a provider that accepted the message.
type Result struct {
	MessageID string `json:"message_id"`
}

// Validate checks that the message carries everything a provider needs.
// Address syntax is left to the provider so its own rejection reason reaches the caller.
func (m Message) Validate() error {
	if strings.TrimSpace(m.From) == "" {
		return fmt.Errorf("%w: From is required", ErrInvalidParams)
	}
	if len(m.To) == 0 {
		return fmt.Errorf("%w: at least one recipient is required", ErrInvalidParams)
	}
	for _, to := range m.To {
		if strings.TrimSpace(to) == "" {
			return fmt.Errorf("%w: recipient address cannot be empty", ErrInvalidParams)
		}
	}
	if strings.TrimSpace(m.Subject) == "" {
		return fmt.Errorf("%w: Subject is required", ErrInvalidParams)
	}
	if strings.TrimSpace(m.HTML) == "" {
		return fmt.Errorf("%w: HTML is required", ErrInvalidParams)
	}
	return nil
}
