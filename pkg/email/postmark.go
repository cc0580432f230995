package email

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/mrz1836/postmark"
)

// PostmarkOption configures a PostmarkSender.
type PostmarkOption func(*postmark.Client)

// WithPostmarkBaseURL points the client at a different API root, e.g. a test server.
func WithPostmarkBaseURL(u string) PostmarkOption {
	return func(c *postmark.Client) {
		if u != "" {
			c.BaseURL = strings.TrimRight(u, "/")
		}
	}
}

// WithPostmarkHTTPClient replaces the HTTP client used for API calls.
func WithPostmarkHTTPClient(hc *http.Client) PostmarkOption {
	return func(c *postmark.Client) {
		if hc != nil {
			c.HTTPClient = hc
		}
	}
}

// PostmarkSender delivers messages through Postmark's transactional API.
type PostmarkSender struct {
	client *postmark.Client
}

// NewPostmarkSender creates a Postmark-backed sender.
// The server token is required for sending; the account token is optional and
// only used by administrative endpoints.
func NewPostmarkSender(serverToken, accountToken string, opts ...PostmarkOption) (*PostmarkSender, error) {
	if serverToken == "" {
		return nil, fmt.Errorf("%w: PostmarkServerToken is required", ErrInvalidConfig)
	}

	client := postmark.NewClient(serverToken, accountToken)
	for _, opt := range opts {
		opt(client)
	}

	return &PostmarkSender{client: client}, nil
}

// Send implements Sender. A response carrying a non-zero ErrorCode is reported
// as *ProviderError even when the client also returned a transport-level error.
func (s *PostmarkSender) Send(ctx context.Context, msg Message) (Result, error) {
	if err := msg.Validate(); err != nil {
		return Result{}, err
	}

	resp, err := s.client.SendEmail(ctx, postmark.Email{
		From:       msg.From,
		To:         strings.Join(msg.To, ","),
		Subject:    msg.Subject,
		Tag:        msg.Tag,
		HTMLBody:   msg.HTML,
		TrackOpens: false,
	})
	if resp.ErrorCode != 0 {
		return Result{}, &ProviderError{
			Provider: ProviderPostmark,
			Code:     int64(resp.ErrorCode),
			Message:  resp.Message,
		}
	}
	if err != nil {
		return Result{}, errors.Join(ErrFailedToSendEmail, err)
	}
	if resp.MessageID == "" {
		return Result{}, fmt.Errorf("%w: postmark response has no message id", ErrFailedToSendEmail)
	}

	return Result{MessageID: resp.MessageID}, nil
}
