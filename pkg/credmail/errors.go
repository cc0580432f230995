package credmail

import (
	"errors"
	"slices"
	"strings"

	"github.com/dmitrymomot/credportal/pkg/email"
)

var (
	ErrMethodNotAllowed = errors.New("credmail.method_not_allowed")
	ErrMissingFields    = errors.New("credmail.missing_fields")
	ErrProviderRejected = errors.New("credmail.provider_rejected")
	ErrUnexpected       = errors.New("credmail.unexpected")
	ErrInvalidConfig    = errors.New("credmail.invalid_config")
	ErrNoSender         = errors.New("credmail.no_sender")
)

// FallbackErrorMessage is reported when a failure carries no message of its own.
const FallbackErrorMessage = "Internal server error"

// dispatchError classifies a failed dispatch while keeping the cause's own
// message as the client-facing text.
type dispatchError struct {
	kind  error
	cause error
}

func (e *dispatchError) Error() string {
	if e.cause == nil {
		return ""
	}
	return e.cause.Error()
}

func (e *dispatchError) Unwrap() []error {
	if e.cause == nil {
		return []error{e.kind}
	}
	return []error{e.kind, e.cause}
}

// PublicMessage returns the text that should be shown to the caller for err.
// Provider rejections expose the provider's own message. Other failures expose
// the innermost cause without the email package's sentinel codes.
func PublicMessage(err error) string {
	if err == nil {
		return ""
	}
	cause := err
	var de *dispatchError
	if errors.As(err, &de) && de.cause != nil {
		if msg := providerMessage(de.cause); msg != "" {
			return msg
		}
		cause = de.cause
	}
	if msg := causeMessage(cause); msg != "" {
		return msg
	}
	return FallbackErrorMessage
}

var emailSentinels = []error{email.ErrFailedToSendEmail, email.ErrInvalidParams}

// causeMessage follows the last branch of joined errors and strips a leading
// send-failure sentinel added with fmt.Errorf("%w: ...").
func causeMessage(err error) string {
	for {
		joined, ok := err.(interface{ Unwrap() []error })
		if !ok {
			break
		}
		var last error
		for _, e := range joined.Unwrap() {
			if e != nil && !slices.Contains(emailSentinels, e) {
				last = e
			}
		}
		if last == nil {
			return ""
		}
		err = last
	}

	if slices.Contains(emailSentinels, err) {
		return ""
	}
	msg := strings.TrimSpace(err.Error())
	for _, sentinel := range emailSentinels {
		msg = strings.TrimPrefix(msg, sentinel.Error()+": ")
	}
	return strings.Join(strings.Fields(msg), " ")
}
