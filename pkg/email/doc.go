// Package email provides a provider-agnostic interface for sending transactional
// emails, with Postmark, SMTP and local-disk implementations.
//
// # Architecture
//
// Everything is built around the Sender interface. A Sender takes a rendered
// Message and returns the provider-assigned message identifier:
//   - PostmarkSender delivers through Postmark's HTTP API
//   - SMTPSender delivers through any SMTP relay
//   - DevSender writes HTML and JSON files to a directory for local work
//
// New picks one of them from Config, which is usually populated from the
// environment with the config package.
//
// # Usage
//
//	sender, err := email.NewPostmarkSender(os.Getenv("POSTMARK_SERVER_TOKEN"), "")
//	if err != nil {
//	    return err
//	}
//
//	res, err := sender.Send(ctx, email.Message{
//	    From:    "Portal <no-reply@example.com>",
//	    To:      []string{"user@example.com"},
//	    Subject: "Welcome",
//	    HTML:    html,
//	})
//
// # Error Handling
//
// A provider that answers but refuses the message produces *ProviderError,
// carrying the provider's code and message. Everything else (network
// failures, unreadable responses) is joined with ErrFailedToSendEmail.
// Invalid messages are rejected with ErrInvalidParams before any call is made.
//
//	var perr *email.ProviderError
//	if errors.As(err, &perr) {
//	    log.Printf("rejected: %s", perr.Message)
//	}
package email
