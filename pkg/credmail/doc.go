// Package credmail sends newly issued portal credentials to their owner by
// email.
//
// A Dispatcher validates a Request, renders the credentials template and
// makes exactly one call to an email.Sender. Handler exposes the dispatcher as
// a POST-only JSON endpoint:
//
//	var cfg credmail.Config
//	config.MustLoad(&cfg)
//
//	d, err := credmail.NewDispatcher(sender, cfg,
//	    credmail.WithLogger(log),
//	    credmail.WithMetrics(metrics),
//	)
//	if err != nil {
//	    return err
//	}
//	r.HandleFunc("/api/send-credentials", credmail.Handler(d, log))
//
// Sends are not idempotent: repeating a request sends another email.
//
// # Errors
//
// Dispatch errors match one of ErrMissingFields, ErrProviderRejected or
// ErrUnexpected. PublicMessage returns the caller-facing text: the provider's
// own message for rejections, otherwise the error text, or
// FallbackErrorMessage when that is empty.
package credmail
