package credmail

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/dmitrymomot/credportal/pkg/email"
	"github.com/dmitrymomot/credportal/pkg/email/templates"
	"github.com/dmitrymomot/credportal/pkg/logger"
)

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithClock overrides the time source used for the year in the email footer.
func WithClock(now func() time.Time) Option {
	return func(d *Dispatcher) {
		if now != nil {
			d.now = now
		}
	}
}

// WithLogger sets the logger used for failed dispatches.
func WithLogger(log *slog.Logger) Option {
	return func(d *Dispatcher) {
		if log != nil {
			d.log = log
		}
	}
}

// WithMetrics records dispatch outcomes on m.
func WithMetrics(m *Metrics) Option {
	return func(d *Dispatcher) {
		d.metrics = m
	}
}

// Dispatcher renders credential emails and hands them to an email provider.
// It holds no mutable state and is safe for concurrent use.
type Dispatcher struct {
	sender  email.Sender
	cfg     Config
	now     func() time.Time
	log     *slog.Logger
	metrics *Metrics
}

// NewDispatcher creates a Dispatcher that sends through sender.
// Empty Config fields fall back to DefaultConfig.
func NewDispatcher(sender email.Sender, cfg Config, opts ...Option) (*Dispatcher, error) {
	if sender == nil {
		return nil, ErrNoSender
	}

	def := DefaultConfig()
	if cfg.Sender == "" {
		cfg.Sender = def.Sender
	}
	if cfg.Subject == "" {
		cfg.Subject = def.Subject
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	d := &Dispatcher{
		sender: sender,
		cfg:    cfg,
		now:    time.Now,
		log:    slog.Default(),
	}
	for _, opt := range opts {
		opt(d)
	}
	d.log = d.log.With(logger.Component("credmail"))

	return d, nil
}

// MustNewDispatcher works like NewDispatcher but panics on error.
func MustNewDispatcher(sender email.Sender, cfg Config, opts ...Option) *Dispatcher {
	d, err := NewDispatcher(sender, cfg, opts...)
	if err != nil {
		panic(err)
	}
	return d
}

// Dispatch validates req, renders the credential email and sends it exactly
// once. It returns the provider's message id on success.
//
// Errors match ErrMissingFields (nothing was sent), ErrProviderRejected (the
// provider refused the message) or ErrUnexpected (anything else) with errors.Is.
// Use PublicMessage to obtain the text to report to the caller.
func (d *Dispatcher) Dispatch(ctx context.Context, req Request) (string, error) {
	id, err := d.dispatch(ctx, req)
	d.metrics.observe(outcomeOf(err))
	return id, err
}

func (d *Dispatcher) dispatch(ctx context.Context, req Request) (string, error) {
	if err := req.Validate(); err != nil {
		return "", err
	}

	html, err := templates.Render(ctx, templates.CredentialsEmail(templates.CredentialsData{
		Name:     req.Name,
		Username: req.Username,
		Password: req.Password,
		Year:     d.now().Year(),
	}))
	if err != nil {
		d.log.ErrorContext(ctx, "failed to render credentials email",
			logger.Recipient(req.To),
			logger.Error(err),
		)
		return "", &dispatchError{kind: ErrUnexpected, cause: err}
	}

	start := time.Now()
	res, err := d.send(ctx, email.Message{
		From:    d.cfg.Sender,
		To:      []string{req.To},
		Subject: d.cfg.Subject,
		HTML:    html,
		Tag:     d.cfg.Tag,
	})
	elapsed := time.Since(start)
	d.metrics.observeProvider(elapsed)

	if err != nil {
		var pe *email.ProviderError
		if errors.As(err, &pe) {
			d.log.ErrorContext(ctx, "email provider rejected credentials email",
				logger.Recipient(req.To),
				logger.Provider(pe.Provider),
				logger.ProviderCode(pe.Code),
				logger.Duration(elapsed),
				logger.Error(err),
			)
			return "", &dispatchError{kind: ErrProviderRejected, cause: err}
		}

		d.log.ErrorContext(ctx, "failed to send credentials email",
			logger.Recipient(req.To),
			logger.Duration(elapsed),
			logger.Error(err),
		)
		return "", &dispatchError{kind: ErrUnexpected, cause: err}
	}

	d.log.InfoContext(ctx, "credentials email sent",
		logger.Recipient(req.To),
		logger.MessageID(res.MessageID),
		logger.Duration(elapsed),
	)
	return res.MessageID, nil
}

// send calls the provider and turns a panic into an error.
func (d *Dispatcher) send(ctx context.Context, msg email.Message) (res email.Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			switch v := r.(type) {
			case error:
				err = v
			case string:
				err = errors.New(v)
			default:
				err = fmt.Errorf("%v", v)
			}
		}
	}()
	return d.sender.Send(ctx, msg)
}

func providerMessage(err error) string {
	var pe *email.ProviderError
	if errors.As(err, &pe) {
		return pe.Message
	}
	return ""
}
