package email

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"net/textproto"

	"github.com/go-mail/mail"
	"github.com/google/uuid"
)

// SMTPConfig describes an SMTP relay.
type SMTPConfig struct {
	Host               string
	Port               int
	Username           string
	Password           string
	TLSMode            string // "auto" | "starttls" | "ssl" | "none"
	InsecureSkipVerify bool
}

// SMTPSender delivers messages through an SMTP relay.
// The relay does not hand back an identifier, so the sender assigns its own
// Message-ID header and reports that.
type SMTPSender struct {
	cfg SMTPConfig
}

// NewSMTPSender validates cfg and returns an SMTP-backed sender.
func NewSMTPSender(cfg SMTPConfig) (*SMTPSender, error) {
	if cfg.Host == "" {
		return nil, fmt.Errorf("%w: SMTP host is required", ErrInvalidConfig)
	}
	if cfg.Port <= 0 || cfg.Port > 65535 {
		return nil, fmt.Errorf("%w: SMTP port %d is out of range", ErrInvalidConfig, cfg.Port)
	}
	switch cfg.TLSMode {
	case "":
		cfg.TLSMode = "auto"
	case "auto", "starttls", "ssl", "none":
	default:
		return nil, fmt.Errorf("%w: unknown SMTP TLS mode %q", ErrInvalidConfig, cfg.TLSMode)
	}
	return &SMTPSender{cfg: cfg}, nil
}

// Send implements Sender.
func (s *SMTPSender) Send(ctx context.Context, msg Message) (Result, error) {
	if err := msg.Validate(); err != nil {
		return Result{}, err
	}
	if err := ctx.Err(); err != nil {
		return Result{}, errors.Join(ErrFailedToSendEmail, err)
	}

	messageID := fmt.Sprintf("<%s@%s>", uuid.NewString(), s.cfg.Host)

	m := mail.NewMessage()
	m.SetHeader("Message-ID", messageID)
	m.SetHeader("From", msg.From)
	m.SetHeader("To", msg.To...)
	m.SetHeader("Subject", msg.Subject)
	m.SetBody("text/html", msg.HTML)

	if err := s.dialer().DialAndSend(m); err != nil {
		// 5xx replies are permanent rejections by the relay.
		var protoErr *textproto.Error
		if errors.As(err, &protoErr) && protoErr.Code >= 500 {
			return Result{}, &ProviderError{
				Provider: ProviderSMTP,
				Code:     int64(protoErr.Code),
				Message:  protoErr.Msg,
			}
		}
		return Result{}, errors.Join(ErrFailedToSendEmail, err)
	}

	return Result{MessageID: messageID}, nil
}

// dialer maps TLSMode onto go-mail: "auto" upgrades when the relay offers
// STARTTLS, "starttls" refuses relays that do not, "ssl" uses implicit TLS and
// "none" never upgrades.
func (s *SMTPSender) dialer() *mail.Dialer {
	d := mail.NewDialer(s.cfg.Host, s.cfg.Port, s.cfg.Username, s.cfg.Password)
	d.TLSConfig = &tls.Config{
		ServerName:         s.cfg.Host,
		InsecureSkipVerify: s.cfg.InsecureSkipVerify,
	}
	switch s.cfg.TLSMode {
	case "ssl":
		d.SSL = true
	case "starttls":
		d.SSL = false
		d.StartTLSPolicy = mail.MandatoryStartTLS
	case "none":
		d.SSL = false
		d.StartTLSPolicy = mail.NoStartTLS
	}
	return d
}
