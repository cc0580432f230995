package email

import "fmt"

// Provider names accepted by Config.Provider.
const (
	ProviderPostmark = "postmark"
	ProviderSMTP     = "smtp"
	ProviderDev      = "dev"
)

// Config holds email provider configuration.
// Only the fields of the selected provider are required; the dev provider
// needs nothing but a directory so local runs work without credentials.
type Config struct {
	Provider string `env:"EMAIL_PROVIDER" envDefault:"dev"`

	PostmarkServerToken  string `env:"POSTMARK_SERVER_TOKEN"`
	PostmarkAccountToken string `env:"POSTMARK_ACCOUNT_TOKEN"`

	SMTPHost     string `env:"SMTP_HOST"`
	SMTPPort     int    `env:"SMTP_PORT" envDefault:"587"`
	SMTPUsername string `env:"SMTP_USERNAME"`
	SMTPPassword string `env:"SMTP_PASSWORD"`
	SMTPTLSMode  string `env:"SMTP_TLS_MODE" envDefault:"auto"` // auto | starttls | ssl | none

	DevDir string `env:"EMAIL_DEV_DIR" envDefault:"./tmp/emails"`
}

// New builds the Sender selected by cfg.Provider.
func New(cfg Config) (Sender, error) {
	switch cfg.Provider {
	case ProviderPostmark:
		return NewPostmarkSender(cfg.PostmarkServerToken, cfg.PostmarkAccountToken)
	case ProviderSMTP:
		return NewSMTPSender(SMTPConfig{
			Host:     cfg.SMTPHost,
			Port:     cfg.SMTPPort,
			Username: cfg.SMTPUsername,
			Password: cfg.SMTPPassword,
			TLSMode:  cfg.SMTPTLSMode,
		})
	case ProviderDev, "":
		return NewDevSender(cfg.DevDir), nil
	default:
		return nil, fmt.Errorf("%w: unknown provider %q", ErrInvalidConfig, cfg.Provider)
	}
}

// MustNew works like New but panics on invalid configuration.
func MustNew(cfg Config) Sender {
	s, err := New(cfg)
	if err != nil {
		panic(err)
	}
	return s
}
