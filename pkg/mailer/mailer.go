// Package mailer wraps the SMTP transport used for admin notifications.
package mailer

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	mail "github.com/wneessen/go-mail"
)

// Config carries the SMTP connection settings.
type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	FromName string
}

// Mailer delivers multipart (HTML + plain text) email over SMTP.
type Mailer struct {
	cfg    Config
	logger zerolog.Logger
}

// New constructs a mailer. An unconfigured mailer is valid; Send reports
// ErrNotConfigured so callers can treat delivery as best-effort.
func New(cfg Config, logger zerolog.Logger) *Mailer {
	return &Mailer{
		cfg:    cfg,
		logger: logger.With().Str("component", "mailer").Logger(),
	}
}

// ErrNotConfigured indicates SMTP credentials are absent.
var ErrNotConfigured = fmt.Errorf("smtp transport not configured")

// Configured reports whether the transport has credentials to attempt delivery.
func (m *Mailer) Configured() bool {
	return m != nil && m.cfg.Host != "" && m.cfg.Username != "" && m.cfg.Password != ""
}

// Send delivers one message to the given recipients with a plain-text body and
// an HTML alternative.
func (m *Mailer) Send(ctx context.Context, to []string, subject, htmlBody, textBody string) error {
	if !m.Configured() {
		return ErrNotConfigured
	}
	if len(to) == 0 {
		return fmt.Errorf("no recipients provided")
	}

	msg := mail.NewMsg()
	if err := msg.FromFormat(m.cfg.FromName, m.cfg.Username); err != nil {
		return fmt.Errorf("invalid sender address: %w", err)
	}
	if err := msg.To(to...); err != nil {
		return fmt.Errorf("invalid recipient address: %w", err)
	}

	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextPlain, textBody)
	msg.AddAlternativeString(mail.TypeTextHTML, htmlBody)

	client, err := mail.NewClient(
		m.cfg.Host,
		mail.WithPort(m.cfg.Port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(m.cfg.Username),
		mail.WithPassword(m.cfg.Password),
		mail.WithTLSPolicy(mail.TLSMandatory),
	)
	if err != nil {
		return fmt.Errorf("failed to create smtp client: %w", err)
	}

	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	m.logger.Info().Int("recipients", len(to)).Str("subject", subject).Msg("email delivered")
	return nil
}
