// Package mail provides the outbound email transport. Delivery failures are
// the caller's concern only as far as logging; nothing in the request path
// depends on a message actually going out.
package mail

import (
	"context"

	"github.com/sponsvisa/sponsvisa-api/internal/config"
	"go.uber.org/zap"
)

// Mailer delivers a single plain-text message.
type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}

// New returns an SMTP-backed mailer when a host is configured, otherwise a
// log-only sender for local development.
func New(cfg config.SMTPConfig, log *zap.Logger) Mailer {
	if cfg.Host == "" {
		return &LogMailer{log: log}
	}
	return NewSMTPMailer(cfg)
}

// LogMailer writes outbound messages to the log instead of delivering them.
type LogMailer struct {
	log *zap.Logger
}

// Send logs the message and reports success.
func (m *LogMailer) Send(_ context.Context, to, subject, body string) error {
	m.log.Info("mail (log-only)",
		zap.String("to", to),
		zap.String("subject", subject),
		zap.String("body", body),
	)
	return nil
}
