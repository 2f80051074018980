//go:generate mockgen -source=mail.go -destination=../../../tests/mock/shared/mail.go

package shared

import (
	"context"

	"refreshing-booking/internal/pkg/config"
)

// Mail is a single plain-text message.
type Mail struct {
	From    string
	To      string
	ReplyTo string
	Subject string
	Text    string
}

// Mailer opens one session against the relay described by cfg.
type Mailer interface {
	Open(ctx context.Context, cfg config.MailConfig) (MailSession, error)
}

// MailSession sends messages over an established connection. Send must not
// be called after Close.
type MailSession interface {
	Send(ctx context.Context, m Mail) error
	Close() error
}

type MailConfigLoader interface {
	LoadMail() (config.MailConfig, error)
}
