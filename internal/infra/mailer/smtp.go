package mailer

import (
	"context"
	"time"

	"refreshing-booking/internal/infra"
	"refreshing-booking/internal/pkg/config"
	"refreshing-booking/internal/usecase/shared"

	"github.com/wneessen/go-mail"
	"go.uber.org/zap"
)

type SMTPMailer struct {
	timeout time.Duration
	logger  *zap.Logger
}

func NewSMTPMailer(cfg config.Config, logger *zap.Logger) *SMTPMailer {
	return &SMTPMailer{
		timeout: cfg.Site.SMTPTimeout,
		logger:  logger.Named("smtp"),
	}
}

// Open dials the relay and authenticates with whichever of PLAIN or LOGIN
// it offers. Port 465 uses implicit TLS, any other port upgrades with
// STARTTLS when the server offers it.
func (m *SMTPMailer) Open(ctx context.Context, cfg config.MailConfig) (shared.MailSession, error) {
	opts := []mail.Option{
		mail.WithPort(cfg.Port),
		mail.WithSMTPAuthCustom(newRelayAuth(cfg.User, cfg.Password)),
	}
	if m.timeout > 0 {
		opts = append(opts, mail.WithTimeout(m.timeout))
	}
	if cfg.ImplicitTLS() {
		opts = append(opts, mail.WithSSL())
	} else {
		opts = append(opts, mail.WithTLSPolicy(mail.TLSOpportunistic))
	}

	client, err := mail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, infra.WrapTransportErr(m.logger, infra.KindClientSetup, "failed to create smtp client", err)
	}
	if err := client.DialWithContext(ctx); err != nil {
		return nil, infra.WrapTransportErr(m.logger, infra.KindDial, "failed to connect to smtp relay", err)
	}

	m.logger.Debug("smtp session opened",
		zap.String("host", cfg.Host),
		zap.Int("port", cfg.Port),
		zap.Bool("implicit_tls", cfg.ImplicitTLS()),
	)
	return &smtpSession{client: client, logger: m.logger}, nil
}

type smtpSession struct {
	client *mail.Client
	logger *zap.Logger
}

func (s *smtpSession) Send(ctx context.Context, m shared.Mail) error {
	if err := ctx.Err(); err != nil {
		return infra.WrapTransportErr(s.logger, infra.KindSend, "send cancelled", err)
	}

	msg, err := buildMessage(m)
	if err != nil {
		return infra.WrapTransportErr(s.logger, infra.KindEnvelope, "invalid mail envelope", err)
	}
	if err := s.client.Send(msg); err != nil {
		return infra.WrapTransportErr(s.logger, infra.KindSend, "failed to send mail", err)
	}
	return nil
}

func (s *smtpSession) Close() error {
	return s.client.Close()
}

func buildMessage(m shared.Mail) (*mail.Msg, error) {
	msg := mail.NewMsg()
	if err := msg.From(m.From); err != nil {
		return nil, err
	}
	if err := msg.To(m.To); err != nil {
		return nil, err
	}
	if m.ReplyTo != "" {
		if err := msg.ReplyTo(m.ReplyTo); err != nil {
			return nil, err
		}
	}
	msg.Subject(m.Subject)
	msg.SetBodyString(mail.TypeTextPlain, m.Text)
	msg.SetDate()
	msg.SetMessageID()
	return msg, nil
}
