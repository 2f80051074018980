//go:generate mockgen -source=booking.go -destination=../../../tests/mock/commands/booking.go

package commands

import (
	"context"
	"fmt"
	"strings"

	"refreshing-booking/internal/domain/booking"
	"refreshing-booking/internal/pkg/errs"
	"refreshing-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrMailNotConfigured = errs.New("mail transport not configured")
	ErrMailDelivery      = errs.New("mail delivery failed")
)

// DeliveryError carries the relay's own message with the password removed,
// so it can be shown to the caller.
type DeliveryError struct {
	Step    string
	Message string
	err     error
}

func (e *DeliveryError) Error() string {
	return e.Step + ": " + e.Message
}

func (e *DeliveryError) Unwrap() error {
	return e.err
}

func (e *DeliveryError) Is(target error) bool {
	return target == ErrMailDelivery
}

type BookingCommands interface {
	SendBooking(ctx context.Context, sub booking.Submission) error
}

type bookingCommandsImpl struct {
	mailer shared.Mailer
	loader shared.MailConfigLoader
	site   SiteInfo
	logger *zap.Logger
}

func NewBookingCommands(
	mailer shared.Mailer,
	loader shared.MailConfigLoader,
	site SiteInfo,
	logger *zap.Logger,
) BookingCommands {
	return &bookingCommandsImpl{
		mailer: mailer,
		loader: loader,
		site:   site,
		logger: logger,
	}
}

// SendBooking notifies the business and then confirms to the customer on one
// session. The customer mail is never sent if the business mail failed.
func (c *bookingCommandsImpl) SendBooking(ctx context.Context, sub booking.Submission) error {
	if err := sub.Validate(); err != nil {
		return errs.Mark(err, errs.ErrValidation)
	}

	mailCfg, err := c.loader.LoadMail()
	if err != nil {
		c.logger.Error("mail configuration incomplete", zap.Error(err))
		return errs.Mark(errs.Mark(err, ErrMailNotConfigured), errs.ErrConfiguration)
	}

	dispatchID := uuid.New()
	log := c.logger.With(
		zap.String("dispatch_id", dispatchID.String()),
		zap.String("service_type", sub.ServiceType),
	)

	session, err := c.mailer.Open(ctx, mailCfg)
	if err != nil {
		return c.deliveryFailure(log, "connect", err, mailCfg.Password)
	}
	defer func() {
		if closeErr := session.Close(); closeErr != nil {
			log.Warn("failed to close mail session", zap.Error(closeErr))
		}
	}()

	if err := session.Send(ctx, c.businessMail(mailCfg.From, sub)); err != nil {
		return c.deliveryFailure(log, "business notification", err, mailCfg.Password)
	}
	log.Info("business notification sent", zap.String("to", c.site.BusinessInbox))

	if err := session.Send(ctx, c.customerMail(mailCfg.From, sub)); err != nil {
		return c.deliveryFailure(log, "customer confirmation", err, mailCfg.Password)
	}
	log.Info("customer confirmation sent")

	return nil
}

func (c *bookingCommandsImpl) businessMail(from string, sub booking.Submission) shared.Mail {
	text := sub.Summary()
	if sub.BookingDetails != "" {
		text += "\n" + sub.BookingDetails
	}
	return shared.Mail{
		From:    from,
		To:      c.site.BusinessInbox,
		ReplyTo: sub.CustomerEmail,
		Subject: fmt.Sprintf("Ny bokning: %s – %s", sub.ServiceType, sub.CustomerName),
		Text:    text,
	}
}

func (c *bookingCommandsImpl) customerMail(from string, sub booking.Submission) shared.Mail {
	return shared.Mail{
		From:    from,
		To:      sub.CustomerEmail,
		ReplyTo: c.site.BusinessInbox,
		Subject: fmt.Sprintf("Bekräftelse: %s – %s", sub.ServiceType, c.site.BrandName),
		Text: fmt.Sprintf("Tack för din bokning hos %s!\n\n%s\nVi återkommer inom kort för att bekräfta tiden.",
			c.site.BrandName, sub.Summary()),
	}
}

func (c *bookingCommandsImpl) deliveryFailure(log *zap.Logger, step string, err error, password string) error {
	msg := errs.Cause(err).Error()
	if password != "" {
		msg = strings.ReplaceAll(msg, password, "***")
	}
	log.Error("mail delivery failed", zap.String("step", step), zap.String("error", msg))

	return errs.Mark(&DeliveryError{Step: step, Message: msg, err: err}, errs.ErrTransport)
}
