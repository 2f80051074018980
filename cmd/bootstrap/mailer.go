package bootstrap

import (
	"refreshing-booking/internal/infra/mailer"
	"refreshing-booking/internal/pkg/config"
	"refreshing-booking/internal/usecase/shared"

	"go.uber.org/fx"
	"go.uber.org/zap"
)

var MailerModule = fx.Module("mailer",
	fx.Provide(
		fx.Annotate(
			mailer.NewSMTPMailer,
			fx.As(new(shared.Mailer)),
		),
		fx.Annotate(
			config.NewEnvMailConfigLoader,
			fx.As(new(shared.MailConfigLoader)),
		),
	),
	fx.Invoke(checkMailConfig),
)

// checkMailConfig only warns: the site keeps serving and each submission
// reports the fault on its own.
func checkMailConfig(loader shared.MailConfigLoader, logger *zap.Logger) {
	cfg, err := loader.LoadMail()
	if err != nil {
		logger.Warn("outbound mail is not configured; submissions will fail", zap.Error(err))
		return
	}
	logger.Info("outbound mail configured",
		zap.String("host", cfg.Host),
		zap.Int("port", cfg.Port),
		zap.Bool("implicit_tls", cfg.ImplicitTLS()),
	)
}
