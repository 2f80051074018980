package bootstrap

import (
	"refreshing-booking/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	MailerModule,
	components.UseCaseModule,
	components.HandlerModule,
)
