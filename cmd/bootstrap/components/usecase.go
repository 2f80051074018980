package components

import (
	"refreshing-booking/internal/pkg/clock"
	"refreshing-booking/internal/pkg/config"
	"refreshing-booking/internal/usecase/commands"
	"refreshing-booking/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	// availability follows the business's wall clock, not the host's
	func(cfg config.Config) clock.Clock {
		return clock.NewRealClockIn(cfg.Site.Location())
	},
	commands.NewSiteInfo,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewBookingCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewBookingQueries,
	),
)
