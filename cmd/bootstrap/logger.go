package bootstrap

import (
	"context"

	"refreshing-booking/internal/pkg/config"
	"refreshing-booking/internal/pkg/logger"

	"go.uber.org/fx"
	"go.uber.org/zap"
)

var LoggerModule = fx.Module("logger",
	fx.Provide(
		NewLogger,
	),
)

func NewLogger(lc fx.Lifecycle, cfg config.Config) (*zap.Logger, error) {
	l, err := logger.New(cfg.Log)
	if err != nil {
		return nil, err
	}
	zap.ReplaceGlobals(l)
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			// stdout sync fails on some platforms; nothing to do about it
			_ = l.Sync()
			return nil
		},
	})
	return l, nil
}
