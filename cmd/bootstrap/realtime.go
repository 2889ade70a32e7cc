package bootstrap

import (
	"context"
	"log/slog"

	"marketplace-api/internal/handler/api"
	"marketplace-api/internal/infra/realtime"
	"marketplace-api/internal/pkg/config"
	"marketplace-api/internal/usecase/shared"

	"go.uber.org/fx"
)

var RealtimeModule = fx.Module("realtime",
	fx.Provide(
		fx.Annotate(
			NewHub,
			fx.As(fx.Self()),
			fx.As(new(shared.EventPublisher)),
			fx.As(new(api.RoomSubscriber)),
		),
	),
)

func NewHub(lc fx.Lifecycle, cfg config.Config) *realtime.Hub {
	hub := realtime.NewHub(cfg.Realtime)
	ctx, cancel := context.WithCancel(context.Background())

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go hub.Run(ctx)
			slog.Info("Realtime hub started")
			return nil
		},
		OnStop: func(_ context.Context) error {
			cancel()
			return nil
		},
	})

	return hub
}
