package bootstrap

import (
	"marketplace-api/internal/handler/api"
	"marketplace-api/internal/infra/storage"
	"marketplace-api/internal/pkg/clock"
	"marketplace-api/internal/pkg/config"
	"marketplace-api/internal/usecase/shared"

	"go.uber.org/fx"
)

var StorageModule = fx.Module("storage",
	fx.Provide(
		fx.Annotate(
			NewObjectStore,
			fx.As(new(shared.ObjectStore)),
			fx.As(new(api.ObjectOpener)),
		),
	),
)

func NewObjectStore(cfg config.Config, clk clock.Clock) (*storage.LocalStore, error) {
	return storage.NewLocalStore(cfg.Storage, clk)
}
