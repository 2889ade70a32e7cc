package bootstrap

import (
	"marketplace-api/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	DBModule,
	JWTModule,
	RealtimeModule,
	StorageModule,
	components.PersistenceModule,
	components.UseCaseModule,
	components.HandlerModule,
)
