package components

import (
	"marketplace-api/internal/pkg/clock"
	"marketplace-api/internal/pkg/config"
	"marketplace-api/internal/pkg/jwt"
	"marketplace-api/internal/usecase"
	"marketplace-api/internal/usecase/commands"
	"marketplace-api/internal/usecase/queries"
	"marketplace-api/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	fx.Annotate(
		func(s *jwt.Service) *jwt.Service { return s },
		fx.As(new(commands.TokenIssuer)),
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewProfileCommands,
		commands.NewProductCommands,
		commands.NewChatCommands,
		commands.NewSaleCommands,
		commands.NewReviewCommands,
		commands.NewLikeCommands,
		func(objects shared.ObjectStore, cfg config.Config) commands.ImageCommands {
			return commands.NewImageCommands(objects, cfg.Storage.MaxUploadSize)
		},
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewProfileQueries,
		queries.NewProductQueries,
		queries.NewChatQueries,
		queries.NewReviewQueries,
		queries.NewLikeQueries,
		queries.NewEligibilityQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
