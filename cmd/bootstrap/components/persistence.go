package components

import (
	"marketplace-api/internal/infra/readstore"
	sqlc "marketplace-api/internal/infra/sqlc/generated"
	"marketplace-api/internal/infra/uow"
	"marketplace-api/internal/usecase/queries"
	"marketplace-api/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	repositoryModule,
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// User
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.UserReadQueries)),
		),
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
		),
		// Profile
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.ProfileReadQueries)),
		),
		fx.Annotate(
			readstore.NewProfileReadStore,
			fx.As(new(queries.ProfileReadStore)),
		),
		// Product
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.ProductReadQueries)),
		),
		fx.Annotate(
			readstore.NewProductReadStore,
			fx.As(new(queries.ProductReadStore)),
			fx.As(new(queries.ProductStateReader)),
		),
		// Chat
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.ChatReadQueries)),
		),
		fx.Annotate(
			readstore.NewChatReadStore,
			fx.As(new(queries.ChatReadStore)),
		),
		// Review
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.ReviewReadQueries)),
		),
		fx.Annotate(
			readstore.NewReviewReadStore,
			fx.As(new(queries.ReviewReadStore)),
		),
		// Like
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.LikeReadQueries)),
		),
		fx.Annotate(
			readstore.NewLikeReadStore,
			fx.As(new(queries.LikeReadStore)),
		),
	),
)

// Write-side repositories are built per transaction inside the unit of work.
var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		fx.Annotate(
			uow.NewPostgresUoW,
			fx.As(new(shared.UnitOfWork)),
		),
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *sqlc.Queries {
	return sqlc.New()
}

func NewDBTX(pool *pgxpool.Pool) sqlc.DBTX {
	return pool
}
