package repository

import (
	"context"
	"time"

	"marketplace-api/internal/infra"
	sqlc "marketplace-api/internal/infra/sqlc/generated"
	"marketplace-api/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type LikeWriteQueries interface {
	InsertProductLike(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertProductLikeParams) (int64, error)
	DeleteProductLike(ctx context.Context, db sqlc.DBTX, arg sqlc.DeleteProductLikeParams) (int64, error)
}

type LikeRepository struct {
	queries LikeWriteQueries
	db      sqlc.DBTX
}

func NewLikeRepository(queries LikeWriteQueries, db sqlc.DBTX) *LikeRepository {
	return &LikeRepository{
		queries: queries,
		db:      db,
	}
}

func (r *LikeRepository) Insert(ctx context.Context, productID, userID uuid.UUID, at time.Time) (bool, error) {
	n, err := r.queries.InsertProductLike(ctx, r.db, sqlc.InsertProductLikeParams{
		ID:        uuid.New(),
		ProductID: productID,
		UserID:    userID,
		CreatedAt: pgconv.TimeToPgtype(at),
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to insert product like", err)
	}
	return n > 0, nil
}

func (r *LikeRepository) Delete(ctx context.Context, productID, userID uuid.UUID) (bool, error) {
	n, err := r.queries.DeleteProductLike(ctx, r.db, sqlc.DeleteProductLikeParams{
		ProductID: productID,
		UserID:    userID,
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to delete product like", err)
	}
	return n > 0, nil
}
