package repository

import (
	"context"

	"marketplace-api/internal/domain/review"
	"marketplace-api/internal/infra"
	"marketplace-api/internal/infra/repository/converter"
	sqlc "marketplace-api/internal/infra/sqlc/generated"
	"marketplace-api/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type ReviewWriteQueries interface {
	CreateReview(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateReviewParams) error
	GetReviewByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Reviews, error)
	UpdateReview(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateReviewParams) (int64, error)
	DeleteReview(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
	ReviewExists(ctx context.Context, db sqlc.DBTX, arg sqlc.ReviewExistsParams) (bool, error)
}

type ReviewRepository struct {
	queries ReviewWriteQueries
	db      sqlc.DBTX
}

func NewReviewRepository(queries ReviewWriteQueries, db sqlc.DBTX) *ReviewRepository {
	return &ReviewRepository{
		queries: queries,
		db:      db,
	}
}

func (r *ReviewRepository) Create(ctx context.Context, rev *review.Review) error {
	if err := r.queries.CreateReview(ctx, r.db, converter.ReviewToCreateParams(rev)); err != nil {
		return infra.WrapRepoErr("failed to create review", err)
	}
	return nil
}

func (r *ReviewRepository) FindByID(ctx context.Context, id uuid.UUID) (*review.Review, error) {
	row, err := r.queries.GetReviewByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("review not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get review", err)
	}
	return converter.ReviewFromRow(row)
}

func (r *ReviewRepository) Update(ctx context.Context, rev *review.Review) error {
	n, err := r.queries.UpdateReview(ctx, r.db, converter.ReviewToUpdateParams(rev))
	if err != nil {
		return infra.WrapRepoErr("failed to update review", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("review not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ReviewRepository) Delete(ctx context.Context, reviewID uuid.UUID) error {
	n, err := r.queries.DeleteReview(ctx, r.db, reviewID)
	if err != nil {
		return infra.WrapRepoErr("failed to delete review", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("review not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ReviewRepository) Exists(ctx context.Context, productID, reviewerID uuid.UUID) (bool, error) {
	ok, err := r.queries.ReviewExists(ctx, r.db, sqlc.ReviewExistsParams{
		ProductID:  productID,
		ReviewerID: reviewerID,
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to check review existence", err)
	}
	return ok, nil
}
