package readstore

import (
	"context"
	"math"
	"time"

	"marketplace-api/internal/infra"
	sqlc "marketplace-api/internal/infra/sqlc/generated"
	"marketplace-api/internal/pkg/pgconv"
	"marketplace-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type ReviewReadQueries interface {
	GetReviewView(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetReviewViewRow, error)
	GetReviewByProductAndReviewer(ctx context.Context, db sqlc.DBTX, arg sqlc.GetReviewByProductAndReviewerParams) (sqlc.Reviews, error)
	ListReviewsByRevieweeFirstPage(ctx context.Context, db sqlc.DBTX, arg sqlc.ListReviewsByRevieweeFirstPageParams) ([]sqlc.ListReviewsByRevieweeFirstPageRow, error)
	ListReviewsByRevieweeKeyset(ctx context.Context, db sqlc.DBTX, arg sqlc.ListReviewsByRevieweeKeysetParams) ([]sqlc.ListReviewsByRevieweeKeysetRow, error)
	GetUserRatingSummary(ctx context.Context, db sqlc.DBTX, revieweeID uuid.UUID) (sqlc.GetUserRatingSummaryRow, error)
	ReviewExists(ctx context.Context, db sqlc.DBTX, arg sqlc.ReviewExistsParams) (bool, error)
}

type ReviewReadStore struct {
	queries ReviewReadQueries
	db      sqlc.DBTX
}

func NewReviewReadStore(queries ReviewReadQueries, db sqlc.DBTX) *ReviewReadStore {
	return &ReviewReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ReviewReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ReviewView, error) {
	row, err := r.queries.GetReviewView(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("review not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get review view by id", err)
	}
	return toReviewView(reviewRow(row)), nil
}

func (r *ReviewReadStore) FindByProductAndReviewer(ctx context.Context, productID, reviewerID uuid.UUID) (*queries.ReviewView, error) {
	row, err := r.queries.GetReviewByProductAndReviewer(ctx, r.db, sqlc.GetReviewByProductAndReviewerParams{
		ProductID:  productID,
		ReviewerID: reviewerID,
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("review not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get review by product and reviewer", err)
	}
	return toReviewView(reviewRow{
		ID:          row.ID,
		ProductID:   row.ProductID,
		ReviewerID:  row.ReviewerID,
		RevieweeID:  row.RevieweeID,
		Rating:      row.Rating,
		Comment:     row.Comment,
		IsAnonymous: row.IsAnonymous,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}), nil
}

func (r *ReviewReadStore) ListByRevieweeFirstPage(ctx context.Context, revieweeID uuid.UUID, limit int32) ([]*queries.ReviewView, error) {
	rows, err := r.queries.ListReviewsByRevieweeFirstPage(ctx, r.db, sqlc.ListReviewsByRevieweeFirstPageParams{
		RevieweeID: revieweeID,
		Lim:        limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get reviews first page by reviewee", err)
	}
	result := make([]*queries.ReviewView, len(rows))
	for i, row := range rows {
		result[i] = toReviewView(reviewRow(row))
	}
	return result, nil
}

func (r *ReviewReadStore) ListByRevieweeKeyset(ctx context.Context, revieweeID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.ReviewView, error) {
	rows, err := r.queries.ListReviewsByRevieweeKeyset(ctx, r.db, sqlc.ListReviewsByRevieweeKeysetParams{
		RevieweeID: revieweeID,
		CreatedAt:  pgconv.TimeToPgtype(lastCreatedAt),
		ID:         lastID,
		Lim:        limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get reviews keyset by reviewee", err)
	}
	result := make([]*queries.ReviewView, len(rows))
	for i, row := range rows {
		result[i] = toReviewView(reviewRow(row))
	}
	return result, nil
}

func (r *ReviewReadStore) RatingSummary(ctx context.Context, userID uuid.UUID) (*queries.RatingSummary, error) {
	row, err := r.queries.GetUserRatingSummary(ctx, r.db, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get rating summary", err)
	}
	return &queries.RatingSummary{
		UserID:  userID,
		Average: math.Round(row.AverageRating*10) / 10,
		Count:   row.ReviewCount,
	}, nil
}

func (r *ReviewReadStore) Exists(ctx context.Context, productID, reviewerID uuid.UUID) (bool, error) {
	ok, err := r.queries.ReviewExists(ctx, r.db, sqlc.ReviewExistsParams{
		ProductID:  productID,
		ReviewerID: reviewerID,
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to check review existence", err)
	}
	return ok, nil
}

// reviewRow has the field set shared by every review view query, so the
// generated row types convert to it directly.
type reviewRow struct {
	ID               uuid.UUID          `json:"id"`
	ProductID        uuid.UUID          `json:"product_id"`
	ReviewerID       uuid.UUID          `json:"reviewer_id"`
	RevieweeID       uuid.UUID          `json:"reviewee_id"`
	Rating           int32              `json:"rating"`
	Comment          pgtype.Text        `json:"comment"`
	IsAnonymous      bool               `json:"is_anonymous"`
	CreatedAt        pgtype.Timestamptz `json:"created_at"`
	UpdatedAt        pgtype.Timestamptz `json:"updated_at"`
	ReviewerNickname pgtype.Text        `json:"reviewer_nickname"`
	ProductTitle     string             `json:"product_title"`
}

func toReviewView(row reviewRow) *queries.ReviewView {
	reviewerID := row.ReviewerID
	return &queries.ReviewView{
		ID:               row.ID,
		ProductID:        row.ProductID,
		ProductTitle:     row.ProductTitle,
		ReviewerID:       &reviewerID,
		ReviewerNickname: pgconv.StringPtrFromPgtype(row.ReviewerNickname),
		RevieweeID:       row.RevieweeID,
		Rating:           row.Rating,
		Comment:          pgconv.StringPtrFromPgtype(row.Comment),
		IsAnonymous:      row.IsAnonymous,
		CreatedAt:        pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:        pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}

type LikeReadQueries interface {
	CountProductLikes(ctx context.Context, db sqlc.DBTX, productID uuid.UUID) (int64, error)
	HasUserLikedProduct(ctx context.Context, db sqlc.DBTX, arg sqlc.HasUserLikedProductParams) (bool, error)
}

type LikeReadStore struct {
	queries LikeReadQueries
	db      sqlc.DBTX
}

func NewLikeReadStore(queries LikeReadQueries, db sqlc.DBTX) *LikeReadStore {
	return &LikeReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *LikeReadStore) Count(ctx context.Context, productID uuid.UUID) (int64, error) {
	n, err := r.queries.CountProductLikes(ctx, r.db, productID)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count product likes", err)
	}
	return n, nil
}

func (r *LikeReadStore) HasLiked(ctx context.Context, productID, userID uuid.UUID) (bool, error) {
	ok, err := r.queries.HasUserLikedProduct(ctx, r.db, sqlc.HasUserLikedProductParams{
		ProductID: productID,
		UserID:    userID,
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to check product like", err)
	}
	return ok, nil
}
