package queries

import (
	"context"
	"time"

	"marketplace-api/internal/domain/review"
	"marketplace-api/internal/infra"

	"github.com/google/uuid"
)

type ReviewReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ReviewView, error)
	FindByProductAndReviewer(ctx context.Context, productID, reviewerID uuid.UUID) (*ReviewView, error)
	ListByRevieweeFirstPage(ctx context.Context, revieweeID uuid.UUID, limit int32) ([]*ReviewView, error)
	ListByRevieweeKeyset(ctx context.Context, revieweeID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*ReviewView, error)
	RatingSummary(ctx context.Context, userID uuid.UUID) (*RatingSummary, error)
	Exists(ctx context.Context, productID, reviewerID uuid.UUID) (bool, error)
}

type ReviewQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ReviewView, error)
	// ByProductAndReviewer returns nil without error when the reviewer has not
	// reviewed the product yet.
	ByProductAndReviewer(ctx context.Context, productID, reviewerID uuid.UUID) (*ReviewView, error)
	ListByReviewee(ctx context.Context, userID uuid.UUID, cursor *Cursor, limit int) ([]*ReviewView, *Cursor, error)
	AverageRating(ctx context.Context, userID uuid.UUID) (*RatingSummary, error)
}

type reviewQueriesImpl struct {
	repo ReviewReadStore
}

func NewReviewQueries(repo ReviewReadStore) ReviewQueries {
	return &reviewQueriesImpl{repo: repo}
}

func (q *reviewQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ReviewView, error) {
	rv, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, review.ErrReviewNotFound
		}
		return nil, err
	}
	rv.Anonymize()
	return rv, nil
}

func (q *reviewQueriesImpl) ByProductAndReviewer(ctx context.Context, productID, reviewerID uuid.UUID) (*ReviewView, error) {
	rv, err := q.repo.FindByProductAndReviewer(ctx, productID, reviewerID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return rv, nil
}

func (q *reviewQueriesImpl) ListByReviewee(ctx context.Context, userID uuid.UUID, cursor *Cursor, limit int) ([]*ReviewView, *Cursor, error) {
	limit = ValidateLimit(limit)
	var rows []*ReviewView
	var err error
	if cursor.IsZero() {
		rows, err = q.repo.ListByRevieweeFirstPage(ctx, userID, int32(limit+1))
	} else {
		lastCreatedAt, lastID, derr := cursor.decode()
		if derr != nil {
			return nil, nil, derr
		}
		rows, err = q.repo.ListByRevieweeKeyset(ctx, userID, lastCreatedAt, lastID, int32(limit+1))
	}
	if err != nil {
		return nil, nil, err
	}

	rows, next := trimPage(rows, limit, func(r *ReviewView) (time.Time, uuid.UUID) {
		return r.CreatedAt, r.ID
	})
	for _, rv := range rows {
		rv.Anonymize()
	}
	return rows, next, nil
}

func (q *reviewQueriesImpl) AverageRating(ctx context.Context, userID uuid.UUID) (*RatingSummary, error) {
	return q.repo.RatingSummary(ctx, userID)
}
