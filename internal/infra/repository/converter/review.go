package converter

import (
	"marketplace-api/internal/domain/review"
	sqlc "marketplace-api/internal/infra/sqlc/generated"
	"marketplace-api/internal/pkg/pgconv"
)

func ReviewToCreateParams(r *review.Review) sqlc.CreateReviewParams {
	return sqlc.CreateReviewParams{
		ID:          r.ID(),
		ProductID:   r.ProductID(),
		ReviewerID:  r.ReviewerID(),
		RevieweeID:  r.RevieweeID(),
		Rating:      pgconv.IntToInt32(r.Rating().Value()),
		Comment:     pgconv.StringPtrToPgtype(r.Comment().Ptr()),
		IsAnonymous: r.IsAnonymous(),
		CreatedAt:   pgconv.TimeToPgtype(r.CreatedAt()),
		UpdatedAt:   pgconv.TimeToPgtype(r.UpdatedAt()),
	}
}

func ReviewToUpdateParams(r *review.Review) sqlc.UpdateReviewParams {
	return sqlc.UpdateReviewParams{
		ID:        r.ID(),
		Rating:    pgconv.IntToInt32(r.Rating().Value()),
		Comment:   pgconv.StringPtrToPgtype(r.Comment().Ptr()),
		UpdatedAt: pgconv.TimeToPgtype(r.UpdatedAt()),
	}
}

// ReviewFromRow trusts stored values; the table constraints mirror the domain rules.
func ReviewFromRow(row sqlc.Reviews) (*review.Review, error) {
	rating, err := review.NewRating(int(row.Rating))
	if err != nil {
		return nil, err
	}
	comment, err := review.NewComment(pgconv.StringPtrFromPgtype(row.Comment))
	if err != nil {
		return nil, err
	}
	return review.ReconstructReview(
		row.ID, row.ProductID, row.ReviewerID, row.RevieweeID,
		rating, comment, row.IsAnonymous,
		pgconv.TimeFromPgtype(row.CreatedAt), pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}
