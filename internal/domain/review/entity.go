package review

import (
	"time"

	"marketplace-api/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrReviewNotFound      = errs.NewKind("review not found", errs.ErrNotFound)
	ErrNotReviewer         = errs.NewKind("only the reviewer can modify this review", errs.ErrPermissionDenied)
	ErrReviewAlreadyExists = errs.NewKind("review already exists for this product", errs.ErrConflict)
)

type Review struct {
	id          uuid.UUID
	productID   uuid.UUID
	reviewerID  uuid.UUID
	revieweeID  uuid.UUID
	rating      Rating
	comment     Comment
	isAnonymous bool
	createdAt   time.Time
	updatedAt   time.Time
}

// NewReview is only reachable through an allowed Decision; see DecideEligibility.
func NewReview(productID, reviewerID, revieweeID uuid.UUID, rating Rating, comment Comment, isAnonymous bool, now time.Time) *Review {
	return &Review{
		id:          uuid.New(),
		productID:   productID,
		reviewerID:  reviewerID,
		revieweeID:  revieweeID,
		rating:      rating,
		comment:     comment,
		isAnonymous: isAnonymous,
		createdAt:   now,
		updatedAt:   now,
	}
}

func ReconstructReview(
	id, productID, reviewerID, revieweeID uuid.UUID,
	rating Rating,
	comment Comment,
	isAnonymous bool,
	createdAt, updatedAt time.Time,
) *Review {
	return &Review{
		id:          id,
		productID:   productID,
		reviewerID:  reviewerID,
		revieweeID:  revieweeID,
		rating:      rating,
		comment:     comment,
		isAnonymous: isAnonymous,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func (r *Review) Edit(actor uuid.UUID, rating Rating, comment Comment, now time.Time) error {
	if actor != r.reviewerID {
		return ErrNotReviewer
	}
	r.rating = rating
	r.comment = comment
	r.updatedAt = now
	return nil
}

func (r *Review) CanDelete(actor uuid.UUID, isAdmin bool) bool {
	return isAdmin || actor == r.reviewerID
}

func (r *Review) ID() uuid.UUID         { return r.id }
func (r *Review) ProductID() uuid.UUID  { return r.productID }
func (r *Review) ReviewerID() uuid.UUID { return r.reviewerID }
func (r *Review) RevieweeID() uuid.UUID { return r.revieweeID }
func (r *Review) Rating() Rating        { return r.rating }
func (r *Review) Comment() Comment      { return r.comment }
func (r *Review) IsAnonymous() bool     { return r.isAnonymous }
func (r *Review) CreatedAt() time.Time  { return r.createdAt }
func (r *Review) UpdatedAt() time.Time  { return r.updatedAt }
