//go:build unit || e2e

package builder

import (
	"time"

	domreview "marketplace-api/internal/domain/review"
	reqdto "marketplace-api/internal/handler/dto/request"
	"marketplace-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReviewBuilder struct {
	ID          uuid.UUID
	ProductID   uuid.UUID
	ReviewerID  uuid.UUID
	RevieweeID  uuid.UUID
	Rating      int
	Comment     *string
	IsAnonymous bool
	CreatedAt   time.Time
}

func NewReviewBuilder() *ReviewBuilder {
	comment := "Smooth deal, thanks!"
	return &ReviewBuilder{
		ID:         uuid.New(),
		ProductID:  uuid.New(),
		ReviewerID: uuid.New(),
		RevieweeID: uuid.New(),
		Rating:     5,
		Comment:    &comment,
		CreatedAt:  time.Date(2025, 4, 3, 18, 0, 0, 0, time.UTC),
	}
}

func (r *ReviewBuilder) With(mutate func(*ReviewBuilder)) *ReviewBuilder {
	mutate(r)
	return r
}

// Build methods
func (r *ReviewBuilder) BuildDomain() (*domreview.Review, error) {
	rating, err := domreview.NewRating(r.Rating)
	if err != nil {
		return nil, err
	}
	comment, err := domreview.NewComment(r.Comment)
	if err != nil {
		return nil, err
	}
	return domreview.NewReview(r.ProductID, r.ReviewerID, r.RevieweeID, rating, comment, r.IsAnonymous, r.CreatedAt), nil
}

// BuildStored returns the review as loaded from the database, keeping ID.
func (r *ReviewBuilder) BuildStored() *domreview.Review {
	rating, err := domreview.NewRating(r.Rating)
	if err != nil {
		panic(err)
	}
	comment, err := domreview.NewComment(r.Comment)
	if err != nil {
		panic(err)
	}
	return domreview.ReconstructReview(r.ID, r.ProductID, r.ReviewerID, r.RevieweeID, rating, comment, r.IsAnonymous, r.CreatedAt, r.CreatedAt)
}

func (r *ReviewBuilder) BuildCreateRequestDTO() reqdto.CreateReviewRequest {
	return reqdto.CreateReviewRequest{
		ProductID:   r.ProductID,
		Rating:      r.Rating,
		Comment:     r.Comment,
		IsAnonymous: r.IsAnonymous,
	}
}

func (r *ReviewBuilder) BuildUpdateRequestDTO() reqdto.UpdateReviewRequest {
	return reqdto.UpdateReviewRequest{
		Rating:  r.Rating,
		Comment: r.Comment,
	}
}

func (r *ReviewBuilder) BuildView() *queries.ReviewView {
	reviewerID := r.ReviewerID
	nickname := "buyer"
	return &queries.ReviewView{
		ID:               r.ID,
		ProductID:        r.ProductID,
		ProductTitle:     "Used bicycle",
		ReviewerID:       &reviewerID,
		ReviewerNickname: &nickname,
		RevieweeID:       r.RevieweeID,
		Rating:           int32(r.Rating),
		Comment:          r.Comment,
		IsAnonymous:      r.IsAnonymous,
		CreatedAt:        r.CreatedAt,
		UpdatedAt:        r.CreatedAt,
	}
}

// Fluent builder methods
func (r *ReviewBuilder) WithRating(rating int) *ReviewBuilder {
	r.Rating = rating
	return r
}

func (r *ReviewBuilder) WithComment(comment string) *ReviewBuilder {
	r.Comment = &comment
	return r
}

func (r *ReviewBuilder) WithoutComment() *ReviewBuilder {
	r.Comment = nil
	return r
}

func (r *ReviewBuilder) AsAnonymous() *ReviewBuilder {
	r.IsAnonymous = true
	return r
}

func (r *ReviewBuilder) ForRoom(room *ChatRoomBuilder) *ReviewBuilder {
	r.ProductID = room.ProductID
	r.ReviewerID = room.BuyerID
	r.RevieweeID = room.SellerID
	return r
}
