package request

import (
	"marketplace-api/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateReviewRequest struct {
	ProductID   uuid.UUID `json:"product_id" binding:"required"`
	Rating      int       `json:"rating" binding:"required,min=1,max=5"`
	Comment     *string   `json:"comment" binding:"omitempty,max=1000"`
	IsAnonymous bool      `json:"is_anonymous"`
}

func (r *CreateReviewRequest) ToInput() commands.CreateReviewInput {
	return commands.CreateReviewInput{
		ProductID:   r.ProductID,
		Rating:      r.Rating,
		Comment:     r.Comment,
		IsAnonymous: r.IsAnonymous,
	}
}

type UpdateReviewRequest struct {
	Rating  int     `json:"rating" binding:"required,min=1,max=5"`
	Comment *string `json:"comment" binding:"omitempty,max=1000"`
}

func (r *UpdateReviewRequest) ToInput() commands.UpdateReviewInput {
	return commands.UpdateReviewInput{
		Rating:  r.Rating,
		Comment: r.Comment,
	}
}
