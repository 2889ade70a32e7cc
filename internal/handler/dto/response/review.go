package response

import (
	"marketplace-api/internal/usecase/queries"
)

type ReviewPageResponse struct {
	Reviews    []*queries.ReviewView `json:"reviews"`
	NextCursor *string               `json:"next_cursor,omitempty"`
}

func NewReviewPage(items []*queries.ReviewView, next *queries.Cursor) *ReviewPageResponse {
	if items == nil {
		items = []*queries.ReviewView{}
	}
	return &ReviewPageResponse{Reviews: items, NextCursor: cursorString(next)}
}

type ConfirmedBuyerResponse struct {
	ProductID string  `json:"product_id"`
	BuyerID   *string `json:"buyer_id"`
}
