package response

import (
	"time"

	"marketplace-api/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type ProductResponse struct {
	ID             string    `json:"id"`
	SellerID       string    `json:"seller_id"`
	SellerNickname *string   `json:"seller_nickname,omitempty"`
	Title          string    `json:"title"`
	Content        string    `json:"content"`
	Price          int64     `json:"price"`
	Location       string    `json:"location"`
	ImageURL       *string   `json:"image_url,omitempty"`
	Status         string    `json:"status"`
	LikeCount      int64     `json:"like_count"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func FromProductView(v *queries.ProductView) (*ProductResponse, error) {
	var res ProductResponse
	if err := copier.CopyWithOption(&res, v, copyOpts); err != nil {
		return nil, err
	}
	return &res, nil
}

type ProductListItemResponse struct {
	ID        string    `json:"id"`
	SellerID  string    `json:"seller_id"`
	Title     string    `json:"title"`
	Price     int64     `json:"price"`
	Location  string    `json:"location"`
	ImageURL  *string   `json:"image_url,omitempty"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

func FromProductList(items []*queries.ProductListItem) ([]*ProductListItemResponse, error) {
	res := make([]*ProductListItemResponse, 0, len(items))
	if err := copier.CopyWithOption(&res, items, copyOpts); err != nil {
		return nil, err
	}
	return res, nil
}

type ProductPageResponse struct {
	Products   []*ProductListItemResponse `json:"products"`
	NextCursor *string                    `json:"next_cursor,omitempty"`
}
