package request

import (
	"marketplace-api/internal/pkg/patch"
	"marketplace-api/internal/usecase/commands"
)

type CreateProductRequest struct {
	Title    string  `json:"title" binding:"required"`
	Content  string  `json:"content" binding:"required"`
	Price    *int64  `json:"price" binding:"required"`
	Location string  `json:"location" binding:"required"`
	ImageURL *string `json:"image_url"`
}

func (r *CreateProductRequest) ToInput() commands.CreateProductInput {
	return commands.CreateProductInput{
		Title:    r.Title,
		Content:  r.Content,
		Price:    patch.Coalesce(r.Price, 0),
		Location: r.Location,
		ImageURL: patch.OptionalText(r.ImageURL),
	}
}

// UpdateProductRequest treats an explicit empty image_url as "remove the image".
type UpdateProductRequest struct {
	Title    *string `json:"title"`
	Content  *string `json:"content"`
	Price    *int64  `json:"price"`
	Location *string `json:"location"`
	ImageURL *string `json:"image_url"`
}

func (r *UpdateProductRequest) ToInput() commands.UpdateProductInput {
	in := commands.UpdateProductInput{
		Title:    r.Title,
		Content:  r.Content,
		Price:    r.Price,
		Location: r.Location,
	}
	if r.ImageURL != nil {
		in.ImageURL = patch.OptionalText(r.ImageURL)
		in.ClearImage = in.ImageURL == nil
	}
	return in
}
