//go:build unit || e2e

package builder

import (
	"time"

	"marketplace-api/internal/domain/product"
	reqdto "marketplace-api/internal/handler/dto/request"
	"marketplace-api/internal/usecase/queries"
	"marketplace-api/internal/usecase/shared"

	"github.com/google/uuid"
)

type ProductBuilder struct {
	ID        uuid.UUID
	SellerID  uuid.UUID
	Title     string
	Content   string
	Price     int64
	Location  string
	ImageURL  *string
	Status    product.Status
	CreatedAt time.Time
}

func NewProductBuilder() *ProductBuilder {
	return &ProductBuilder{
		ID:        uuid.New(),
		SellerID:  uuid.New(),
		Title:     "Used bicycle",
		Content:   "Ridden for one summer, new tires.",
		Price:     120000,
		Location:  "Mapo-gu, Seoul",
		Status:    product.StatusActive,
		CreatedAt: time.Date(2025, 4, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (p *ProductBuilder) With(mutate func(*ProductBuilder)) *ProductBuilder {
	mutate(p)
	return p
}

func (p *ProductBuilder) fields() (product.Fields, error) {
	title, err := product.NewTitle(p.Title)
	if err != nil {
		return product.Fields{}, err
	}
	content, err := product.NewContent(p.Content)
	if err != nil {
		return product.Fields{}, err
	}
	price, err := product.NewPrice(p.Price)
	if err != nil {
		return product.Fields{}, err
	}
	location, err := product.NewLocation(p.Location)
	if err != nil {
		return product.Fields{}, err
	}
	return product.Fields{Title: title, Content: content, Price: price, Location: location, ImageURL: p.ImageURL}, nil
}

// BuildDomain creates a fresh listing through the domain constructor.
func (p *ProductBuilder) BuildDomain() (*product.Product, error) {
	f, err := p.fields()
	if err != nil {
		return nil, err
	}
	return product.NewProduct(p.SellerID, f, p.CreatedAt)
}

// BuildStored returns the product as loaded from the database, keeping ID and Status.
func (p *ProductBuilder) BuildStored() *product.Product {
	f, err := p.fields()
	if err != nil {
		panic(err)
	}
	return product.ReconstructProduct(p.ID, p.SellerID, f, p.Status, p.CreatedAt, p.CreatedAt)
}

func (p *ProductBuilder) BuildSnapshot() *shared.ProductSnapshot {
	return &shared.ProductSnapshot{
		ID:       p.ID,
		SellerID: p.SellerID,
		Status:   p.Status.String(),
	}
}

func (p *ProductBuilder) BuildView() *queries.ProductView {
	return &queries.ProductView{
		ID:        p.ID,
		SellerID:  p.SellerID,
		Title:     p.Title,
		Content:   p.Content,
		Price:     p.Price,
		Location:  p.Location,
		ImageURL:  p.ImageURL,
		Status:    p.Status.String(),
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.CreatedAt,
	}
}

func (p *ProductBuilder) BuildListItem() *queries.ProductListItem {
	return &queries.ProductListItem{
		ID:        p.ID,
		SellerID:  p.SellerID,
		Title:     p.Title,
		Price:     p.Price,
		Location:  p.Location,
		ImageURL:  p.ImageURL,
		Status:    p.Status.String(),
		CreatedAt: p.CreatedAt,
	}
}

func (p *ProductBuilder) BuildCreateRequestDTO() reqdto.CreateProductRequest {
	price := p.Price
	return reqdto.CreateProductRequest{
		Title:    p.Title,
		Content:  p.Content,
		Price:    &price,
		Location: p.Location,
		ImageURL: p.ImageURL,
	}
}

func (p *ProductBuilder) AsSold() *ProductBuilder {
	p.Status = product.StatusSold
	return p
}
