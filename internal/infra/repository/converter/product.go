package converter

import (
	"marketplace-api/internal/domain/product"
	sqlc "marketplace-api/internal/infra/sqlc/generated"
	"marketplace-api/internal/pkg/pgconv"
)

func ProductToCreateParams(p *product.Product) sqlc.CreateProductParams {
	return sqlc.CreateProductParams{
		ID:        p.ID(),
		UserID:    p.SellerID(),
		Title:     p.Title().String(),
		Content:   p.Content().String(),
		Price:     p.Price().Value(),
		Location:  p.Location().String(),
		ImageUrl:  pgconv.StringPtrToPgtype(p.ImageURL()),
		Status:    p.Status().String(),
		CreatedAt: pgconv.TimeToPgtype(p.CreatedAt()),
		UpdatedAt: pgconv.TimeToPgtype(p.UpdatedAt()),
	}
}

func ProductToUpdateParams(p *product.Product) sqlc.UpdateProductParams {
	return sqlc.UpdateProductParams{
		ID:        p.ID(),
		Title:     p.Title().String(),
		Content:   p.Content().String(),
		Price:     p.Price().Value(),
		Location:  p.Location().String(),
		ImageUrl:  pgconv.StringPtrToPgtype(p.ImageURL()),
		Status:    p.Status().String(),
		UpdatedAt: pgconv.TimeToPgtype(p.UpdatedAt()),
	}
}

func ProductFromRow(row sqlc.Products) (*product.Product, error) {
	title, err := product.NewTitle(row.Title)
	if err != nil {
		return nil, err
	}
	content, err := product.NewContent(row.Content)
	if err != nil {
		return nil, err
	}
	price, err := product.NewPrice(row.Price)
	if err != nil {
		return nil, err
	}
	location, err := product.NewLocation(row.Location)
	if err != nil {
		return nil, err
	}
	status, err := product.NewStatus(row.Status)
	if err != nil {
		return nil, err
	}
	return product.ReconstructProduct(
		row.ID, row.UserID,
		product.Fields{
			Title:    title,
			Content:  content,
			Price:    price,
			Location: location,
			ImageURL: pgconv.StringPtrFromPgtype(row.ImageUrl),
		},
		status,
		pgconv.TimeFromPgtype(row.CreatedAt), pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}
