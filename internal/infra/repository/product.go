package repository

import (
	"context"
	"time"

	"marketplace-api/internal/domain/product"
	"marketplace-api/internal/infra"
	"marketplace-api/internal/infra/repository/converter"
	sqlc "marketplace-api/internal/infra/sqlc/generated"
	"marketplace-api/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type ProductWriteQueries interface {
	CreateProduct(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateProductParams) error
	GetProductByIDForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Products, error)
	UpdateProduct(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateProductParams) (int64, error)
	UpdateProductStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateProductStatusParams) (int64, error)
	DeleteProduct(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
}

type ProductRepository struct {
	queries ProductWriteQueries
	db      sqlc.DBTX
}

func NewProductRepository(queries ProductWriteQueries, db sqlc.DBTX) *ProductRepository {
	return &ProductRepository{
		queries: queries,
		db:      db,
	}
}

func (r *ProductRepository) Create(ctx context.Context, p *product.Product) error {
	if err := r.queries.CreateProduct(ctx, r.db, converter.ProductToCreateParams(p)); err != nil {
		return infra.WrapRepoErr("failed to create product", err)
	}
	return nil
}

func (r *ProductRepository) FindForUpdate(ctx context.Context, id uuid.UUID) (*product.Product, error) {
	row, err := r.queries.GetProductByIDForUpdate(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("product not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock product", err)
	}
	return converter.ProductFromRow(row)
}

func (r *ProductRepository) Update(ctx context.Context, p *product.Product) error {
	n, err := r.queries.UpdateProduct(ctx, r.db, converter.ProductToUpdateParams(p))
	if err != nil {
		return infra.WrapRepoErr("failed to update product", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("product not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ProductRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status product.Status, at time.Time) error {
	n, err := r.queries.UpdateProductStatus(ctx, r.db, sqlc.UpdateProductStatusParams{
		ID:        id,
		Status:    status.String(),
		UpdatedAt: pgconv.TimeToPgtype(at),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update product status", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("product not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	n, err := r.queries.DeleteProduct(ctx, r.db, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete product", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("product not found", nil, infra.KindNotFound)
	}
	return nil
}
