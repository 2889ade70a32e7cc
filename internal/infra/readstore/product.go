package readstore

import (
	"context"
	"time"

	"marketplace-api/internal/infra"
	sqlc "marketplace-api/internal/infra/sqlc/generated"
	"marketplace-api/internal/pkg/pgconv"
	"marketplace-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type ProductReadQueries interface {
	GetProductByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Products, error)
	GetProductView(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetProductViewRow, error)
	ListActiveProductsFirstPage(ctx context.Context, db sqlc.DBTX, lim int32) ([]sqlc.Products, error)
	ListActiveProductsKeyset(ctx context.Context, db sqlc.DBTX, arg sqlc.ListActiveProductsKeysetParams) ([]sqlc.Products, error)
	ListProductsByUser(ctx context.Context, db sqlc.DBTX, userID uuid.UUID) ([]sqlc.Products, error)
	SearchProducts(ctx context.Context, db sqlc.DBTX, arg sqlc.SearchProductsParams) ([]sqlc.Products, error)
}

type ProductReadStore struct {
	queries ProductReadQueries
	db      sqlc.DBTX
}

func NewProductReadStore(queries ProductReadQueries, db sqlc.DBTX) *ProductReadStore {
	return &ProductReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ProductReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ProductView, error) {
	row, err := r.queries.GetProductView(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("product not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get product view", err)
	}
	return &queries.ProductView{
		ID:             row.ID,
		SellerID:       row.UserID,
		SellerNickname: pgconv.StringPtrFromPgtype(row.SellerNickname),
		Title:          row.Title,
		Content:        row.Content,
		Price:          row.Price,
		Location:       row.Location,
		ImageURL:       pgconv.StringPtrFromPgtype(row.ImageUrl),
		Status:         row.Status,
		LikeCount:      row.LikeCount,
		CreatedAt:      pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:      pgconv.TimeFromPgtype(row.UpdatedAt),
	}, nil
}

// FindRaw skips the seller and like joins. Commands only need ownership and status.
func (r *ProductReadStore) FindRaw(ctx context.Context, id uuid.UUID) (*queries.ProductListItem, error) {
	row, err := r.queries.GetProductByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("product not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get product", err)
	}
	return toProductListItem(row), nil
}

func (r *ProductReadStore) ListActiveFirstPage(ctx context.Context, limit int32) ([]*queries.ProductListItem, error) {
	rows, err := r.queries.ListActiveProductsFirstPage(ctx, r.db, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list active products", err)
	}
	return toProductListItems(rows), nil
}

func (r *ProductReadStore) ListActiveKeyset(ctx context.Context, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.ProductListItem, error) {
	rows, err := r.queries.ListActiveProductsKeyset(ctx, r.db, sqlc.ListActiveProductsKeysetParams{
		CreatedAt: pgconv.TimeToPgtype(lastCreatedAt),
		ID:        lastID,
		Lim:       limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list active products keyset", err)
	}
	return toProductListItems(rows), nil
}

func (r *ProductReadStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]*queries.ProductListItem, error) {
	rows, err := r.queries.ListProductsByUser(ctx, r.db, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list products by user", err)
	}
	return toProductListItems(rows), nil
}

func (r *ProductReadStore) Search(ctx context.Context, keyword string, limit int32) ([]*queries.ProductListItem, error) {
	rows, err := r.queries.SearchProducts(ctx, r.db, sqlc.SearchProductsParams{
		Keyword: keyword,
		Lim:     limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to search products", err)
	}
	return toProductListItems(rows), nil
}

func toProductListItems(rows []sqlc.Products) []*queries.ProductListItem {
	result := make([]*queries.ProductListItem, len(rows))
	for i, row := range rows {
		result[i] = toProductListItem(row)
	}
	return result
}

func toProductListItem(row sqlc.Products) *queries.ProductListItem {
	return &queries.ProductListItem{
		ID:        row.ID,
		SellerID:  row.UserID,
		Title:     row.Title,
		Price:     row.Price,
		Location:  row.Location,
		ImageURL:  pgconv.StringPtrFromPgtype(row.ImageUrl),
		Status:    row.Status,
		CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
	}
}
