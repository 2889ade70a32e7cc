package queries

import (
	"context"
	"strings"
	"time"

	"marketplace-api/internal/domain/product"
	"marketplace-api/internal/infra"
	"marketplace-api/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrEmptySearchKeyword = errs.NewKind("search keyword cannot be empty", errs.ErrValidation)

type ProductReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ProductView, error)
	ListActiveFirstPage(ctx context.Context, limit int32) ([]*ProductListItem, error)
	ListActiveKeyset(ctx context.Context, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*ProductListItem, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*ProductListItem, error)
	Search(ctx context.Context, keyword string, limit int32) ([]*ProductListItem, error)
}

type ProductQueries interface {
	Get(ctx context.Context, id uuid.UUID) (*ProductView, error)
	ListActive(ctx context.Context, cursor *Cursor, limit int) ([]*ProductListItem, *Cursor, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*ProductListItem, error)
	Search(ctx context.Context, keyword string, limit int) ([]*ProductListItem, error)
}

type productQueriesImpl struct {
	store ProductReadStore
}

func NewProductQueries(store ProductReadStore) ProductQueries {
	return &productQueriesImpl{store: store}
}

func (q *productQueriesImpl) Get(ctx context.Context, id uuid.UUID) (*ProductView, error) {
	v, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, product.ErrProductNotFound
		}
		return nil, err
	}
	return v, nil
}

func (q *productQueriesImpl) ListActive(ctx context.Context, cursor *Cursor, limit int) ([]*ProductListItem, *Cursor, error) {
	limit = ValidateLimit(limit)

	var rows []*ProductListItem
	var err error
	if cursor.IsZero() {
		rows, err = q.store.ListActiveFirstPage(ctx, int32(limit+1))
	} else {
		lastCreatedAt, lastID, derr := cursor.decode()
		if derr != nil {
			return nil, nil, derr
		}
		rows, err = q.store.ListActiveKeyset(ctx, lastCreatedAt, lastID, int32(limit+1))
	}
	if err != nil {
		return nil, nil, err
	}

	rows, next := trimPage(rows, limit, func(p *ProductListItem) (time.Time, uuid.UUID) {
		return p.CreatedAt, p.ID
	})
	return rows, next, nil
}

func (q *productQueriesImpl) ListByUser(ctx context.Context, userID uuid.UUID) ([]*ProductListItem, error) {
	return q.store.ListByUser(ctx, userID)
}

func (q *productQueriesImpl) Search(ctx context.Context, keyword string, limit int) ([]*ProductListItem, error) {
	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		return nil, ErrEmptySearchKeyword
	}
	return q.store.Search(ctx, escapeLike(keyword), int32(ValidateLimit(limit)))
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike makes user input match literally inside an ILIKE pattern.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
