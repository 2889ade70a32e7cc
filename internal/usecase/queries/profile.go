package queries

import (
	"context"

	"marketplace-api/internal/domain/profile"
	"marketplace-api/internal/infra"

	"github.com/google/uuid"
)

type ProfileReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ProfileView, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*ProfileView, error)
}

type ProfileQueries interface {
	Get(ctx context.Context, id uuid.UUID) (*ProfileView, error)
	GetMany(ctx context.Context, ids []uuid.UUID) ([]*ProfileView, error)
}

type profileQueriesImpl struct {
	store ProfileReadStore
}

func NewProfileQueries(store ProfileReadStore) ProfileQueries {
	return &profileQueriesImpl{store: store}
}

func (q *profileQueriesImpl) Get(ctx context.Context, id uuid.UUID) (*ProfileView, error) {
	v, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, profile.ErrProfileNotFound
		}
		return nil, err
	}
	return v, nil
}

func (q *profileQueriesImpl) GetMany(ctx context.Context, ids []uuid.UUID) ([]*ProfileView, error) {
	if len(ids) == 0 {
		return []*ProfileView{}, nil
	}
	if len(ids) > profile.MaxBatchSize {
		return nil, profile.ErrTooManyProfileIDs
	}
	return q.store.FindByIDs(ctx, dedupe(ids))
}

func dedupe(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
