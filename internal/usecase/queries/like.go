package queries

import (
	"context"

	"github.com/google/uuid"
)

type LikeReadStore interface {
	Count(ctx context.Context, productID uuid.UUID) (int64, error)
	HasLiked(ctx context.Context, productID, userID uuid.UUID) (bool, error)
}

type LikeQueries interface {
	// Status reports Liked=false when actorID is nil.
	Status(ctx context.Context, actorID *uuid.UUID, productID uuid.UUID) (*LikeStatus, error)
}

type likeQueriesImpl struct {
	store LikeReadStore
}

func NewLikeQueries(store LikeReadStore) LikeQueries {
	return &likeQueriesImpl{store: store}
}

func (q *likeQueriesImpl) Status(ctx context.Context, actorID *uuid.UUID, productID uuid.UUID) (*LikeStatus, error) {
	count, err := q.store.Count(ctx, productID)
	if err != nil {
		return nil, err
	}

	status := &LikeStatus{ProductID: productID, Count: count}
	if actorID == nil {
		return status, nil
	}

	status.Liked, err = q.store.HasLiked(ctx, productID, *actorID)
	if err != nil {
		return nil, err
	}
	return status, nil
}
