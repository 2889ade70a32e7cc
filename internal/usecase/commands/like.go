package commands

import (
	"context"

	"marketplace-api/internal/domain/product"
	"marketplace-api/internal/pkg/clock"
	"marketplace-api/internal/usecase/shared"

	"github.com/google/uuid"
)

type LikeCommands interface {
	// Toggle returns whether the actor likes the product afterwards.
	Toggle(ctx context.Context, actorID, productID uuid.UUID) (bool, error)
}

type likeCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewLikeCommands(uow shared.UnitOfWork, clk clock.Clock) LikeCommands {
	return &likeCommandsImpl{uow: uow, clock: clk}
}

func (c *likeCommandsImpl) Toggle(ctx context.Context, actorID, productID uuid.UUID) (bool, error) {
	var liked bool
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := tx.Reads().ProductByID(ctx, productID); err != nil {
			return asNotFound(err, product.ErrProductNotFound)
		}

		inserted, err := tx.Likes().Insert(ctx, productID, actorID, c.clock.Now())
		if err != nil {
			return err
		}
		if inserted {
			liked = true
			return nil
		}

		// already liked, so this toggle removes it
		if _, err := tx.Likes().Delete(ctx, productID, actorID); err != nil {
			return err
		}
		liked = false
		return nil
	})
	return liked, err
}
