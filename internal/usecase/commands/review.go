package commands

import (
	"context"
	"log/slog"

	"marketplace-api/internal/domain/product"
	"marketplace-api/internal/domain/review"
	"marketplace-api/internal/domain/user"
	"marketplace-api/internal/pkg/clock"
	"marketplace-api/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateReviewInput struct {
	ProductID   uuid.UUID
	Rating      int
	Comment     *string
	IsAnonymous bool
}

type UpdateReviewInput struct {
	Rating  int
	Comment *string
}

type ReviewCommands interface {
	Create(ctx context.Context, actorID uuid.UUID, in CreateReviewInput) (uuid.UUID, error)
	Update(ctx context.Context, actorID, reviewID uuid.UUID, in UpdateReviewInput) error
	Delete(ctx context.Context, actorID uuid.UUID, role user.Role, reviewID uuid.UUID) error
}

type reviewCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewReviewCommands(uow shared.UnitOfWork, clk clock.Clock) ReviewCommands {
	return &reviewCommandsImpl{
		uow:   uow,
		clock: clk,
	}
}

// Create admits a review only from the buyer of the product's confirmed sale.
// The product row is locked so the status read here cannot change before commit.
func (c *reviewCommandsImpl) Create(ctx context.Context, actorID uuid.UUID, in CreateReviewInput) (uuid.UUID, error) {
	rating, err := review.NewRating(in.Rating)
	if err != nil {
		return uuid.Nil, err
	}
	comment, err := review.NewComment(in.Comment)
	if err != nil {
		return uuid.Nil, err
	}

	var created *review.Review
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		p, err := tx.Products().FindForUpdate(ctx, in.ProductID)
		if err != nil {
			return asNotFound(err, product.ErrProductNotFound)
		}

		var sale *review.ConfirmedSale
		room, err := tx.ChatRooms().FindConfirmedByProduct(ctx, in.ProductID)
		if err != nil {
			return err
		}
		if room != nil {
			sale = &review.ConfirmedSale{RoomID: room.ID(), BuyerID: room.BuyerID()}
		}

		exists, err := tx.Reviews().Exists(ctx, in.ProductID, actorID)
		if err != nil {
			return err
		}

		subject := review.Subject{SellerID: p.SellerID(), Status: p.Status()}
		if err := review.DecideEligibility(actorID, subject, sale, exists).Err(); err != nil {
			return err
		}

		created = review.NewReview(in.ProductID, actorID, room.SellerID(), rating, comment, in.IsAnonymous, c.clock.Now())
		if err := tx.Reviews().Create(ctx, created); err != nil {
			if isDuplicate(err) {
				return review.ErrReviewAlreadyExists
			}
			return err
		}
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}

	slog.InfoContext(ctx, "review created", "review_id", created.ID(), "product_id", in.ProductID)
	return created.ID(), nil
}

func (c *reviewCommandsImpl) Update(ctx context.Context, actorID, reviewID uuid.UUID, in UpdateReviewInput) error {
	rating, err := review.NewRating(in.Rating)
	if err != nil {
		return err
	}
	comment, err := review.NewComment(in.Comment)
	if err != nil {
		return err
	}

	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		rev, err := tx.Reviews().FindByID(ctx, reviewID)
		if err != nil {
			return asNotFound(err, review.ErrReviewNotFound)
		}
		if err := rev.Edit(actorID, rating, comment, c.clock.Now()); err != nil {
			return err
		}
		return asNotFound(tx.Reviews().Update(ctx, rev), review.ErrReviewNotFound)
	})
}

func (c *reviewCommandsImpl) Delete(ctx context.Context, actorID uuid.UUID, role user.Role, reviewID uuid.UUID) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		rev, err := tx.Reviews().FindByID(ctx, reviewID)
		if err != nil {
			return asNotFound(err, review.ErrReviewNotFound)
		}
		if !rev.CanDelete(actorID, role.IsAdmin()) {
			return review.ErrNotReviewer
		}
		return asNotFound(tx.Reviews().Delete(ctx, reviewID), review.ErrReviewNotFound)
	})
}
