package commands

import (
	"context"
	"log/slog"
	"time"

	"marketplace-api/internal/domain/chat"
	"marketplace-api/internal/domain/product"
	"marketplace-api/internal/infra"
	"marketplace-api/internal/pkg/clock"
	"marketplace-api/internal/usecase/shared"

	"github.com/google/uuid"
)

type SaleConfirmation struct {
	RoomID      uuid.UUID
	ProductID   uuid.UUID
	BuyerID     uuid.UUID
	ConfirmedAt time.Time
}

type SaleCommands interface {
	ConfirmSale(ctx context.Context, actorID, roomID uuid.UUID) (*SaleConfirmation, error)
}

type saleCommandsImpl struct {
	uow       shared.UnitOfWork
	publisher shared.EventPublisher
	clock     clock.Clock
}

func NewSaleCommands(uow shared.UnitOfWork, publisher shared.EventPublisher, clk clock.Clock) SaleCommands {
	return &saleCommandsImpl{
		uow:       uow,
		publisher: publisher,
		clock:     clk,
	}
}

// ConfirmSale records the room's buyer as the one who bought the product and
// flips the product to sold, both in one transaction. The room row is locked
// before the product row, matching every other writer.
func (c *saleCommandsImpl) ConfirmSale(ctx context.Context, actorID, roomID uuid.UUID) (*SaleConfirmation, error) {
	var result *SaleConfirmation
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		room, err := tx.ChatRooms().FindForUpdate(ctx, roomID)
		if err != nil {
			return asNotFound(err, chat.ErrChatRoomNotFound)
		}

		confirmed, err := tx.ChatRooms().FindConfirmedByProduct(ctx, room.ProductID())
		if err != nil {
			return err
		}
		siblingConfirmed := confirmed != nil && confirmed.ID() != room.ID()

		now := c.clock.Now()
		if err := room.ConfirmSale(actorID, siblingConfirmed, now); err != nil {
			return err
		}
		if err := tx.ChatRooms().ConfirmSale(ctx, room); err != nil {
			if infra.IsKind(err, infra.KindConditionFailed) || isDuplicate(err) {
				return chat.ErrSoldToAnotherBuyer
			}
			return err
		}

		p, err := tx.Products().FindForUpdate(ctx, room.ProductID())
		if err != nil {
			return asNotFound(err, product.ErrProductNotFound)
		}
		p.MarkSold(now)
		if err := tx.Products().UpdateStatus(ctx, p.ID(), p.Status(), now); err != nil {
			return err
		}

		result = &SaleConfirmation{
			RoomID:      room.ID(),
			ProductID:   room.ProductID(),
			BuyerID:     room.BuyerID(),
			ConfirmedAt: now,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "sale confirmed",
		"room_id", result.RoomID,
		"product_id", result.ProductID,
		"buyer_id", result.BuyerID,
	)

	if c.publisher != nil {
		c.publisher.Publish(shared.ChatRoomTopic(result.RoomID), shared.Event{
			Type:   shared.EventSaleConfirmed,
			RoomID: result.RoomID,
			Payload: shared.SaleConfirmedPayload{
				ProductID:       result.ProductID,
				BuyerID:         result.BuyerID,
				SaleConfirmedAt: result.ConfirmedAt,
			},
			OccurredAt: result.ConfirmedAt,
		})
	}
	return result, nil
}
