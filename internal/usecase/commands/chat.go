package commands

import (
	"context"
	"time"

	"marketplace-api/internal/domain/chat"
	"marketplace-api/internal/domain/product"
	"marketplace-api/internal/pkg/clock"
	"marketplace-api/internal/usecase/shared"

	"github.com/google/uuid"
)

type SentMessage struct {
	ID        uuid.UUID
	RoomID    uuid.UUID
	SenderID  uuid.UUID
	Message   string
	CreatedAt time.Time
}

type ChatCommands interface {
	GetOrCreateRoom(ctx context.Context, buyerID, productID uuid.UUID) (uuid.UUID, error)
	SendMessage(ctx context.Context, actorID, roomID uuid.UUID, text string) (*SentMessage, error)
	MarkRead(ctx context.Context, actorID, roomID uuid.UUID) (int64, error)
}

type chatCommandsImpl struct {
	uow       shared.UnitOfWork
	publisher shared.EventPublisher
	clock     clock.Clock
}

func NewChatCommands(uow shared.UnitOfWork, publisher shared.EventPublisher, clk clock.Clock) ChatCommands {
	return &chatCommandsImpl{
		uow:       uow,
		publisher: publisher,
		clock:     clk,
	}
}

func (c *chatCommandsImpl) GetOrCreateRoom(ctx context.Context, buyerID, productID uuid.UUID) (uuid.UUID, error) {
	var room *chat.Room
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		p, err := tx.Reads().ProductByID(ctx, productID)
		if err != nil {
			return asNotFound(err, product.ErrProductNotFound)
		}
		candidate, err := chat.NewRoom(productID, buyerID, p.SellerID, c.clock.Now())
		if err != nil {
			return err
		}

		existing, err := tx.ChatRooms().FindByParticipants(ctx, productID, buyerID, p.SellerID)
		if err == nil {
			room = existing
			return nil
		}
		if !isNotFound(err) {
			return err
		}

		if err := tx.ChatRooms().Create(ctx, candidate); err != nil {
			return err
		}
		room = candidate
		return nil
	})
	if err == nil {
		return room.ID(), nil
	}
	if !isDuplicate(err) {
		return uuid.Nil, err
	}

	// another request created the room between our lookup and insert
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		p, err := tx.Reads().ProductByID(ctx, productID)
		if err != nil {
			return asNotFound(err, product.ErrProductNotFound)
		}
		room, err = tx.ChatRooms().FindByParticipants(ctx, productID, buyerID, p.SellerID)
		return asNotFound(err, chat.ErrChatRoomNotFound)
	})
	if err != nil {
		return uuid.Nil, err
	}
	return room.ID(), nil
}

func (c *chatCommandsImpl) SendMessage(ctx context.Context, actorID, roomID uuid.UUID, text string) (*SentMessage, error) {
	body, err := chat.NewText(text)
	if err != nil {
		return nil, err
	}

	var msg *chat.Message
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		room, err := tx.ChatRooms().FindByID(ctx, roomID)
		if err != nil {
			return asNotFound(err, chat.ErrChatRoomNotFound)
		}
		now := c.clock.Now()
		msg, err = chat.NewMessage(room, actorID, body, now)
		if err != nil {
			return err
		}
		if err := tx.Messages().Create(ctx, msg); err != nil {
			return err
		}
		return tx.ChatRooms().Touch(ctx, roomID, now)
	})
	if err != nil {
		return nil, err
	}

	sent := &SentMessage{
		ID:        msg.ID(),
		RoomID:    msg.RoomID(),
		SenderID:  msg.SenderID(),
		Message:   msg.Text().String(),
		CreatedAt: msg.CreatedAt(),
	}
	c.publish(shared.Event{
		Type:   shared.EventNewMessage,
		RoomID: roomID,
		Payload: shared.MessagePayload{
			ID:        sent.ID,
			SenderID:  sent.SenderID,
			Message:   sent.Message,
			CreatedAt: sent.CreatedAt,
		},
		OccurredAt: sent.CreatedAt,
	})
	return sent, nil
}

func (c *chatCommandsImpl) MarkRead(ctx context.Context, actorID, roomID uuid.UUID) (int64, error) {
	var n int64
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		room, err := tx.ChatRooms().FindByID(ctx, roomID)
		if err != nil {
			return asNotFound(err, chat.ErrChatRoomNotFound)
		}
		if err := room.RequireParticipant(actorID); err != nil {
			return err
		}
		n, err = tx.Messages().MarkRead(ctx, roomID, actorID)
		return err
	})
	return n, err
}

func (c *chatCommandsImpl) publish(event shared.Event) {
	if c.publisher == nil {
		return
	}
	c.publisher.Publish(shared.ChatRoomTopic(event.RoomID), event)
}
