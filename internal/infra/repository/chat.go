package repository

import (
	"context"
	"time"

	"marketplace-api/internal/domain/chat"
	"marketplace-api/internal/infra"
	"marketplace-api/internal/infra/repository/converter"
	sqlc "marketplace-api/internal/infra/sqlc/generated"
	"marketplace-api/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type ChatRoomWriteQueries interface {
	CreateChatRoom(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateChatRoomParams) error
	GetChatRoomByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.ChatRooms, error)
	GetChatRoomByIDForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.ChatRooms, error)
	GetChatRoomByParticipants(ctx context.Context, db sqlc.DBTX, arg sqlc.GetChatRoomByParticipantsParams) (sqlc.ChatRooms, error)
	GetConfirmedChatRoomByProduct(ctx context.Context, db sqlc.DBTX, productID uuid.UUID) (sqlc.ChatRooms, error)
	ConfirmChatRoomSale(ctx context.Context, db sqlc.DBTX, arg sqlc.ConfirmChatRoomSaleParams) (int64, error)
	TouchChatRoom(ctx context.Context, db sqlc.DBTX, arg sqlc.TouchChatRoomParams) error
}

type ChatRoomRepository struct {
	queries ChatRoomWriteQueries
	db      sqlc.DBTX
}

func NewChatRoomRepository(queries ChatRoomWriteQueries, db sqlc.DBTX) *ChatRoomRepository {
	return &ChatRoomRepository{
		queries: queries,
		db:      db,
	}
}

func (r *ChatRoomRepository) Create(ctx context.Context, room *chat.Room) error {
	if err := r.queries.CreateChatRoom(ctx, r.db, converter.ChatRoomToCreateParams(room)); err != nil {
		return infra.WrapRepoErr("failed to create chat room", err)
	}
	return nil
}

func (r *ChatRoomRepository) FindByID(ctx context.Context, id uuid.UUID) (*chat.Room, error) {
	row, err := r.queries.GetChatRoomByID(ctx, r.db, id)
	if err != nil {
		return nil, wrapRoomErr(err, "failed to get chat room")
	}
	return converter.ChatRoomFromRow(row), nil
}

func (r *ChatRoomRepository) FindForUpdate(ctx context.Context, id uuid.UUID) (*chat.Room, error) {
	row, err := r.queries.GetChatRoomByIDForUpdate(ctx, r.db, id)
	if err != nil {
		return nil, wrapRoomErr(err, "failed to lock chat room")
	}
	return converter.ChatRoomFromRow(row), nil
}

func (r *ChatRoomRepository) FindByParticipants(ctx context.Context, productID, buyerID, sellerID uuid.UUID) (*chat.Room, error) {
	row, err := r.queries.GetChatRoomByParticipants(ctx, r.db, sqlc.GetChatRoomByParticipantsParams{
		ProductID: productID,
		BuyerID:   buyerID,
		SellerID:  sellerID,
	})
	if err != nil {
		return nil, wrapRoomErr(err, "failed to get chat room by participants")
	}
	return converter.ChatRoomFromRow(row), nil
}

func (r *ChatRoomRepository) FindConfirmedByProduct(ctx context.Context, productID uuid.UUID) (*chat.Room, error) {
	row, err := r.queries.GetConfirmedChatRoomByProduct(ctx, r.db, productID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr("failed to get confirmed chat room", err)
	}
	return converter.ChatRoomFromRow(row), nil
}

func (r *ChatRoomRepository) ConfirmSale(ctx context.Context, room *chat.Room) error {
	n, err := r.queries.ConfirmChatRoomSale(ctx, r.db, sqlc.ConfirmChatRoomSaleParams{
		ID:              room.ID(),
		SaleConfirmedAt: pgconv.TimePtrToPgtype(room.SaleConfirmedAt()),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to confirm sale", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("sale confirmation lost to a concurrent write", nil, infra.KindConditionFailed)
	}
	return nil
}

func (r *ChatRoomRepository) Touch(ctx context.Context, id uuid.UUID, at time.Time) error {
	err := r.queries.TouchChatRoom(ctx, r.db, sqlc.TouchChatRoomParams{
		ID:        id,
		UpdatedAt: pgconv.TimeToPgtype(at),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to touch chat room", err)
	}
	return nil
}

func wrapRoomErr(err error, msg string) error {
	if pgconv.IsNoRows(err) {
		return infra.WrapRepoErr("chat room not found", err, infra.KindNotFound)
	}
	return infra.WrapRepoErr(msg, err)
}

type MessageWriteQueries interface {
	CreateChatMessage(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateChatMessageParams) error
	MarkChatMessagesRead(ctx context.Context, db sqlc.DBTX, arg sqlc.MarkChatMessagesReadParams) (int64, error)
}

type MessageRepository struct {
	queries MessageWriteQueries
	db      sqlc.DBTX
}

func NewMessageRepository(queries MessageWriteQueries, db sqlc.DBTX) *MessageRepository {
	return &MessageRepository{
		queries: queries,
		db:      db,
	}
}

func (r *MessageRepository) Create(ctx context.Context, msg *chat.Message) error {
	if err := r.queries.CreateChatMessage(ctx, r.db, converter.MessageToCreateParams(msg)); err != nil {
		return infra.WrapRepoErr("failed to create chat message", err)
	}
	return nil
}

func (r *MessageRepository) MarkRead(ctx context.Context, roomID, readerID uuid.UUID) (int64, error) {
	n, err := r.queries.MarkChatMessagesRead(ctx, r.db, sqlc.MarkChatMessagesReadParams{
		RoomID:   roomID,
		ReaderID: readerID,
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to mark messages read", err)
	}
	return n, nil
}
