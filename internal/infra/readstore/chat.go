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

type ChatReadQueries interface {
	GetChatRoomByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.ChatRooms, error)
	GetConfirmedChatRoomByProduct(ctx context.Context, db sqlc.DBTX, productID uuid.UUID) (sqlc.ChatRooms, error)
	ListChatRoomsForUser(ctx context.Context, db sqlc.DBTX, userID uuid.UUID) ([]sqlc.ListChatRoomsForUserRow, error)
	ListChatMessagesFirstPage(ctx context.Context, db sqlc.DBTX, arg sqlc.ListChatMessagesFirstPageParams) ([]sqlc.ChatMessages, error)
	ListChatMessagesAfter(ctx context.Context, db sqlc.DBTX, arg sqlc.ListChatMessagesAfterParams) ([]sqlc.ChatMessages, error)
	CountUnreadMessagesForUser(ctx context.Context, db sqlc.DBTX, userID uuid.UUID) (int64, error)
}

type ChatReadStore struct {
	queries ChatReadQueries
	db      sqlc.DBTX
}

func NewChatReadStore(queries ChatReadQueries, db sqlc.DBTX) *ChatReadStore {
	return &ChatReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ChatReadStore) FindRoomByID(ctx context.Context, id uuid.UUID) (*queries.ChatRoomView, error) {
	row, err := r.queries.GetChatRoomByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("chat room not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get chat room", err)
	}
	return toChatRoomView(row), nil
}

// FindConfirmedByProduct returns nil when the product has no confirmed sale.
func (r *ChatReadStore) FindConfirmedByProduct(ctx context.Context, productID uuid.UUID) (*queries.ChatRoomView, error) {
	row, err := r.queries.GetConfirmedChatRoomByProduct(ctx, r.db, productID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr("failed to get confirmed chat room", err)
	}
	return toChatRoomView(row), nil
}

func (r *ChatReadStore) ListRoomsForUser(ctx context.Context, userID uuid.UUID) ([]*queries.ChatRoomListItem, error) {
	rows, err := r.queries.ListChatRoomsForUser(ctx, r.db, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list chat rooms", err)
	}

	result := make([]*queries.ChatRoomListItem, len(rows))
	for i, row := range rows {
		item := &queries.ChatRoomListItem{
			ChatRoomView: queries.ChatRoomView{
				ID:              row.ID,
				ProductID:       row.ProductID,
				BuyerID:         row.BuyerID,
				SellerID:        row.SellerID,
				SaleConfirmedAt: pgconv.TimePtrFromPgtype(row.SaleConfirmedAt),
				CreatedAt:       pgconv.TimeFromPgtype(row.CreatedAt),
				UpdatedAt:       pgconv.TimeFromPgtype(row.UpdatedAt),
			},
			Product: queries.ProductSummary{
				ID:       row.ProductID,
				Title:    row.ProductTitle,
				Price:    row.ProductPrice,
				ImageURL: pgconv.StringPtrFromPgtype(row.ProductImageUrl),
				Status:   row.ProductStatus,
			},
			CounterpartNickname: pgconv.StringPtrFromPgtype(row.CounterpartNickname),
			LastMessage:         pgconv.StringPtrFromPgtype(row.LastMessage),
			LastMessageAt:       pgconv.TimePtrFromPgtype(row.LastMessageAt),
			UnreadCount:         row.UnreadCount,
		}
		item.CounterpartID = row.BuyerID
		if row.BuyerID == userID {
			item.CounterpartID = row.SellerID
		}
		result[i] = item
	}
	return result, nil
}

func (r *ChatReadStore) ListMessagesLatest(ctx context.Context, roomID uuid.UUID, limit int32) ([]*queries.MessageView, error) {
	rows, err := r.queries.ListChatMessagesFirstPage(ctx, r.db, sqlc.ListChatMessagesFirstPageParams{
		RoomID: roomID,
		Lim:    limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list chat messages", err)
	}
	return toMessageViews(rows), nil
}

func (r *ChatReadStore) ListMessagesAfter(ctx context.Context, roomID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.MessageView, error) {
	rows, err := r.queries.ListChatMessagesAfter(ctx, r.db, sqlc.ListChatMessagesAfterParams{
		RoomID:    roomID,
		CreatedAt: pgconv.TimeToPgtype(lastCreatedAt),
		ID:        lastID,
		Lim:       limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list chat messages after cursor", err)
	}
	return toMessageViews(rows), nil
}

func (r *ChatReadStore) CountUnread(ctx context.Context, userID uuid.UUID) (int64, error) {
	n, err := r.queries.CountUnreadMessagesForUser(ctx, r.db, userID)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count unread messages", err)
	}
	return n, nil
}

func toChatRoomView(row sqlc.ChatRooms) *queries.ChatRoomView {
	return &queries.ChatRoomView{
		ID:              row.ID,
		ProductID:       row.ProductID,
		BuyerID:         row.BuyerID,
		SellerID:        row.SellerID,
		SaleConfirmedAt: pgconv.TimePtrFromPgtype(row.SaleConfirmedAt),
		CreatedAt:       pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:       pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}

func toMessageViews(rows []sqlc.ChatMessages) []*queries.MessageView {
	result := make([]*queries.MessageView, len(rows))
	for i, row := range rows {
		result[i] = &queries.MessageView{
			ID:        row.ID,
			RoomID:    row.RoomID,
			SenderID:  row.SenderID,
			Message:   row.Message,
			IsRead:    row.IsRead,
			CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
		}
	}
	return result
}
