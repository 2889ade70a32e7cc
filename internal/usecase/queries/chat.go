package queries

import (
	"context"
	"time"

	"marketplace-api/internal/domain/chat"
	"marketplace-api/internal/infra"

	"github.com/google/uuid"
)

type ChatReadStore interface {
	FindRoomByID(ctx context.Context, id uuid.UUID) (*ChatRoomView, error)
	FindConfirmedByProduct(ctx context.Context, productID uuid.UUID) (*ChatRoomView, error)
	ListRoomsForUser(ctx context.Context, userID uuid.UUID) ([]*ChatRoomListItem, error)
	ListMessagesLatest(ctx context.Context, roomID uuid.UUID, limit int32) ([]*MessageView, error)
	ListMessagesAfter(ctx context.Context, roomID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*MessageView, error)
	CountUnread(ctx context.Context, userID uuid.UUID) (int64, error)
}

type ChatQueries interface {
	// Room returns the room only to its participants.
	Room(ctx context.Context, actorID, roomID uuid.UUID) (*ChatRoomView, error)
	MyRooms(ctx context.Context, actorID uuid.UUID) ([]*ChatRoomListItem, error)
	// Messages returns messages in ascending order. Without a cursor it returns the
	// most recent page; with one it returns what arrived after it. The returned
	// cursor always points at the newest message seen so pollers can resume.
	Messages(ctx context.Context, actorID, roomID uuid.UUID, cursor *Cursor, limit int) ([]*MessageView, *Cursor, error)
	TotalUnread(ctx context.Context, actorID uuid.UUID) (int64, error)
	ConfirmedBuyer(ctx context.Context, productID uuid.UUID) (*uuid.UUID, error)
}

type chatQueriesImpl struct {
	store ChatReadStore
}

func NewChatQueries(store ChatReadStore) ChatQueries {
	return &chatQueriesImpl{store: store}
}

func (q *chatQueriesImpl) Room(ctx context.Context, actorID, roomID uuid.UUID) (*ChatRoomView, error) {
	room, err := q.store.FindRoomByID(ctx, roomID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, chat.ErrChatRoomNotFound
		}
		return nil, err
	}
	if !room.IsParticipant(actorID) {
		return nil, chat.ErrNotParticipant
	}
	return room, nil
}

func (q *chatQueriesImpl) MyRooms(ctx context.Context, actorID uuid.UUID) ([]*ChatRoomListItem, error) {
	return q.store.ListRoomsForUser(ctx, actorID)
}

func (q *chatQueriesImpl) Messages(ctx context.Context, actorID, roomID uuid.UUID, cursor *Cursor, limit int) ([]*MessageView, *Cursor, error) {
	if _, err := q.Room(ctx, actorID, roomID); err != nil {
		return nil, nil, err
	}
	limit = ValidateLimit(limit)

	var rows []*MessageView
	var err error
	if cursor.IsZero() {
		rows, err = q.store.ListMessagesLatest(ctx, roomID, int32(limit))
	} else {
		lastCreatedAt, lastID, derr := cursor.decode()
		if derr != nil {
			return nil, nil, derr
		}
		rows, err = q.store.ListMessagesAfter(ctx, roomID, lastCreatedAt, lastID, int32(limit))
	}
	if err != nil {
		return nil, nil, err
	}

	if len(rows) == 0 {
		return rows, cursor, nil
	}
	last := rows[len(rows)-1]
	return rows, &Cursor{After: EncodeAfterCursor(last.CreatedAt, last.ID)}, nil
}

func (q *chatQueriesImpl) TotalUnread(ctx context.Context, actorID uuid.UUID) (int64, error) {
	return q.store.CountUnread(ctx, actorID)
}

func (q *chatQueriesImpl) ConfirmedBuyer(ctx context.Context, productID uuid.UUID) (*uuid.UUID, error) {
	room, err := q.store.FindConfirmedByProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	if room == nil {
		return nil, nil
	}
	buyer := room.BuyerID
	return &buyer, nil
}
