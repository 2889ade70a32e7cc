package response

import (
	"time"

	"marketplace-api/internal/usecase/commands"
	"marketplace-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type MessagePageResponse struct {
	Messages   []*queries.MessageView `json:"messages"`
	NextCursor *string                `json:"next_cursor,omitempty"`
}

func NewMessagePage(items []*queries.MessageView, next *queries.Cursor) *MessagePageResponse {
	if items == nil {
		items = []*queries.MessageView{}
	}
	return &MessagePageResponse{Messages: items, NextCursor: cursorString(next)}
}

type SentMessageResponse struct {
	ID        uuid.UUID `json:"id"`
	RoomID    uuid.UUID `json:"room_id"`
	SenderID  uuid.UUID `json:"sender_id"`
	Message   string    `json:"message"`
	IsRead    bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}

func FromSentMessage(m *commands.SentMessage) *SentMessageResponse {
	return &SentMessageResponse{
		ID:        m.ID,
		RoomID:    m.RoomID,
		SenderID:  m.SenderID,
		Message:   m.Message,
		CreatedAt: m.CreatedAt,
	}
}

type SaleConfirmationResponse struct {
	RoomID          uuid.UUID `json:"room_id"`
	ProductID       uuid.UUID `json:"product_id"`
	BuyerID         uuid.UUID `json:"buyer_id"`
	SaleConfirmedAt time.Time `json:"sale_confirmed_at"`
}

func FromSaleConfirmation(s *commands.SaleConfirmation) *SaleConfirmationResponse {
	return &SaleConfirmationResponse{
		RoomID:          s.RoomID,
		ProductID:       s.ProductID,
		BuyerID:         s.BuyerID,
		SaleConfirmedAt: s.ConfirmedAt,
	}
}

type CountResponse struct {
	Count int64 `json:"count"`
}

func cursorString(c *queries.Cursor) *string {
	if c == nil || c.IsZero() {
		return nil
	}
	s := c.After
	return &s
}
