//go:build unit || e2e

package builder

import (
	"time"

	"marketplace-api/internal/domain/chat"
	"marketplace-api/internal/usecase/queries"
	"marketplace-api/internal/usecase/shared"

	"github.com/google/uuid"
)

type ChatRoomBuilder struct {
	ID              uuid.UUID
	ProductID       uuid.UUID
	BuyerID         uuid.UUID
	SellerID        uuid.UUID
	SaleConfirmedAt *time.Time
	CreatedAt       time.Time
}

func NewChatRoomBuilder() *ChatRoomBuilder {
	return &ChatRoomBuilder{
		ID:        uuid.New(),
		ProductID: uuid.New(),
		BuyerID:   uuid.New(),
		SellerID:  uuid.New(),
		CreatedAt: time.Date(2025, 4, 1, 10, 0, 0, 0, time.UTC),
	}
}

func (b *ChatRoomBuilder) With(mutate func(*ChatRoomBuilder)) *ChatRoomBuilder {
	mutate(b)
	return b
}

// ForProduct binds the room to an existing listing and its seller.
func (b *ChatRoomBuilder) ForProduct(p *ProductBuilder) *ChatRoomBuilder {
	b.ProductID = p.ID
	b.SellerID = p.SellerID
	return b
}

func (b *ChatRoomBuilder) Confirmed(at time.Time) *ChatRoomBuilder {
	b.SaleConfirmedAt = &at
	return b
}

func (b *ChatRoomBuilder) BuildDomain() *chat.Room {
	return chat.ReconstructRoom(b.ID, b.ProductID, b.BuyerID, b.SellerID, b.SaleConfirmedAt, b.CreatedAt, b.CreatedAt)
}

func (b *ChatRoomBuilder) BuildSnapshot() *shared.ChatRoomSnapshot {
	return &shared.ChatRoomSnapshot{
		ID:              b.ID,
		ProductID:       b.ProductID,
		BuyerID:         b.BuyerID,
		SellerID:        b.SellerID,
		SaleConfirmedAt: b.SaleConfirmedAt,
	}
}

func (b *ChatRoomBuilder) BuildView() *queries.ChatRoomView {
	return &queries.ChatRoomView{
		ID:              b.ID,
		ProductID:       b.ProductID,
		BuyerID:         b.BuyerID,
		SellerID:        b.SellerID,
		SaleConfirmedAt: b.SaleConfirmedAt,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.CreatedAt,
	}
}
