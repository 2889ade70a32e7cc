package shared

import (
	"time"

	"github.com/google/uuid"
)

// Write-side snapshots keep commands independent of read-side view types.

type UserSnapshot struct {
	ID       uuid.UUID
	Email    string
	Role     string
	IsActive bool
}

type ProductSnapshot struct {
	ID       uuid.UUID
	SellerID uuid.UUID
	Status   string
}

type ChatRoomSnapshot struct {
	ID              uuid.UUID
	ProductID       uuid.UUID
	BuyerID         uuid.UUID
	SellerID        uuid.UUID
	SaleConfirmedAt *time.Time
}

func (s *ChatRoomSnapshot) IsParticipant(userID uuid.UUID) bool {
	return s.BuyerID == userID || s.SellerID == userID
}
