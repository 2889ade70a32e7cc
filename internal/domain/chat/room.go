package chat

import (
	"time"

	"marketplace-api/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrChatRoomNotFound     = errs.NewKind("chat room not found", errs.ErrNotFound)
	ErrNotParticipant       = errs.NewKind("not a participant of this chat room", errs.ErrPermissionDenied)
	ErrNotSeller            = errs.NewKind("only the seller can confirm the sale", errs.ErrPermissionDenied)
	ErrSaleAlreadyConfirmed = errs.NewKind("sale already confirmed", errs.ErrConflict)
	ErrSoldToAnotherBuyer   = errs.NewKind("this product is already sold to another buyer", errs.ErrConflict)
	ErrOwnProductChat       = errs.NewKind("cannot start a chat on your own product", errs.ErrValidation)
)

// Room is the conversation between one buyer and the seller about one product.
// saleConfirmedAt is written once, by the seller, and never cleared.
type Room struct {
	id              uuid.UUID
	productID       uuid.UUID
	buyerID         uuid.UUID
	sellerID        uuid.UUID
	saleConfirmedAt *time.Time
	createdAt       time.Time
	updatedAt       time.Time
}

func NewRoom(productID, buyerID, sellerID uuid.UUID, now time.Time) (*Room, error) {
	if buyerID == sellerID {
		return nil, ErrOwnProductChat
	}
	return &Room{
		id:        uuid.New(),
		productID: productID,
		buyerID:   buyerID,
		sellerID:  sellerID,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructRoom(
	id, productID, buyerID, sellerID uuid.UUID,
	saleConfirmedAt *time.Time,
	createdAt, updatedAt time.Time,
) *Room {
	return &Room{
		id:              id,
		productID:       productID,
		buyerID:         buyerID,
		sellerID:        sellerID,
		saleConfirmedAt: saleConfirmedAt,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}
}

// ConfirmSale records the sale to this room's buyer. siblingConfirmed reports
// whether another room of the same product already holds a confirmation.
func (r *Room) ConfirmSale(actor uuid.UUID, siblingConfirmed bool, now time.Time) error {
	d := DecideSaleConfirmation(actor, r, siblingConfirmed)
	if !d.Allowed {
		return d.Err()
	}
	t := now
	r.saleConfirmedAt = &t
	r.updatedAt = now
	return nil
}

// Touch bumps the activity timestamp used to order room lists.
func (r *Room) Touch(now time.Time) {
	r.updatedAt = now
}

func (r *Room) IsParticipant(userID uuid.UUID) bool {
	return userID == r.buyerID || userID == r.sellerID
}

func (r *Room) RequireParticipant(userID uuid.UUID) error {
	if !r.IsParticipant(userID) {
		return ErrNotParticipant
	}
	return nil
}

// Counterpart returns the other participant.
func (r *Room) Counterpart(userID uuid.UUID) uuid.UUID {
	if userID == r.buyerID {
		return r.sellerID
	}
	return r.buyerID
}

func (r *Room) IsSaleConfirmed() bool { return r.saleConfirmedAt != nil }

func (r *Room) ID() uuid.UUID               { return r.id }
func (r *Room) ProductID() uuid.UUID        { return r.productID }
func (r *Room) BuyerID() uuid.UUID          { return r.buyerID }
func (r *Room) SellerID() uuid.UUID         { return r.sellerID }
func (r *Room) SaleConfirmedAt() *time.Time { return r.saleConfirmedAt }
func (r *Room) CreatedAt() time.Time        { return r.createdAt }
func (r *Room) UpdatedAt() time.Time        { return r.updatedAt }
