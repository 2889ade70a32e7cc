package review

import (
	"marketplace-api/internal/domain/product"
	"marketplace-api/internal/pkg/errs"

	"github.com/google/uuid"
)

type ReasonCode string

const (
	ReasonOK               ReasonCode = "ok"
	ReasonOwnProduct       ReasonCode = "own_product"
	ReasonProductNotSold   ReasonCode = "product_not_sold"
	ReasonSaleNotConfirmed ReasonCode = "sale_not_confirmed"
	ReasonNotBuyer         ReasonCode = "not_buyer"
	ReasonAlreadyReviewed  ReasonCode = "already_reviewed"
)

var (
	ErrOwnProduct       = errs.NewKind("cannot review your own product", errs.ErrPermissionDenied)
	ErrProductNotSold   = errs.NewKind("product has not been sold", errs.ErrConflict)
	ErrSaleNotConfirmed = errs.NewKind("sale has not been confirmed", errs.ErrConflict)
	ErrNotBuyer         = errs.NewKind("only the confirmed buyer can review this product", errs.ErrPermissionDenied)
)

// Subject is the product state the rule reads.
type Subject struct {
	SellerID uuid.UUID
	Status   product.Status
}

// ConfirmedSale is the product's confirmed chat room, if any.
type ConfirmedSale struct {
	RoomID  uuid.UUID
	BuyerID uuid.UUID
}

type Decision struct {
	Allowed bool
	Reason  ReasonCode
}

func (d Decision) Err() error {
	switch d.Reason {
	case ReasonOK:
		return nil
	case ReasonOwnProduct:
		return ErrOwnProduct
	case ReasonProductNotSold:
		return ErrProductNotSold
	case ReasonSaleNotConfirmed:
		return ErrSaleNotConfirmed
	case ReasonNotBuyer:
		return ErrNotBuyer
	default:
		return ErrReviewAlreadyExists
	}
}

// DecideEligibility reports whether actor may review the product. sale is nil
// when no chat room of the product has a confirmed sale.
func DecideEligibility(actor uuid.UUID, subject Subject, sale *ConfirmedSale, alreadyReviewed bool) Decision {
	switch {
	case actor == subject.SellerID:
		return Decision{Reason: ReasonOwnProduct}
	case subject.Status != product.StatusSold:
		return Decision{Reason: ReasonProductNotSold}
	case sale == nil:
		return Decision{Reason: ReasonSaleNotConfirmed}
	case sale.BuyerID != actor:
		return Decision{Reason: ReasonNotBuyer}
	case alreadyReviewed:
		return Decision{Reason: ReasonAlreadyReviewed}
	default:
		return Decision{Allowed: true, Reason: ReasonOK}
	}
}
