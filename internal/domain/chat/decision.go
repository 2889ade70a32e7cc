package chat

import "github.com/google/uuid"

type ReasonCode string

const (
	ReasonOK                 ReasonCode = "ok"
	ReasonNotSeller          ReasonCode = "not_seller"
	ReasonAlreadyConfirmed   ReasonCode = "already_confirmed"
	ReasonSoldToAnotherBuyer ReasonCode = "sold_to_another_buyer"
)

type Decision struct {
	Allowed bool
	Reason  ReasonCode
}

// Err maps a refusal to the error a write would return for the same state.
func (d Decision) Err() error {
	switch d.Reason {
	case ReasonOK:
		return nil
	case ReasonNotSeller:
		return ErrNotSeller
	case ReasonAlreadyConfirmed:
		return ErrSaleAlreadyConfirmed
	default:
		return ErrSoldToAnotherBuyer
	}
}

// DecideSaleConfirmation is shared by the confirm command and the eligibility
// query, so a button shown as enabled is one the write path will accept.
func DecideSaleConfirmation(actor uuid.UUID, room *Room, siblingConfirmed bool) Decision {
	switch {
	case actor != room.sellerID:
		return Decision{Reason: ReasonNotSeller}
	case room.saleConfirmedAt != nil:
		return Decision{Reason: ReasonAlreadyConfirmed}
	case siblingConfirmed:
		return Decision{Reason: ReasonSoldToAnotherBuyer}
	default:
		return Decision{Allowed: true, Reason: ReasonOK}
	}
}
