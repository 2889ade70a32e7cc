package queries

import (
	"context"

	"marketplace-api/internal/domain/chat"
	"marketplace-api/internal/domain/product"
	"marketplace-api/internal/domain/review"
	"marketplace-api/internal/infra"

	"github.com/google/uuid"
)

// ProductStateReader is the slice of the product store eligibility needs.
type ProductStateReader interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ProductView, error)
}

type EligibilityQueries interface {
	// ForRoom evaluates both the sale confirmation and the review rule for the
	// actor in one room, using the same decision functions as the commands.
	ForRoom(ctx context.Context, roomID, actorID uuid.UUID) (*EligibilityView, error)
}

type eligibilityQueriesImpl struct {
	chats    ChatReadStore
	products ProductStateReader
	reviews  ReviewReadStore
}

func NewEligibilityQueries(chats ChatReadStore, products ProductStateReader, reviews ReviewReadStore) EligibilityQueries {
	return &eligibilityQueriesImpl{
		chats:    chats,
		products: products,
		reviews:  reviews,
	}
}

func (q *eligibilityQueriesImpl) ForRoom(ctx context.Context, roomID, actorID uuid.UUID) (*EligibilityView, error) {
	roomView, err := q.chats.FindRoomByID(ctx, roomID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, chat.ErrChatRoomNotFound
		}
		return nil, err
	}
	if !roomView.IsParticipant(actorID) {
		return nil, chat.ErrNotParticipant
	}

	productView, err := q.products.FindByID(ctx, roomView.ProductID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, product.ErrProductNotFound
		}
		return nil, err
	}
	status, err := product.NewStatus(productView.Status)
	if err != nil {
		return nil, err
	}

	confirmed, err := q.chats.FindConfirmedByProduct(ctx, roomView.ProductID)
	if err != nil {
		return nil, err
	}

	reviewed, err := q.reviews.Exists(ctx, roomView.ProductID, actorID)
	if err != nil {
		return nil, err
	}

	room := chat.ReconstructRoom(
		roomView.ID, roomView.ProductID, roomView.BuyerID, roomView.SellerID,
		roomView.SaleConfirmedAt, roomView.CreatedAt, roomView.UpdatedAt,
	)
	siblingConfirmed := confirmed != nil && confirmed.ID != roomView.ID
	saleDecision := chat.DecideSaleConfirmation(actorID, room, siblingConfirmed)

	var sale *review.ConfirmedSale
	if confirmed != nil {
		sale = &review.ConfirmedSale{RoomID: confirmed.ID, BuyerID: confirmed.BuyerID}
	}
	reviewDecision := review.DecideEligibility(actorID, review.Subject{
		SellerID: productView.SellerID,
		Status:   status,
	}, sale, reviewed)

	return &EligibilityView{
		RoomID:    roomView.ID,
		ProductID: roomView.ProductID,
		SaleConfirmation: DecisionView{
			Allowed: saleDecision.Allowed,
			Reason:  string(saleDecision.Reason),
		},
		Review: DecisionView{
			Allowed: reviewDecision.Allowed,
			Reason:  string(reviewDecision.Reason),
		},
	}, nil
}
