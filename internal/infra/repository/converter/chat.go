package converter

import (
	"marketplace-api/internal/domain/chat"
	sqlc "marketplace-api/internal/infra/sqlc/generated"
	"marketplace-api/internal/pkg/pgconv"
)

func ChatRoomToCreateParams(r *chat.Room) sqlc.CreateChatRoomParams {
	return sqlc.CreateChatRoomParams{
		ID:        r.ID(),
		ProductID: r.ProductID(),
		BuyerID:   r.BuyerID(),
		SellerID:  r.SellerID(),
		CreatedAt: pgconv.TimeToPgtype(r.CreatedAt()),
		UpdatedAt: pgconv.TimeToPgtype(r.UpdatedAt()),
	}
}

func ChatRoomFromRow(row sqlc.ChatRooms) *chat.Room {
	return chat.ReconstructRoom(
		row.ID, row.ProductID, row.BuyerID, row.SellerID,
		pgconv.TimePtrFromPgtype(row.SaleConfirmedAt),
		pgconv.TimeFromPgtype(row.CreatedAt), pgconv.TimeFromPgtype(row.UpdatedAt),
	)
}

func MessageToCreateParams(m *chat.Message) sqlc.CreateChatMessageParams {
	return sqlc.CreateChatMessageParams{
		ID:        m.ID(),
		RoomID:    m.RoomID(),
		SenderID:  m.SenderID(),
		Message:   m.Text().String(),
		CreatedAt: pgconv.TimeToPgtype(m.CreatedAt()),
	}
}
