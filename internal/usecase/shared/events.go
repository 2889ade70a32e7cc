package shared

import (
	"time"

	"github.com/google/uuid"
)

type EventType string

const (
	EventNewMessage    EventType = "new_message"
	EventSaleConfirmed EventType = "sale_confirmed"
)

type Event struct {
	Type       EventType `json:"type"`
	RoomID     uuid.UUID `json:"room_id"`
	Payload    any       `json:"payload"`
	OccurredAt time.Time `json:"occurred_at"`
}

type MessagePayload struct {
	ID        uuid.UUID `json:"id"`
	SenderID  uuid.UUID `json:"sender_id"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

type SaleConfirmedPayload struct {
	ProductID       uuid.UUID `json:"product_id"`
	BuyerID         uuid.UUID `json:"buyer_id"`
	SaleConfirmedAt time.Time `json:"sale_confirmed_at"`
}

// EventPublisher fans events out to realtime subscribers. Publishing is best
// effort and happens after the transaction commits.
type EventPublisher interface {
	Publish(topic string, event Event)
}

func ChatRoomTopic(roomID uuid.UUID) string {
	return "chat_room:" + roomID.String()
}
