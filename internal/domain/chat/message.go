package chat

import (
	"strings"
	"time"
	"unicode/utf8"

	"marketplace-api/internal/pkg/errs"

	"github.com/google/uuid"
)

const MaxMessageLength = 1000

var (
	ErrEmptyMessage   = errs.NewKind("message cannot be empty", errs.ErrValidation)
	ErrMessageTooLong = errs.NewKind("message must be at most 1000 characters", errs.ErrValidation)
)

type Text struct{ value string }

func NewText(s string) (Text, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Text{}, ErrEmptyMessage
	}
	if utf8.RuneCountInString(s) > MaxMessageLength {
		return Text{}, ErrMessageTooLong
	}
	return Text{value: s}, nil
}

func (t Text) String() string { return t.value }

type Message struct {
	id        uuid.UUID
	roomID    uuid.UUID
	senderID  uuid.UUID
	text      Text
	isRead    bool
	createdAt time.Time
}

// NewMessage checks the sender belongs to the room before building the message.
func NewMessage(room *Room, senderID uuid.UUID, text Text, now time.Time) (*Message, error) {
	if err := room.RequireParticipant(senderID); err != nil {
		return nil, err
	}
	return &Message{
		id:        uuid.New(),
		roomID:    room.ID(),
		senderID:  senderID,
		text:      text,
		createdAt: now,
	}, nil
}

func (m *Message) ID() uuid.UUID        { return m.id }
func (m *Message) RoomID() uuid.UUID    { return m.roomID }
func (m *Message) SenderID() uuid.UUID  { return m.senderID }
func (m *Message) Text() Text           { return m.text }
func (m *Message) IsRead() bool         { return m.isRead }
func (m *Message) CreatedAt() time.Time { return m.createdAt }
