//go:build unit

package chat_test

import (
	"strings"
	"testing"
	"time"

	"marketplace-api/internal/domain/chat"
	"marketplace-api/internal/pkg/errs"
	"marketplace-api/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecideSaleConfirmation(t *testing.T) {
	confirmedAt := time.Date(2025, 4, 1, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name             string
		mutate           func(*builder.ChatRoomBuilder)
		actorIsSeller    bool
		siblingConfirmed bool
		want             chat.Decision
		errIs            error
	}{
		{
			name:          "seller confirms open room",
			actorIsSeller: true,
			want:          chat.Decision{Allowed: true, Reason: chat.ReasonOK},
		},
		{
			name:  "buyer cannot confirm",
			want:  chat.Decision{Reason: chat.ReasonNotSeller},
			errIs: chat.ErrNotSeller,
		},
		{
			name:          "room already confirmed",
			mutate:        func(b *builder.ChatRoomBuilder) { b.SaleConfirmedAt = &confirmedAt },
			actorIsSeller: true,
			want:          chat.Decision{Reason: chat.ReasonAlreadyConfirmed},
			errIs:         chat.ErrSaleAlreadyConfirmed,
		},
		{
			name:             "another room holds the sale",
			actorIsSeller:    true,
			siblingConfirmed: true,
			want:             chat.Decision{Reason: chat.ReasonSoldToAnotherBuyer},
			errIs:            chat.ErrSoldToAnotherBuyer,
		},
		{
			name:             "not seller wins over sibling",
			siblingConfirmed: true,
			want:             chat.Decision{Reason: chat.ReasonNotSeller},
			errIs:            chat.ErrNotSeller,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := builder.NewChatRoomBuilder()
			if tt.mutate != nil {
				b.With(tt.mutate)
			}
			room := b.BuildDomain()
			actor := b.BuyerID
			if tt.actorIsSeller {
				actor = b.SellerID
			}

			got := chat.DecideSaleConfirmation(actor, room, tt.siblingConfirmed)
			assert.Equal(t, tt.want, got)
			if tt.errIs == nil {
				assert.NoError(t, got.Err())
			} else {
				assert.ErrorIs(t, got.Err(), tt.errIs)
			}
		})
	}
}

func TestRoom_ConfirmSale(t *testing.T) {
	now := time.Date(2025, 4, 2, 15, 30, 0, 0, time.UTC)

	t.Run("sets confirmation once", func(t *testing.T) {
		b := builder.NewChatRoomBuilder()
		room := b.BuildDomain()

		require.NoError(t, room.ConfirmSale(b.SellerID, false, now))
		require.NotNil(t, room.SaleConfirmedAt())
		assert.Equal(t, now, *room.SaleConfirmedAt())
		assert.Equal(t, now, room.UpdatedAt())

		err := room.ConfirmSale(b.SellerID, false, now.Add(time.Hour))
		require.ErrorIs(t, err, chat.ErrSaleAlreadyConfirmed)
		assert.Equal(t, now, *room.SaleConfirmedAt())
	})

	t.Run("sold elsewhere keeps room untouched", func(t *testing.T) {
		b := builder.NewChatRoomBuilder()
		room := b.BuildDomain()

		err := room.ConfirmSale(b.SellerID, true, now)
		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrConflict))
		assert.Equal(t, "this product is already sold to another buyer", err.Error())
		assert.Nil(t, room.SaleConfirmedAt())
	})
}

func TestNewRoom_OwnProduct(t *testing.T) {
	id := uuid.New()
	_, err := chat.NewRoom(uuid.New(), id, id, time.Now())
	assert.ErrorIs(t, err, chat.ErrOwnProductChat)
}

func TestNewMessage(t *testing.T) {
	b := builder.NewChatRoomBuilder()
	room := b.BuildDomain()
	text, err := chat.NewText("  hello  ")
	require.NoError(t, err)
	assert.Equal(t, "hello", text.String())

	msg, err := chat.NewMessage(room, b.BuyerID, text, time.Now())
	require.NoError(t, err)
	assert.Equal(t, room.ID(), msg.RoomID())
	assert.False(t, msg.IsRead())

	_, err = chat.NewMessage(room, uuid.New(), text, time.Now())
	assert.True(t, errs.Is(err, errs.ErrPermissionDenied))

	_, err = chat.NewText(strings.Repeat("x", chat.MaxMessageLength+1))
	assert.ErrorIs(t, err, chat.ErrMessageTooLong)
	_, err = chat.NewText(" ")
	assert.ErrorIs(t, err, chat.ErrEmptyMessage)
}

func TestRoom_Counterpart(t *testing.T) {
	b := builder.NewChatRoomBuilder()
	room := b.BuildDomain()
	assert.Equal(t, b.SellerID, room.Counterpart(b.BuyerID))
	assert.Equal(t, b.BuyerID, room.Counterpart(b.SellerID))
}
