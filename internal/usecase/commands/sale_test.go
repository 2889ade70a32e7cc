//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"marketplace-api/internal/domain/chat"
	"marketplace-api/internal/domain/product"
	"marketplace-api/internal/infra"
	"marketplace-api/internal/usecase/commands"
	"marketplace-api/internal/usecase/shared"
	"marketplace-api/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestConfirmSale(t *testing.T) {
	ctx := context.Background()

	t.Run("seller confirms and product becomes sold", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		f := newFixture(ctrl)
		pb := builder.NewProductBuilder()
		rb := builder.NewChatRoomBuilder().ForProduct(pb)
		room := rb.BuildDomain()

		gomock.InOrder(
			f.rooms.EXPECT().FindForUpdate(gomock.Any(), rb.ID).Return(room, nil),
			f.rooms.EXPECT().FindConfirmedByProduct(gomock.Any(), pb.ID).Return(nil, nil),
			f.rooms.EXPECT().ConfirmSale(gomock.Any(), room).Return(nil),
			f.products.EXPECT().FindForUpdate(gomock.Any(), pb.ID).Return(pb.BuildStored(), nil),
			f.products.EXPECT().UpdateStatus(gomock.Any(), pb.ID, product.StatusSold, fixedNow).Return(nil),
		)
		f.publisher.EXPECT().Publish(shared.ChatRoomTopic(rb.ID), gomock.Any()).
			Do(func(_ string, ev shared.Event) {
				assert.Equal(t, shared.EventSaleConfirmed, ev.Type)
				payload, ok := ev.Payload.(shared.SaleConfirmedPayload)
				require.True(t, ok)
				assert.Equal(t, rb.BuyerID, payload.BuyerID)
			})

		got, err := commands.NewSaleCommands(f.uow, f.publisher, f.clock).ConfirmSale(ctx, rb.SellerID, rb.ID)
		require.NoError(t, err)
		assert.Equal(t, &commands.SaleConfirmation{
			RoomID:      rb.ID,
			ProductID:   pb.ID,
			BuyerID:     rb.BuyerID,
			ConfirmedAt: fixedNow,
		}, got)
		require.NotNil(t, room.SaleConfirmedAt())
		assert.Equal(t, fixedNow, *room.SaleConfirmedAt())
	})

	t.Run("works without a publisher", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		f := newFixture(ctrl)
		pb := builder.NewProductBuilder()
		rb := builder.NewChatRoomBuilder().ForProduct(pb)
		room := rb.BuildDomain()

		f.rooms.EXPECT().FindForUpdate(gomock.Any(), rb.ID).Return(room, nil)
		f.rooms.EXPECT().FindConfirmedByProduct(gomock.Any(), pb.ID).Return(nil, nil)
		f.rooms.EXPECT().ConfirmSale(gomock.Any(), room).Return(nil)
		f.products.EXPECT().FindForUpdate(gomock.Any(), pb.ID).Return(pb.BuildStored(), nil)
		f.products.EXPECT().UpdateStatus(gomock.Any(), pb.ID, product.StatusSold, fixedNow).Return(nil)

		_, err := commands.NewSaleCommands(f.uow, nil, f.clock).ConfirmSale(ctx, rb.SellerID, rb.ID)
		require.NoError(t, err)
	})

	t.Run("rejections leave everything untouched", func(t *testing.T) {
		confirmedAt := fixedNow.Add(-24 * time.Hour)

		tests := []struct {
			name    string
			room    func(*builder.ChatRoomBuilder)
			sibling bool
			asBuyer bool
			want    error
		}{
			{name: "buyer cannot confirm", asBuyer: true, want: chat.ErrNotSeller},
			{name: "room already confirmed", room: func(b *builder.ChatRoomBuilder) { b.SaleConfirmedAt = &confirmedAt }, want: chat.ErrSaleAlreadyConfirmed},
			{name: "another room holds the sale", sibling: true, want: chat.ErrSoldToAnotherBuyer},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				ctrl := gomock.NewController(t)
				f := newFixture(ctrl)
				rb := builder.NewChatRoomBuilder()
				if tt.room != nil {
					rb.With(tt.room)
				}
				room := rb.BuildDomain()

				var confirmed *chat.Room
				switch {
				case tt.sibling:
					confirmed = builder.NewChatRoomBuilder().With(func(b *builder.ChatRoomBuilder) {
						b.ProductID = rb.ProductID
						b.SellerID = rb.SellerID
					}).Confirmed(confirmedAt).BuildDomain()
				case room.IsSaleConfirmed():
					confirmed = room
				}

				f.rooms.EXPECT().FindForUpdate(gomock.Any(), rb.ID).Return(room, nil)
				f.rooms.EXPECT().FindConfirmedByProduct(gomock.Any(), rb.ProductID).Return(confirmed, nil)

				actor := rb.SellerID
				if tt.asBuyer {
					actor = rb.BuyerID
				}
				_, err := commands.NewSaleCommands(f.uow, f.publisher, f.clock).ConfirmSale(ctx, actor, rb.ID)
				assert.ErrorIs(t, err, tt.want)
			})
		}
	})

	t.Run("lost race at the database maps to sold elsewhere", func(t *testing.T) {
		for _, kind := range []infra.RepositoryErrorKind{infra.KindConditionFailed, infra.KindDuplicateKey} {
			t.Run(string(kind), func(t *testing.T) {
				ctrl := gomock.NewController(t)
				f := newFixture(ctrl)
				rb := builder.NewChatRoomBuilder()
				room := rb.BuildDomain()

				f.rooms.EXPECT().FindForUpdate(gomock.Any(), rb.ID).Return(room, nil)
				f.rooms.EXPECT().FindConfirmedByProduct(gomock.Any(), rb.ProductID).Return(nil, nil)
				f.rooms.EXPECT().ConfirmSale(gomock.Any(), room).Return(infra.WrapRepoErr("confirm sale", nil, kind))

				_, err := commands.NewSaleCommands(f.uow, f.publisher, f.clock).ConfirmSale(ctx, rb.SellerID, rb.ID)
				assert.ErrorIs(t, err, chat.ErrSoldToAnotherBuyer)
			})
		}
	})

	t.Run("unknown room", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		f := newFixture(ctrl)
		f.rooms.EXPECT().FindForUpdate(gomock.Any(), gomock.Any()).Return(nil, notFound())

		_, err := commands.NewSaleCommands(f.uow, f.publisher, f.clock).ConfirmSale(ctx, uuid.New(), uuid.New())
		assert.ErrorIs(t, err, chat.ErrChatRoomNotFound)
	})

	t.Run("product update failure aborts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		f := newFixture(ctrl)
		pb := builder.NewProductBuilder()
		rb := builder.NewChatRoomBuilder().ForProduct(pb)
		room := rb.BuildDomain()
		boom := errors.New("connection reset")

		f.rooms.EXPECT().FindForUpdate(gomock.Any(), rb.ID).Return(room, nil)
		f.rooms.EXPECT().FindConfirmedByProduct(gomock.Any(), pb.ID).Return(nil, nil)
		f.rooms.EXPECT().ConfirmSale(gomock.Any(), room).Return(nil)
		f.products.EXPECT().FindForUpdate(gomock.Any(), pb.ID).Return(pb.BuildStored(), nil)
		f.products.EXPECT().UpdateStatus(gomock.Any(), pb.ID, product.StatusSold, fixedNow).Return(boom)

		got, err := commands.NewSaleCommands(f.uow, f.publisher, f.clock).ConfirmSale(ctx, rb.SellerID, rb.ID)
		assert.ErrorIs(t, err, boom)
		assert.Nil(t, got)
	})
}
