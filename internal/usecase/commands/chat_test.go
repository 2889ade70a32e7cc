//go:build unit

package commands_test

import (
	"context"
	"testing"

	"marketplace-api/internal/domain/chat"
	"marketplace-api/internal/domain/product"
	"marketplace-api/internal/pkg/errs"
	"marketplace-api/internal/usecase/commands"
	"marketplace-api/internal/usecase/shared"
	"marketplace-api/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestGetOrCreateRoom(t *testing.T) {
	ctx := context.Background()

	t.Run("returns the existing room", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		f := newFixture(ctrl)
		pb := builder.NewProductBuilder()
		rb := builder.NewChatRoomBuilder().ForProduct(pb)

		f.reads.EXPECT().ProductByID(gomock.Any(), pb.ID).Return(pb.BuildSnapshot(), nil)
		f.rooms.EXPECT().FindByParticipants(gomock.Any(), pb.ID, rb.BuyerID, pb.SellerID).Return(rb.BuildDomain(), nil)

		id, err := commands.NewChatCommands(f.uow, f.publisher, f.clock).GetOrCreateRoom(ctx, rb.BuyerID, pb.ID)
		require.NoError(t, err)
		assert.Equal(t, rb.ID, id)
	})

	t.Run("creates a room when none exists", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		f := newFixture(ctrl)
		pb := builder.NewProductBuilder()
		buyer := uuid.New()

		f.reads.EXPECT().ProductByID(gomock.Any(), pb.ID).Return(pb.BuildSnapshot(), nil)
		f.rooms.EXPECT().FindByParticipants(gomock.Any(), pb.ID, buyer, pb.SellerID).Return(nil, notFound())
		var created *chat.Room
		f.rooms.EXPECT().Create(gomock.Any(), gomock.Any()).Do(func(_ context.Context, r *chat.Room) { created = r }).Return(nil)

		id, err := commands.NewChatCommands(f.uow, f.publisher, f.clock).GetOrCreateRoom(ctx, buyer, pb.ID)
		require.NoError(t, err)
		require.NotNil(t, created)
		assert.Equal(t, created.ID(), id)
		assert.Equal(t, pb.SellerID, created.SellerID())
		assert.Nil(t, created.SaleConfirmedAt())
	})

	t.Run("concurrent creation re-reads the winner", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		f := newFixture(ctrl)
		pb := builder.NewProductBuilder()
		rb := builder.NewChatRoomBuilder().ForProduct(pb)

		f.reads.EXPECT().ProductByID(gomock.Any(), pb.ID).Return(pb.BuildSnapshot(), nil).Times(2)
		gomock.InOrder(
			f.rooms.EXPECT().FindByParticipants(gomock.Any(), pb.ID, rb.BuyerID, pb.SellerID).Return(nil, notFound()),
			f.rooms.EXPECT().Create(gomock.Any(), gomock.Any()).Return(duplicate()),
			f.rooms.EXPECT().FindByParticipants(gomock.Any(), pb.ID, rb.BuyerID, pb.SellerID).Return(rb.BuildDomain(), nil),
		)

		id, err := commands.NewChatCommands(f.uow, f.publisher, f.clock).GetOrCreateRoom(ctx, rb.BuyerID, pb.ID)
		require.NoError(t, err)
		assert.Equal(t, rb.ID, id)
	})

	t.Run("seller cannot chat on own product", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		f := newFixture(ctrl)
		pb := builder.NewProductBuilder()
		f.reads.EXPECT().ProductByID(gomock.Any(), pb.ID).Return(pb.BuildSnapshot(), nil)

		_, err := commands.NewChatCommands(f.uow, f.publisher, f.clock).GetOrCreateRoom(ctx, pb.SellerID, pb.ID)
		assert.ErrorIs(t, err, chat.ErrOwnProductChat)
	})

	t.Run("unknown product", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		f := newFixture(ctrl)
		f.reads.EXPECT().ProductByID(gomock.Any(), gomock.Any()).Return(nil, notFound())

		_, err := commands.NewChatCommands(f.uow, f.publisher, f.clock).GetOrCreateRoom(ctx, uuid.New(), uuid.New())
		assert.ErrorIs(t, err, product.ErrProductNotFound)
	})
}

func TestSendMessage(t *testing.T) {
	ctx := context.Background()

	t.Run("stores, touches the room and publishes", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		f := newFixture(ctrl)
		rb := builder.NewChatRoomBuilder()

		f.rooms.EXPECT().FindByID(gomock.Any(), rb.ID).Return(rb.BuildDomain(), nil)
		f.messages.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
		f.rooms.EXPECT().Touch(gomock.Any(), rb.ID, fixedNow).Return(nil)
		f.publisher.EXPECT().Publish(shared.ChatRoomTopic(rb.ID), gomock.Any()).Do(func(_ string, ev shared.Event) {
			assert.Equal(t, shared.EventNewMessage, ev.Type)
			assert.Equal(t, rb.ID, ev.RoomID)
		})

		sent, err := commands.NewChatCommands(f.uow, f.publisher, f.clock).SendMessage(ctx, rb.SellerID, rb.ID, "  still available?  ")
		require.NoError(t, err)
		assert.Equal(t, "still available?", sent.Message)
		assert.Equal(t, rb.SellerID, sent.SenderID)
		assert.Equal(t, fixedNow, sent.CreatedAt)
	})

	t.Run("outsider is rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		f := newFixture(ctrl)
		rb := builder.NewChatRoomBuilder()
		f.rooms.EXPECT().FindByID(gomock.Any(), rb.ID).Return(rb.BuildDomain(), nil)

		_, err := commands.NewChatCommands(f.uow, f.publisher, f.clock).SendMessage(ctx, uuid.New(), rb.ID, "hi")
		assert.True(t, errs.Is(err, errs.ErrPermissionDenied))
	})

	t.Run("empty text never reaches storage", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		f := newFixture(ctrl)

		_, err := commands.NewChatCommands(f.uow, f.publisher, f.clock).SendMessage(ctx, uuid.New(), uuid.New(), "   ")
		assert.ErrorIs(t, err, chat.ErrEmptyMessage)
	})
}

func TestMarkRead(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	f := newFixture(ctrl)
	rb := builder.NewChatRoomBuilder()

	f.rooms.EXPECT().FindByID(gomock.Any(), rb.ID).Return(rb.BuildDomain(), nil).Times(2)
	f.messages.EXPECT().MarkRead(gomock.Any(), rb.ID, rb.BuyerID).Return(int64(3), nil)

	cmds := commands.NewChatCommands(f.uow, f.publisher, f.clock)
	n, err := cmds.MarkRead(ctx, rb.BuyerID, rb.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)

	_, err = cmds.MarkRead(ctx, uuid.New(), rb.ID)
	assert.ErrorIs(t, err, chat.ErrNotParticipant)
}
