//go:build unit

package commands_test

import (
	"context"
	"testing"

	"marketplace-api/internal/domain/product"
	"marketplace-api/internal/usecase/commands"
	"marketplace-api/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestLikeToggle(t *testing.T) {
	ctx := context.Background()
	actor := uuid.New()

	t.Run("first toggle likes", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		f := newFixture(ctrl)
		pb := builder.NewProductBuilder()
		f.reads.EXPECT().ProductByID(gomock.Any(), pb.ID).Return(pb.BuildSnapshot(), nil)
		f.likes.EXPECT().Insert(gomock.Any(), pb.ID, actor, fixedNow).Return(true, nil)

		liked, err := commands.NewLikeCommands(f.uow, f.clock).Toggle(ctx, actor, pb.ID)
		require.NoError(t, err)
		assert.True(t, liked)
	})

	t.Run("second toggle unlikes", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		f := newFixture(ctrl)
		pb := builder.NewProductBuilder()
		f.reads.EXPECT().ProductByID(gomock.Any(), pb.ID).Return(pb.BuildSnapshot(), nil)
		f.likes.EXPECT().Insert(gomock.Any(), pb.ID, actor, fixedNow).Return(false, nil)
		f.likes.EXPECT().Delete(gomock.Any(), pb.ID, actor).Return(true, nil)

		liked, err := commands.NewLikeCommands(f.uow, f.clock).Toggle(ctx, actor, pb.ID)
		require.NoError(t, err)
		assert.False(t, liked)
	})

	t.Run("unknown product", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		f := newFixture(ctrl)
		f.reads.EXPECT().ProductByID(gomock.Any(), gomock.Any()).Return(nil, notFound())

		_, err := commands.NewLikeCommands(f.uow, f.clock).Toggle(ctx, actor, uuid.New())
		assert.ErrorIs(t, err, product.ErrProductNotFound)
	})
}
