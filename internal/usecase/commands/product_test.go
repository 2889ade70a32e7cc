//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"

	"marketplace-api/internal/domain/product"
	"marketplace-api/internal/domain/user"
	"marketplace-api/internal/usecase/commands"
	"marketplace-api/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestProductCreate(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	f := newFixture(ctrl)
	seller := uuid.New()

	f.products.EXPECT().Create(gomock.Any(), gomock.Any()).Do(func(_ context.Context, p *product.Product) {
		assert.Equal(t, seller, p.SellerID())
		assert.Equal(t, product.StatusActive, p.Status())
		assert.Equal(t, fixedNow, p.CreatedAt())
	}).Return(nil)

	cmds := commands.NewProductCommands(f.uow, f.objects, f.clock)
	id, err := cmds.Create(ctx, seller, commands.CreateProductInput{Title: "Desk lamp", Content: "Warm light", Price: 15000, Location: "Suwon"})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, id)

	_, err = cmds.Create(ctx, seller, commands.CreateProductInput{Title: "Desk lamp", Content: "Warm light", Price: -5, Location: "Suwon"})
	assert.ErrorIs(t, err, product.ErrNegativePrice)
}

func TestProductUpdate(t *testing.T) {
	ctx := context.Background()
	title := "Desk lamp (LED)"

	t.Run("seller patches fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		f := newFixture(ctrl)
		pb := builder.NewProductBuilder()
		stored := pb.BuildStored()
		f.products.EXPECT().FindForUpdate(gomock.Any(), pb.ID).Return(stored, nil)
		f.products.EXPECT().Update(gomock.Any(), stored).Return(nil)

		err := commands.NewProductCommands(f.uow, f.objects, f.clock).Update(ctx, pb.SellerID, pb.ID, commands.UpdateProductInput{Title: &title})
		require.NoError(t, err)
		assert.Equal(t, title, stored.Title().String())
		assert.Equal(t, pb.Content, stored.Content().String())
	})

	t.Run("non seller", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		f := newFixture(ctrl)
		pb := builder.NewProductBuilder()
		f.products.EXPECT().FindForUpdate(gomock.Any(), pb.ID).Return(pb.BuildStored(), nil)

		err := commands.NewProductCommands(f.uow, f.objects, f.clock).Update(ctx, uuid.New(), pb.ID, commands.UpdateProductInput{Title: &title})
		assert.ErrorIs(t, err, product.ErrNotProductSeller)
	})
}

func TestProductDelete(t *testing.T) {
	ctx := context.Background()
	imageURL := "http://localhost:8080/storage/product-images/abc/01HZX.png"

	t.Run("stored image is removed after commit", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		f := newFixture(ctrl)
		pb := builder.NewProductBuilder().With(func(b *builder.ProductBuilder) { b.ImageURL = &imageURL })

		f.products.EXPECT().FindForUpdate(gomock.Any(), pb.ID).Return(pb.BuildStored(), nil)
		f.products.EXPECT().Delete(gomock.Any(), pb.ID).Return(nil)
		f.objects.EXPECT().KeyFromURL(imageURL).Return("abc/01HZX.png", true)
		f.objects.EXPECT().Delete(gomock.Any(), "abc/01HZX.png").Return(errors.New("disk busy"))

		err := commands.NewProductCommands(f.uow, f.objects, f.clock).Delete(ctx, pb.SellerID, user.RoleMember, pb.ID)
		assert.NoError(t, err)
	})

	t.Run("admin may delete any listing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		f := newFixture(ctrl)
		pb := builder.NewProductBuilder()
		f.products.EXPECT().FindForUpdate(gomock.Any(), pb.ID).Return(pb.BuildStored(), nil)
		f.products.EXPECT().Delete(gomock.Any(), pb.ID).Return(nil)

		err := commands.NewProductCommands(f.uow, f.objects, f.clock).Delete(ctx, uuid.New(), user.RoleAdmin, pb.ID)
		assert.NoError(t, err)
	})

	t.Run("stranger", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		f := newFixture(ctrl)
		pb := builder.NewProductBuilder()
		f.products.EXPECT().FindForUpdate(gomock.Any(), pb.ID).Return(pb.BuildStored(), nil)

		err := commands.NewProductCommands(f.uow, f.objects, f.clock).Delete(ctx, uuid.New(), user.RoleMember, pb.ID)
		assert.ErrorIs(t, err, product.ErrNotProductSeller)
	})
}

func TestProductStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("manual sold and back", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		f := newFixture(ctrl)
		pb := builder.NewProductBuilder()
		f.products.EXPECT().FindForUpdate(gomock.Any(), pb.ID).Return(pb.BuildStored(), nil).Times(2)
		f.rooms.EXPECT().FindConfirmedByProduct(gomock.Any(), pb.ID).Return(nil, nil).Times(2)
		f.products.EXPECT().UpdateStatus(gomock.Any(), pb.ID, product.StatusSold, fixedNow).Return(nil)
		f.products.EXPECT().UpdateStatus(gomock.Any(), pb.ID, product.StatusActive, fixedNow).Return(nil)

		cmds := commands.NewProductCommands(f.uow, f.objects, f.clock)
		require.NoError(t, cmds.MarkSold(ctx, pb.SellerID, pb.ID))
		require.NoError(t, cmds.MarkActive(ctx, pb.SellerID, pb.ID))
	})

	t.Run("confirmed sale cannot be reopened", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		f := newFixture(ctrl)
		pb := builder.NewProductBuilder().AsSold()
		confirmed := builder.NewChatRoomBuilder().ForProduct(pb).Confirmed(fixedNow).BuildDomain()
		f.products.EXPECT().FindForUpdate(gomock.Any(), pb.ID).Return(pb.BuildStored(), nil)
		f.rooms.EXPECT().FindConfirmedByProduct(gomock.Any(), pb.ID).Return(confirmed, nil)

		err := commands.NewProductCommands(f.uow, f.objects, f.clock).MarkActive(ctx, pb.SellerID, pb.ID)
		assert.ErrorIs(t, err, product.ErrSaleLocked)
	})
}
