package commands

import (
	"context"
	"log/slog"

	"marketplace-api/internal/domain/product"
	"marketplace-api/internal/domain/user"
	"marketplace-api/internal/pkg/clock"
	"marketplace-api/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateProductInput struct {
	Title    string
	Content  string
	Price    int64
	Location string
	ImageURL *string
}

type UpdateProductInput struct {
	Title      *string
	Content    *string
	Price      *int64
	Location   *string
	ImageURL   *string
	ClearImage bool
}

type ProductCommands interface {
	Create(ctx context.Context, actorID uuid.UUID, in CreateProductInput) (uuid.UUID, error)
	Update(ctx context.Context, actorID, productID uuid.UUID, in UpdateProductInput) error
	Delete(ctx context.Context, actorID uuid.UUID, role user.Role, productID uuid.UUID) error
	MarkSold(ctx context.Context, actorID, productID uuid.UUID) error
	MarkActive(ctx context.Context, actorID, productID uuid.UUID) error
}

type productCommandsImpl struct {
	uow     shared.UnitOfWork
	objects shared.ObjectStore
	clock   clock.Clock
}

func NewProductCommands(uow shared.UnitOfWork, objects shared.ObjectStore, clk clock.Clock) ProductCommands {
	return &productCommandsImpl{
		uow:     uow,
		objects: objects,
		clock:   clk,
	}
}

func (c *productCommandsImpl) Create(ctx context.Context, actorID uuid.UUID, in CreateProductInput) (uuid.UUID, error) {
	fields, err := buildFields(in)
	if err != nil {
		return uuid.Nil, err
	}
	p, err := product.NewProduct(actorID, fields, c.clock.Now())
	if err != nil {
		return uuid.Nil, err
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Products().Create(ctx, p)
	})
	if err != nil {
		return uuid.Nil, err
	}

	slog.InfoContext(ctx, "product created", "product_id", p.ID(), "seller_id", actorID)
	return p.ID(), nil
}

func (c *productCommandsImpl) Update(ctx context.Context, actorID, productID uuid.UUID, in UpdateProductInput) error {
	patch, err := buildPatch(in)
	if err != nil {
		return err
	}

	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		p, err := tx.Products().FindForUpdate(ctx, productID)
		if err != nil {
			return asNotFound(err, product.ErrProductNotFound)
		}
		if err := p.Apply(actorID, patch, c.clock.Now()); err != nil {
			return err
		}
		return asNotFound(tx.Products().Update(ctx, p), product.ErrProductNotFound)
	})
}

func (c *productCommandsImpl) Delete(ctx context.Context, actorID uuid.UUID, role user.Role, productID uuid.UUID) error {
	var imageURL *string
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		p, err := tx.Products().FindForUpdate(ctx, productID)
		if err != nil {
			return asNotFound(err, product.ErrProductNotFound)
		}
		if !p.CanDelete(actorID, role.IsAdmin()) {
			return product.ErrNotProductSeller
		}
		imageURL = p.ImageURL()
		return asNotFound(tx.Products().Delete(ctx, productID), product.ErrProductNotFound)
	})
	if err != nil {
		return err
	}

	c.removeImage(ctx, imageURL)
	return nil
}

// removeImage drops a stored image once its product is gone. External URLs are left alone.
func (c *productCommandsImpl) removeImage(ctx context.Context, imageURL *string) {
	if imageURL == nil || c.objects == nil {
		return
	}
	key, ok := c.objects.KeyFromURL(*imageURL)
	if !ok {
		return
	}
	if err := c.objects.Delete(ctx, key); err != nil {
		slog.WarnContext(ctx, "failed to delete product image", "key", key, "error", err.Error())
	}
}

func (c *productCommandsImpl) MarkSold(ctx context.Context, actorID, productID uuid.UUID) error {
	return c.changeStatus(ctx, actorID, productID, product.StatusSold)
}

func (c *productCommandsImpl) MarkActive(ctx context.Context, actorID, productID uuid.UUID) error {
	return c.changeStatus(ctx, actorID, productID, product.StatusActive)
}

func (c *productCommandsImpl) changeStatus(ctx context.Context, actorID, productID uuid.UUID, next product.Status) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		p, err := tx.Products().FindForUpdate(ctx, productID)
		if err != nil {
			return asNotFound(err, product.ErrProductNotFound)
		}
		confirmed, err := tx.ChatRooms().FindConfirmedByProduct(ctx, productID)
		if err != nil {
			return err
		}
		now := c.clock.Now()
		if err := p.ChangeStatus(actorID, next, confirmed != nil, now); err != nil {
			return err
		}
		return asNotFound(tx.Products().UpdateStatus(ctx, productID, p.Status(), now), product.ErrProductNotFound)
	})
}

func buildFields(in CreateProductInput) (product.Fields, error) {
	title, err := product.NewTitle(in.Title)
	if err != nil {
		return product.Fields{}, err
	}
	content, err := product.NewContent(in.Content)
	if err != nil {
		return product.Fields{}, err
	}
	price, err := product.NewPrice(in.Price)
	if err != nil {
		return product.Fields{}, err
	}
	location, err := product.NewLocation(in.Location)
	if err != nil {
		return product.Fields{}, err
	}
	return product.Fields{
		Title:    title,
		Content:  content,
		Price:    price,
		Location: location,
		ImageURL: in.ImageURL,
	}, nil
}

func buildPatch(in UpdateProductInput) (product.Patch, error) {
	patch := product.Patch{ImageURL: in.ImageURL, ClearImage: in.ClearImage}
	if in.Title != nil {
		v, err := product.NewTitle(*in.Title)
		if err != nil {
			return product.Patch{}, err
		}
		patch.Title = &v
	}
	if in.Content != nil {
		v, err := product.NewContent(*in.Content)
		if err != nil {
			return product.Patch{}, err
		}
		patch.Content = &v
	}
	if in.Price != nil {
		v, err := product.NewPrice(*in.Price)
		if err != nil {
			return product.Patch{}, err
		}
		patch.Price = &v
	}
	if in.Location != nil {
		v, err := product.NewLocation(*in.Location)
		if err != nil {
			return product.Patch{}, err
		}
		patch.Location = &v
	}
	return patch, nil
}
