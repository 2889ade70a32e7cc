package commands

import (
	"context"
	"time"

	"marketplace-api/internal/domain/profile"
	"marketplace-api/internal/pkg/clock"
	"marketplace-api/internal/usecase/shared"

	"github.com/google/uuid"
)

type UpdateProfileInput struct {
	Nickname  *string
	BirthDate *time.Time
}

type ProfileCommands interface {
	UpdateProfile(ctx context.Context, actorID, profileID uuid.UUID, in UpdateProfileInput) error
}

type profileCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewProfileCommands(uow shared.UnitOfWork, clk clock.Clock) ProfileCommands {
	return &profileCommandsImpl{uow: uow, clock: clk}
}

func (c *profileCommandsImpl) UpdateProfile(ctx context.Context, actorID, profileID uuid.UUID, in UpdateProfileInput) error {
	var nickname *profile.Nickname
	if in.Nickname != nil {
		n, err := profile.NewNickname(*in.Nickname)
		if err != nil {
			return err
		}
		nickname = &n
	}

	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		p, err := tx.Profiles().FindByID(ctx, profileID)
		if err != nil {
			return asNotFound(err, profile.ErrProfileNotFound)
		}
		if err := p.Update(actorID, nickname, in.BirthDate, c.clock.Now()); err != nil {
			return err
		}
		return asNotFound(tx.Profiles().Update(ctx, p), profile.ErrProfileNotFound)
	})
}
