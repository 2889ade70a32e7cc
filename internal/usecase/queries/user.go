package queries

import (
	"context"

	"marketplace-api/internal/infra"
	"marketplace-api/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrUserNotFound = errs.NewKind("user not found", errs.ErrNotFound)
	ErrUserInactive = errs.NewKind("user inactive", errs.ErrPermissionDenied)
)

type UserQueries interface {
	GetCurrentUser(ctx context.Context, userID uuid.UUID) (*AuthorizedUserView, error)
	Me(ctx context.Context, userID uuid.UUID) (*MeView, error)
}

type UserReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*AuthorizedUserView, error)
}

type userQueriesImpl struct {
	readStore    UserReadStore
	profileStore ProfileReadStore
}

func NewUserQueries(readStore UserReadStore, profileStore ProfileReadStore) UserQueries {
	return &userQueriesImpl{
		readStore:    readStore,
		profileStore: profileStore,
	}
}

func (q *userQueriesImpl) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*AuthorizedUserView, error) {
	user, err := q.readStore.FindByID(ctx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if !user.IsActive {
		return nil, ErrUserInactive
	}

	return user, nil
}

func (q *userQueriesImpl) Me(ctx context.Context, userID uuid.UUID) (*MeView, error) {
	user, err := q.GetCurrentUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	// Profile and user share the id; a missing profile is tolerated for accounts
	// created before signup wrote both rows.
	profile, err := q.profileStore.FindByID(ctx, userID)
	if err != nil && !infra.IsKind(err, infra.KindNotFound) {
		return nil, err
	}

	return &MeView{User: user, Profile: profile}, nil
}
