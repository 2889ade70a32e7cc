package readstore

import (
	"context"

	"marketplace-api/internal/infra"
	sqlc "marketplace-api/internal/infra/sqlc/generated"
	"marketplace-api/internal/pkg/pgconv"
	"marketplace-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserReadQueries interface {
	FindUserByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Users, error)
}

type UserReadStore struct {
	queries UserReadQueries
	db      sqlc.DBTX
}

func NewUserReadStore(queries UserReadQueries, db sqlc.DBTX) *UserReadStore {
	return &UserReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	row, err := r.queries.FindUserByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}

	return &queries.AuthorizedUserView{
		ID:       row.ID,
		Email:    row.Email,
		Role:     row.Role,
		IsActive: row.IsActive,
	}, nil
}

type ProfileReadQueries interface {
	GetProfile(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Profiles, error)
	ListProfilesByIDs(ctx context.Context, db sqlc.DBTX, ids []uuid.UUID) ([]sqlc.Profiles, error)
}

type ProfileReadStore struct {
	queries ProfileReadQueries
	db      sqlc.DBTX
}

func NewProfileReadStore(queries ProfileReadQueries, db sqlc.DBTX) *ProfileReadStore {
	return &ProfileReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ProfileReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ProfileView, error) {
	row, err := r.queries.GetProfile(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("profile not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get profile", err)
	}
	return toProfileView(row), nil
}

func (r *ProfileReadStore) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*queries.ProfileView, error) {
	rows, err := r.queries.ListProfilesByIDs(ctx, r.db, ids)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list profiles", err)
	}
	result := make([]*queries.ProfileView, len(rows))
	for i, row := range rows {
		result[i] = toProfileView(row)
	}
	return result, nil
}

func toProfileView(row sqlc.Profiles) *queries.ProfileView {
	return &queries.ProfileView{
		ID:        row.ID,
		Email:     row.Email,
		Nickname:  row.Nickname,
		BirthDate: pgconv.DatePtrFromPgtype(row.BirthDate),
		CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt: pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}
