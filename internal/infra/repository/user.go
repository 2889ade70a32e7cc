package repository

import (
	"context"
	"time"

	"marketplace-api/internal/domain/profile"
	"marketplace-api/internal/domain/user"
	"marketplace-api/internal/infra"
	"marketplace-api/internal/infra/repository/converter"
	sqlc "marketplace-api/internal/infra/sqlc/generated"
	"marketplace-api/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type UserQueries interface {
	CreateUser(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateUserParams) error
	FindUserByEmail(ctx context.Context, db sqlc.DBTX, email string) (sqlc.Users, error)
	UpdateUserLastLogin(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateUserLastLoginParams) error
}

type UserRepository struct {
	queries UserQueries
	db      sqlc.DBTX
}

func NewUserRepository(queries UserQueries, db sqlc.DBTX) *UserRepository {
	return &UserRepository{
		queries: queries,
		db:      db,
	}
}

func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	if err := r.queries.CreateUser(ctx, r.db, converter.UserToCreateParams(u)); err != nil {
		return infra.WrapRepoErr("failed to create user", err)
	}
	return nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email user.Email) (*user.User, error) {
	row, err := r.queries.FindUserByEmail(ctx, r.db, email.Value())
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by email", err)
	}
	return converter.UserFromRow(row)
}

func (r *UserRepository) UpdateLastLogin(ctx context.Context, userID uuid.UUID, at time.Time) error {
	err := r.queries.UpdateUserLastLogin(ctx, r.db, sqlc.UpdateUserLastLoginParams{
		ID:          userID,
		LastLoginAt: pgconv.TimeToPgtype(at),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update user last login", err)
	}
	return nil
}

type ProfileWriteQueries interface {
	CreateProfile(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateProfileParams) error
	GetProfile(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Profiles, error)
	UpdateProfile(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateProfileParams) (int64, error)
}

type ProfileRepository struct {
	queries ProfileWriteQueries
	db      sqlc.DBTX
}

func NewProfileRepository(queries ProfileWriteQueries, db sqlc.DBTX) *ProfileRepository {
	return &ProfileRepository{
		queries: queries,
		db:      db,
	}
}

func (r *ProfileRepository) Create(ctx context.Context, p *profile.Profile) error {
	if err := r.queries.CreateProfile(ctx, r.db, converter.ProfileToCreateParams(p)); err != nil {
		return infra.WrapRepoErr("failed to create profile", err)
	}
	return nil
}

func (r *ProfileRepository) FindByID(ctx context.Context, id uuid.UUID) (*profile.Profile, error) {
	row, err := r.queries.GetProfile(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("profile not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get profile", err)
	}
	return converter.ProfileFromRow(row)
}

func (r *ProfileRepository) Update(ctx context.Context, p *profile.Profile) error {
	n, err := r.queries.UpdateProfile(ctx, r.db, converter.ProfileToUpdateParams(p))
	if err != nil {
		return infra.WrapRepoErr("failed to update profile", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("profile not found", nil, infra.KindNotFound)
	}
	return nil
}
