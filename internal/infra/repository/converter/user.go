package converter

import (
	"marketplace-api/internal/domain/profile"
	"marketplace-api/internal/domain/user"
	sqlc "marketplace-api/internal/infra/sqlc/generated"
	"marketplace-api/internal/pkg/pgconv"
)

func UserToCreateParams(u *user.User) sqlc.CreateUserParams {
	return sqlc.CreateUserParams{
		ID:           u.ID(),
		Email:        u.Email().Value(),
		PasswordHash: u.PasswordHash(),
		Role:         u.Role().String(),
		IsActive:     u.IsActive(),
		CreatedAt:    pgconv.TimeToPgtype(u.CreatedAt()),
		UpdatedAt:    pgconv.TimeToPgtype(u.UpdatedAt()),
	}
}

func UserFromRow(row sqlc.Users) (*user.User, error) {
	email, err := user.NewEmail(row.Email)
	if err != nil {
		return nil, err
	}
	role, err := user.NewRole(row.Role)
	if err != nil {
		return nil, err
	}
	return user.ReconstructUser(
		row.ID, email, row.PasswordHash, role,
		pgconv.TimePtrFromPgtype(row.LastLoginAt), row.IsActive,
		pgconv.TimeFromPgtype(row.CreatedAt), pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}

func ProfileToCreateParams(p *profile.Profile) sqlc.CreateProfileParams {
	return sqlc.CreateProfileParams{
		ID:        p.ID(),
		Email:     p.Email(),
		Nickname:  p.Nickname().String(),
		BirthDate: pgconv.DatePtrToPgtype(p.BirthDate()),
		CreatedAt: pgconv.TimeToPgtype(p.CreatedAt()),
		UpdatedAt: pgconv.TimeToPgtype(p.UpdatedAt()),
	}
}

func ProfileToUpdateParams(p *profile.Profile) sqlc.UpdateProfileParams {
	return sqlc.UpdateProfileParams{
		ID:        p.ID(),
		Nickname:  p.Nickname().String(),
		BirthDate: pgconv.DatePtrToPgtype(p.BirthDate()),
		UpdatedAt: pgconv.TimeToPgtype(p.UpdatedAt()),
	}
}

func ProfileFromRow(row sqlc.Profiles) (*profile.Profile, error) {
	nickname, err := profile.NewNickname(row.Nickname)
	if err != nil {
		return nil, err
	}
	return profile.ReconstructProfile(
		row.ID, row.Email, nickname,
		pgconv.DatePtrFromPgtype(row.BirthDate),
		pgconv.TimeFromPgtype(row.CreatedAt), pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}
