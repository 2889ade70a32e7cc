//go:build unit || e2e

package builder

import (
	"time"

	"marketplace-api/internal/domain/profile"
	"marketplace-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type ProfileBuilder struct {
	ID        uuid.UUID
	Email     string
	Nickname  string
	BirthDate *time.Time
	CreatedAt time.Time
}

func NewProfileBuilder() *ProfileBuilder {
	birth := time.Date(1995, 3, 14, 0, 0, 0, 0, time.UTC)
	return &ProfileBuilder{
		ID:        uuid.New(),
		Email:     "test@example.com",
		Nickname:  "tester",
		BirthDate: &birth,
		CreatedAt: time.Date(2025, 1, 10, 12, 0, 0, 0, time.UTC),
	}
}

func (p *ProfileBuilder) With(mutate func(*ProfileBuilder)) *ProfileBuilder {
	mutate(p)
	return p
}

func (p *ProfileBuilder) BuildDomain() (*profile.Profile, error) {
	nickname, err := profile.NewNickname(p.Nickname)
	if err != nil {
		return nil, err
	}
	return profile.ReconstructProfile(p.ID, p.Email, nickname, p.BirthDate, p.CreatedAt, p.CreatedAt), nil
}

func (p *ProfileBuilder) BuildView() *queries.ProfileView {
	return &queries.ProfileView{
		ID:        p.ID,
		Email:     p.Email,
		Nickname:  p.Nickname,
		BirthDate: p.BirthDate,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.CreatedAt,
	}
}
