package response

import (
	"time"

	"marketplace-api/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type ProfileResponse struct {
	ID        string     `json:"id"`
	Email     string     `json:"email"`
	Nickname  string     `json:"nickname"`
	BirthDate *time.Time `json:"birth_date,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

func FromProfileView(v *queries.ProfileView) (*ProfileResponse, error) {
	var res ProfileResponse
	if err := copier.CopyWithOption(&res, v, copyOpts); err != nil {
		return nil, err
	}
	return &res, nil
}

func FromProfileViews(vs []*queries.ProfileView) ([]*ProfileResponse, error) {
	res := make([]*ProfileResponse, 0, len(vs))
	if err := copier.CopyWithOption(&res, vs, copyOpts); err != nil {
		return nil, err
	}
	return res, nil
}

type MeResponse struct {
	ID      string           `json:"id"`
	Email   string           `json:"email"`
	Role    string           `json:"role"`
	Profile *ProfileResponse `json:"profile,omitempty"`
}

func FromMeView(v *queries.MeView) (*MeResponse, error) {
	res := &MeResponse{
		ID:    v.User.ID.String(),
		Email: v.User.Email,
		Role:  v.User.Role,
	}
	if v.Profile != nil {
		p, err := FromProfileView(v.Profile)
		if err != nil {
			return nil, err
		}
		res.Profile = p
	}
	return res, nil
}
