package request

import (
	"time"

	"marketplace-api/internal/usecase/commands"
)

type SignupRequest struct {
	Email     string  `json:"email" binding:"required,email"`
	Password  string  `json:"password" binding:"required,min=8"`
	Nickname  string  `json:"nickname" binding:"required"`
	BirthDate *string `json:"birth_date" binding:"omitempty,datetime=2006-01-02"`
}

func (r *SignupRequest) ToInput() (commands.SignupInput, error) {
	birthDate, err := parseDate(r.BirthDate)
	if err != nil {
		return commands.SignupInput{}, err
	}
	return commands.SignupInput{
		Email:     r.Email,
		Password:  r.Password,
		Nickname:  r.Nickname,
		BirthDate: birthDate,
	}, nil
}

// Password length is not checked here: accounts created under older rules must still log in.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RefreshRequest may be empty when the refresh cookie is present.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

func parseDate(s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	t, err := time.Parse(time.DateOnly, *s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
