package response

import (
	"marketplace-api/internal/usecase/commands"

	"github.com/google/uuid"
)

type LoginResponse struct {
	UserID       uuid.UUID `json:"user_id"`
	Role         string    `json:"role"`
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token"`
}

func FromLoginResult(r *commands.LoginResult) *LoginResponse {
	return &LoginResponse{
		UserID:       r.UserID,
		Role:         r.Role.String(),
		AccessToken:  r.TokenPair.AccessToken,
		RefreshToken: r.TokenPair.RefreshToken,
	}
}

type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

type IDResponse struct {
	ID uuid.UUID `json:"id"`
}
