//go:build unit || e2e

package builder

import (
	reqdto "marketplace-api/internal/handler/dto/request"
)

type AuthBuilder struct {
	Email     string
	Password  string
	Nickname  string
	BirthDate *string
}

func NewAuthBuilder() *AuthBuilder {
	birthDate := "1995-03-14"
	return &AuthBuilder{
		Email:     "test@example.com",
		Password:  "password123",
		Nickname:  "tester",
		BirthDate: &birthDate,
	}
}

func (a *AuthBuilder) With(mutate func(*AuthBuilder)) *AuthBuilder {
	mutate(a)
	return a
}

func (a *AuthBuilder) BuildDTO() reqdto.LoginRequest {
	return reqdto.LoginRequest{
		Email:    a.Email,
		Password: a.Password,
	}
}

func (a *AuthBuilder) BuildSignupDTO() reqdto.SignupRequest {
	return reqdto.SignupRequest{
		Email:     a.Email,
		Password:  a.Password,
		Nickname:  a.Nickname,
		BirthDate: a.BirthDate,
	}
}
