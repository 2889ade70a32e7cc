package user

import "marketplace-api/internal/pkg/errs"

var ErrInvalidCredentials = errs.New("invalid email or password")

// Credentials is what a login request carries. Password length rules are not
// re-applied here: an account created under older rules must still be able to log in.
type Credentials struct {
	email    Email
	password string
}

func NewCredentials(emailStr, passwordStr string) (Credentials, error) {
	email, err := NewEmail(emailStr)
	if err != nil {
		return Credentials{}, errs.Mark(err, ErrInvalidCredentials)
	}
	if passwordStr == "" {
		return Credentials{}, ErrInvalidCredentials
	}
	return Credentials{email: email, password: passwordStr}, nil
}

func (c Credentials) Email() Email      { return c.email }
func (c Credentials) Password() string { return c.password }
