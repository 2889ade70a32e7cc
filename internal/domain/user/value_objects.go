package user

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"marketplace-api/internal/pkg/errs"
)

var (
	ErrInvalidEmail    = errs.NewKind("invalid email format", errs.ErrValidation)
	ErrInvalidRole     = errs.NewKind("invalid role", errs.ErrValidation)
	ErrPasswordTooWeak = errs.NewKind("password must be at least 8 characters long", errs.ErrValidation)
	ErrPasswordTooLong = errs.NewKind("password must be at most 72 bytes long", errs.ErrValidation)
)

const (
	MinPasswordLength = 8
	MaxPasswordBytes  = 72
	maxEmailLength    = 254
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

type Email struct {
	value string
}

// Addresses are stored lower-cased so lookups and the unique index agree.
func NewEmail(s string) (Email, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if len(s) > maxEmailLength || !emailRegex.MatchString(s) {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: s}, nil
}

func (e Email) Value() string {
	return e.value
}

type Password struct {
	value string
}

func NewPassword(s string) (Password, error) {
	if utf8.RuneCountInString(s) < MinPasswordLength {
		return Password{}, ErrPasswordTooWeak
	}
	if len(s) > MaxPasswordBytes {
		return Password{}, ErrPasswordTooLong
	}
	return Password{value: s}, nil
}

func (p Password) Value() string {
	return p.value
}
