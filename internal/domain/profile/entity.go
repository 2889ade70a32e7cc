package profile

import (
	"strings"
	"time"
	"unicode/utf8"

	"marketplace-api/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrEmptyNickname     = errs.NewKind("nickname cannot be empty", errs.ErrValidation)
	ErrNicknameTooLong   = errs.NewKind("nickname must be at most 20 characters", errs.ErrValidation)
	ErrBirthDateFuture   = errs.NewKind("birth date cannot be in the future", errs.ErrValidation)
	ErrNotProfileOwner   = errs.NewKind("only the owner can edit this profile", errs.ErrPermissionDenied)
	ErrProfileNotFound   = errs.NewKind("profile not found", errs.ErrNotFound)
	ErrTooManyProfileIDs = errs.NewKind("too many profile ids requested", errs.ErrValidation)
)

const (
	MaxNicknameLength = 20
	MaxBatchSize      = 100
)

type Nickname struct {
	value string
}

func NewNickname(s string) (Nickname, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Nickname{}, ErrEmptyNickname
	}
	if utf8.RuneCountInString(s) > MaxNicknameLength {
		return Nickname{}, ErrNicknameTooLong
	}
	return Nickname{value: s}, nil
}

func (n Nickname) String() string { return n.value }

// Profile is the public face of a user and shares the user's id.
type Profile struct {
	id        uuid.UUID
	email     string
	nickname  Nickname
	birthDate *time.Time
	createdAt time.Time
	updatedAt time.Time
}

func NewProfile(userID uuid.UUID, email string, nickname Nickname, birthDate *time.Time, now time.Time) (*Profile, error) {
	if birthDate != nil && birthDate.After(now) {
		return nil, ErrBirthDateFuture
	}
	return &Profile{
		id:        userID,
		email:     email,
		nickname:  nickname,
		birthDate: birthDate,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructProfile(id uuid.UUID, email string, nickname Nickname, birthDate *time.Time, createdAt, updatedAt time.Time) *Profile {
	return &Profile{
		id:        id,
		email:     email,
		nickname:  nickname,
		birthDate: birthDate,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

// Update applies the non-nil fields. Only the profile owner may call it.
func (p *Profile) Update(actor uuid.UUID, nickname *Nickname, birthDate *time.Time, now time.Time) error {
	if actor != p.id {
		return ErrNotProfileOwner
	}
	if birthDate != nil && birthDate.After(now) {
		return ErrBirthDateFuture
	}
	if nickname != nil {
		p.nickname = *nickname
	}
	if birthDate != nil {
		p.birthDate = birthDate
	}
	p.updatedAt = now
	return nil
}

func (p *Profile) ID() uuid.UUID         { return p.id }
func (p *Profile) Email() string         { return p.email }
func (p *Profile) Nickname() Nickname    { return p.nickname }
func (p *Profile) BirthDate() *time.Time { return p.birthDate }
func (p *Profile) CreatedAt() time.Time  { return p.createdAt }
func (p *Profile) UpdatedAt() time.Time  { return p.updatedAt }
