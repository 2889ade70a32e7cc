package commands

import (
	"context"
	"log/slog"
	"time"

	"marketplace-api/internal/domain/profile"
	"marketplace-api/internal/domain/user"
	"marketplace-api/internal/infra"
	"marketplace-api/internal/pkg/clock"
	"marketplace-api/internal/pkg/errs"
	"marketplace-api/internal/pkg/jwt"
	"marketplace-api/internal/pkg/password"
	"marketplace-api/internal/usecase/queries"
	"marketplace-api/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrEmailTaken      = errs.NewKind("email is already registered", errs.ErrConflict)
	ErrTokenGeneration = errs.New("token generation failed")
	ErrTokenValidation = errs.New("token validation failed")
)

type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

type LoginResult struct {
	UserID    uuid.UUID
	Role      user.Role
	TokenPair *TokenPair
}

type SignupInput struct {
	Email     string
	Password  string
	Nickname  string
	BirthDate *time.Time
}

// TokenIssuer is satisfied by *jwt.Service.
type TokenIssuer interface {
	GenerateAccessToken(userID uuid.UUID, role user.Role) (string, error)
	GenerateRefreshToken(userID uuid.UUID, role user.Role) (string, error)
	ValidateToken(tokenString string) (*jwt.Claims, error)
}

type AuthCommands interface {
	Signup(ctx context.Context, in SignupInput) (uuid.UUID, error)
	Login(ctx context.Context, email, rawPassword string) (*LoginResult, error)
	RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error)
}

type authCommandsImpl struct {
	uow    shared.UnitOfWork
	tokens TokenIssuer
	clock  clock.Clock
}

func NewAuthCommands(uow shared.UnitOfWork, tokens TokenIssuer, clk clock.Clock) AuthCommands {
	return &authCommandsImpl{
		uow:    uow,
		tokens: tokens,
		clock:  clk,
	}
}

func (a *authCommandsImpl) Signup(ctx context.Context, in SignupInput) (uuid.UUID, error) {
	email, err := user.NewEmail(in.Email)
	if err != nil {
		return uuid.Nil, err
	}
	pw, err := user.NewPassword(in.Password)
	if err != nil {
		return uuid.Nil, err
	}
	nickname, err := profile.NewNickname(in.Nickname)
	if err != nil {
		return uuid.Nil, err
	}

	hash, err := password.HashPassword(pw.Value())
	if err != nil {
		return uuid.Nil, err
	}

	now := a.clock.Now()
	u := user.NewUser(email, hash, user.RoleMember, now)
	p, err := profile.NewProfile(u.ID(), email.Value(), nickname, in.BirthDate, now)
	if err != nil {
		return uuid.Nil, err
	}

	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Users().Create(ctx, u); err != nil {
			if isDuplicate(err) {
				return ErrEmailTaken
			}
			return err
		}
		return tx.Profiles().Create(ctx, p)
	})
	if err != nil {
		return uuid.Nil, err
	}

	slog.InfoContext(ctx, "user signed up", "user_id", u.ID())
	return u.ID(), nil
}

func (a *authCommandsImpl) Login(ctx context.Context, email, rawPassword string) (*LoginResult, error) {
	credentials, err := user.NewCredentials(email, rawPassword)
	if err != nil {
		return nil, user.ErrInvalidCredentials
	}

	var found *user.User
	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var ferr error
		found, ferr = tx.Users().FindByEmail(ctx, credentials.Email())
		return ferr
	})
	if err != nil {
		// Return same error as password mismatch to prevent user enumeration attacks
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, user.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := password.ComparePassword(found.PasswordHash(), credentials.Password()); err != nil {
		return nil, user.ErrInvalidCredentials
	}
	if !found.IsActive() {
		return nil, queries.ErrUserInactive
	}

	pair, err := a.issue(found.ID(), found.Role())
	if err != nil {
		return nil, err
	}

	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Users().UpdateLastLogin(ctx, found.ID(), a.clock.Now())
	})
	if err != nil {
		// login already succeeded; only the bookkeeping failed
		slog.WarnContext(ctx, "failed to update last login", "user_id", found.ID(), "error", err.Error())
	}

	return &LoginResult{
		UserID:    found.ID(),
		Role:      found.Role(),
		TokenPair: pair,
	}, nil
}

func (a *authCommandsImpl) RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error) {
	claims, err := a.tokens.ValidateToken(refreshToken)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenValidation)
	}

	if claims.TokenType != jwt.TokenTypeRefresh {
		return nil, ErrTokenValidation
	}

	// Validate user still exists and is active
	snap, err := a.uow.CommandReads().UserByID(ctx, claims.UserID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrTokenValidation
		}
		return nil, err
	}
	if !snap.IsActive {
		return nil, queries.ErrUserInactive
	}

	// role is re-read so a demotion takes effect on the next refresh
	role, err := user.NewRole(snap.Role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenValidation)
	}

	return a.issue(snap.ID, role)
}

func (a *authCommandsImpl) issue(userID uuid.UUID, role user.Role) (*TokenPair, error) {
	accessToken, err := a.tokens.GenerateAccessToken(userID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	refreshToken, err := a.tokens.GenerateRefreshToken(userID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	return &TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}
