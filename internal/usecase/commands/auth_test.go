//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"

	"marketplace-api/internal/domain/profile"
	"marketplace-api/internal/domain/user"
	"marketplace-api/internal/pkg/errs"
	"marketplace-api/internal/pkg/jwt"
	"marketplace-api/internal/pkg/password"
	"marketplace-api/internal/usecase/commands"
	"marketplace-api/internal/usecase/queries"
	"marketplace-api/tests/common/builder"
	commandsmock "marketplace-api/tests/mock/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestSignup(t *testing.T) {
	ctx := context.Background()
	in := commands.SignupInput{Email: "new@example.com", Password: "password123", Nickname: "newbie"}

	t.Run("creates user and profile with the same id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		f := newFixture(ctrl)
		tokens := commandsmock.NewMockTokenIssuer(ctrl)

		var userID uuid.UUID
		f.users.EXPECT().Create(gomock.Any(), gomock.Any()).Do(func(_ context.Context, u *user.User) {
			userID = u.ID()
			assert.Equal(t, user.RoleMember, u.Role())
			assert.NoError(t, password.ComparePassword(u.PasswordHash(), in.Password))
		}).Return(nil)
		f.profiles.EXPECT().Create(gomock.Any(), gomock.Any()).Do(func(_ context.Context, p *profile.Profile) {
			assert.Equal(t, userID, p.ID())
			assert.Equal(t, "newbie", p.Nickname().String())
			assert.Equal(t, in.Email, p.Email())
		}).Return(nil)

		id, err := commands.NewAuthCommands(f.uow, tokens, f.clock).Signup(ctx, in)
		require.NoError(t, err)
		assert.Equal(t, userID, id)
	})

	t.Run("email already registered", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		f := newFixture(ctrl)
		f.users.EXPECT().Create(gomock.Any(), gomock.Any()).Return(duplicate())

		_, err := commands.NewAuthCommands(f.uow, commandsmock.NewMockTokenIssuer(ctrl), f.clock).Signup(ctx, in)
		assert.ErrorIs(t, err, commands.ErrEmailTaken)
		assert.True(t, errs.Is(err, errs.ErrConflict))
	})

	t.Run("validation happens before the transaction", func(t *testing.T) {
		tests := []struct {
			name   string
			mutate func(*commands.SignupInput)
			want   error
		}{
			{name: "bad email", mutate: func(i *commands.SignupInput) { i.Email = "nope" }, want: user.ErrInvalidEmail},
			{name: "short password", mutate: func(i *commands.SignupInput) { i.Password = "short" }, want: user.ErrPasswordTooWeak},
			{name: "blank nickname", mutate: func(i *commands.SignupInput) { i.Nickname = "  " }, want: profile.ErrEmptyNickname},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				ctrl := gomock.NewController(t)
				f := newFixture(ctrl)
				req := in
				tt.mutate(&req)

				_, err := commands.NewAuthCommands(f.uow, commandsmock.NewMockTokenIssuer(ctrl), f.clock).Signup(ctx, req)
				assert.ErrorIs(t, err, tt.want)
			})
		}
	})
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	hash, err := password.HashPassword("password123")
	require.NoError(t, err)

	t.Run("issues a token pair and records the login", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		f := newFixture(ctrl)
		tokens := commandsmock.NewMockTokenIssuer(ctrl)
		ub := builder.NewUserBuilder().WithPasswordHash(hash)
		stored, err := ub.BuildStored()
		require.NoError(t, err)

		f.users.EXPECT().FindByEmail(gomock.Any(), stored.Email()).Return(stored, nil)
		tokens.EXPECT().GenerateAccessToken(ub.ID, user.RoleMember).Return("access", nil)
		tokens.EXPECT().GenerateRefreshToken(ub.ID, user.RoleMember).Return("refresh", nil)
		f.users.EXPECT().UpdateLastLogin(gomock.Any(), ub.ID, fixedNow).Return(nil)

		got, err := commands.NewAuthCommands(f.uow, tokens, f.clock).Login(ctx, ub.Email, "password123")
		require.NoError(t, err)
		assert.Equal(t, &commands.LoginResult{
			UserID:    ub.ID,
			Role:      user.RoleMember,
			TokenPair: &commands.TokenPair{AccessToken: "access", RefreshToken: "refresh"},
		}, got)
	})

	t.Run("last login failure does not fail the login", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		f := newFixture(ctrl)
		tokens := commandsmock.NewMockTokenIssuer(ctrl)
		ub := builder.NewUserBuilder().WithPasswordHash(hash)
		stored, _ := ub.BuildStored()

		f.users.EXPECT().FindByEmail(gomock.Any(), gomock.Any()).Return(stored, nil)
		tokens.EXPECT().GenerateAccessToken(gomock.Any(), gomock.Any()).Return("access", nil)
		tokens.EXPECT().GenerateRefreshToken(gomock.Any(), gomock.Any()).Return("refresh", nil)
		f.users.EXPECT().UpdateLastLogin(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("timeout"))

		_, err := commands.NewAuthCommands(f.uow, tokens, f.clock).Login(ctx, ub.Email, "password123")
		assert.NoError(t, err)
	})

	t.Run("failures", func(t *testing.T) {
		tests := []struct {
			name     string
			email    string
			password string
			found    func() (*user.User, error)
			want     error
		}{
			{name: "malformed email", email: "bad", password: "password123", want: user.ErrInvalidCredentials},
			{
				name: "unknown email", email: "ghost@example.com", password: "password123",
				found: func() (*user.User, error) { return nil, notFound() },
				want:  user.ErrInvalidCredentials,
			},
			{
				name: "wrong password", email: "test@example.com", password: "wrong-password",
				found: func() (*user.User, error) { return builder.NewUserBuilder().WithPasswordHash(hash).BuildStored() },
				want:  user.ErrInvalidCredentials,
			},
			{
				name: "inactive account", email: "test@example.com", password: "password123",
				found: func() (*user.User, error) {
					return builder.NewUserBuilder().WithPasswordHash(hash).AsInactive().BuildStored()
				},
				want: queries.ErrUserInactive,
			},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				ctrl := gomock.NewController(t)
				f := newFixture(ctrl)
				if tt.found != nil {
					f.users.EXPECT().FindByEmail(gomock.Any(), gomock.Any()).DoAndReturn(
						func(context.Context, user.Email) (*user.User, error) { return tt.found() })
				}

				got, err := commands.NewAuthCommands(f.uow, commandsmock.NewMockTokenIssuer(ctrl), f.clock).Login(ctx, tt.email, tt.password)
				assert.ErrorIs(t, err, tt.want)
				assert.Nil(t, got)
			})
		}
	})
}

func TestRefreshToken(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("rotates both tokens with the current role", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		f := newFixture(ctrl)
		tokens := commandsmock.NewMockTokenIssuer(ctrl)

		tokens.EXPECT().ValidateToken("refresh").Return(&jwt.Claims{UserID: userID, Role: "member", TokenType: jwt.TokenTypeRefresh}, nil)
		f.reads.EXPECT().UserByID(gomock.Any(), userID).Return(builder.NewUserBuilder().WithID(userID).AsAdmin().BuildSnapshot(), nil)
		tokens.EXPECT().GenerateAccessToken(userID, user.RoleAdmin).Return("a2", nil)
		tokens.EXPECT().GenerateRefreshToken(userID, user.RoleAdmin).Return("r2", nil)

		pair, err := commands.NewAuthCommands(f.uow, tokens, f.clock).RefreshToken(ctx, "refresh")
		require.NoError(t, err)
		assert.Equal(t, &commands.TokenPair{AccessToken: "a2", RefreshToken: "r2"}, pair)
	})

	t.Run("access token cannot refresh", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		f := newFixture(ctrl)
		tokens := commandsmock.NewMockTokenIssuer(ctrl)
		tokens.EXPECT().ValidateToken("access").Return(&jwt.Claims{UserID: userID, TokenType: jwt.TokenTypeAccess}, nil)

		_, err := commands.NewAuthCommands(f.uow, tokens, f.clock).RefreshToken(ctx, "access")
		assert.ErrorIs(t, err, commands.ErrTokenValidation)
	})

	t.Run("invalid signature", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		f := newFixture(ctrl)
		tokens := commandsmock.NewMockTokenIssuer(ctrl)
		tokens.EXPECT().ValidateToken("junk").Return(nil, errors.New("signature is invalid"))

		_, err := commands.NewAuthCommands(f.uow, tokens, f.clock).RefreshToken(ctx, "junk")
		assert.True(t, errs.Is(err, commands.ErrTokenValidation))
	})

	t.Run("deleted or deactivated user", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		f := newFixture(ctrl)
		tokens := commandsmock.NewMockTokenIssuer(ctrl)
		claims := &jwt.Claims{UserID: userID, TokenType: jwt.TokenTypeRefresh}
		tokens.EXPECT().ValidateToken(gomock.Any()).Return(claims, nil).Times(2)

		f.reads.EXPECT().UserByID(gomock.Any(), userID).Return(nil, notFound())
		_, err := commands.NewAuthCommands(f.uow, tokens, f.clock).RefreshToken(ctx, "r")
		assert.ErrorIs(t, err, commands.ErrTokenValidation)

		f.reads.EXPECT().UserByID(gomock.Any(), userID).Return(builder.NewUserBuilder().WithID(userID).AsInactive().BuildSnapshot(), nil)
		_, err = commands.NewAuthCommands(f.uow, tokens, f.clock).RefreshToken(ctx, "r")
		assert.ErrorIs(t, err, queries.ErrUserInactive)
	})
}
