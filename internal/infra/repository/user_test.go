//go:build unit

package repository

import (
	"context"
	"testing"
	"time"

	"marketplace-api/internal/domain/user"
	"marketplace-api/internal/infra"
	sqlc "marketplace-api/internal/infra/sqlc/generated"
	"marketplace-api/tests/common/builder"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockUserQueries struct {
	mock.Mock
}

func (m *MockUserQueries) CreateUser(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateUserParams) error {
	args := m.Called(ctx, db, arg)
	return args.Error(0)
}

func (m *MockUserQueries) FindUserByEmail(ctx context.Context, db sqlc.DBTX, email string) (sqlc.Users, error) {
	args := m.Called(ctx, db, email)
	return args.Get(0).(sqlc.Users), args.Error(1)
}

func (m *MockUserQueries) UpdateUserLastLogin(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateUserLastLoginParams) error {
	args := m.Called(ctx, db, arg)
	return args.Error(0)
}

func TestUserRepository_Create(t *testing.T) {
	u, err := builder.NewUserBuilder().BuildDomain()
	require.NoError(t, err)

	tests := []struct {
		name     string
		mockErr  error
		wantKind infra.RepositoryErrorKind
	}{
		{name: "success"},
		{
			name:     "duplicate email",
			mockErr:  &pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"},
			wantKind: infra.KindDuplicateKey,
		},
		{name: "database error", mockErr: assert.AnError, wantKind: infra.KindDBFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := new(MockUserQueries)
			q.On("CreateUser", mock.Anything, mock.Anything, mock.MatchedBy(func(p sqlc.CreateUserParams) bool {
				return p.ID == u.ID() && p.Email == "test@example.com" && p.Role == "member" && p.IsActive
			})).Return(tt.mockErr)

			err := NewUserRepository(q, nil).Create(context.Background(), u)

			if tt.wantKind == "" {
				assert.NoError(t, err)
			} else {
				assert.True(t, infra.IsKind(err, tt.wantKind), "got %v", err)
			}
			q.AssertExpectations(t)
		})
	}
}

func TestUserRepository_FindByEmail(t *testing.T) {
	email, err := user.NewEmail("test@example.com")
	require.NoError(t, err)

	t.Run("success: row becomes a domain user", func(t *testing.T) {
		b := builder.NewUserBuilder()
		q := new(MockUserQueries)
		q.On("FindUserByEmail", mock.Anything, mock.Anything, "test@example.com").Return(b.BuildInfra(), nil)

		got, err := NewUserRepository(q, nil).FindByEmail(context.Background(), email)

		require.NoError(t, err)
		assert.Equal(t, b.ID, got.ID())
		assert.Equal(t, user.RoleMember, got.Role())
		assert.True(t, got.IsActive())
	})

	t.Run("error: no rows is not found", func(t *testing.T) {
		q := new(MockUserQueries)
		q.On("FindUserByEmail", mock.Anything, mock.Anything, "test@example.com").Return(sqlc.Users{}, pgx.ErrNoRows)

		_, err := NewUserRepository(q, nil).FindByEmail(context.Background(), email)

		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("error: driver failure", func(t *testing.T) {
		q := new(MockUserQueries)
		q.On("FindUserByEmail", mock.Anything, mock.Anything, "test@example.com").Return(sqlc.Users{}, assert.AnError)

		_, err := NewUserRepository(q, nil).FindByEmail(context.Background(), email)

		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
		assert.ErrorIs(t, err, assert.AnError)
	})
}

func TestUserRepository_UpdateLastLogin(t *testing.T) {
	userID := uuid.New()
	at := time.Date(2025, 4, 2, 15, 30, 0, 0, time.UTC)

	tests := []struct {
		name      string
		mockError error
		wantError bool
	}{
		{name: "success"},
		{name: "database error", mockError: assert.AnError, wantError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := new(MockUserQueries)
			q.On("UpdateUserLastLogin", mock.Anything, mock.Anything, mock.MatchedBy(func(p sqlc.UpdateUserLastLoginParams) bool {
				return p.ID == userID && p.LastLoginAt.Valid && p.LastLoginAt.Time.Equal(at)
			})).Return(tt.mockError)

			err := NewUserRepository(q, nil).UpdateLastLogin(context.Background(), userID, at)

			if tt.wantError {
				assert.True(t, infra.IsKind(err, infra.KindDBFailure))
			} else {
				assert.NoError(t, err)
			}
			q.AssertExpectations(t)
		})
	}
}
