//go:build unit

package readstore_test

import (
	"context"
	"testing"
	"time"

	"marketplace-api/internal/infra"
	"marketplace-api/internal/infra/readstore"
	sqlc "marketplace-api/internal/infra/sqlc/generated"
	"marketplace-api/internal/usecase/queries"
	"marketplace-api/tests/common/builder"
	readstoremock "marketplace-api/tests/mock/readstore"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestUserReadStore_FindByID(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name       string
		row        sqlc.Users
		queryErr   error
		expectKind infra.RepositoryErrorKind
	}{
		{
			name: "success: active member",
			row:  builder.NewUserBuilder().BuildInfra(),
		},
		{
			name: "success: inactive admin keeps its flags",
			row:  builder.NewUserBuilder().AsAdmin().AsInactive().BuildInfra(),
		},
		{
			name:       "error: user not found",
			queryErr:   pgx.ErrNoRows,
			expectKind: infra.KindNotFound,
		},
		{
			name:       "error: database failure",
			queryErr:   assert.AnError,
			expectKind: infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			q := readstoremock.NewMockUserReadQueries(ctrl)
			id := tc.row.ID
			if id == uuid.Nil {
				id = uuid.New()
			}
			q.EXPECT().FindUserByID(ctx, gomock.Nil(), id).Return(tc.row, tc.queryErr)

			got, err := readstore.NewUserReadStore(q, nil).FindByID(ctx, id)

			if tc.expectKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind), "got %v", err)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			want := &queries.AuthorizedUserView{ID: tc.row.ID, Email: tc.row.Email, Role: tc.row.Role, IsActive: tc.row.IsActive}
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("view mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestProfileReadStore(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 4, 2, 15, 30, 0, 0, time.UTC)
	birth := time.Date(1995, 3, 14, 0, 0, 0, 0, time.UTC)

	withBirth := sqlc.Profiles{
		ID:        uuid.New(),
		Email:     "seller@example.com",
		Nickname:  "seller",
		BirthDate: pgtype.Date{Time: birth, Valid: true},
		CreatedAt: pgtype.Timestamptz{Time: now, Valid: true},
		UpdatedAt: pgtype.Timestamptz{Time: now, Valid: true},
	}
	withoutBirth := sqlc.Profiles{
		ID:        uuid.New(),
		Email:     "buyer@example.com",
		Nickname:  "buyer",
		CreatedAt: pgtype.Timestamptz{Time: now, Valid: true},
		UpdatedAt: pgtype.Timestamptz{Time: now, Valid: true},
	}

	t.Run("FindByID maps the optional birth date", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		q := readstoremock.NewMockProfileReadQueries(ctrl)
		q.EXPECT().GetProfile(ctx, gomock.Any(), withBirth.ID).Return(withBirth, nil)

		got, err := readstore.NewProfileReadStore(q, nil).FindByID(ctx, withBirth.ID)

		require.NoError(t, err)
		want := &queries.ProfileView{
			ID: withBirth.ID, Email: "seller@example.com", Nickname: "seller",
			BirthDate: &birth, CreatedAt: now, UpdatedAt: now,
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("profile mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("FindByID of a missing profile", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		q := readstoremock.NewMockProfileReadQueries(ctrl)
		q.EXPECT().GetProfile(ctx, gomock.Any(), gomock.Any()).Return(sqlc.Profiles{}, pgx.ErrNoRows)

		_, err := readstore.NewProfileReadStore(q, nil).FindByID(ctx, uuid.New())

		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("FindByIDs keeps row order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		q := readstoremock.NewMockProfileReadQueries(ctrl)
		ids := []uuid.UUID{withBirth.ID, withoutBirth.ID}
		q.EXPECT().ListProfilesByIDs(ctx, gomock.Any(), ids).Return([]sqlc.Profiles{withBirth, withoutBirth}, nil)

		got, err := readstore.NewProfileReadStore(q, nil).FindByIDs(ctx, ids)

		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "seller", got[0].Nickname)
		assert.Equal(t, "buyer", got[1].Nickname)
		assert.Nil(t, got[1].BirthDate)
	})
}
