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
	readstoremock "marketplace-api/tests/mock/readstore"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var reviewTime = time.Date(2025, 4, 2, 15, 30, 0, 0, time.UTC)

func ts(t time.Time) pgtype.Timestamptz {
	return pgtype.Timestamptz{Time: t, Valid: true}
}

func TestReviewReadStore_FindByID(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()
	row := sqlc.GetReviewViewRow{
		ID:               id,
		ProductID:        uuid.New(),
		ReviewerID:       uuid.New(),
		RevieweeID:       uuid.New(),
		Rating:           4,
		Comment:          pgtype.Text{String: "Kind seller", Valid: true},
		CreatedAt:        ts(reviewTime),
		UpdatedAt:        ts(reviewTime),
		ReviewerNickname: pgtype.Text{String: "buyer", Valid: true},
		ProductTitle:     "Used bicycle",
	}

	testCases := []struct {
		name       string
		setupMock  func(*readstoremock.MockReviewReadQueries)
		expectKind infra.RepositoryErrorKind
	}{
		{
			name: "success: joined row becomes a view",
			setupMock: func(m *readstoremock.MockReviewReadQueries) {
				m.EXPECT().GetReviewView(ctx, gomock.Any(), id).Return(row, nil)
			},
		},
		{
			name: "error: review not found",
			setupMock: func(m *readstoremock.MockReviewReadQueries) {
				m.EXPECT().GetReviewView(ctx, gomock.Any(), id).Return(sqlc.GetReviewViewRow{}, pgx.ErrNoRows)
			},
			expectKind: infra.KindNotFound,
		},
		{
			name: "error: database failure",
			setupMock: func(m *readstoremock.MockReviewReadQueries) {
				m.EXPECT().GetReviewView(ctx, gomock.Any(), id).Return(sqlc.GetReviewViewRow{}, assert.AnError)
			},
			expectKind: infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			m := readstoremock.NewMockReviewReadQueries(ctrl)
			tc.setupMock(m)

			got, err := readstore.NewReviewReadStore(m, nil).FindByID(ctx, id)

			if tc.expectKind != "" {
				assert.True(t, infra.IsKind(err, tc.expectKind), "got %v", err)
				return
			}
			require.NoError(t, err)
			comment, nickname, reviewerID := "Kind seller", "buyer", row.ReviewerID
			want := &queries.ReviewView{
				ID:               id,
				ProductID:        row.ProductID,
				ProductTitle:     "Used bicycle",
				ReviewerID:       &reviewerID,
				ReviewerNickname: &nickname,
				RevieweeID:       row.RevieweeID,
				Rating:           4,
				Comment:          &comment,
				CreatedAt:        reviewTime,
				UpdatedAt:        reviewTime,
			}
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("view mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestReviewReadStore_FindByProductAndReviewer(t *testing.T) {
	ctx := context.Background()
	productID, reviewerID := uuid.New(), uuid.New()
	params := sqlc.GetReviewByProductAndReviewerParams{ProductID: productID, ReviewerID: reviewerID}

	t.Run("success: comment may be absent", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := readstoremock.NewMockReviewReadQueries(ctrl)
		m.EXPECT().GetReviewByProductAndReviewer(ctx, gomock.Any(), params).Return(sqlc.Reviews{
			ID: uuid.New(), ProductID: productID, ReviewerID: reviewerID, RevieweeID: uuid.New(),
			Rating: 3, IsAnonymous: true, CreatedAt: ts(reviewTime), UpdatedAt: ts(reviewTime),
		}, nil)

		got, err := readstore.NewReviewReadStore(m, nil).FindByProductAndReviewer(ctx, productID, reviewerID)

		require.NoError(t, err)
		assert.Nil(t, got.Comment)
		assert.True(t, got.IsAnonymous)
		assert.Equal(t, int32(3), got.Rating)
	})

	t.Run("error: caller has not reviewed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := readstoremock.NewMockReviewReadQueries(ctrl)
		m.EXPECT().GetReviewByProductAndReviewer(ctx, gomock.Any(), params).Return(sqlc.Reviews{}, pgx.ErrNoRows)

		_, err := readstore.NewReviewReadStore(m, nil).FindByProductAndReviewer(ctx, productID, reviewerID)

		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}

func TestReviewReadStore_ListByReviewee(t *testing.T) {
	ctx := context.Background()
	revieweeID := uuid.New()

	t.Run("first page passes the limit through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := readstoremock.NewMockReviewReadQueries(ctrl)
		m.EXPECT().ListReviewsByRevieweeFirstPage(ctx, gomock.Any(), sqlc.ListReviewsByRevieweeFirstPageParams{
			RevieweeID: revieweeID,
			Lim:        21,
		}).Return([]sqlc.ListReviewsByRevieweeFirstPageRow{
			{ID: uuid.New(), RevieweeID: revieweeID, Rating: 5, CreatedAt: ts(reviewTime), UpdatedAt: ts(reviewTime)},
			{ID: uuid.New(), RevieweeID: revieweeID, Rating: 2, CreatedAt: ts(reviewTime.Add(-time.Hour)), UpdatedAt: ts(reviewTime)},
		}, nil)

		got, err := readstore.NewReviewReadStore(m, nil).ListByRevieweeFirstPage(ctx, revieweeID, 21)

		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, int32(5), got[0].Rating)
		assert.True(t, got[1].CreatedAt.Before(got[0].CreatedAt))
	})

	t.Run("keyset page starts after the cursor", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := readstoremock.NewMockReviewReadQueries(ctrl)
		lastID := uuid.New()
		m.EXPECT().ListReviewsByRevieweeKeyset(ctx, gomock.Any(), sqlc.ListReviewsByRevieweeKeysetParams{
			RevieweeID: revieweeID,
			CreatedAt:  ts(reviewTime),
			ID:         lastID,
			Lim:        11,
		}).Return(nil, nil)

		got, err := readstore.NewReviewReadStore(m, nil).ListByRevieweeKeyset(ctx, revieweeID, reviewTime, lastID, 11)

		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("keyset failure is a db failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := readstoremock.NewMockReviewReadQueries(ctrl)
		m.EXPECT().ListReviewsByRevieweeKeyset(ctx, gomock.Any(), gomock.Any()).Return(nil, assert.AnError)

		_, err := readstore.NewReviewReadStore(m, nil).ListByRevieweeKeyset(ctx, revieweeID, reviewTime, uuid.New(), 11)

		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

func TestReviewReadStore_RatingSummary(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	testCases := []struct {
		name    string
		row     sqlc.GetUserRatingSummaryRow
		average float64
	}{
		{name: "no reviews yet", row: sqlc.GetUserRatingSummaryRow{}, average: 0},
		{name: "rounded to one decimal", row: sqlc.GetUserRatingSummaryRow{AverageRating: 4.6666, ReviewCount: 3}, average: 4.7},
		{name: "exact average", row: sqlc.GetUserRatingSummaryRow{AverageRating: 4.5, ReviewCount: 2}, average: 4.5},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			m := readstoremock.NewMockReviewReadQueries(ctrl)
			m.EXPECT().GetUserRatingSummary(ctx, gomock.Any(), userID).Return(tc.row, nil)

			got, err := readstore.NewReviewReadStore(m, nil).RatingSummary(ctx, userID)

			require.NoError(t, err)
			assert.Equal(t, &queries.RatingSummary{UserID: userID, Average: tc.average, Count: tc.row.ReviewCount}, got)
		})
	}
}

func TestLikeReadStore(t *testing.T) {
	ctx := context.Background()
	productID, userID := uuid.New(), uuid.New()

	ctrl := gomock.NewController(t)
	m := readstoremock.NewMockLikeReadQueries(ctrl)
	m.EXPECT().CountProductLikes(ctx, gomock.Any(), productID).Return(int64(7), nil)
	m.EXPECT().HasUserLikedProduct(ctx, gomock.Any(), sqlc.HasUserLikedProductParams{ProductID: productID, UserID: userID}).Return(true, nil)
	store := readstore.NewLikeReadStore(m, nil)

	n, err := store.Count(ctx, productID)
	require.NoError(t, err)
	assert.Equal(t, int64(7), n)

	liked, err := store.HasLiked(ctx, productID, userID)
	require.NoError(t, err)
	assert.True(t, liked)
}
