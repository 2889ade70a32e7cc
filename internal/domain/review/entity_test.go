//go:build unit

package review_test

import (
	"strings"
	"testing"
	"time"

	"marketplace-api/internal/domain/product"
	"marketplace-api/internal/domain/review"
	"marketplace-api/internal/pkg/errs"
	"marketplace-api/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.ReviewBuilder)
	errIs  error
}

func TestReview(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewReviewBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, actual.CreatedAt(), actual.UpdatedAt())
		assert.Equal(t, 5, actual.Rating().Value())
		assert.Equal(t, "Smooth deal, thanks!", actual.Comment().String())
		assert.False(t, actual.IsAnonymous())
	})

	t.Run("rating validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "below minimum rating",
				mutate: func(b *builder.ReviewBuilder) { b.WithRating(0) },
				errIs:  review.ErrInvalidRating,
			},
			{
				name:   "minimum valid rating",
				mutate: func(b *builder.ReviewBuilder) { b.WithRating(1) },
			},
			{
				name:   "maximum valid rating",
				mutate: func(b *builder.ReviewBuilder) { b.WithRating(5) },
			},
			{
				name:   "above maximum rating",
				mutate: func(b *builder.ReviewBuilder) { b.WithRating(6) },
				errIs:  review.ErrInvalidRating,
			},
		})
	})

	t.Run("comment validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "no comment",
				mutate: func(b *builder.ReviewBuilder) { b.Comment = nil },
			},
			{
				name:   "whitespace comment is dropped",
				mutate: func(b *builder.ReviewBuilder) { b.WithComment("   ") },
			},
			{
				name:   "maximum length comment",
				mutate: func(b *builder.ReviewBuilder) { b.WithComment(strings.Repeat("a", review.MaxCommentLength)) },
			},
			{
				name:   "comment exceeds maximum length",
				mutate: func(b *builder.ReviewBuilder) { b.WithComment(strings.Repeat("a", review.MaxCommentLength+1)) },
				errIs:  review.ErrCommentTooLong,
			},
		})
	})

	t.Run("blank comment stored as absent", func(t *testing.T) {
		blank := "  "
		c, err := review.NewComment(&blank)
		require.NoError(t, err)
		assert.Nil(t, c.Ptr())

		text := "  kind seller "
		c, err = review.NewComment(&text)
		require.NoError(t, err)
		require.NotNil(t, c.Ptr())
		assert.Equal(t, "kind seller", *c.Ptr())
	})
}

func TestReview_EditAndDelete(t *testing.T) {
	b := builder.NewReviewBuilder()
	r, err := b.BuildDomain()
	require.NoError(t, err)

	rating, _ := review.NewRating(3)
	later := r.CreatedAt().Add(time.Hour)

	require.NoError(t, r.Edit(b.ReviewerID, rating, review.Comment{}, later))
	assert.Equal(t, 3, r.Rating().Value())
	assert.Nil(t, r.Comment().Ptr())
	assert.Equal(t, later, r.UpdatedAt())

	err = r.Edit(uuid.New(), rating, review.Comment{}, later)
	assert.True(t, errs.Is(err, errs.ErrPermissionDenied))

	assert.True(t, r.CanDelete(b.ReviewerID, false))
	assert.True(t, r.CanDelete(uuid.New(), true))
	assert.False(t, r.CanDelete(b.RevieweeID, false))
}

func TestDecideEligibility(t *testing.T) {
	seller := uuid.New()
	buyer := uuid.New()
	stranger := uuid.New()
	sold := review.Subject{SellerID: seller, Status: product.StatusSold}
	sale := &review.ConfirmedSale{RoomID: uuid.New(), BuyerID: buyer}

	tests := []struct {
		name     string
		actor    uuid.UUID
		subject  review.Subject
		sale     *review.ConfirmedSale
		reviewed bool
		want     review.ReasonCode
		category error
	}{
		{name: "confirmed buyer may review", actor: buyer, subject: sold, sale: sale, want: review.ReasonOK},
		{name: "seller may not review own product", actor: seller, subject: sold, sale: sale, want: review.ReasonOwnProduct, category: errs.ErrPermissionDenied},
		{name: "active product", actor: buyer, subject: review.Subject{SellerID: seller, Status: product.StatusActive}, sale: sale, want: review.ReasonProductNotSold, category: errs.ErrConflict},
		{name: "reserved product", actor: buyer, subject: review.Subject{SellerID: seller, Status: product.StatusReserved}, want: review.ReasonProductNotSold, category: errs.ErrConflict},
		{name: "sold manually without confirmed room", actor: buyer, subject: sold, want: review.ReasonSaleNotConfirmed, category: errs.ErrConflict},
		{name: "sold to someone else", actor: stranger, subject: sold, sale: sale, want: review.ReasonNotBuyer, category: errs.ErrPermissionDenied},
		{name: "second review", actor: buyer, subject: sold, sale: sale, reviewed: true, want: review.ReasonAlreadyReviewed, category: errs.ErrConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := review.DecideEligibility(tt.actor, tt.subject, tt.sale, tt.reviewed)
			assert.Equal(t, tt.want, got.Reason)
			assert.Equal(t, tt.want == review.ReasonOK, got.Allowed)
			if tt.category == nil {
				assert.NoError(t, got.Err())
			} else {
				assert.True(t, errs.Is(got.Err(), tt.category))
			}
		})
	}
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewReviewBuilder().With(c.mutate).BuildDomain()

			if c.errIs == nil {
				require.NotNil(t, actual)
				require.NoError(t, err)
			} else {
				require.Nil(t, actual)
				require.Error(t, err)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}
