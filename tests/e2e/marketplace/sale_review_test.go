//go:build e2e

package marketplace_test

import (
	"fmt"
	"net/http"
	stdhttptest "net/http/httptest"
	"testing"

	"marketplace-api/internal/domain/user"
	"marketplace-api/internal/handler/dto/request"
	resdto "marketplace-api/internal/handler/dto/response"
	"marketplace-api/internal/usecase/queries"
	"marketplace-api/tests/common/authtest"
	"marketplace-api/tests/common/httptest"
	"marketplace-api/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"golang.org/x/sync/errgroup"
)

type saleReviewSuite struct {
	e2e.SharedSuite

	sellerID, buyerID, otherID uuid.UUID
	seller, buyer, other       string
}

func TestSaleReviewSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(saleReviewSuite))
}

func (s *saleReviewSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()

	s.sellerID, s.seller = authtest.CreateAndLogin(s.T(), s.DB, s.Router, "seller@example.com", string(user.RoleMember))
	s.buyerID, s.buyer = authtest.CreateAndLogin(s.T(), s.DB, s.Router, "buyer@example.com", string(user.RoleMember))
	s.otherID, s.other = authtest.CreateAndLogin(s.T(), s.DB, s.Router, "other@example.com", string(user.RoleMember))
}

func (s *saleReviewSuite) createProduct() uuid.UUID {
	price := int64(120000)
	w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/products", request.CreateProductRequest{
		Title: "Used bicycle", Content: "Ridden twice.", Price: &price, Location: "Mapo-gu",
	}, s.seller)
	var product resdto.ProductResponse
	httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &product)
	s.Equal("active", product.Status)
	return uuid.MustParse(product.ID)
}

func (s *saleReviewSuite) openRoom(productID uuid.UUID, token string) queries.ChatRoomView {
	w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, fmt.Sprintf("/api/products/%s/chat-room", productID), nil, token)
	var room queries.ChatRoomView
	httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &room)
	return room
}

func (s *saleReviewSuite) review(productID uuid.UUID, token string, rating int) *stdhttptest.ResponseRecorder {
	return httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/reviews", request.CreateReviewRequest{
		ProductID: productID, Rating: rating, IsAnonymous: true,
	}, token)
}

func (s *saleReviewSuite) TestSaleThenReview() {
	s.Run("confirmed buyer reviews the seller exactly once", func() {
		productID := s.createProduct()

		room := s.openRoom(productID, s.buyer)
		s.Equal(s.buyerID, room.BuyerID)
		s.Equal(s.sellerID, room.SellerID)
		s.Nil(room.SaleConfirmedAt)
		s.Equal(room.ID, s.openRoom(productID, s.buyer).ID, "second open returns the same room")
		otherRoom := s.openRoom(productID, s.other)

		// nothing sold yet
		w := s.review(productID, s.buyer, 5)
		httptest.AssertErrorResponse(s.T(), w, http.StatusConflict, "not been sold")

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, fmt.Sprintf("/api/chat-rooms/%s/messages", room.ID),
			request.SendMessageRequest{Message: "Still available?"}, s.buyer)
		s.Equal(http.StatusCreated, w.Code, w.Body.String())

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/chat-rooms/unread-count", nil, s.seller)
		var unread resdto.CountResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &unread)
		s.Equal(int64(1), unread.Count)

		// only the seller confirms
		w = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, fmt.Sprintf("/api/chat-rooms/%s/confirm-sale", room.ID), nil, s.buyer)
		httptest.AssertErrorResponse(s.T(), w, http.StatusForbidden, "")

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, fmt.Sprintf("/api/chat-rooms/%s/confirm-sale", room.ID), nil, s.seller)
		var sale resdto.SaleConfirmationResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &sale)
		s.Equal(s.buyerID, sale.BuyerID)

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, fmt.Sprintf("/api/chat-rooms/%s/confirm-sale", otherRoom.ID), nil, s.seller)
		httptest.AssertErrorResponse(s.T(), w, http.StatusConflict, "another buyer")

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, fmt.Sprintf("/api/products/%s", productID), nil, "")
		var product resdto.ProductResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &product)
		s.Equal("sold", product.Status)

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, fmt.Sprintf("/api/products/%s/active", productID), nil, s.seller)
		httptest.AssertErrorResponse(s.T(), w, http.StatusConflict, "")

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, fmt.Sprintf("/api/chat-rooms/%s/eligibility", room.ID), nil, s.buyer)
		var eligibility queries.EligibilityView
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &eligibility)
		s.True(eligibility.Review.Allowed)
		s.False(eligibility.SaleConfirmation.Allowed)

		// reviews
		w = s.review(productID, s.other, 4)
		httptest.AssertErrorResponse(s.T(), w, http.StatusForbidden, "confirmed buyer")

		w = s.review(productID, s.seller, 4)
		httptest.AssertErrorResponse(s.T(), w, http.StatusForbidden, "own product")

		w = s.review(productID, s.buyer, 5)
		var created queries.ReviewView
		httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &created)
		s.Equal(s.sellerID, created.RevieweeID)

		w = s.review(productID, s.buyer, 3)
		httptest.AssertErrorResponse(s.T(), w, http.StatusConflict, "already exists")

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, fmt.Sprintf("/api/users/%s/reviews", s.sellerID), nil, "")
		var page resdto.ReviewPageResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &page)
		s.Require().Len(page.Reviews, 1)
		s.Nil(page.Reviews[0].ReviewerID, "anonymous reviewer is hidden")
		s.Nil(page.NextCursor)

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, fmt.Sprintf("/api/users/%s/rating", s.sellerID), nil, "")
		var rating queries.RatingSummary
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &rating)
		s.Equal(5.0, rating.Average)
		s.Equal(int64(1), rating.Count)
	})

	s.Run("seller cannot open a chat on their own product", func() {
		productID := s.createProduct()

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, fmt.Sprintf("/api/products/%s/chat-room", productID), nil, s.seller)
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "own product")
	})
}

func (s *saleReviewSuite) TestConcurrentConfirmations() {
	s.Run("two sibling rooms confirmed at once leave exactly one sale", func() {
		productID := s.createProduct()
		rooms := []queries.ChatRoomView{
			s.openRoom(productID, s.buyer),
			s.openRoom(productID, s.other),
		}

		results := make([]*stdhttptest.ResponseRecorder, len(rooms))
		start := make(chan struct{})
		var g errgroup.Group
		for i, room := range rooms {
			g.Go(func() error {
				<-start
				results[i] = httptest.PerformRequest(s.T(), s.Router, http.MethodPost,
					fmt.Sprintf("/api/chat-rooms/%s/confirm-sale", room.ID), nil, s.seller)
				return nil
			})
		}
		close(start)
		s.Require().NoError(g.Wait())

		var winner, loser *stdhttptest.ResponseRecorder
		for _, w := range results {
			switch w.Code {
			case http.StatusOK:
				s.Nil(winner, "only one confirmation may succeed")
				winner = w
			case http.StatusConflict:
				loser = w
			default:
				s.Failf("unexpected status", "%d: %s", w.Code, w.Body.String())
			}
		}
		s.Require().NotNil(winner)
		s.Require().NotNil(loser)
		httptest.AssertErrorResponse(s.T(), loser, http.StatusConflict, "another buyer")

		var sale resdto.SaleConfirmationResponse
		httptest.AssertSuccessResponse(s.T(), winner, http.StatusOK, &sale)

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, fmt.Sprintf("/api/products/%s/confirmed-buyer", productID), nil, "")
		var buyer resdto.ConfirmedBuyerResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &buyer)
		s.Require().NotNil(buyer.BuyerID)
		s.Equal(sale.BuyerID.String(), *buyer.BuyerID)
	})
}
