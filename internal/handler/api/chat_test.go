//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"marketplace-api/internal/domain/chat"
	"marketplace-api/internal/domain/user"
	"marketplace-api/internal/handler/api"
	resdto "marketplace-api/internal/handler/dto/response"
	"marketplace-api/internal/usecase/commands"
	"marketplace-api/internal/usecase/queries"
	"marketplace-api/tests/common/builder"
	"marketplace-api/tests/common/httptest"
	commandsmock "marketplace-api/tests/mock/commands"
	queriesmock "marketplace-api/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// stubSubscriber records whether an upgrade was attempted.
type stubSubscriber struct {
	served bool
}

func (s *stubSubscriber) Serve(w http.ResponseWriter, _ *http.Request, _ string, _ uuid.UUID) error {
	s.served = true
	w.WriteHeader(http.StatusOK)
	return nil
}

type ChatHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	chats       *commandsmock.MockChatCommands
	sales       *commandsmock.MockSaleCommands
	queries     *queriesmock.MockChatQueries
	eligibility *queriesmock.MockEligibilityQueries
	subscriber  *stubSubscriber
	room        *builder.ChatRoomBuilder
}

func (s *ChatHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.chats = commandsmock.NewMockChatCommands(s.mockCtrl)
	s.sales = commandsmock.NewMockSaleCommands(s.mockCtrl)
	s.queries = queriesmock.NewMockChatQueries(s.mockCtrl)
	s.eligibility = queriesmock.NewMockEligibilityQueries(s.mockCtrl)
	s.subscriber = &stubSubscriber{}
	s.room = builder.NewChatRoomBuilder()

	h := api.NewChatHandler(s.chats, s.sales, s.queries, s.eligibility, s.subscriber)
	auth := asUser(s.room.SellerID, user.RoleMember)
	s.router.POST("/products/:id/chat", auth, h.GetOrCreateRoom)
	s.router.GET("/chat/rooms", auth, h.MyRooms)
	s.router.GET("/chat/unread-count", auth, h.UnreadCount)
	s.router.GET("/chat/rooms/:id/messages", auth, h.Messages)
	s.router.POST("/chat/rooms/:id/messages", auth, h.SendMessage)
	s.router.POST("/chat/rooms/:id/read", auth, h.MarkRead)
	s.router.POST("/chat/rooms/:id/confirm-sale", auth, h.ConfirmSale)
	s.router.GET("/chat/rooms/:id/eligibility", auth, h.Eligibility)
	s.router.GET("/chat/rooms/:id/ws", auth, h.Subscribe)
}

func (s *ChatHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestChatHandlerSuite(t *testing.T) {
	suite.Run(t, new(ChatHandlerTestSuite))
}

func (s *ChatHandlerTestSuite) roomURL(suffix string) string {
	return "/chat/rooms/" + s.room.ID.String() + suffix
}

func (s *ChatHandlerTestSuite) TestConfirmSale() {
	s.Run("success: returns the confirmation", func() {
		at := time.Date(2025, 4, 2, 15, 30, 0, 0, time.UTC)
		s.sales.EXPECT().ConfirmSale(gomock.Any(), s.room.SellerID, s.room.ID).Return(&commands.SaleConfirmation{
			RoomID: s.room.ID, ProductID: s.room.ProductID, BuyerID: s.room.BuyerID, ConfirmedAt: at,
		}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, s.roomURL("/confirm-sale"), nil, "token")
		var response resdto.SaleConfirmationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(s.room.BuyerID, response.BuyerID)
		s.True(at.Equal(response.SaleConfirmedAt))
	})

	s.Run("error: decision failures", func() {
		cases := []struct {
			err    error
			status int
		}{
			{err: chat.ErrNotSeller, status: http.StatusForbidden},
			{err: chat.ErrSaleAlreadyConfirmed, status: http.StatusConflict},
			{err: chat.ErrSoldToAnotherBuyer, status: http.StatusConflict},
			{err: chat.ErrChatRoomNotFound, status: http.StatusNotFound},
		}
		for _, tc := range cases {
			s.Run(tc.err.Error(), func() {
				s.sales.EXPECT().ConfirmSale(gomock.Any(), s.room.SellerID, s.room.ID).Return(nil, tc.err)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, s.roomURL("/confirm-sale"), nil, "token")
				httptest.AssertErrorResponse(s.T(), rec, tc.status, tc.err.Error())
			})
		}
	})
}

func (s *ChatHandlerTestSuite) TestEligibility() {
	view := &queries.EligibilityView{
		RoomID:           s.room.ID,
		ProductID:        s.room.ProductID,
		SaleConfirmation: queries.DecisionView{Allowed: true, Reason: string(chat.ReasonOK)},
		Review:           queries.DecisionView{Reason: "product_not_sold"},
	}
	s.eligibility.EXPECT().ForRoom(gomock.Any(), s.room.ID, s.room.SellerID).Return(view, nil)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, s.roomURL("/eligibility"), nil, "token")
	var response queries.EligibilityView
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
	s.Equal(*view, response)
}

func (s *ChatHandlerTestSuite) TestMessages() {
	s.Run("send returns 201", func() {
		sent := &commands.SentMessage{ID: uuid.New(), RoomID: s.room.ID, SenderID: s.room.SellerID, Message: "yes", CreatedAt: time.Now()}
		s.chats.EXPECT().SendMessage(gomock.Any(), s.room.SellerID, s.room.ID, "yes").Return(sent, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, s.roomURL("/messages"), map[string]string{"message": "yes"}, "token")
		var response resdto.SentMessageResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(sent.ID, response.ID)
		s.False(response.IsRead)
	})

	s.Run("outsider cannot read history", func() {
		s.queries.EXPECT().Messages(gomock.Any(), s.room.SellerID, s.room.ID, gomock.Nil(), queries.DefaultListLimit).
			Return(nil, nil, chat.ErrNotParticipant)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, s.roomURL("/messages"), nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "not a participant")
	})

	s.Run("mark read returns the count", func() {
		s.chats.EXPECT().MarkRead(gomock.Any(), s.room.SellerID, s.room.ID).Return(int64(2), nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, s.roomURL("/read"), nil, "token")
		var response resdto.CountResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(int64(2), response.Count)
	})
}

func (s *ChatHandlerTestSuite) TestSubscribe() {
	s.Run("non participant never reaches the upgrader", func() {
		s.queries.EXPECT().Room(gomock.Any(), s.room.SellerID, s.room.ID).Return(nil, chat.ErrNotParticipant)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, s.roomURL("/ws"), nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "")
		s.False(s.subscriber.served)
	})

	s.Run("participant is handed to the hub", func() {
		s.queries.EXPECT().Room(gomock.Any(), s.room.SellerID, s.room.ID).Return(s.room.BuildView(), nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, s.roomURL("/ws"), nil, "token")
		s.Equal(http.StatusOK, rec.Code)
		s.True(s.subscriber.served)
	})
}
