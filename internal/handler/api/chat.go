package api

import (
	"log/slog"
	"net/http"

	reqdto "marketplace-api/internal/handler/dto/request"
	resdto "marketplace-api/internal/handler/dto/response"
	"marketplace-api/internal/usecase/commands"
	"marketplace-api/internal/usecase/queries"
	"marketplace-api/internal/usecase/shared"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RoomSubscriber upgrades a request into a stream of topic events.
type RoomSubscriber interface {
	Serve(w http.ResponseWriter, r *http.Request, topic string, userID uuid.UUID) error
}

type ChatHandler struct {
	cmds        commands.ChatCommands
	sales       commands.SaleCommands
	q           queries.ChatQueries
	eligibility queries.EligibilityQueries
	subscriber  RoomSubscriber
}

func NewChatHandler(
	cmds commands.ChatCommands,
	sales commands.SaleCommands,
	q queries.ChatQueries,
	eligibility queries.EligibilityQueries,
	subscriber RoomSubscriber,
) *ChatHandler {
	return &ChatHandler{
		cmds:        cmds,
		sales:       sales,
		q:           q,
		eligibility: eligibility,
		subscriber:  subscriber,
	}
}

// @Summary Open chat room
// @Description Returns the caller's room for the product, creating it on first contact
// @Tags chat
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Success 200 {object} queries.ChatRoomView
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /products/{id}/chat-room [post]
func (h *ChatHandler) GetOrCreateRoom(c *gin.Context) {
	productID, ok := pathID(c, "id")
	if !ok {
		return
	}
	actorID, ok := currentUser(c)
	if !ok {
		return
	}
	roomID, err := h.cmds.GetOrCreateRoom(c.Request.Context(), actorID, productID)
	if err != nil {
		abortWithError(c, err)
		return
	}
	room, err := h.q.Room(c.Request.Context(), actorID, roomID)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, room)
}

// @Summary My chat rooms
// @Description Most recently active first, with product summary, last message and unread count
// @Tags chat
// @Produce json
// @Security BearerAuth
// @Success 200 {array} queries.ChatRoomListItem
// @Router /chat-rooms [get]
func (h *ChatHandler) MyRooms(c *gin.Context) {
	actorID, ok := currentUser(c)
	if !ok {
		return
	}
	rooms, err := h.q.MyRooms(c.Request.Context(), actorID)
	if err != nil {
		abortWithError(c, err)
		return
	}
	if rooms == nil {
		rooms = []*queries.ChatRoomListItem{}
	}
	c.JSON(http.StatusOK, rooms)
}

// @Summary Total unread messages
// @Tags chat
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.CountResponse
// @Router /chat-rooms/unread-count [get]
func (h *ChatHandler) UnreadCount(c *gin.Context) {
	actorID, ok := currentUser(c)
	if !ok {
		return
	}
	n, err := h.q.TotalUnread(c.Request.Context(), actorID)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.CountResponse{Count: n})
}

// @Summary Room messages
// @Description Oldest first. Without a cursor the latest page is returned; pass next_cursor as after to poll.
// @Tags chat
// @Produce json
// @Security BearerAuth
// @Param id path string true "Chat room ID"
// @Param after query string false "Cursor"
// @Param limit query int false "Max items (default 20)"
// @Success 200 {object} resdto.MessagePageResponse
// @Failure 403 {object} httperr.Response
// @Router /chat-rooms/{id}/messages [get]
func (h *ChatHandler) Messages(c *gin.Context) {
	roomID, ok := pathID(c, "id")
	if !ok {
		return
	}
	actorID, ok := currentUser(c)
	if !ok {
		return
	}
	items, next, err := h.q.Messages(c.Request.Context(), actorID, roomID, queryCursor(c), queryLimit(c))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.NewMessagePage(items, next))
}

// @Summary Send message
// @Tags chat
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Chat room ID"
// @Param request body reqdto.SendMessageRequest true "Message"
// @Success 201 {object} resdto.SentMessageResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /chat-rooms/{id}/messages [post]
func (h *ChatHandler) SendMessage(c *gin.Context) {
	roomID, ok := pathID(c, "id")
	if !ok {
		return
	}
	actorID, ok := currentUser(c)
	if !ok {
		return
	}
	var req reqdto.SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err, "Invalid request format")
		return
	}
	msg, err := h.cmds.SendMessage(c.Request.Context(), actorID, roomID, req.Message)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromSentMessage(msg))
}

// @Summary Mark messages read
// @Description Marks the counterpart's unread messages as read
// @Tags chat
// @Produce json
// @Security BearerAuth
// @Param id path string true "Chat room ID"
// @Success 200 {object} resdto.CountResponse
// @Failure 403 {object} httperr.Response
// @Router /chat-rooms/{id}/read [post]
func (h *ChatHandler) MarkRead(c *gin.Context) {
	roomID, ok := pathID(c, "id")
	if !ok {
		return
	}
	actorID, ok := currentUser(c)
	if !ok {
		return
	}
	n, err := h.cmds.MarkRead(c.Request.Context(), actorID, roomID)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.CountResponse{Count: n})
}

// @Summary Confirm sale
// @Description Seller confirms the room's buyer. The product becomes sold.
// @Tags chat
// @Produce json
// @Security BearerAuth
// @Param id path string true "Chat room ID"
// @Success 200 {object} resdto.SaleConfirmationResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /chat-rooms/{id}/confirm-sale [post]
func (h *ChatHandler) ConfirmSale(c *gin.Context) {
	roomID, ok := pathID(c, "id")
	if !ok {
		return
	}
	actorID, ok := currentUser(c)
	if !ok {
		return
	}
	result, err := h.sales.ConfirmSale(c.Request.Context(), actorID, roomID)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSaleConfirmation(result))
}

// @Summary Sale and review eligibility
// @Description Whether the caller may confirm the sale or write a review, with the reason when not
// @Tags chat
// @Produce json
// @Security BearerAuth
// @Param id path string true "Chat room ID"
// @Success 200 {object} queries.EligibilityView
// @Failure 403 {object} httperr.Response
// @Router /chat-rooms/{id}/eligibility [get]
func (h *ChatHandler) Eligibility(c *gin.Context) {
	roomID, ok := pathID(c, "id")
	if !ok {
		return
	}
	actorID, ok := currentUser(c)
	if !ok {
		return
	}
	view, err := h.eligibility.ForRoom(c.Request.Context(), roomID, actorID)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Subscribe to room events
// @Description Websocket stream of new_message and sale_confirmed events
// @Tags chat
// @Security BearerAuth
// @Param id path string true "Chat room ID"
// @Param access_token query string false "Token for clients that cannot set headers"
// @Success 101 "Switching Protocols"
// @Failure 403 {object} httperr.Response
// @Router /chat-rooms/{id}/ws [get]
func (h *ChatHandler) Subscribe(c *gin.Context) {
	roomID, ok := pathID(c, "id")
	if !ok {
		return
	}
	actorID, ok := currentUser(c)
	if !ok {
		return
	}
	// participant check happens before the upgrade so it can still answer with JSON
	if _, err := h.q.Room(c.Request.Context(), actorID, roomID); err != nil {
		abortWithError(c, err)
		return
	}
	if err := h.subscriber.Serve(c.Writer, c.Request, shared.ChatRoomTopic(roomID), actorID); err != nil {
		// the upgrader has already written the failure response
		slog.WarnContext(c.Request.Context(), "websocket upgrade failed", "room_id", roomID, "error", err.Error())
		c.Abort()
	}
}
