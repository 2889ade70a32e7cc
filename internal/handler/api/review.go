package api

import (
	"net/http"

	reqdto "marketplace-api/internal/handler/dto/request"
	resdto "marketplace-api/internal/handler/dto/response"
	"marketplace-api/internal/handler/middleware"
	"marketplace-api/internal/usecase/commands"
	"marketplace-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ReviewHandler struct {
	cmds commands.ReviewCommands
	q    queries.ReviewQueries
}

func NewReviewHandler(cmds commands.ReviewCommands, q queries.ReviewQueries) *ReviewHandler {
	return &ReviewHandler{cmds: cmds, q: q}
}

// @Summary Create review
// @Description Only the buyer of the product's confirmed sale may review it, once
// @Tags reviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateReviewRequest true "Create review request"
// @Success 201 {object} queries.ReviewView
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /reviews [post]
func (h *ReviewHandler) Create(c *gin.Context) {
	actorID, ok := currentUser(c)
	if !ok {
		return
	}
	var req reqdto.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err, "Invalid request format")
		return
	}
	id, err := h.cmds.Create(c.Request.Context(), actorID, req.ToInput())
	if err != nil {
		abortWithError(c, err)
		return
	}
	h.writeReview(c, http.StatusCreated, id)
}

// @Summary Get review
// @Tags reviews
// @Produce json
// @Param id path string true "Review ID"
// @Success 200 {object} queries.ReviewView
// @Failure 404 {object} httperr.Response
// @Router /reviews/{id} [get]
func (h *ReviewHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	h.writeReview(c, http.StatusOK, id)
}

// @Summary Update review
// @Description Reviewer only
// @Tags reviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Review ID"
// @Param request body reqdto.UpdateReviewRequest true "Update review request"
// @Success 200 {object} queries.ReviewView
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /reviews/{id} [put]
func (h *ReviewHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	actorID, ok := currentUser(c)
	if !ok {
		return
	}
	var req reqdto.UpdateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err, "Invalid request format")
		return
	}
	if err := h.cmds.Update(c.Request.Context(), actorID, id, req.ToInput()); err != nil {
		abortWithError(c, err)
		return
	}
	h.writeReview(c, http.StatusOK, id)
}

// @Summary Delete review
// @Description Reviewer or admin
// @Tags reviews
// @Security BearerAuth
// @Param id path string true "Review ID"
// @Success 204 "No Content"
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /reviews/{id} [delete]
func (h *ReviewHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	actorID, ok := currentUser(c)
	if !ok {
		return
	}
	role, _ := middleware.GetUserRole(c)
	if err := h.cmds.Delete(c.Request.Context(), actorID, role, id); err != nil {
		abortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary My review of a product
// @Description The caller's review of the product, or null
// @Tags reviews
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Success 200 {object} queries.ReviewView
// @Router /products/{id}/reviews/mine [get]
func (h *ReviewHandler) Mine(c *gin.Context) {
	productID, ok := pathID(c, "id")
	if !ok {
		return
	}
	actorID, ok := currentUser(c)
	if !ok {
		return
	}
	view, err := h.q.ByProductAndReviewer(c.Request.Context(), productID, actorID)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Reviews received by a user
// @Description Newest first. Anonymous reviews omit the reviewer.
// @Tags reviews
// @Produce json
// @Param id path string true "User ID"
// @Param limit query int false "Max items (default 20)"
// @Param after query string false "Cursor for keyset pagination"
// @Success 200 {object} resdto.ReviewPageResponse
// @Failure 400 {object} httperr.Response
// @Router /users/{id}/reviews [get]
func (h *ReviewHandler) ListByReviewee(c *gin.Context) {
	userID, ok := pathID(c, "id")
	if !ok {
		return
	}
	items, next, err := h.q.ListByReviewee(c.Request.Context(), userID, queryCursor(c), queryLimit(c))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.NewReviewPage(items, next))
}

// @Summary User rating
// @Description Average rating rounded to one decimal, and review count
// @Tags reviews
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} queries.RatingSummary
// @Router /users/{id}/rating [get]
func (h *ReviewHandler) Rating(c *gin.Context) {
	userID, ok := pathID(c, "id")
	if !ok {
		return
	}
	summary, err := h.q.AverageRating(c.Request.Context(), userID)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

func (h *ReviewHandler) writeReview(c *gin.Context, status int, id uuid.UUID) {
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(status, view)
}
