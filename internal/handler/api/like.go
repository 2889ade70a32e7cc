package api

import (
	"net/http"

	"marketplace-api/internal/handler/middleware"
	"marketplace-api/internal/usecase/commands"
	"marketplace-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type LikeHandler struct {
	cmds commands.LikeCommands
	q    queries.LikeQueries
}

func NewLikeHandler(cmds commands.LikeCommands, q queries.LikeQueries) *LikeHandler {
	return &LikeHandler{cmds: cmds, q: q}
}

// @Summary Like status
// @Description Like count, and whether the caller likes the product (false when anonymous)
// @Tags likes
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} queries.LikeStatus
// @Router /products/{id}/likes [get]
func (h *LikeHandler) Status(c *gin.Context) {
	productID, ok := pathID(c, "id")
	if !ok {
		return
	}
	var actor *uuid.UUID
	if id, ok := middleware.GetUserID(c); ok {
		actor = &id
	}
	status, err := h.q.Status(c.Request.Context(), actor, productID)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, status)
}

// @Summary Toggle like
// @Tags likes
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Success 200 {object} queries.LikeStatus
// @Failure 404 {object} httperr.Response
// @Router /products/{id}/likes/toggle [post]
func (h *LikeHandler) Toggle(c *gin.Context) {
	productID, ok := pathID(c, "id")
	if !ok {
		return
	}
	actorID, ok := currentUser(c)
	if !ok {
		return
	}
	if _, err := h.cmds.Toggle(c.Request.Context(), actorID, productID); err != nil {
		abortWithError(c, err)
		return
	}
	status, err := h.q.Status(c.Request.Context(), &actorID, productID)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, status)
}
