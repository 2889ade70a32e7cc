package api

import (
	"context"
	"net/http"

	reqdto "marketplace-api/internal/handler/dto/request"
	resdto "marketplace-api/internal/handler/dto/response"
	"marketplace-api/internal/handler/middleware"
	"marketplace-api/internal/usecase/commands"
	"marketplace-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ProductHandler struct {
	cmds  commands.ProductCommands
	q     queries.ProductQueries
	chats queries.ChatQueries
}

func NewProductHandler(cmds commands.ProductCommands, q queries.ProductQueries, chats queries.ChatQueries) *ProductHandler {
	return &ProductHandler{cmds: cmds, q: q, chats: chats}
}

// @Summary List active products
// @Description Newest first with keyset pagination
// @Tags products
// @Produce json
// @Param limit query int false "Max items (default 20)"
// @Param after query string false "Cursor for keyset pagination"
// @Success 200 {object} resdto.ProductPageResponse
// @Failure 400 {object} httperr.Response
// @Router /products [get]
func (h *ProductHandler) List(c *gin.Context) {
	items, next, err := h.q.ListActive(c.Request.Context(), queryCursor(c), queryLimit(c))
	if err != nil {
		abortWithError(c, err)
		return
	}
	list, err := resdto.FromProductList(items)
	if err != nil {
		abortWithError(c, err)
		return
	}
	res := resdto.ProductPageResponse{Products: list}
	if !next.IsZero() {
		res.NextCursor = &next.After
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Search products
// @Description Case-insensitive match on title, content and location
// @Tags products
// @Produce json
// @Param q query string true "Keyword"
// @Param limit query int false "Max items (default 20)"
// @Success 200 {array} resdto.ProductListItemResponse
// @Failure 400 {object} httperr.Response
// @Router /products/search [get]
func (h *ProductHandler) Search(c *gin.Context) {
	items, err := h.q.Search(c.Request.Context(), c.Query("q"), queryLimit(c))
	if err != nil {
		abortWithError(c, err)
		return
	}
	h.writeList(c, items)
}

// @Summary List a user's products
// @Tags products
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {array} resdto.ProductListItemResponse
// @Router /users/{id}/products [get]
func (h *ProductHandler) ListByUser(c *gin.Context) {
	userID, ok := pathID(c, "id")
	if !ok {
		return
	}
	items, err := h.q.ListByUser(c.Request.Context(), userID)
	if err != nil {
		abortWithError(c, err)
		return
	}
	h.writeList(c, items)
}

// @Summary Get product
// @Tags products
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} resdto.ProductResponse
// @Failure 404 {object} httperr.Response
// @Router /products/{id} [get]
func (h *ProductHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	h.writeProduct(c, http.StatusOK, id)
}

// @Summary Create product
// @Tags products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateProductRequest true "Product"
// @Success 201 {object} resdto.ProductResponse
// @Failure 400 {object} httperr.Response
// @Router /products [post]
func (h *ProductHandler) Create(c *gin.Context) {
	actorID, ok := currentUser(c)
	if !ok {
		return
	}
	var req reqdto.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err, "Invalid request format")
		return
	}

	id, err := h.cmds.Create(c.Request.Context(), actorID, req.ToInput())
	if err != nil {
		abortWithError(c, err)
		return
	}
	h.writeProduct(c, http.StatusCreated, id)
}

// @Summary Update product
// @Description Seller only. An empty image_url removes the image.
// @Tags products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Param request body reqdto.UpdateProductRequest true "Changes"
// @Success 200 {object} resdto.ProductResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /products/{id} [patch]
func (h *ProductHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	actorID, ok := currentUser(c)
	if !ok {
		return
	}
	var req reqdto.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err, "Invalid request format")
		return
	}

	if err := h.cmds.Update(c.Request.Context(), actorID, id, req.ToInput()); err != nil {
		abortWithError(c, err)
		return
	}
	h.writeProduct(c, http.StatusOK, id)
}

// @Summary Delete product
// @Description Seller or admin
// @Tags products
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Success 204 "No Content"
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /products/{id} [delete]
func (h *ProductHandler) Delete(c *gin.Context) {
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

// @Summary Mark product sold
// @Tags products
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Success 200 {object} resdto.ProductResponse
// @Failure 403 {object} httperr.Response
// @Router /products/{id}/sold [post]
func (h *ProductHandler) MarkSold(c *gin.Context) {
	h.changeStatus(c, h.cmds.MarkSold)
}

// @Summary Mark product active
// @Description Rejected with 409 when a sale was confirmed through chat
// @Tags products
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Success 200 {object} resdto.ProductResponse
// @Failure 409 {object} httperr.Response
// @Router /products/{id}/active [post]
func (h *ProductHandler) MarkActive(c *gin.Context) {
	h.changeStatus(c, h.cmds.MarkActive)
}

// @Summary Confirmed buyer
// @Description The buyer of the product's confirmed sale, or null
// @Tags products
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} resdto.ConfirmedBuyerResponse
// @Router /products/{id}/confirmed-buyer [get]
func (h *ProductHandler) ConfirmedBuyer(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	buyer, err := h.chats.ConfirmedBuyer(c.Request.Context(), id)
	if err != nil {
		abortWithError(c, err)
		return
	}
	res := resdto.ConfirmedBuyerResponse{ProductID: id.String()}
	if buyer != nil {
		s := buyer.String()
		res.BuyerID = &s
	}
	c.JSON(http.StatusOK, res)
}

func (h *ProductHandler) changeStatus(c *gin.Context, fn func(ctx context.Context, actorID, productID uuid.UUID) error) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	actorID, ok := currentUser(c)
	if !ok {
		return
	}
	if err := fn(c.Request.Context(), actorID, id); err != nil {
		abortWithError(c, err)
		return
	}
	h.writeProduct(c, http.StatusOK, id)
}

func (h *ProductHandler) writeProduct(c *gin.Context, status int, id uuid.UUID) {
	view, err := h.q.Get(c.Request.Context(), id)
	if err != nil {
		abortWithError(c, err)
		return
	}
	res, err := resdto.FromProductView(view)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(status, res)
}

func (h *ProductHandler) writeList(c *gin.Context, items []*queries.ProductListItem) {
	res, err := resdto.FromProductList(items)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}
