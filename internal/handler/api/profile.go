package api

import (
	"net/http"

	reqdto "marketplace-api/internal/handler/dto/request"
	resdto "marketplace-api/internal/handler/dto/response"
	"marketplace-api/internal/usecase/commands"
	"marketplace-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ProfileHandler struct {
	cmds commands.ProfileCommands
	q    queries.ProfileQueries
}

func NewProfileHandler(cmds commands.ProfileCommands, q queries.ProfileQueries) *ProfileHandler {
	return &ProfileHandler{cmds: cmds, q: q}
}

// @Summary Get profile
// @Tags profiles
// @Produce json
// @Param id path string true "Profile ID"
// @Success 200 {object} resdto.ProfileResponse
// @Failure 404 {object} httperr.Response
// @Router /profiles/{id} [get]
func (h *ProfileHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	h.writeProfile(c, id)
}

// @Summary Get profiles
// @Description Batch lookup, up to 100 ids
// @Tags profiles
// @Produce json
// @Param ids query string true "Comma separated profile ids"
// @Success 200 {array} resdto.ProfileResponse
// @Failure 400 {object} httperr.Response
// @Router /profiles [get]
func (h *ProfileHandler) GetMany(c *gin.Context) {
	ids, err := reqdto.ParseIDList(c.Query("ids"))
	if err != nil {
		abortBadRequest(c, err, "Invalid ids")
		return
	}
	views, err := h.q.GetMany(c.Request.Context(), ids)
	if err != nil {
		abortWithError(c, err)
		return
	}
	res, err := resdto.FromProfileViews(views)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Update my profile
// @Tags profiles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.UpdateProfileRequest true "Profile changes"
// @Success 200 {object} resdto.ProfileResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /profiles/me [patch]
func (h *ProfileHandler) UpdateMe(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	var req reqdto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err, "Invalid request format")
		return
	}
	in, err := req.ToInput()
	if err != nil {
		abortBadRequest(c, err, "Invalid birth date")
		return
	}

	// a profile shares its id with the owning user
	if err := h.cmds.UpdateProfile(c.Request.Context(), userID, userID, in); err != nil {
		abortWithError(c, err)
		return
	}
	h.writeProfile(c, userID)
}

func (h *ProfileHandler) writeProfile(c *gin.Context, id uuid.UUID) {
	view, err := h.q.Get(c.Request.Context(), id)
	if err != nil {
		abortWithError(c, err)
		return
	}
	res, err := resdto.FromProfileView(view)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}
