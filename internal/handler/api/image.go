package api

import (
	"context"
	"log/slog"
	"mime/multipart"
	"net/http"
	"strings"

	reqdto "marketplace-api/internal/handler/dto/request"
	resdto "marketplace-api/internal/handler/dto/response"
	"marketplace-api/internal/infra/storage"
	"marketplace-api/internal/pkg/errs"
	"marketplace-api/internal/usecase/commands"
	"marketplace-api/internal/usecase/shared"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var (
	errBatchSize      = errs.NewKind("invalid number of files in batch", errs.ErrValidation)
	errUnreadableFile = errs.NewKind("unreadable file", errs.ErrValidation)
)

const (
	imageCacheControl = "public, max-age=3600"
	maxBatchImages    = 10
)

// ObjectOpener reads stored objects back for serving.
type ObjectOpener interface {
	Open(ctx context.Context, key string) (*storage.Object, error)
}

type ImageHandler struct {
	cmds    commands.ImageCommands
	objects ObjectOpener
}

func NewImageHandler(cmds commands.ImageCommands, objects ObjectOpener) *ImageHandler {
	return &ImageHandler{cmds: cmds, objects: objects}
}

// @Summary Upload image
// @Description Stores an image under the caller's prefix. Only image/* up to the configured size.
// @Tags images
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param file formData file true "Image file"
// @Success 201 {object} resdto.ImageResponse
// @Failure 400 {object} httperr.Response
// @Router /images [post]
func (h *ImageHandler) Upload(c *gin.Context) {
	actorID, ok := currentUser(c)
	if !ok {
		return
	}
	fh, err := c.FormFile("file")
	if err != nil {
		abortBadRequest(c, err, "File is required")
		return
	}
	obj, err := h.upload(c, actorID, fh)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromStoredObject(obj))
}

// @Summary Upload images
// @Description Stores several product images at once. Nothing is kept when one of them is rejected.
// @Tags images
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param files formData file true "Image files"
// @Success 201 {object} resdto.ImagesResponse
// @Failure 400 {object} httperr.Response
// @Router /images/batch [post]
func (h *ImageHandler) UploadMany(c *gin.Context) {
	actorID, ok := currentUser(c)
	if !ok {
		return
	}
	form, err := c.MultipartForm()
	if err != nil {
		abortBadRequest(c, err, "Invalid multipart form")
		return
	}
	files := form.File["files"]
	if len(files) == 0 || len(files) > maxBatchImages {
		abortBadRequest(c, errBatchSize, "Between 1 and 10 files are required")
		return
	}

	res := resdto.ImagesResponse{Images: make([]*resdto.ImageResponse, 0, len(files))}
	for _, fh := range files {
		obj, err := h.upload(c, actorID, fh)
		if err != nil {
			for _, stored := range res.Images {
				if derr := h.cmds.Delete(c.Request.Context(), actorID, stored.Key); derr != nil {
					slog.WarnContext(c.Request.Context(), "failed to roll back batch upload", "key", stored.Key, "error", derr.Error())
				}
			}
			abortWithError(c, err)
			return
		}
		res.Images = append(res.Images, resdto.FromStoredObject(obj))
	}
	c.JSON(http.StatusCreated, res)
}

func (h *ImageHandler) upload(c *gin.Context, actorID uuid.UUID, fh *multipart.FileHeader) (*shared.StoredObject, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, errs.Wrap(errUnreadableFile, err.Error())
	}
	defer f.Close()

	return h.cmds.Upload(c.Request.Context(), actorID, commands.UploadImageInput{
		Filename:    fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Size:        fh.Size,
		Body:        f,
	})
}

// @Summary Delete image
// @Description Owner only, by public url or key
// @Tags images
// @Accept json
// @Security BearerAuth
// @Param request body reqdto.DeleteImageRequest true "Image reference"
// @Success 204 "No Content"
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /images [delete]
func (h *ImageHandler) Delete(c *gin.Context) {
	actorID, ok := currentUser(c)
	if !ok {
		return
	}
	var req reqdto.DeleteImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err, "Invalid request format")
		return
	}
	if err := h.cmds.Delete(c.Request.Context(), actorID, req.URL); err != nil {
		abortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Serve streams a stored image. http.ServeContent answers If-None-Match against the ETag.
func (h *ImageHandler) Serve(c *gin.Context) {
	key := strings.TrimPrefix(c.Param("key"), "/")
	obj, err := h.objects.Open(c.Request.Context(), key)
	if err != nil {
		abortWithError(c, err)
		return
	}
	defer obj.File.Close()

	contentType, ok := commands.ImageContentType(key)
	if !ok {
		contentType = "application/octet-stream"
	}
	c.Header("Content-Type", contentType)
	c.Header("X-Content-Type-Options", "nosniff")
	c.Header("ETag", obj.ETag)
	c.Header("Cache-Control", imageCacheControl)
	http.ServeContent(c.Writer, c.Request, key, obj.ModTime, obj.File)
}
