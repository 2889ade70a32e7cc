package commands

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"path"
	"strings"

	"marketplace-api/internal/pkg/errs"
	"marketplace-api/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrNotImage      = errs.NewKind("only image files can be uploaded", errs.ErrValidation)
	ErrImageTooLarge = errs.NewKind("image exceeds the maximum upload size", errs.ErrValidation)
	ErrNotImageOwner = errs.NewKind("only the uploader can delete this image", errs.ErrPermissionDenied)
	ErrImageNotFound = errs.NewKind("image not found", errs.ErrNotFound)
)

// sniffLen is how much of the body http.DetectContentType looks at.
const sniffLen = 512

// imageTypes maps the accepted content types to the stored extension.
// svg+xml is left out since browsers run scripts embedded in it.
var imageTypes = map[string]string{
	"image/jpeg": "jpg",
	"image/png":  "png",
	"image/gif":  "gif",
	"image/webp": "webp",
}

var imageExtTypes = map[string]string{
	"jpg":  "image/jpeg",
	"jpeg": "image/jpeg",
	"png":  "image/png",
	"gif":  "image/gif",
	"webp": "image/webp",
}

// ImageContentType reports the content type to serve for a stored key.
func ImageContentType(key string) (string, bool) {
	ct, ok := imageExtTypes[strings.ToLower(strings.TrimPrefix(path.Ext(key), "."))]
	return ct, ok
}

type UploadImageInput struct {
	Filename    string
	ContentType string
	Size        int64
	Body        io.Reader
}

type ImageCommands interface {
	Upload(ctx context.Context, actorID uuid.UUID, in UploadImageInput) (*shared.StoredObject, error)
	Delete(ctx context.Context, actorID uuid.UUID, ref string) error
}

type imageCommandsImpl struct {
	objects       shared.ObjectStore
	maxUploadSize int64
}

func NewImageCommands(objects shared.ObjectStore, maxUploadSize int64) ImageCommands {
	return &imageCommandsImpl{
		objects:       objects,
		maxUploadSize: maxUploadSize,
	}
}

func (c *imageCommandsImpl) Upload(ctx context.Context, actorID uuid.UUID, in UploadImageInput) (*shared.StoredObject, error) {
	if !strings.HasPrefix(in.ContentType, "image/") {
		return nil, ErrNotImage
	}
	if in.Size > c.maxUploadSize {
		return nil, ErrImageTooLarge
	}

	// The declared type and filename are client input. The stored extension
	// follows the sniffed bytes only.
	head := make([]byte, sniffLen)
	n, err := io.ReadFull(in.Body, head)
	if err != nil && !errs.Is(err, io.ErrUnexpectedEOF) && !errs.Is(err, io.EOF) {
		return nil, errs.Wrap(err, "failed to read upload")
	}
	head = head[:n]
	ext, ok := imageTypes[http.DetectContentType(head)]
	if !ok {
		return nil, ErrNotImage
	}

	// the reader is capped as well, since Size comes from the client
	body := io.LimitReader(io.MultiReader(bytes.NewReader(head), in.Body), c.maxUploadSize+1)
	obj, err := c.objects.Put(ctx, actorID.String(), ext, body)
	if err != nil {
		return nil, err
	}
	if obj.Size > c.maxUploadSize {
		if derr := c.objects.Delete(ctx, obj.Key); derr != nil {
			slog.WarnContext(ctx, "failed to remove oversized upload", "key", obj.Key, "error", derr.Error())
		}
		return nil, ErrImageTooLarge
	}

	slog.InfoContext(ctx, "image uploaded", "key", obj.Key, "size", obj.Size, "filename", in.Filename)
	return obj, nil
}

func (c *imageCommandsImpl) Delete(ctx context.Context, actorID uuid.UUID, ref string) error {
	key, ok := c.objects.KeyFromURL(ref)
	if !ok {
		return ErrImageNotFound
	}
	if !strings.HasPrefix(key, actorID.String()+"/") {
		return ErrNotImageOwner
	}
	return c.objects.Delete(ctx, key)
}
