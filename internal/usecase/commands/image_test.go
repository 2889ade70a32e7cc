//go:build unit

package commands_test

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"marketplace-api/internal/usecase/commands"
	"marketplace-api/internal/usecase/shared"
	sharedmock "marketplace-api/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestImageUpload(t *testing.T) {
	ctx := context.Background()
	actor := uuid.New()
	const limit = 64
	pngHeader := "\x89PNG\r\n\x1a\n"

	t.Run("stores under the uploader prefix", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := sharedmock.NewMockObjectStore(ctrl)
		store.EXPECT().Put(gomock.Any(), actor.String(), "png", gomock.Any()).
			DoAndReturn(func(_ context.Context, prefix, ext string, body io.Reader) (*shared.StoredObject, error) {
				data, err := io.ReadAll(body)
				require.NoError(t, err)
				return &shared.StoredObject{Key: prefix + "/x." + ext, Size: int64(len(data))}, nil
			})

		obj, err := commands.NewImageCommands(store, limit).Upload(ctx, actor, commands.UploadImageInput{
			Filename: "photo.PNG", ContentType: "image/png", Size: 8, Body: strings.NewReader(pngHeader),
		})
		require.NoError(t, err)
		assert.Equal(t, actor.String()+"/x.png", obj.Key)
		assert.Equal(t, int64(len(pngHeader)), obj.Size)
	})

	t.Run("extension follows the sniffed bytes, not the filename", func(t *testing.T) {
		tests := []struct {
			name     string
			filename string
			declared string
			body     string
			wantExt  string
		}{
			{name: "html filename on a png", filename: "evil.html", declared: "image/png", body: pngHeader + "rest", wantExt: "png"},
			{name: "no filename extension", filename: "blob", declared: "image/gif", body: "GIF89a....", wantExt: "gif"},
			{name: "declared png holding a jpeg", filename: "a.png", declared: "image/png", body: "\xff\xd8\xff\xe0rest", wantExt: "jpg"},
			{name: "webp", filename: "a.webp", declared: "image/webp", body: "RIFF\x00\x00\x00\x00WEBPVP8 ", wantExt: "webp"},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				ctrl := gomock.NewController(t)
				store := sharedmock.NewMockObjectStore(ctrl)
				store.EXPECT().Put(gomock.Any(), actor.String(), tt.wantExt, gomock.Any()).
					DoAndReturn(func(_ context.Context, prefix, ext string, body io.Reader) (*shared.StoredObject, error) {
						data, err := io.ReadAll(body)
						require.NoError(t, err)
						assert.Equal(t, tt.body, string(data))
						return &shared.StoredObject{Key: prefix + "/x." + ext, Size: int64(len(data))}, nil
					})

				_, err := commands.NewImageCommands(store, limit).Upload(ctx, actor, commands.UploadImageInput{
					Filename: tt.filename, ContentType: tt.declared, Size: int64(len(tt.body)), Body: strings.NewReader(tt.body),
				})
				require.NoError(t, err)
			})
		}
	})

	t.Run("markup declared as an image is rejected", func(t *testing.T) {
		tests := []struct {
			name     string
			declared string
			body     string
		}{
			{name: "html", declared: "image/png", body: "<html><script>alert(document.cookie)</script></html>"},
			{name: "svg", declared: "image/svg+xml", body: `<svg xmlns="http://www.w3.org/2000/svg"><script>alert(1)</script></svg>`},
			{name: "empty", declared: "image/png", body: ""},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				ctrl := gomock.NewController(t)
				_, err := commands.NewImageCommands(sharedmock.NewMockObjectStore(ctrl), limit).Upload(ctx, actor, commands.UploadImageInput{
					Filename: "evil.html", ContentType: tt.declared, Size: int64(len(tt.body)), Body: strings.NewReader(tt.body),
				})
				assert.ErrorIs(t, err, commands.ErrNotImage)
			})
		}
	})

	t.Run("rejects non images", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		_, err := commands.NewImageCommands(sharedmock.NewMockObjectStore(ctrl), limit).Upload(ctx, actor, commands.UploadImageInput{
			Filename: "notes.txt", ContentType: "text/plain", Size: 3, Body: strings.NewReader("abc"),
		})
		assert.ErrorIs(t, err, commands.ErrNotImage)
	})

	t.Run("declared size over the limit", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		_, err := commands.NewImageCommands(sharedmock.NewMockObjectStore(ctrl), limit).Upload(ctx, actor, commands.UploadImageInput{
			Filename: "a.jpg", ContentType: "image/jpeg", Size: limit + 1, Body: strings.NewReader("x"),
		})
		assert.ErrorIs(t, err, commands.ErrImageTooLarge)
	})

	t.Run("understated size is caught from the stream", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := sharedmock.NewMockObjectStore(ctrl)
		store.EXPECT().Put(gomock.Any(), gomock.Any(), "jpg", gomock.Any()).
			DoAndReturn(func(_ context.Context, prefix, ext string, body io.Reader) (*shared.StoredObject, error) {
				n, _ := io.Copy(io.Discard, body)
				return &shared.StoredObject{Key: prefix + "/big.jpg", Size: n}, nil
			})
		store.EXPECT().Delete(gomock.Any(), actor.String()+"/big.jpg").Return(nil)

		big := append([]byte("\xff\xd8\xff\xe0"), make([]byte, 2*limit)...)
		_, err := commands.NewImageCommands(store, limit).Upload(ctx, actor, commands.UploadImageInput{
			Filename: "a.jpg", ContentType: "image/jpeg", Size: 1, Body: bytes.NewReader(big),
		})
		assert.ErrorIs(t, err, commands.ErrImageTooLarge)
	})
}

func TestImageDelete(t *testing.T) {
	ctx := context.Background()
	actor := uuid.New()
	own := actor.String() + "/01J0.png"

	ctrl := gomock.NewController(t)
	store := sharedmock.NewMockObjectStore(ctrl)
	cmds := commands.NewImageCommands(store, 1024)

	store.EXPECT().KeyFromURL("mine").Return(own, true)
	store.EXPECT().Delete(gomock.Any(), own).Return(nil)
	assert.NoError(t, cmds.Delete(ctx, actor, "mine"))

	store.EXPECT().KeyFromURL("theirs").Return(uuid.NewString()+"/01J0.png", true)
	assert.ErrorIs(t, cmds.Delete(ctx, actor, "theirs"), commands.ErrNotImageOwner)

	store.EXPECT().KeyFromURL("../etc/passwd").Return("", false)
	assert.ErrorIs(t, cmds.Delete(ctx, actor, "../etc/passwd"), commands.ErrImageNotFound)
}

func TestImageContentType(t *testing.T) {
	tests := []struct {
		key  string
		want string
		ok   bool
	}{
		{key: "u/01J0.png", want: "image/png", ok: true},
		{key: "u/01J0.JPG", want: "image/jpeg", ok: true},
		{key: "u/01J0.webp", want: "image/webp", ok: true},
		{key: "u/01J0.html", ok: false},
		{key: "u/01J0.svg", ok: false},
		{key: "u/01J0", ok: false},
	}
	for _, tt := range tests {
		got, ok := commands.ImageContentType(tt.key)
		assert.Equal(t, tt.ok, ok, tt.key)
		assert.Equal(t, tt.want, got, tt.key)
	}
}
