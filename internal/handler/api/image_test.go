//go:build unit

package api_test

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	stdhttptest "net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"marketplace-api/internal/domain/user"
	"marketplace-api/internal/handler/api"
	resdto "marketplace-api/internal/handler/dto/response"
	"marketplace-api/internal/infra/storage"
	"marketplace-api/internal/usecase/commands"
	"marketplace-api/internal/usecase/shared"
	"marketplace-api/tests/common/httptest"
	commandsmock "marketplace-api/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// fileOpener serves objects from a temp dir keyed like the local store.
type fileOpener struct {
	root string
}

func (o fileOpener) Open(_ context.Context, key string) (*storage.Object, error) {
	f, err := os.Open(filepath.Join(o.root, filepath.FromSlash(key)))
	if err != nil {
		return nil, storage.ErrObjectNotFound
	}
	return &storage.Object{File: f, ModTime: time.Now(), ETag: `"etag"`}, nil
}

type ImageHandlerTestSuite struct {
	suite.Suite
	router   *gin.Engine
	mockCtrl *gomock.Controller
	cmds     *commandsmock.MockImageCommands
	root     string
	actor    uuid.UUID
}

func (s *ImageHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.mockCtrl = gomock.NewController(s.T())
	s.cmds = commandsmock.NewMockImageCommands(s.mockCtrl)
	s.root = s.T().TempDir()
	s.actor = uuid.New()

	h := api.NewImageHandler(s.cmds, fileOpener{root: s.root})
	auth := asUser(s.actor, user.RoleMember)
	s.router.POST("/images/batch", auth, h.UploadMany)
	s.router.GET("/storage/product-images/*key", h.Serve)
}

func (s *ImageHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestImageHandlerSuite(t *testing.T) {
	suite.Run(t, new(ImageHandlerTestSuite))
}

func (s *ImageHandlerTestSuite) writeObject(key, content string) {
	p := filepath.Join(s.root, filepath.FromSlash(key))
	s.Require().NoError(os.MkdirAll(filepath.Dir(p), 0o755))
	s.Require().NoError(os.WriteFile(p, []byte(content), 0o644))
}

func (s *ImageHandlerTestSuite) batchRequest(names ...string) *stdhttptest.ResponseRecorder {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for _, name := range names {
		part, err := mw.CreateFormFile("files", name)
		s.Require().NoError(err)
		_, err = part.Write([]byte("\x89PNG\r\n\x1a\n"))
		s.Require().NoError(err)
	}
	s.Require().NoError(mw.Close())

	req := stdhttptest.NewRequest(http.MethodPost, "/images/batch", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer token")
	w := stdhttptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *ImageHandlerTestSuite) TestServe() {
	s.Run("stored markup is never served as html", func() {
		key := s.actor.String() + "/01J0.png"
		s.writeObject(key, "<html><script>alert(1)</script></html>")

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/storage/product-images/"+key, nil, "")

		s.Equal(http.StatusOK, w.Code)
		httptest.AssertHeaders(s.T(), w, map[string]string{
			"Content-Type":           "image/png",
			"X-Content-Type-Options": "nosniff",
			"ETag":                   `"etag"`,
		})
	})

	s.Run("unknown extension falls back to octet-stream", func() {
		key := s.actor.String() + "/01J1.html"
		s.writeObject(key, "<html></html>")

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/storage/product-images/"+key, nil, "")

		s.Equal(http.StatusOK, w.Code)
		httptest.AssertHeaders(s.T(), w, map[string]string{
			"Content-Type":           "application/octet-stream",
			"X-Content-Type-Options": "nosniff",
		})
	})

	s.Run("missing object", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/storage/product-images/nope/x.png", nil, "")
		s.Equal(http.StatusNotFound, w.Code)
	})
}

func (s *ImageHandlerTestSuite) TestUploadMany() {
	s.Run("stores every file", func() {
		first := &shared.StoredObject{Key: s.actor.String() + "/a.png", URL: "http://x/a.png"}
		second := &shared.StoredObject{Key: s.actor.String() + "/b.png", URL: "http://x/b.png"}
		gomock.InOrder(
			s.cmds.EXPECT().Upload(gomock.Any(), s.actor, gomock.Any()).Return(first, nil),
			s.cmds.EXPECT().Upload(gomock.Any(), s.actor, gomock.Any()).Return(second, nil),
		)

		w := s.batchRequest("a.png", "b.png")

		var res resdto.ImagesResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &res)
		s.Require().Len(res.Images, 2)
		s.Equal(first.Key, res.Images[0].Key)
		s.Equal(second.Key, res.Images[1].Key)
	})

	s.Run("a rejected file rolls back the stored ones", func() {
		first := &shared.StoredObject{Key: s.actor.String() + "/a.png"}
		gomock.InOrder(
			s.cmds.EXPECT().Upload(gomock.Any(), s.actor, gomock.Any()).Return(first, nil),
			s.cmds.EXPECT().Upload(gomock.Any(), s.actor, gomock.Any()).Return(nil, commands.ErrNotImage),
			s.cmds.EXPECT().Delete(gomock.Any(), s.actor, first.Key).Return(nil),
		)

		w := s.batchRequest("a.png", "evil.html")

		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "")
	})

	s.Run("too many files", func() {
		names := make([]string, 11)
		for i := range names {
			names[i] = "a.png"
		}
		w := s.batchRequest(names...)
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Between 1 and 10 files")
	})
}
