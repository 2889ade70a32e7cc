package storage

import (
	"context"
	"encoding/hex"
	"io"
	"math/rand"
	"os"
	"path"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"marketplace-api/internal/pkg/clock"
	"marketplace-api/internal/pkg/config"
	"marketplace-api/internal/pkg/errs"
	"marketplace-api/internal/usecase/shared"

	"github.com/oklog/ulid/v2"
	"github.com/zeebo/blake3"
)

var (
	ErrObjectNotFound = errs.NewKind("object not found", errs.ErrNotFound)
	ErrInvalidKey     = errs.NewKind("invalid object key", errs.ErrValidation)
)

// LocalStore keeps objects on the local filesystem under <root>/<bucket>/<key>.
type LocalStore struct {
	dir     string
	bucket  string
	baseURL string
	clock   clock.Clock

	mu      sync.Mutex
	entropy io.Reader
}

var _ shared.ObjectStore = (*LocalStore)(nil)

func NewLocalStore(cfg config.StorageConfig, clk clock.Clock) (*LocalStore, error) {
	dir := filepath.Join(cfg.Root, cfg.Bucket)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errs.Wrap(err, "failed to create storage directory")
	}
	return &LocalStore{
		dir:     dir,
		bucket:  cfg.Bucket,
		baseURL: strings.TrimRight(cfg.PublicBaseURL, "/"),
		clock:   clk,
		entropy: ulid.Monotonic(rand.New(rand.NewSource(time.Now().UnixNano())), 0),
	}, nil
}

// Put streams body to a temp file and renames it into place, so readers never
// see a partial object.
func (s *LocalStore) Put(ctx context.Context, prefix, ext string, body io.Reader) (*shared.StoredObject, error) {
	key := path.Join(prefix, s.newID()+"."+strings.TrimPrefix(ext, "."))
	dst, err := s.pathFor(key)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return nil, errs.Wrap(err, "failed to create object directory")
	}

	tmp, err := os.CreateTemp(filepath.Dir(dst), ".upload-*")
	if err != nil {
		return nil, errs.Wrap(err, "failed to create temp object")
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	hasher := blake3.New()
	size, err := io.Copy(io.MultiWriter(tmp, hasher), &ctxReader{ctx: ctx, r: body})
	if cerr := tmp.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return nil, errs.Wrap(err, "failed to write object")
	}
	if err := os.Rename(tmp.Name(), dst); err != nil {
		return nil, errs.Wrap(err, "failed to commit object")
	}

	return &shared.StoredObject{
		Key:  key,
		URL:  s.PublicURL(key),
		ETag: etag(hasher.Sum(nil)),
		Size: size,
	}, nil
}

func (s *LocalStore) Delete(_ context.Context, key string) error {
	p, err := s.pathFor(key)
	if err != nil {
		return err
	}
	if err := os.Remove(p); err != nil {
		if os.IsNotExist(err) {
			return ErrObjectNotFound
		}
		return errs.Wrap(err, "failed to delete object")
	}
	return nil
}

type Object struct {
	File    *os.File
	Size    int64
	ModTime time.Time
	ETag    string
}

// Open returns the object for serving. The caller closes File.
func (s *LocalStore) Open(_ context.Context, key string) (*Object, error) {
	p, err := s.pathFor(key)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(p)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrObjectNotFound
		}
		return nil, errs.Wrap(err, "failed to open object")
	}
	info, err := f.Stat()
	if err != nil || info.IsDir() {
		_ = f.Close()
		return nil, ErrObjectNotFound
	}

	hasher := blake3.New()
	if _, err := io.Copy(hasher, f); err != nil {
		_ = f.Close()
		return nil, errs.Wrap(err, "failed to hash object")
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		_ = f.Close()
		return nil, errs.Wrap(err, "failed to rewind object")
	}

	return &Object{
		File:    f,
		Size:    info.Size(),
		ModTime: info.ModTime(),
		ETag:    etag(hasher.Sum(nil)),
	}, nil
}

func (s *LocalStore) PublicURL(key string) string {
	return s.baseURL + "/" + s.bucket + "/" + key
}

func (s *LocalStore) KeyFromURL(ref string) (string, bool) {
	key := ref
	if strings.Contains(ref, "://") {
		prefix := s.baseURL + "/" + s.bucket + "/"
		if !strings.HasPrefix(ref, prefix) {
			return "", false
		}
		key = strings.TrimPrefix(ref, prefix)
	}
	if _, err := s.pathFor(key); err != nil {
		return "", false
	}
	return key, true
}

func (s *LocalStore) pathFor(key string) (string, error) {
	if key == "" || strings.HasPrefix(key, "/") || strings.Contains(key, "\\") {
		return "", ErrInvalidKey
	}
	clean := path.Clean(key)
	if clean != key || clean == "." || strings.HasPrefix(clean, "../") || clean == ".." {
		return "", ErrInvalidKey
	}
	return filepath.Join(s.dir, filepath.FromSlash(clean)), nil
}

func (s *LocalStore) newID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return ulid.MustNew(ulid.Timestamp(s.clock.Now()), s.entropy).String()
}

func etag(sum []byte) string {
	return `"` + hex.EncodeToString(sum) + `"`
}

type ctxReader struct {
	ctx context.Context
	r   io.Reader
}

func (c *ctxReader) Read(p []byte) (int, error) {
	if err := c.ctx.Err(); err != nil {
		return 0, err
	}
	return c.r.Read(p)
}
