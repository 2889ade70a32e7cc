package shared

import (
	"context"
	"io"
)

type StoredObject struct {
	Key  string
	URL  string
	ETag string
	Size int64
}

// ObjectStore keeps uploaded product images. Keys are generated by the store
// under the given prefix so callers cannot pick colliding names.
type ObjectStore interface {
	Put(ctx context.Context, prefix, ext string, body io.Reader) (*StoredObject, error)
	Delete(ctx context.Context, key string) error
	PublicURL(key string) string
	// KeyFromURL accepts either a public URL produced by this store or a bare key.
	KeyFromURL(ref string) (string, bool)
}
