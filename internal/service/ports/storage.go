package ports

import (
	"context"
	"io"
)

// FileStore is the receipt object store. Remove must be idempotent:
// removing a key that is already gone is not an error, so the
// compensating delete after a failed insert can always be retried.
type FileStore interface {
	Upload(ctx context.Context, key string, r io.Reader, size int64, contentType string) error
	PublicURL(key string) string
	Remove(ctx context.Context, key string) error
}
