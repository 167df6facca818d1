package catalog

import (
	"context"
	"io"
)

// ObjectStorageService is the port for the external file/blob store.
// The core hands it a binary payload plus a generated object key and
// receives back a publicly resolvable URL; everything else about the
// store is opaque.
type ObjectStorageService interface {
	Upload(ctx context.Context, key, contentType string, body io.Reader) (string, error)
	Delete(ctx context.Context, key string) error
}
