package adapter

import (
	"context"
	"io"
	"time"
)

// BlobStore stores quote attachment binaries. Objects live under
// {ownerScope}/{timestamp}_{sanitizedFilename}.
type BlobStore interface {
	// Upload writes the object at the given path.
	Upload(ctx context.Context, path string, contentType string, body io.Reader) error

	// CreateSignedURL returns a time-limited download URL for the object.
	CreateSignedURL(ctx context.Context, path string, ttl time.Duration) (string, error)

	// Remove deletes the given objects. Missing objects are not an error.
	Remove(ctx context.Context, paths []string) error
}
