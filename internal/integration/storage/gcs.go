// Package storage implements the blob store for quote attachments.
package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"time"

	gcs "cloud.google.com/go/storage"

	"github.com/gestionpro/backend/internal/application/adapter"
)

// GCSBlobStore implements adapter.BlobStore on Google Cloud Storage.
type GCSBlobStore struct {
	client *gcs.Client
	bucket string
}

// NewGCSBlobStore creates a blob store bound to the given bucket.
func NewGCSBlobStore(ctx context.Context, bucket string) (*GCSBlobStore, error) {
	client, err := gcs.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}
	return &GCSBlobStore{
		client: client,
		bucket: bucket,
	}, nil
}

// Upload writes the object at the given path.
func (s *GCSBlobStore) Upload(ctx context.Context, path string, contentType string, body io.Reader) error {
	w := s.client.Bucket(s.bucket).Object(path).NewWriter(ctx)
	w.ContentType = contentType

	if _, err := io.Copy(w, body); err != nil {
		_ = w.Close()
		return fmt.Errorf("failed to write object %q: %w", path, err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("failed to finalize object %q: %w", path, err)
	}
	return nil
}

// CreateSignedURL returns a time-limited V4 download URL for the object.
func (s *GCSBlobStore) CreateSignedURL(ctx context.Context, path string, ttl time.Duration) (string, error) {
	url, err := s.client.Bucket(s.bucket).SignedURL(path, &gcs.SignedURLOptions{
		Scheme:  gcs.SigningSchemeV4,
		Method:  "GET",
		Expires: time.Now().Add(ttl),
	})
	if err != nil {
		return "", fmt.Errorf("failed to sign url for %q: %w", path, err)
	}
	return url, nil
}

// Remove deletes the given objects. Missing objects are skipped.
func (s *GCSBlobStore) Remove(ctx context.Context, paths []string) error {
	for _, path := range paths {
		err := s.client.Bucket(s.bucket).Object(path).Delete(ctx)
		if err != nil && !errors.Is(err, gcs.ErrObjectNotExist) {
			return fmt.Errorf("failed to delete object %q: %w", path, err)
		}
		if errors.Is(err, gcs.ErrObjectNotExist) {
			slog.Debug("Blob already gone", "path", path)
		}
	}
	return nil
}

// Close releases the underlying client.
func (s *GCSBlobStore) Close() error {
	return s.client.Close()
}

var unsafePathChars = regexp.MustCompile(`[^a-zA-Z0-9._-]+`)

// ObjectPath builds the storage path for an attachment:
// {ownerScope}/{timestamp}_{sanitizedFilename}.
func ObjectPath(ownerScope, filename string, now time.Time) string {
	sanitized := unsafePathChars.ReplaceAllString(filename, "_")
	return fmt.Sprintf("%s/%d_%s", ownerScope, now.UnixMilli(), sanitized)
}

// Ensure GCSBlobStore implements the adapter interface.
var _ adapter.BlobStore = (*GCSBlobStore)(nil)
