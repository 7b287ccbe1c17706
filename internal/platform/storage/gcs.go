package storage

import (
	"context"
	"errors"
	"fmt"
	"io"

	gcs "cloud.google.com/go/storage"
)

// GCSStore persists objects in a Google Cloud Storage bucket.
type GCSStore struct {
	bucket  *gcs.BucketHandle
	name    string
	baseURL string
}

// NewGCSStore wraps the bucket. When baseURL is empty the canonical
// storage.googleapis.com URL is used.
func NewGCSStore(client *gcs.Client, bucket, baseURL string) (*GCSStore, error) {
	if client == nil {
		return nil, errors.New("storage: gcs client is required")
	}
	if bucket == "" {
		return nil, errors.New("storage: bucket name is required")
	}
	return &GCSStore{bucket: client.Bucket(bucket), name: bucket, baseURL: baseURL}, nil
}

// Write streams the object into the bucket. The precondition keeps writes
// from clobbering an existing object with the same name.
func (s *GCSStore) Write(ctx context.Context, name, contentType string, r io.Reader) (int64, error) {
	if err := ValidateName(name); err != nil {
		return 0, err
	}

	w := s.bucket.Object(name).If(gcs.Conditions{DoesNotExist: true}).NewWriter(ctx)
	w.ContentType = contentType

	written, err := io.Copy(w, r)
	if err != nil {
		_ = w.Close()
		return 0, fmt.Errorf("storage: write object: %w", err)
	}
	if err := w.Close(); err != nil {
		if isPreconditionFailure(err) {
			return 0, ErrObjectExists
		}
		return 0, fmt.Errorf("storage: finalize object: %w", err)
	}
	return written, nil
}

// Open returns the object stream with the content type recorded at upload.
func (s *GCSStore) Open(ctx context.Context, name string) (io.ReadCloser, string, error) {
	if err := ValidateName(name); err != nil {
		return nil, "", err
	}

	reader, err := s.bucket.Object(name).NewReader(ctx)
	if err != nil {
		if errors.Is(err, gcs.ErrObjectNotExist) {
			return nil, "", ErrObjectNotFound
		}
		return nil, "", fmt.Errorf("storage: open object: %w", err)
	}

	contentType := reader.Attrs.ContentType
	if contentType == "" {
		contentType = ContentTypeForName(name)
	}
	return reader, contentType, nil
}

// Delete removes the object from the bucket.
func (s *GCSStore) Delete(ctx context.Context, name string) error {
	if err := ValidateName(name); err != nil {
		return err
	}
	if err := s.bucket.Object(name).Delete(ctx); err != nil {
		if errors.Is(err, gcs.ErrObjectNotExist) {
			return ErrObjectNotFound
		}
		return fmt.Errorf("storage: delete object: %w", err)
	}
	return nil
}

// URL returns the public URL for the object.
func (s *GCSStore) URL(name string) string {
	if s.baseURL != "" {
		return joinURL(s.baseURL, name)
	}
	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", s.name, name)
}

func isPreconditionFailure(err error) bool {
	type coder interface{ HTTPCode() int }
	var c coder
	if errors.As(err, &c) {
		return c.HTTPCode() == 412
	}
	return false
}
