// Package storage abstracts the blob backends that hold uploaded media.
// Objects are addressed by a flat name; the media service owns naming and
// file-type policy, the stores own bytes.
package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"path"
	"strings"
)

var (
	// ErrObjectNotFound signals that the named object does not exist.
	ErrObjectNotFound = errors.New("storage: object not found")
	// ErrObjectExists signals a write would overwrite an existing object.
	ErrObjectExists = errors.New("storage: object already exists")
	// ErrInvalidName signals an object name that could escape the store.
	ErrInvalidName = errors.New("storage: invalid object name")
)

// BlobStore is the persistence boundary for uploaded media objects.
type BlobStore interface {
	// Write streams the object into the store and returns its size.
	Write(ctx context.Context, name, contentType string, r io.Reader) (int64, error)
	// Open returns the object stream and its content type.
	Open(ctx context.Context, name string) (io.ReadCloser, string, error)
	// Delete removes the object.
	Delete(ctx context.Context, name string) error
	// URL returns the public URL clients use to fetch the object.
	URL(name string) string
}

// ValidateName rejects empty names and anything carrying path traversal.
func ValidateName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrInvalidName
	}
	if strings.ContainsAny(name, "/\\") {
		return ErrInvalidName
	}
	if name != path.Clean(name) || strings.HasPrefix(name, ".") {
		return ErrInvalidName
	}
	return nil
}

// ContentTypeForName derives a content type from the object extension,
// falling back to octet-stream.
func ContentTypeForName(name string) string {
	if ct := mime.TypeByExtension(strings.ToLower(path.Ext(name))); ct != "" {
		return ct
	}
	return "application/octet-stream"
}

func joinURL(base, name string) string {
	base = strings.TrimRight(strings.TrimSpace(base), "/")
	if base == "" {
		return name
	}
	return fmt.Sprintf("%s/%s", base, name)
}
