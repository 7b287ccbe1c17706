package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// LocalStore persists objects on the local filesystem. It backs development
// installs and single-node deployments.
type LocalStore struct {
	dir     string
	baseURL string
}

// NewLocalStore prepares the storage directory and returns the store.
// baseURL is the public prefix under which the file handler serves objects.
func NewLocalStore(dir, baseURL string) (*LocalStore, error) {
	if dir == "" {
		return nil, errors.New("storage: local directory is required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: create local directory: %w", err)
	}
	return &LocalStore{dir: dir, baseURL: baseURL}, nil
}

// Write streams the object to disk. Existing objects are never overwritten.
func (s *LocalStore) Write(ctx context.Context, name, contentType string, r io.Reader) (int64, error) {
	if err := ValidateName(name); err != nil {
		return 0, err
	}
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	f, err := os.OpenFile(filepath.Join(s.dir, name), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return 0, ErrObjectExists
		}
		return 0, fmt.Errorf("storage: create object: %w", err)
	}

	written, err := io.Copy(f, r)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		_ = os.Remove(filepath.Join(s.dir, name))
		return 0, fmt.Errorf("storage: write object: %w", err)
	}
	return written, nil
}

// Open returns the object stream. Content type is derived from the extension
// since the filesystem keeps no metadata.
func (s *LocalStore) Open(ctx context.Context, name string) (io.ReadCloser, string, error) {
	if err := ValidateName(name); err != nil {
		return nil, "", err
	}
	if err := ctx.Err(); err != nil {
		return nil, "", err
	}

	f, err := os.Open(filepath.Join(s.dir, name))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, "", ErrObjectNotFound
		}
		return nil, "", fmt.Errorf("storage: open object: %w", err)
	}
	return f, ContentTypeForName(name), nil
}

// Delete removes the object from disk.
func (s *LocalStore) Delete(ctx context.Context, name string) error {
	if err := ValidateName(name); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := os.Remove(filepath.Join(s.dir, name)); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return ErrObjectNotFound
		}
		return fmt.Errorf("storage: delete object: %w", err)
	}
	return nil
}

// URL returns the public path for the object.
func (s *LocalStore) URL(name string) string {
	return joinURL(s.baseURL, name)
}
