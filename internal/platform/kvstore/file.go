package kvstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

// File is a Store persisted as a single JSON document on disk. It is meant
// for single-node installs where settings must survive restarts.
type File struct {
	path string

	mu     sync.Mutex
	values map[string]json.RawMessage
}

// OpenFile loads the store at path, creating an empty one when absent.
func OpenFile(path string) (*File, error) {
	if path == "" {
		return nil, errors.New("kvstore: path is required")
	}

	store := &File{path: path, values: make(map[string]json.RawMessage)}
	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return store, nil
		}
		return nil, fmt.Errorf("kvstore: read %s: %w", path, err)
	}
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &store.values); err != nil {
			return nil, fmt.Errorf("kvstore: parse %s: %w", path, err)
		}
	}
	return store, nil
}

// Get decodes the stored value into out.
func (f *File) Get(key string, out any) (bool, error) {
	f.mu.Lock()
	raw, ok := f.values[key]
	f.mu.Unlock()
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return true, fmt.Errorf("kvstore: decode %q: %w", key, err)
	}
	return true, nil
}

// Put stores the encoded value and flushes the document to disk.
func (f *File) Put(key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("kvstore: encode %q: %w", key, err)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.values[key] = raw
	return f.flushLocked()
}

// Delete removes the key and flushes the document to disk.
func (f *File) Delete(key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.values[key]; !ok {
		return nil
	}
	delete(f.values, key)
	return f.flushLocked()
}

// flushLocked writes via a temp file and rename so a crash mid-write never
// leaves a truncated document behind.
func (f *File) flushLocked() error {
	raw, err := json.MarshalIndent(f.values, "", "  ")
	if err != nil {
		return fmt.Errorf("kvstore: encode document: %w", err)
	}

	dir := filepath.Dir(f.path)
	tmp, err := os.CreateTemp(dir, ".kvstore-*")
	if err != nil {
		return fmt.Errorf("kvstore: create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(raw); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("kvstore: write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("kvstore: close temp file: %w", err)
	}
	if err := os.Rename(tmpName, f.path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("kvstore: replace %s: %w", f.path, err)
	}
	return nil
}
