// Package kvstore is a small JSON key/value store used for client-side style
// state the API keeps on behalf of visitors, such as audio guide settings.
package kvstore

import "errors"

// ErrClosed signals an operation on a closed store.
var ErrClosed = errors.New("kvstore: store closed")

// Store persists JSON-encoded values by key.
type Store interface {
	// Get decodes the value for key into out, reporting whether it existed.
	Get(key string, out any) (bool, error)
	// Put encodes and stores the value under key.
	Put(key string, value any) error
	// Delete removes the key. Missing keys are not an error.
	Delete(key string) error
}
