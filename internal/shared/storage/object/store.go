// Package object reads source documents from a blob store.
package object

import (
	"context"
	"errors"
	"io"
)

var (
	// ErrNotFound is returned when no object exists under the key.
	ErrNotFound = errors.New("object not found")
	// ErrInvalidKey is returned for keys that escape the store root or are empty.
	ErrInvalidKey = errors.New("invalid storage key")
)

// ObjectStore opens stored documents for reading.
type ObjectStore interface {
	Open(ctx context.Context, storageKey string) (io.ReadCloser, error)
}
