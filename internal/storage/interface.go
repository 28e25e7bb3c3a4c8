// Package storage abstracts the object store holding uploaded import files.
package storage

import (
	"context"
	"errors"
	"io"
	"time"
)

// ErrObjectNotFound is returned when the requested key does not exist
var ErrObjectNotFound = errors.New("object not found")

// ObjectStorage provides the object-store operations the import pipeline
// needs: issuing time-boxed upload URLs, streaming an object, and the
// copy+delete move that acknowledges a processed file.
type ObjectStorage interface {
	// PresignUpload returns a write-capable URL for the given key, valid for
	// the given expiry window. No object is created until the client uploads.
	PresignUpload(ctx context.Context, key string, expiry time.Duration) (string, error)

	// Open returns a streaming reader over the object's contents.
	// The caller owns the returned reader and must close it.
	Open(ctx context.Context, key string) (io.ReadCloser, error)

	// Move relocates an object from srcKey to dstKey (copy then delete)
	Move(ctx context.Context, srcKey, dstKey string) error

	// Delete removes an object
	Delete(ctx context.Context, key string) error
}
