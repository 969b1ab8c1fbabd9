package storage

import (
	"context"
	"errors"
	"io"
	"time"
)

// Package storage holds the backends accepted CV files are written to: the
// local upload directory (default) or an S3-compatible bucket.

// ErrNotFound is returned by Get when no object exists under the key.
var ErrNotFound = errors.New("object not found")

// ErrInvalidKey is returned for keys that would escape the storage root.
var ErrInvalidKey = errors.New("invalid object key")

// PutObjectOptions define optional parameters for uploading objects.
// Size should be the exact number of bytes if known, -1 otherwise.
type PutObjectOptions struct {
	Size        int64
	ContentType string
	Metadata    map[string]string
}

// ObjectInfo contains basic information about a stored object.
type ObjectInfo struct {
	Key          string
	Size         int64
	ETag         string
	ContentType  string
	LastModified time.Time
	Metadata     map[string]string
}

// Storage is where accepted uploads are written.
// Implementations must leave nothing behind when Put fails, including when ctx is cancelled mid-write.
type Storage interface {
	// Put streams r under key.
	Put(ctx context.Context, key string, r io.Reader, opt PutObjectOptions) (ObjectInfo, error)
	// Get opens the object for reading.
	Get(ctx context.Context, key string) (io.ReadCloser, ObjectInfo, error)
	// Delete removes an object by key. Missing objects are not an error.
	Delete(ctx context.Context, key string) error
}

// contextReader stops a copy as soon as ctx is done, so an aborted request
// does not keep writing to disk.
type contextReader struct {
	ctx context.Context
	r   io.Reader
}

func (c *contextReader) Read(p []byte) (int, error) {
	if err := c.ctx.Err(); err != nil {
		return 0, err
	}
	return c.r.Read(p)
}
