// Package upload accepts CV files: it validates size, extension and declared
// MIME type, then streams the bytes to storage under a collision-resistant name.
package upload

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"mime"
	"path"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"careers/internal/model"
	"careers/internal/storage"
)

// DefaultMaxBytes is 5 MiB. A file of exactly this size is accepted.
const DefaultMaxBytes int64 = 5 * 1024 * 1024

// PublicPrefix is the URL path stored files are served under.
const PublicPrefix = "/uploads/"

var (
	ErrTooLarge        = errors.New("file too large")
	ErrUnsupportedType = errors.New("unsupported file type")
	ErrReaderNil       = errors.New("reader is nil")
)

// Reason is the machine-readable cause of a rejected upload.
type Reason string

const (
	ReasonTooLarge        Reason = "TooLarge"
	ReasonUnsupportedType Reason = "UnsupportedType"
)

// RejectionReason reports why err rejected an upload. ok is false for
// errors that are not user-correctable rejections.
func RejectionReason(err error) (r Reason, ok bool) {
	switch {
	case errors.Is(err, ErrTooLarge):
		return ReasonTooLarge, true
	case errors.Is(err, ErrUnsupportedType):
		return ReasonUnsupportedType, true
	}
	return "", false
}

var allowedExt = map[string]struct{}{
	".pdf":  {},
	".doc":  {},
	".docx": {},
}

var allowedMIME = map[string]struct{}{
	"application/pdf":    {},
	"application/msword": {},
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": {},
}

// Candidate is what the client declared about a file before its bytes are read.
// Size is -1 when unknown.
type Candidate struct {
	OriginalName string
	ContentType  string
	Size         int64
}

// Acceptor validates and stores uploads. It holds no per-request state and
// is safe for concurrent use.
type Acceptor struct {
	store    storage.Storage
	maxBytes int64
	now      func() time.Time
	randInt  func() int64
}

// Option configures an Acceptor.
type Option func(*Acceptor)

// WithMaxBytes overrides the inclusive size limit.
func WithMaxBytes(n int64) Option {
	return func(a *Acceptor) {
		if n > 0 {
			a.maxBytes = n
		}
	}
}

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) Option {
	return func(a *Acceptor) { a.now = now }
}

// WithRandom replaces the random suffix source, for tests.
func WithRandom(fn func() int64) Option {
	return func(a *Acceptor) { a.randInt = fn }
}

// NewAcceptor returns an Acceptor writing to store.
func NewAcceptor(store storage.Storage, opts ...Option) *Acceptor {
	a := &Acceptor{
		store:    store,
		maxBytes: DefaultMaxBytes,
		now:      time.Now,
		randInt:  func() int64 { return rand.Int64N(1e12) },
	}
	for _, o := range opts {
		o(a)
	}
	return a
}

// MaxBytes returns the inclusive size limit.
func (a *Acceptor) MaxBytes() int64 { return a.maxBytes }

// Check runs the size, extension and MIME checks without touching storage.
func (a *Acceptor) Check(c Candidate) error {
	if c.Size > a.maxBytes {
		return fmt.Errorf("%w: %d bytes exceeds %d", ErrTooLarge, c.Size, a.maxBytes)
	}
	ext := Extension(c.OriginalName)
	if _, ok := allowedExt[ext]; !ok {
		return fmt.Errorf("%w: extension %q", ErrUnsupportedType, ext)
	}
	mt, _, err := mime.ParseMediaType(c.ContentType)
	if err != nil {
		return fmt.Errorf("%w: content type %q", ErrUnsupportedType, c.ContentType)
	}
	if _, ok := allowedMIME[mt]; !ok {
		return fmt.Errorf("%w: content type %q", ErrUnsupportedType, mt)
	}
	return nil
}

// Accept validates c and, when it passes, streams r into storage. The stream
// is counted while it is written, so a client lying about Size still cannot
// store more than the limit. Nothing is left in storage when Accept fails.
func (a *Acceptor) Accept(ctx context.Context, c Candidate, r io.Reader) (*model.UploadedFile, error) {
	if err := a.Check(c); err != nil {
		return nil, err
	}
	if r == nil {
		return nil, ErrReaderNil
	}

	now := a.now()
	name := a.StoredName(now, c.OriginalName)

	size := c.Size
	if size < 0 {
		size = -1
	}
	counted := &countingReader{r: io.LimitReader(r, a.maxBytes+1)}
	info, err := a.store.Put(ctx, name, counted, storage.PutObjectOptions{
		Size:        size,
		ContentType: c.ContentType,
		Metadata:    map[string]string{"original-filename": c.OriginalName},
	})
	if err != nil {
		return nil, fmt.Errorf("store %s: %w", name, err)
	}
	if counted.n > a.maxBytes {
		a.discard(name)
		return nil, fmt.Errorf("%w: stream exceeds %d bytes", ErrTooLarge, a.maxBytes)
	}
	if err := ctx.Err(); err != nil {
		a.discard(name)
		return nil, err
	}

	return &model.UploadedFile{
		OriginalName: c.OriginalName,
		StoredName:   name,
		Size:         info.Size,
		ContentType:  c.ContentType,
		StoragePath:  PublicPrefix + name,
		CreatedAt:    now.UTC(),
	}, nil
}

// Discard removes a stored file, for callers rolling back after a later step failed.
func (a *Acceptor) Discard(ctx context.Context, f *model.UploadedFile) error {
	if f == nil {
		return nil
	}
	return a.store.Delete(ctx, f.StoredName)
}

// discard runs on a fresh context: the request context may already be cancelled.
func (a *Acceptor) discard(name string) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = a.store.Delete(ctx, name)
}

// StoredName builds "<epoch-ms>-<random><ext>" for an original file name.
func (a *Acceptor) StoredName(now time.Time, original string) string {
	return strconv.FormatInt(now.UnixMilli(), 10) + "-" + strconv.FormatInt(a.randInt(), 10) + Extension(original)
}

// Extension returns the lower-cased extension of a client file name,
// ignoring any directory part the client sent.
func Extension(name string) string {
	base := path.Base(filepath.ToSlash(name))
	return strings.ToLower(path.Ext(base))
}

type countingReader struct {
	r io.Reader
	n int64
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.n += int64(n)
	return n, err
}
