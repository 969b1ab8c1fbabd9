package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// diskStorage writes objects as flat files under dir.
type diskStorage struct {
	fs  afero.Fs
	dir string
}

// NewDisk returns a Storage rooted at dir on fs, creating the directory if needed.
// Production uses afero.NewOsFs(); tests pass afero.NewMemMapFs().
func NewDisk(fs afero.Fs, dir string) (Storage, error) {
	if dir == "" {
		return nil, fmt.Errorf("upload dir is required")
	}
	if err := fs.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &diskStorage{fs: fs, dir: dir}, nil
}

func (d *diskStorage) path(key string) (string, error) {
	if key == "" || key == "." || key == ".." || strings.ContainsAny(key, `/\`) {
		return "", ErrInvalidKey
	}
	return filepath.Join(d.dir, key), nil
}

// Put creates the file exclusively and removes it again if the copy fails.
func (d *diskStorage) Put(ctx context.Context, key string, r io.Reader, opt PutObjectOptions) (ObjectInfo, error) {
	name, err := d.path(key)
	if err != nil {
		return ObjectInfo{}, err
	}
	f, err := d.fs.OpenFile(name, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return ObjectInfo{}, fmt.Errorf("create %s: %w", key, err)
	}

	n, err := io.Copy(f, &contextReader{ctx: ctx, r: r})
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		_ = d.fs.Remove(name)
		return ObjectInfo{}, fmt.Errorf("write %s: %w", key, err)
	}

	st, err := d.fs.Stat(name)
	if err != nil {
		_ = d.fs.Remove(name)
		return ObjectInfo{}, fmt.Errorf("stat %s: %w", key, err)
	}
	return ObjectInfo{
		Key:          key,
		Size:         n,
		ContentType:  opt.ContentType,
		LastModified: st.ModTime(),
		Metadata:     opt.Metadata,
	}, nil
}

func (d *diskStorage) Get(_ context.Context, key string) (io.ReadCloser, ObjectInfo, error) {
	name, err := d.path(key)
	if err != nil {
		return nil, ObjectInfo{}, err
	}
	f, err := d.fs.Open(name)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ObjectInfo{}, ErrNotFound
		}
		return nil, ObjectInfo{}, err
	}
	st, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, ObjectInfo{}, err
	}
	ct := mime.TypeByExtension(filepath.Ext(key))
	if ct == "" {
		ct = "application/octet-stream"
	}
	return f, ObjectInfo{
		Key:          key,
		Size:         st.Size(),
		ContentType:  ct,
		LastModified: st.ModTime(),
	}, nil
}

func (d *diskStorage) Delete(_ context.Context, key string) error {
	name, err := d.path(key)
	if err != nil {
		return err
	}
	if err := d.fs.Remove(name); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}
