// Package storage manages profile pictures on local disk.
package storage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// FileStore writes uploads under Dir and hands back the relative path that
// gets persisted on the user record and served statically.
type FileStore struct {
	Dir string
}

func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload dir: %w", err)
	}
	return &FileStore{Dir: dir}, nil
}

// Save stores an uploaded file under a timestamp-prefixed name so concurrent
// uploads of the same filename never collide.
func (fs *FileStore) Save(file *multipart.FileHeader) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open upload: %w", err)
	}
	defer src.Close()

	name := fmt.Sprintf("%d-%s", time.Now().UnixNano(), sanitize(file.Filename))
	path := filepath.Join(fs.Dir, name)

	dst, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("failed to write file: %w", err)
	}

	return path, nil
}

// Remove deletes a previously stored file. Callers treat failure as
// non-fatal and log it.
func (fs *FileStore) Remove(ref string) error {
	if ref == "" {
		return nil
	}
	return os.Remove(ref)
}

func sanitize(name string) string {
	name = filepath.Base(name)
	return strings.ReplaceAll(name, " ", "_")
}
