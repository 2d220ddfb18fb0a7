package storage

import (
	"fmt"
	"io"
	"math/rand"
	"mime/multipart"
	"os"
	"path/filepath"
	"time"
)

// DiskStore persists uploaded documents under a local directory and hands
// back the relative URL stored on the assessment row. Filenames are
// timestamped with a random suffix so repeated uploads never collide.
type DiskStore struct {
	dir       string
	urlPrefix string
}

// NewDiskStore creates the upload directory if needed and returns a store
func NewDiskStore(dir, urlPrefix string) (*DiskStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &DiskStore{dir: dir, urlPrefix: urlPrefix}, nil
}

// Dir returns the directory documents are stored in
func (s *DiskStore) Dir() string {
	return s.dir
}

// Save writes the uploaded file to disk and returns its URL. A failure
// here aborts the submission before any assessment row is written.
func (s *DiskStore) Save(file *multipart.FileHeader) (string, error) {
	name := fmt.Sprintf("document-%d-%d%s",
		time.Now().UnixMilli(),
		rand.Intn(1_000_000_000),
		filepath.Ext(file.Filename),
	)

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", fmt.Errorf("create upload file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("write upload: %w", err)
	}

	return s.urlPrefix + "/" + name, nil
}
