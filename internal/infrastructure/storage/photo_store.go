// Package storage persists venue photos on the local filesystem. Stored
// files are served by the HTTP layer under /uploads. Writes are not
// transactional with record writes; callers remove the file best-effort
// when the record write fails.
package storage

import (
	"crypto/rand"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/efinder/venue-booking/internal/core/domain"
)

// MaxPhotoSize is the upload cap: 5MB.
const MaxPhotoSize = 5 << 20

const urlPrefix = "/uploads/"

// PhotoStore writes venue photos into a single directory.
type PhotoStore struct {
	dir string
}

// NewPhotoStore ensures dir exists and returns a store rooted there.
func NewPhotoStore(dir string) (*PhotoStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &PhotoStore{dir: dir}, nil
}

// Dir returns the directory files are stored in.
func (s *PhotoStore) Dir() string {
	return s.dir
}

// Save validates and writes one uploaded photo, returning its public URL.
// Only image MIME types are accepted and files above MaxPhotoSize are
// rejected before any byte is written.
func (s *PhotoStore) Save(fh *multipart.FileHeader) (string, error) {
	if fh.Size > MaxPhotoSize {
		return "", domain.ErrPhotoTooLarge
	}
	if !strings.HasPrefix(fh.Header.Get("Content-Type"), "image/") {
		return "", domain.ErrPhotoNotImage
	}

	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	name := generateFilename(filepath.Ext(fh.Filename))
	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", fmt.Errorf("create photo file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		_ = os.Remove(dst.Name())
		return "", fmt.Errorf("write photo file: %w", err)
	}

	return urlPrefix + name, nil
}

// Remove deletes the file behind a previously returned URL. Best effort:
// a missing file is not an error.
func (s *PhotoStore) Remove(url string) bool {
	if url == "" {
		return false
	}
	name := path.Base(url)
	if err := os.Remove(filepath.Join(s.dir, name)); err != nil {
		return false
	}
	return true
}

// generateFilename builds venue-<unix-ms>-<random><ext>.
func generateFilename(ext string) string {
	b := make([]byte, 4)
	if _, err := rand.Read(b); err != nil {
		return fmt.Sprintf("venue-%d-%08x%s", time.Now().UnixMilli(), time.Now().UnixNano()&0xFFFFFFFF, ext)
	}
	return fmt.Sprintf("venue-%d-%08x%s", time.Now().UnixMilli(), b, ext)
}
