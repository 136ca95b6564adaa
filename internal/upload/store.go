// Package upload stores maintenance evidence files on disk. Files are
// grouped in a directory per category and named with a collision-resistant
// suffix so concurrent uploads for the same job never clash.
package upload

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/cargotrack/cargotrack/internal/config"
	"github.com/cargotrack/cargotrack/models"
)

var (
	// ErrUnsupportedType is returned for extensions outside the accepted
	// image (jpg, jpeg, png) and report (pdf) sets.
	ErrUnsupportedType = errors.New("unsupported file type")

	// ErrTooLarge is returned when an upload exceeds the configured cap.
	ErrTooLarge = errors.New("file exceeds maximum upload size")
)

// categoryDirs maps each file category to its directory under the root.
var categoryDirs = map[models.FileCategory]string{
	models.FileCategoryImage:  "images",
	models.FileCategoryReport: "reports",
}

// extensions maps accepted lowercase extensions to their category.
var extensions = map[string]models.FileCategory{
	"jpg":  models.FileCategoryImage,
	"jpeg": models.FileCategoryImage,
	"png":  models.FileCategoryImage,
	"pdf":  models.FileCategoryReport,
}

// Store writes evidence files under a root directory with a size cap.
type Store struct {
	dir     string
	maxSize int64
}

// New creates the category directories and returns a ready store.
func New(cfg config.UploadConfig) (*Store, error) {
	for _, sub := range categoryDirs {
		if err := os.MkdirAll(filepath.Join(cfg.Dir, sub), 0o755); err != nil {
			return nil, fmt.Errorf("failed to create upload directory: %w", err)
		}
	}
	return &Store{dir: cfg.Dir, maxSize: cfg.MaxSize}, nil
}

// MaxSize returns the configured upload cap in bytes.
func (s *Store) MaxSize() int64 {
	return s.maxSize
}

// Classify maps a file name's extension to its category. The check is
// deliberately cheap so handlers can reject bad uploads before touching
// the database or the disk.
func Classify(filename string) (models.FileCategory, string, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
	if ext == "" {
		return "", "", fmt.Errorf("%w: %q has no extension", ErrUnsupportedType, filename)
	}
	category, ok := extensions[ext]
	if !ok {
		return "", "", fmt.Errorf("%w: .%s (allowed: jpg, jpeg, png, pdf)", ErrUnsupportedType, ext)
	}
	return category, ext, nil
}

// Save writes src to a uniquely named file scoped by maintenance id and
// returns the stored path. Writes beyond the size cap abort the copy and
// remove the partial file.
func (s *Store) Save(category models.FileCategory, maintenanceID uint, ext string, src io.Reader) (string, int64, error) {
	name := fmt.Sprintf("maintenance-%d-%s.%s", maintenanceID, uuid.New().String(), ext)
	path := filepath.Join(s.dir, categoryDirs[category], name)

	dst, err := os.Create(path)
	if err != nil {
		return "", 0, fmt.Errorf("failed to create file: %w", err)
	}

	// Copy one byte past the cap so oversized input is detectable.
	written, err := io.Copy(dst, io.LimitReader(src, s.maxSize+1))
	if closeErr := dst.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		_ = os.Remove(path)
		return "", 0, fmt.Errorf("failed to write file: %w", err)
	}
	if written > s.maxSize {
		_ = os.Remove(path)
		return "", 0, fmt.Errorf("%w (%d bytes max)", ErrTooLarge, s.maxSize)
	}

	return path, written, nil
}

// Remove deletes a stored file. Missing files are not an error: the row
// referencing them is already gone.
func (s *Store) Remove(path string) error {
	if path == "" {
		return nil
	}
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}
