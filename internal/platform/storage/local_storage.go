// Package storage implements the local-disk upload store for avatar files.
package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"
)

// LocalStorage persists uploaded files in a single directory on local disk.
// The directory is also exposed read-only under the /uploads URL prefix.
type LocalStorage struct {
	dir string
}

// NewLocalStorage creates a store rooted at dir. The directory is created
// lazily on the first Save.
func NewLocalStorage(dir string) *LocalStorage {
	return &LocalStorage{dir: dir}
}

// Dir returns the root directory of the store.
func (s *LocalStorage) Dir() string {
	return s.dir
}

// Save writes the file under a collision-resistant name and returns it.
// The name is the original one prefixed with a nanosecond timestamp and
// with whitespace replaced by underscores. Collisions between concurrent
// writers are only probabilistically avoided by the timestamp granularity.
func (s *LocalStorage) Save(originalName string, r io.Reader) (string, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create upload directory: %w", err)
	}

	name := uniqueName(originalName)
	f, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", fmt.Errorf("failed to create upload file: %w", err)
	}
	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		os.Remove(f.Name())
		return "", fmt.Errorf("failed to write upload file: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("failed to close upload file: %w", err)
	}
	return name, nil
}

// Remove deletes a stored file by its stored name.
func (s *LocalStorage) Remove(filename string) error {
	return os.Remove(filepath.Join(s.dir, filepath.Base(filename)))
}

// uniqueName derives the stored filename from the client-provided one.
// filepath.Base strips any path components a hostile client may send.
func uniqueName(originalName string) string {
	base := filepath.Base(strings.TrimSpace(originalName))
	if base == "." || base == string(filepath.Separator) || base == "" {
		base = "arquivo"
	}
	clean := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return '_'
		}
		return r
	}, base)
	return fmt.Sprintf("%d-%s", time.Now().UnixNano(), clean)
}
