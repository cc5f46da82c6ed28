package staging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Store is a transient staging area for uploaded files. Files live only
// between upload receipt and extraction; callers remove them as soon as
// the content has been consumed.
type Store interface {
	// Save writes the reader's content under a unique name derived from
	// the original filename and returns the path on disk.
	Save(name string, r io.Reader) (string, error)
	// Remove deletes a previously saved file.
	Remove(path string) error
}

// DiskStore stages uploads in a local directory.
type DiskStore struct {
	dir string
}

func NewDiskStore(dir string) (*DiskStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &DiskStore{dir: dir}, nil
}

func (s *DiskStore) Save(name string, r io.Reader) (string, error) {
	path := filepath.Join(s.dir, uuid.NewString()+"_"+sanitizeFilename(name))

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create staged file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("failed to write staged file: %w", err)
	}
	return path, nil
}

func (s *DiskStore) Remove(path string) error {
	return os.Remove(path)
}

// sanitizeFilename strips path components and replaces anything outside
// [A-Za-z0-9._-] so the staged name is safe to join onto the upload dir.
func sanitizeFilename(name string) string {
	base := filepath.Base(name)
	if base == "." || base == string(filepath.Separator) {
		return "upload"
	}
	var b strings.Builder
	for _, r := range base {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.' || r == '_' || r == '-':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	if b.Len() == 0 {
		return "upload"
	}
	return b.String()
}
