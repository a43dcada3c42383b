// Package store is the local blob store for uploaded files: a flat directory
// keyed by original filename.
package store

import (
	"io"
	"os"
	"path/filepath"

	"github.com/manualdesk/nexon-assist/internal/models"
)

type FileStore struct {
	dir string
}

// New returns a store rooted at dir. The directory is created lazily on the
// first save, never assumed to exist.
func New(dir string) *FileStore {
	return &FileStore{dir: dir}
}

// Save writes the file under its base name, overwriting any previous upload
// with the same name. Returns the number of bytes written.
func (s *FileStore) Save(filename string, r io.Reader) (int64, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return 0, err
	}

	f, err := os.Create(s.Path(filename))
	if err != nil {
		return 0, err
	}
	defer f.Close()

	n, err := io.Copy(f, r)
	if err != nil {
		return n, err
	}
	return n, f.Close()
}

// List returns every regular file in the store. A missing directory is an
// empty store, not an error.
func (s *FileStore) List() ([]models.StoredFile, error) {
	entries, err := os.ReadDir(s.dir)
	if os.IsNotExist(err) {
		return []models.StoredFile{}, nil
	}
	if err != nil {
		return nil, err
	}

	files := make([]models.StoredFile, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		files = append(files, models.StoredFile{
			Name:     entry.Name(),
			Size:     info.Size(),
			Modified: info.ModTime().Unix(),
		})
	}
	return files, nil
}

// Delete removes the named file. Returns false without error when it was
// already absent, so deletes are idempotent.
func (s *FileStore) Delete(filename string) (bool, error) {
	err := os.Remove(s.Path(filename))
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// Path returns the on-disk location for a filename. Base-naming keeps the
// store flat and stops traversal outside the directory.
func (s *FileStore) Path(filename string) string {
	return filepath.Join(s.dir, filepath.Base(filename))
}
