// ABOUTME: File-backed document store using a single JSON file.
// ABOUTME: Writes go through a temp file and rename for atomic replacement.
package store

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/harperreed/vitalog/internal/models"
)

// FileStore keeps the health document in one pretty-printed JSON file.
type FileStore struct {
	path string
}

// Compile-time check that FileStore implements Store.
var _ Store = (*FileStore)(nil)

// NewFileStore creates a file store rooted at path, creating the parent
// directory if needed.
func NewFileStore(path string) (*FileStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return nil, &WriteError{Backend: "file", Err: err}
	}
	return &FileStore{path: path}, nil
}

// Path returns the location of the JSON document.
func (s *FileStore) Path() string {
	return s.path
}

// Load reads the document from disk. A missing or unreadable file yields the
// empty document.
func (s *FileStore) Load() models.Document {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return models.NewDocument()
	}

	var doc models.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return models.NewDocument()
	}
	doc.Normalize()
	return doc
}

// Save rewrites the whole document. The temp-file-then-rename dance keeps a
// concurrent reader from ever seeing a partial write.
func (s *FileStore) Save(doc models.Document) error {
	doc.Normalize()

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return &WriteError{Backend: "file", Err: err}
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".health-data-*.json")
	if err != nil {
		return &WriteError{Backend: "file", Err: err}
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return &WriteError{Backend: "file", Err: err}
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return &WriteError{Backend: "file", Err: err}
	}

	if err := os.Rename(tmpPath, s.path); err != nil {
		_ = os.Remove(tmpPath)
		return &WriteError{Backend: "file", Err: err}
	}
	return nil
}

// Close is a no-op for the file store.
func (s *FileStore) Close() error {
	return nil
}
