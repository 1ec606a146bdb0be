// ABOUTME: Charm Cloud KV-backed document store with automatic sync.
// ABOUTME: Keeps the whole document under a single key, E2E encrypted via Charm.
package store

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/charm/client"
	"github.com/charmbracelet/charm/kv"
	"github.com/dgraph-io/badger/v3"

	"github.com/harperreed/vitalog/internal/models"
)

const (
	charmDBName = "vitalog"
	charmHost   = "charm.2389.dev"
	documentKey = "health-data"
)

// CharmStore syncs the health document across devices through Charm Cloud.
// The document lives under one KV key, so the whole-document
// read-modify-write contract is unchanged.
type CharmStore struct {
	kv *kv.KV
}

var _ Store = (*CharmStore)(nil)

// OpenCharm opens the Charm KV database with default paths, pulling remote
// state on startup when the database is writable.
func OpenCharm() (*CharmStore, error) {
	if err := os.Setenv("CHARM_HOST", charmHost); err != nil {
		return nil, err
	}

	db, err := kv.OpenWithDefaultsFallback(charmDBName)
	if err != nil {
		return nil, fmt.Errorf("open charm kv: %w", err)
	}

	if !db.IsReadOnly() {
		_ = db.Sync()
	}
	return &CharmStore{kv: db}, nil
}

// OpenCharmAt opens the Charm KV database rooted at dataDir instead of the
// default Charm data path.
func OpenCharmAt(dataDir string) (*CharmStore, error) {
	if err := os.Setenv("CHARM_HOST", charmHost); err != nil {
		return nil, err
	}

	cc, err := client.NewClientWithDefaults()
	if err != nil {
		return nil, fmt.Errorf("create charm client: %w", err)
	}

	opts := badger.DefaultOptions(filepath.Join(dataDir, "kv", charmDBName))
	db, err := kv.Open(cc, charmDBName, opts)
	if err != nil {
		return nil, fmt.Errorf("open charm kv: %w", err)
	}

	_ = db.Sync()
	return &CharmStore{kv: db}, nil
}

// Load fetches the document key. A missing key or decode failure yields the
// empty document.
func (s *CharmStore) Load() models.Document {
	data, err := s.kv.Get([]byte(documentKey))
	if err != nil || len(data) == 0 {
		return models.NewDocument()
	}
	return decodeDocument(data)
}

// Save stores the document and pushes it to Charm Cloud.
func (s *CharmStore) Save(doc models.Document) error {
	doc.Normalize()

	data, err := encodeDocument(doc)
	if err != nil {
		return &WriteError{Backend: "charm", Err: err}
	}

	if s.kv.IsReadOnly() {
		return &WriteError{Backend: "charm",
			Err: fmt.Errorf("database is locked by another process")}
	}
	if err := s.kv.Set([]byte(documentKey), data); err != nil {
		return &WriteError{Backend: "charm", Err: err}
	}
	_ = s.kv.Sync()
	return nil
}

// Close closes the KV database connection.
func (s *CharmStore) Close() error {
	if s.kv != nil {
		return s.kv.Close()
	}
	return nil
}
