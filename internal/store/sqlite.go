// ABOUTME: SQLite-backed document store using modernc.org/sqlite (pure Go, no CGO).
// ABOUTME: Keeps the whole document as JSON in a single-row table.
package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/harperreed/vitalog/internal/models"
)

// SQLiteStore persists the health document as a JSON blob in SQLite. The
// single-row table keeps the whole-document read-modify-write contract while
// getting WAL durability for free.
type SQLiteStore struct {
	db     *sql.DB
	dbPath string
}

var _ Store = (*SQLiteStore)(nil)

// OpenSQLite opens or creates the document database at dbPath.
func OpenSQLite(dbPath string) (*SQLiteStore, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	s := &SQLiteStore{db: db, dbPath: dbPath}

	if err := s.configurePragmas(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("configure pragmas: %w", err)
	}
	if err := s.initSchema(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("initialize schema: %w", err)
	}

	return s, nil
}

// configurePragmas sets up SQLite for safe single-writer use.
func (s *SQLiteStore) configurePragmas() error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA synchronous = NORMAL",
	}
	for _, pragma := range pragmas {
		if _, err := s.db.Exec(pragma); err != nil {
			return fmt.Errorf("execute %s: %w", pragma, err)
		}
	}
	return nil
}

// initSchema creates the single-row document table.
func (s *SQLiteStore) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS document (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		data TEXT NOT NULL,
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Load reads the document row. Absent row or bad JSON yields the empty
// document.
func (s *SQLiteStore) Load() models.Document {
	var data string
	err := s.db.QueryRow("SELECT data FROM document WHERE id = 1").Scan(&data)
	if err != nil {
		return models.NewDocument()
	}

	var doc models.Document
	if err := json.Unmarshal([]byte(data), &doc); err != nil {
		return models.NewDocument()
	}
	doc.Normalize()
	return doc
}

// Save upserts the document row in one statement.
func (s *SQLiteStore) Save(doc models.Document) error {
	doc.Normalize()

	data, err := json.Marshal(doc)
	if err != nil {
		return &WriteError{Backend: "sqlite", Err: err}
	}

	_, err = s.db.Exec(`
		INSERT INTO document (id, data, updated_at) VALUES (1, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(id) DO UPDATE SET data = excluded.data, updated_at = CURRENT_TIMESTAMP
	`, string(data))
	if err != nil {
		return &WriteError{Backend: "sqlite", Err: err}
	}
	return nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}
