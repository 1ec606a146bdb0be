// ABOUTME: Store interface for the persisted health document.
// ABOUTME: Defines the load/save contract shared by file, sqlite, and charm backends.
package store

import (
	"encoding/json"
	"fmt"

	"github.com/harperreed/vitalog/internal/models"
)

// Store persists the whole health document. Every mutation is a
// read-modify-write of the entire document; there is no field-level API.
//
// Load never fails: any read problem degrades to the empty document so
// readers always observe a fully-defaulted structure. Save is atomic from
// the caller's perspective and returns *WriteError on unrecoverable I/O
// failure.
type Store interface {
	Load() models.Document
	Save(doc models.Document) error
	Close() error
}

// WriteError signals that persisting the document failed and the mutation's
// outcome is unknown. It is the only hard failure the store surfaces.
type WriteError struct {
	Backend string
	Err     error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("%s store: write failed: %v", e.Backend, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

// encodeDocument serializes a document for a KV backend.
func encodeDocument(doc models.Document) ([]byte, error) {
	return json.Marshal(doc)
}

// decodeDocument deserializes a document, degrading to the empty document on
// bad payloads.
func decodeDocument(data []byte) models.Document {
	var doc models.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return models.NewDocument()
	}
	doc.Normalize()
	return doc
}
