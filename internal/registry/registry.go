// Package registry persists which frameworks are installed in a workspace.
// The registry is a single JSON document; absence of the file is equivalent
// to an empty registry.
package registry

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

const registryVersion = 1

// Record is the persisted entry for one installed framework. The id may
// reference a framework no longer present in the catalog; such orphans stay
// in the document untouched.
type Record struct {
	ID           string     `json:"id"`
	Version      string     `json:"version"`
	InstalledAt  time.Time  `json:"installed_at"`
	Customized   bool       `json:"customized"`
	CustomizedAt *time.Time `json:"customized_at,omitempty"`
}

// Document is the on-disk shape of registry.json. Entries keep their
// insertion order.
type Document struct {
	Version int      `json:"version"`
	Entries []Record `json:"entries"`
}

// Load reads the registry document from the given path, returning an empty
// document when the file is missing.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return newDocument(), nil
		}
		return nil, fmt.Errorf("read registry: %w", err)
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode registry: %w", err)
	}

	doc.normalize()
	return &doc, nil
}

// Save writes the registry document to disk, creating the containing
// directory if needed. The write is performed atomically.
func Save(path string, doc *Document) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("ensure registry dir: %w", err)
	}

	if doc == nil {
		doc = newDocument()
	}
	doc.normalize()

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode registry: %w", err)
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write temp registry: %w", err)
	}

	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("replace registry: %w", err)
	}

	return nil
}

// Get returns the record for the given id when present.
func (doc *Document) Get(id string) (Record, bool) {
	if doc == nil {
		return Record{}, false
	}
	for _, rec := range doc.Entries {
		if rec.ID == id {
			return rec, true
		}
	}
	return Record{}, false
}

// Upsert merges a record into the entry list: an existing entry with the
// same id is replaced in place preserving order, otherwise the record is
// appended.
func (doc *Document) Upsert(rec Record) {
	if doc == nil {
		return
	}
	for i, existing := range doc.Entries {
		if existing.ID == rec.ID {
			doc.Entries[i] = rec
			return
		}
	}
	doc.Entries = append(doc.Entries, rec)
}

func (doc *Document) normalize() {
	if doc.Version == 0 {
		doc.Version = registryVersion
	}
	if doc.Entries == nil {
		doc.Entries = []Record{}
	}
	// customized_at only carries meaning while customized is set.
	for i := range doc.Entries {
		if !doc.Entries[i].Customized {
			doc.Entries[i].CustomizedAt = nil
		}
	}
}

func newDocument() *Document {
	return &Document{
		Version: registryVersion,
		Entries: []Record{},
	}
}
