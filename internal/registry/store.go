package registry

import (
	"sync"
	"time"
)

// Store wraps the persisted registry document with a short-lived read cache.
// Closely-spaced reads within one logical operation (an update-all sweep, a
// status listing) reuse the parsed document instead of re-reading the file.
// The cache is advisory: it expires after the TTL and can be dropped
// explicitly with Invalidate. Mutations write through and refresh it.
type Store struct {
	path string
	ttl  time.Duration

	mu       sync.Mutex
	doc      *Document
	loadedAt time.Time

	// now is swappable for tests.
	now func() time.Time
}

// NewStore creates a store over the given registry file. A zero ttl disables
// caching entirely.
func NewStore(path string, ttl time.Duration) *Store {
	return &Store{path: path, ttl: ttl, now: time.Now}
}

// Invalidate drops the cached document; the next read loads from disk.
func (s *Store) Invalidate() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.doc = nil
}

// Document returns the current registry document, served from cache when the
// validity window has not elapsed.
func (s *Store) Document() (*Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.documentLocked()
}

func (s *Store) documentLocked() (*Document, error) {
	if s.doc != nil && s.ttl > 0 && s.now().Sub(s.loadedAt) < s.ttl {
		return s.doc, nil
	}

	doc, err := Load(s.path)
	if err != nil {
		return nil, err
	}
	s.doc = doc
	s.loadedAt = s.now()
	return doc, nil
}

// Get returns the record for the given id when present.
func (s *Store) Get(id string) (Record, bool, error) {
	doc, err := s.Document()
	if err != nil {
		return Record{}, false, err
	}
	rec, ok := doc.Get(id)
	return rec, ok, nil
}

// List returns all records in document order.
func (s *Store) List() ([]Record, error) {
	doc, err := s.Document()
	if err != nil {
		return nil, err
	}
	return append([]Record(nil), doc.Entries...), nil
}

// Upsert merges the record into the persisted document and saves it. The
// write is read-modify-write over the whole document, so concurrent writers
// follow last-writer-wins at document granularity.
func (s *Store) Upsert(rec Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.documentLocked()
	if err != nil {
		return err
	}
	doc.Upsert(rec)
	if err := Save(s.path, doc); err != nil {
		return err
	}
	s.doc = doc
	s.loadedAt = s.now()
	return nil
}

// MarkCustomized flags the record for the given id as customized. Ids
// without a registry entry are a no-op, not an error.
func (s *Store) MarkCustomized(id string, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.documentLocked()
	if err != nil {
		return err
	}

	rec, ok := doc.Get(id)
	if !ok {
		return nil
	}

	rec.Customized = true
	rec.CustomizedAt = &at
	doc.Upsert(rec)
	if err := Save(s.path, doc); err != nil {
		return err
	}
	s.doc = doc
	s.loadedAt = s.now()
	return nil
}
