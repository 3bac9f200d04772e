package registry

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadMissingFileReturnsEmptyDocument(t *testing.T) {
	doc, err := Load(filepath.Join(t.TempDir(), "registry.json"))
	if err != nil {
		t.Fatalf("expected no error for missing file, got %v", err)
	}
	if doc == nil {
		t.Fatal("expected non-nil document")
	}
	if len(doc.Entries) != 0 {
		t.Fatalf("expected empty entries, got %d", len(doc.Entries))
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "registry.json")

	installedAt := time.Date(2026, 2, 10, 9, 30, 0, 0, time.UTC)
	customizedAt := installedAt.Add(time.Hour)

	doc := &Document{}
	doc.Upsert(Record{ID: "adr", Version: "1.0.0", InstalledAt: installedAt})
	doc.Upsert(Record{ID: "code-review", Version: "2.0.0", InstalledAt: installedAt, Customized: true, CustomizedAt: &customizedAt})

	if err := Save(path, doc); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	rec, ok := loaded.Get("code-review")
	if !ok {
		t.Fatal("code-review missing after round trip")
	}
	if !rec.Customized || rec.CustomizedAt == nil || !rec.CustomizedAt.Equal(customizedAt) {
		t.Fatalf("customization fields lost: %+v", rec)
	}

	// No .tmp file left behind.
	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Error("temp file left behind after save")
	}
}

func TestUpsertReplacesInPlacePreservingOrder(t *testing.T) {
	doc := &Document{}
	doc.Upsert(Record{ID: "a", Version: "1"})
	doc.Upsert(Record{ID: "b", Version: "1"})
	doc.Upsert(Record{ID: "c", Version: "1"})

	doc.Upsert(Record{ID: "b", Version: "2"})

	if len(doc.Entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(doc.Entries))
	}
	order := []string{doc.Entries[0].ID, doc.Entries[1].ID, doc.Entries[2].ID}
	if order[0] != "a" || order[1] != "b" || order[2] != "c" {
		t.Fatalf("order changed: %v", order)
	}
	if doc.Entries[1].Version != "2" {
		t.Fatalf("entry not replaced: %+v", doc.Entries[1])
	}
}

func TestNormalizeClearsStaleCustomizedAt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "registry.json")

	when := time.Now()
	doc := &Document{Entries: []Record{
		{ID: "adr", Version: "1.0.0", Customized: false, CustomizedAt: &when},
	}}
	if err := Save(path, doc); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	rec, _ := loaded.Get("adr")
	if rec.CustomizedAt != nil {
		t.Fatal("customized_at must be absent when customized is false")
	}
}
