package framework

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"guidepost/internal/logx"
	"guidepost/internal/paths"
	"guidepost/internal/storage"
)

const testCatalogYAML = `version: "1"
frameworks:
  - id: adr
    name: Architecture Decision Records
    description: Record context for significant decisions
    category: architecture
    version: 1.0.0
    content: adr.md
  - id: code-review
    name: Code Review Playbook
    description: Review checklists and etiquette
    category: quality
    version: 2.0.0
    content: code-review.md
`

const (
	adrContent    = "# Architecture Decision Records\n\nWrite one per decision.\n"
	reviewContent = "# Code Review Playbook\n\nBe kind, be specific.\n"
)

// spyAdapter records every storage call so tests can assert which paths were
// touched.
type spyAdapter struct {
	storage.Adapter
	calls []string
}

func newSpyAdapter() *spyAdapter {
	return &spyAdapter{Adapter: storage.OS()}
}

func (s *spyAdapter) record(op, path string) {
	s.calls = append(s.calls, op+" "+path)
}

func (s *spyAdapter) reset() { s.calls = nil }

func (s *spyAdapter) Read(path string) ([]byte, error) {
	s.record("read", path)
	return s.Adapter.Read(path)
}

func (s *spyAdapter) Write(path string, data []byte) error {
	s.record("write", path)
	return s.Adapter.Write(path, data)
}

func (s *spyAdapter) Copy(src, dst string) error {
	s.record("copy", dst)
	return s.Adapter.Copy(src, dst)
}

func (s *spyAdapter) Delete(path string) error {
	s.record("delete", path)
	return s.Adapter.Delete(path)
}

func (s *spyAdapter) Exists(path string) (bool, error) {
	s.record("exists", path)
	return s.Adapter.Exists(path)
}

func (s *spyAdapter) ListDir(path string) ([]string, error) {
	s.record("list", path)
	return s.Adapter.ListDir(path)
}

func (s *spyAdapter) writes() []string {
	var out []string
	for _, call := range s.calls {
		if strings.HasPrefix(call, "write") || strings.HasPrefix(call, "copy") || strings.HasPrefix(call, "delete") {
			out = append(out, call)
		}
	}
	return out
}

// newTestManager builds a workspace with the fixture catalog in a temp dir.
func newTestManager(t *testing.T) (*Manager, *spyAdapter, paths.ProjectPaths) {
	t.Helper()

	root := t.TempDir()
	catalogDir := filepath.Join(root, "catalog")
	writeFixture(t, filepath.Join(catalogDir, "catalog.yaml"), testCatalogYAML)
	writeFixture(t, filepath.Join(catalogDir, "content", "adr.md"), adrContent)
	writeFixture(t, filepath.Join(catalogDir, "content", "code-review.md"), reviewContent)

	pp, err := paths.Resolve(root)
	if err != nil {
		t.Fatalf("resolve paths: %v", err)
	}

	spy := newSpyAdapter()
	mgr := NewManager(pp, Options{
		CatalogDir: catalogDir,
		Adapter:    spy,
		Logger:     logx.Discard(),
	})
	return mgr, spy, pp
}

func writeFixture(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

// scriptedProvider plays back a fixed decision sequence and records diff
// displays.
type scriptedProvider struct {
	decisions []Decision
	next      int
	diffCount int
	lastDiff  Comparison
}

func (p *scriptedProvider) Decide(Prompt) (Decision, error) {
	if p.next >= len(p.decisions) {
		return DecisionCancel, nil
	}
	d := p.decisions[p.next]
	p.next++
	return d, nil
}

func (p *scriptedProvider) ShowDiff(c Comparison) error {
	p.diffCount++
	p.lastDiff = c
	return nil
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}
