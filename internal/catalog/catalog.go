// Package catalog loads and queries the canonical list of installable
// frameworks. The catalog is read-mostly: it is parsed once per Catalog
// instance and cached until Invalidate is called.
package catalog

import (
	"fmt"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"guidepost/internal/storage"
)

const (
	catalogFileName = "catalog.yaml"
	contentDirName  = "content"
)

// Category buckets frameworks for browsing.
type Category string

const (
	CategoryUnknown      Category = ""
	CategoryArchitecture Category = "architecture"
	CategoryProcess      Category = "process"
	CategoryQuality      Category = "quality"
	CategoryOperations   Category = "operations"
)

// Descriptor describes a single installable framework. Descriptors are
// immutable once loaded.
type Descriptor struct {
	ID           string   `yaml:"id"`
	Name         string   `yaml:"name"`
	Description  string   `yaml:"description"`
	Category     Category `yaml:"category"`
	Version      string   `yaml:"version"`
	ContentRef   string   `yaml:"content"`
	Dependencies []string `yaml:"dependencies,omitempty"`
}

// Document is the on-disk shape of catalog.yaml.
type Document struct {
	Version    string       `yaml:"version"`
	Frameworks []Descriptor `yaml:"frameworks"`
}

// LoadError indicates the catalog source is missing or unparsable. All
// catalog operations fail with it until the source is fixed.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load catalog %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// Catalog owns the cached descriptor list for one catalog directory.
type Catalog struct {
	dir     string
	adapter storage.Adapter

	loaded bool
	doc    Document
}

// New creates a catalog over the given directory. Nothing is read until the
// first query.
func New(dir string, adapter storage.Adapter) *Catalog {
	return &Catalog{dir: dir, adapter: adapter}
}

// Invalidate drops the cached descriptor list; the next query reloads from
// disk.
func (c *Catalog) Invalidate() {
	c.loaded = false
	c.doc = Document{}
}

func (c *Catalog) load() error {
	if c.loaded {
		return nil
	}

	path := filepath.Join(c.dir, catalogFileName)
	data, err := c.adapter.Read(path)
	if err != nil {
		return &LoadError{Path: path, Err: err}
	}

	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return &LoadError{Path: path, Err: err}
	}

	c.doc = doc
	c.loaded = true
	return nil
}

// All returns every descriptor in catalog order. An empty catalog is valid
// and yields an empty slice.
func (c *Catalog) All() ([]Descriptor, error) {
	if err := c.load(); err != nil {
		return nil, err
	}
	return append([]Descriptor(nil), c.doc.Frameworks...), nil
}

// Get returns the descriptor for the given id.
func (c *Catalog) Get(id string) (Descriptor, bool, error) {
	if err := c.load(); err != nil {
		return Descriptor{}, false, err
	}
	for _, desc := range c.doc.Frameworks {
		if desc.ID == id {
			return desc, true, nil
		}
	}
	return Descriptor{}, false, nil
}

// Search returns descriptors whose name, description, or category contains
// the query as a case-insensitive literal substring. A blank or
// whitespace-only query returns the full catalog.
func (c *Catalog) Search(query string) ([]Descriptor, error) {
	all, err := c.All()
	if err != nil {
		return nil, err
	}

	needle := strings.ToLower(strings.TrimSpace(query))
	if needle == "" {
		return all, nil
	}

	var matches []Descriptor
	for _, desc := range all {
		haystacks := []string{desc.Name, desc.Description, string(desc.Category)}
		for _, hay := range haystacks {
			if strings.Contains(strings.ToLower(hay), needle) {
				matches = append(matches, desc)
				break
			}
		}
	}
	return matches, nil
}

// ByCategory returns descriptors in the given category, in catalog order.
func (c *Catalog) ByCategory(category Category) ([]Descriptor, error) {
	all, err := c.All()
	if err != nil {
		return nil, err
	}
	var matches []Descriptor
	for _, desc := range all {
		if desc.Category == category {
			matches = append(matches, desc)
		}
	}
	return matches, nil
}

// Content reads the canonical markdown for the given descriptor.
func (c *Catalog) Content(desc Descriptor) ([]byte, error) {
	path := filepath.Join(c.dir, contentDirName, desc.ContentRef)
	data, err := c.adapter.Read(path)
	if err != nil {
		return nil, fmt.Errorf("read content for %s: %w", desc.ID, err)
	}
	return data, nil
}

// CatalogVersion returns the version string of the catalog document itself.
func (c *Catalog) CatalogVersion() (string, error) {
	if err := c.load(); err != nil {
		return "", err
	}
	return c.doc.Version, nil
}
