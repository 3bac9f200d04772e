// Package framework implements the lifecycle of installable guidance
// frameworks: catalog queries, installation with conflict resolution,
// customization detection, backups, and version updates.
package framework

import (
	"log"
	"time"

	"guidepost/internal/catalog"
	"guidepost/internal/logx"
	"guidepost/internal/paths"
	"guidepost/internal/registry"
	"guidepost/internal/storage"
)

// Manager ties the catalog, registry, and storage adapter together for one
// workspace. Each Manager owns its own caches; separate instances never
// share state.
type Manager struct {
	catalog *catalog.Catalog
	store   *registry.Store
	adapter storage.Adapter
	pp      paths.ProjectPaths
	logger  *log.Logger

	// backupOnUpdate extends the customized-only backup rule to every
	// update overwrite.
	backupOnUpdate bool

	// now is swappable for tests.
	now func() time.Time
}

// Options configures Manager construction.
type Options struct {
	CatalogDir     string
	CacheTTL       time.Duration
	Adapter        storage.Adapter
	Logger         *log.Logger
	BackupOnUpdate bool
}

// NewManager constructs a Manager for the given workspace paths.
func NewManager(pp paths.ProjectPaths, opts Options) *Manager {
	adapter := opts.Adapter
	if adapter == nil {
		adapter = storage.OS()
	}
	logger := opts.Logger
	if logger == nil {
		logger = logx.Discard()
	}
	return &Manager{
		catalog: catalog.New(opts.CatalogDir, adapter),
		store:   registry.NewStore(pp.RegistryFile, opts.CacheTTL),
		adapter: adapter,
		pp:      pp,
		logger:  logger,

		backupOnUpdate: opts.BackupOnUpdate,

		now: time.Now,
	}
}

// Invalidate drops both the catalog and registry caches.
func (m *Manager) Invalidate() {
	m.catalog.Invalidate()
	m.store.Invalidate()
}

// Available returns every framework in the catalog.
func (m *Manager) Available() ([]catalog.Descriptor, error) {
	return m.catalog.All()
}

// Get returns the catalog descriptor for the given id.
func (m *Manager) Get(id string) (catalog.Descriptor, bool, error) {
	return m.catalog.Get(id)
}

// Search returns catalog entries matching the query.
func (m *Manager) Search(query string) ([]catalog.Descriptor, error) {
	return m.catalog.Search(query)
}

// ByCategory returns catalog entries in the given category.
func (m *Manager) ByCategory(c catalog.Category) ([]catalog.Descriptor, error) {
	return m.catalog.ByCategory(c)
}

// InstalledFramework pairs a registry record with its catalog descriptor.
type InstalledFramework struct {
	Record     registry.Record
	Descriptor catalog.Descriptor
}

// Installed lists registry entries whose ids are still present in the
// catalog. Orphaned records (id gone from the catalog) are excluded from the
// listing but left untouched in the persisted document.
func (m *Manager) Installed() ([]InstalledFramework, error) {
	records, err := m.store.List()
	if err != nil {
		return nil, err
	}

	var installed []InstalledFramework
	for _, rec := range records {
		desc, ok, err := m.catalog.Get(rec.ID)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		installed = append(installed, InstalledFramework{Record: rec, Descriptor: desc})
	}
	return installed, nil
}

// IsInstalled reports whether the framework's canonical target file exists on
// disk. Ids not present in the catalog are rejected immediately without any
// storage access.
func (m *Manager) IsInstalled(id string) (bool, error) {
	_, ok, err := m.catalog.Get(id)
	if err != nil {
		return false, err
	}
	if !ok {
		return false, nil
	}
	return m.adapter.Exists(m.pp.FrameworkFile(id))
}

// Metadata returns the registry record for the given id. File presence is
// ground truth for the installed check; the registry is ground truth for
// version and customization bookkeeping.
func (m *Manager) Metadata(id string) (registry.Record, bool, error) {
	return m.store.Get(id)
}

// MarkCustomized flags the registry entry for the given id as customized.
// Ids without a registry entry are a no-op.
func (m *Manager) MarkCustomized(id string) error {
	return m.store.MarkCustomized(id, m.now().UTC())
}

// TargetPath returns the canonical install target for a framework id.
func (m *Manager) TargetPath(id string) string {
	return m.pp.FrameworkFile(id)
}
