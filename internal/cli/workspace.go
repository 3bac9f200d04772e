package cli

import (
	"io"
	"log"

	"guidepost/internal/config"
	"guidepost/internal/framework"
	"guidepost/internal/logx"
	"guidepost/internal/paths"
)

// workspace bundles everything a command needs for one run.
type workspace struct {
	pp     paths.ProjectPaths
	cfg    config.Config
	mgr    *framework.Manager
	logger *log.Logger
	closer io.Closer
}

// openWorkspace resolves paths and config, opens the run log, and constructs
// the lifecycle manager. Callers must Close the returned workspace.
func openWorkspace() (*workspace, error) {
	pp, err := paths.Resolve(projectDir)
	if err != nil {
		return nil, err
	}

	cfg, err := config.Load(pp.ConfigFile)
	if err != nil {
		return nil, err
	}
	pp = paths.ApplyConfig(pp, cfg.OutputDir)

	catalogDir, err := pp.CatalogDir(cfg.Catalog.Dir)
	if err != nil {
		return nil, err
	}

	logger, closer, err := logx.New(pp)
	if err != nil {
		return nil, err
	}

	mgr := framework.NewManager(pp, framework.Options{
		CatalogDir:     catalogDir,
		CacheTTL:       cfg.CacheTTL(),
		Logger:         logger,
		BackupOnUpdate: cfg.BackupOnUpdate(),
	})

	return &workspace{
		pp:     pp,
		cfg:    cfg,
		mgr:    mgr,
		logger: logger,
		closer: closer,
	}, nil
}

func (w *workspace) Close() {
	if w.closer != nil {
		_ = w.closer.Close()
	}
}
