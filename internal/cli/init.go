package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"guidepost/internal/config"
	"guidepost/internal/logx"
	"guidepost/internal/paths"
)

const starterCatalogYAML = `# Framework catalog. Each entry names a markdown document under content/.
version: "1"
frameworks: []
# - id: architecture-decisions
#   name: Architecture Decision Records
#   description: Lightweight ADR process and templates
#   category: architecture
#   version: 1.0.0
#   content: architecture-decisions.md
`

func newInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Initialize a guidepost workspace",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runInit,
	}

	return cmd
}

func resolveInitDir(projectFlag string, args []string) (string, error) {
	if projectFlag != "" {
		return projectFlag, nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}

	if len(args) > 0 {
		if args[0] == "." {
			return cwd, nil
		}
		return filepath.Join(cwd, args[0]), nil
	}

	return cwd, nil
}

func runInit(cmd *cobra.Command, args []string) error {
	dir, err := resolveInitDir(projectDir, args)
	if err != nil {
		return err
	}

	pp, err := paths.Resolve(dir)
	if err != nil {
		return err
	}

	if err := pp.EnsureRoot(); err != nil {
		return err
	}
	if err := pp.EnsureMetaDirs(); err != nil {
		return err
	}

	logger, closer, err := logx.New(pp)
	if err != nil {
		return err
	}
	defer closer.Close()
	logger.Printf("guidepost init: workspace=%s", pp.Root)

	created := make([]string, 0, 3)

	if err := ensureConfig(pp, &created, logger); err != nil {
		return err
	}
	if err := ensureCatalogSeed(pp, &created, logger); err != nil {
		return err
	}

	if len(created) == 0 {
		cmd.Printf("Workspace already initialized at %s\n", pp.Root)
		return nil
	}

	cmd.Printf("Initialized workspace at %s\n", pp.Root)
	for _, entry := range created {
		cmd.Printf("  created %s\n", entry)
	}

	return nil
}

func ensureConfig(pp paths.ProjectPaths, created *[]string, logger Logger) error {
	exists, err := paths.FileExists(pp.ConfigFile)
	if err != nil {
		return fmt.Errorf("check config: %w", err)
	}
	if exists {
		logger.Printf("config exists: %s", pp.ConfigFile)
		return nil
	}

	cfg := config.Default()
	cfg.ApplyDefaults()
	data, err := cfg.Marshal()
	if err != nil {
		return err
	}

	if err := os.WriteFile(pp.ConfigFile, data, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	logger.Printf("created config: %s", pp.ConfigFile)
	*created = append(*created, "guidepost.yaml")
	return nil
}

// ensureCatalogSeed writes a starter catalog when none is configured and the
// default location is empty, so a fresh workspace is immediately usable.
func ensureCatalogSeed(pp paths.ProjectPaths, created *[]string, logger Logger) error {
	catalogDir, err := pp.CatalogDir("")
	if err != nil {
		return err
	}

	catalogFile := filepath.Join(catalogDir, "catalog.yaml")
	exists, err := paths.FileExists(catalogFile)
	if err != nil {
		return fmt.Errorf("check catalog: %w", err)
	}
	if exists {
		logger.Printf("catalog exists: %s", catalogFile)
		return nil
	}

	if err := os.MkdirAll(filepath.Join(catalogDir, "content"), 0o755); err != nil {
		return fmt.Errorf("create catalog content dir: %w", err)
	}
	if err := os.WriteFile(catalogFile, []byte(starterCatalogYAML), 0o644); err != nil {
		return fmt.Errorf("write catalog: %w", err)
	}
	logger.Printf("created catalog: %s", catalogFile)
	*created = append(*created, "catalog/catalog.yaml")
	return nil
}

// Logger keeps the subset of log.Logger used locally, enabling easy testing.
type Logger interface {
	Printf(format string, v ...any)
}
