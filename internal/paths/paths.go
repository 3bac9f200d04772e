package paths

import (
	"fmt"
	"os"
	"path/filepath"
)

// ProjectPaths captures canonical locations for a guidepost workspace.
type ProjectPaths struct {
	Root          string
	ConfigFile    string
	FrameworksDir string
	MetaDir       string
	RegistryFile  string
	LogsDir       string
}

// Resolve determines the workspace root using the optional --project flag or
// the current working directory when the flag is empty.
func Resolve(projectFlag string) (ProjectPaths, error) {
	var (
		root string
		err  error
	)

	if projectFlag != "" {
		root, err = filepath.Abs(projectFlag)
	} else {
		root, err = os.Getwd()
	}
	if err != nil {
		return ProjectPaths{}, fmt.Errorf("resolve workspace root: %w", err)
	}

	return newProjectPaths(root), nil
}

func newProjectPaths(root string) ProjectPaths {
	metaDir := filepath.Join(root, ".guidepost")
	return ProjectPaths{
		Root:          root,
		ConfigFile:    filepath.Join(root, "guidepost.yaml"),
		FrameworksDir: filepath.Join(root, "frameworks"),
		MetaDir:       metaDir,
		RegistryFile:  filepath.Join(metaDir, "registry.json"),
		LogsDir:       filepath.Join(root, "logs"),
	}
}

// ApplyConfig overrides path defaults with configured locations.
func ApplyConfig(pp ProjectPaths, frameworksDir string) ProjectPaths {
	if frameworksDir != "" {
		pp.FrameworksDir = resolveWorkspacePath(pp.Root, frameworksDir)
	}
	return pp
}

// FrameworkFile returns the canonical install target for a framework id.
func (p ProjectPaths) FrameworkFile(id string) string {
	return filepath.Join(p.FrameworksDir, id+".md")
}

func resolveWorkspacePath(root, value string) string {
	if filepath.IsAbs(value) {
		return filepath.Clean(value)
	}
	return filepath.Join(root, value)
}

// EnsureRoot makes sure the workspace root exists on disk.
func (p ProjectPaths) EnsureRoot() error {
	if err := os.MkdirAll(p.Root, 0o755); err != nil {
		return fmt.Errorf("create workspace root: %w", err)
	}
	return nil
}

// EnsureMetaDirs creates the frameworks/logs hierarchy alongside the hidden
// .guidepost metadata directory.
func (p ProjectPaths) EnsureMetaDirs() error {
	dirs := []string{p.MetaDir, p.FrameworksDir, p.LogsDir}
	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}
	return nil
}

// CatalogDir resolves the catalog directory from config and environment. The
// GUIDEPOST_CATALOG_DIR environment variable takes precedence over the
// configured value; a relative configured value resolves against the
// workspace root.
func (p ProjectPaths) CatalogDir(configured string) (string, error) {
	if override, ok := os.LookupEnv("GUIDEPOST_CATALOG_DIR"); ok && override != "" {
		abs, err := filepath.Abs(override)
		if err != nil {
			return "", fmt.Errorf("resolve GUIDEPOST_CATALOG_DIR: %w", err)
		}
		return abs, nil
	}
	if configured != "" {
		return resolveWorkspacePath(p.Root, configured), nil
	}
	return filepath.Join(p.Root, "catalog"), nil
}

// FileExists reports whether a path exists and is a regular file.
func FileExists(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return info.Mode().IsRegular(), nil
}

// DirExists reports whether a path exists and is a directory.
func DirExists(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return info.IsDir(), nil
}
