// Package storage provides the byte-level file primitives the framework
// lifecycle manager runs on. Callers depend on the Adapter interface so tests
// can substitute spies and fault injectors for the real filesystem.
package storage

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// Typed sentinels for the storage error conditions callers branch on.
// Everything else surfaces verbatim.
var (
	ErrNotFound   = errors.New("storage: not found")
	ErrPermission = errors.New("storage: permission denied")
	ErrExists     = errors.New("storage: already exists")
)

// Adapter is the minimal file surface the lifecycle manager needs.
type Adapter interface {
	Read(path string) ([]byte, error)
	Write(path string, data []byte) error
	Copy(src, dst string) error
	Delete(path string) error
	Exists(path string) (bool, error)
	ListDir(path string) ([]string, error)
}

// OS returns an Adapter backed by the local filesystem.
func OS() Adapter {
	return osAdapter{}
}

type osAdapter struct{}

func (osAdapter) Read(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, wrap("read", path, err)
	}
	return data, nil
}

// Write creates parent directories as needed and truncates any existing file.
func (osAdapter) Write(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return wrap("prepare dir for", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return wrap("write", path, err)
	}
	return nil
}

func (osAdapter) Copy(src, dst string) error {
	source, err := os.Open(src)
	if err != nil {
		return wrap("open", src, err)
	}
	defer source.Close()

	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return wrap("prepare dir for", dst, err)
	}

	dest, err := os.Create(dst)
	if err != nil {
		return wrap("create", dst, err)
	}
	defer dest.Close()

	if _, err := io.Copy(dest, source); err != nil {
		return wrap("copy to", dst, err)
	}
	return nil
}

func (osAdapter) Delete(path string) error {
	if err := os.Remove(path); err != nil {
		return wrap("delete", path, err)
	}
	return nil
}

func (osAdapter) Exists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, wrap("stat", path, err)
	}
	return true, nil
}

func (osAdapter) ListDir(path string) ([]string, error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, wrap("list", path, err)
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name())
	}
	return names, nil
}

// wrap maps os errors onto the typed sentinels while preserving the
// underlying error in the chain.
func wrap(verb, path string, err error) error {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return fmt.Errorf("%s %s: %w: %w", verb, path, ErrNotFound, err)
	case errors.Is(err, fs.ErrPermission):
		return fmt.Errorf("%s %s: %w: %w", verb, path, ErrPermission, err)
	case errors.Is(err, fs.ErrExist):
		return fmt.Errorf("%s %s: %w: %w", verb, path, ErrExists, err)
	default:
		return fmt.Errorf("%s %s: %w", verb, path, err)
	}
}
