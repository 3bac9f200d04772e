package framework

import (
	"fmt"

	"guidepost/internal/registry"
)

// InstallOptions selects the conflict-resolution policy when the install
// target already exists. All false means reject on conflict.
type InstallOptions struct {
	Overwrite bool
	Merge     bool
	Backup    bool
}

// Merge output wraps both documents in literal conflict markers so a human
// can reconcile by hand. Concatenation is deliberate: no structural merge is
// attempted.
const (
	mergeMarkerBegin   = "<<<<<<< existing (local)"
	mergeMarkerDivider = "======="
	mergeMarkerEnd     = ">>>>>>> incoming (catalog)"
)

// InstallResult reports what the engine did.
type InstallResult struct {
	ID         string
	Version    string
	Path       string
	Action     string // "installed", "overwritten", "merged"
	BackupPath string
}

// Install places one framework's content onto disk, applying the
// conflict-resolution policy, and records it in the registry. The registry
// upsert happens only after the file write succeeds; a failed registry write
// propagates as-is and the just-written file stays in place.
func (m *Manager) Install(id string, opts InstallOptions) (InstallResult, error) {
	desc, ok, err := m.catalog.Get(id)
	if err != nil {
		return InstallResult{}, err
	}
	if !ok {
		return InstallResult{}, &NotFoundError{ID: id}
	}

	target := m.pp.FrameworkFile(id)
	exists, err := m.adapter.Exists(target)
	if err != nil {
		return InstallResult{}, err
	}

	result := InstallResult{ID: id, Version: desc.Version, Path: target, Action: "installed"}

	switch {
	case !exists:
		content, err := m.catalog.Content(desc)
		if err != nil {
			return InstallResult{}, err
		}
		if err := m.adapter.Write(target, content); err != nil {
			return InstallResult{}, err
		}

	case opts.Merge:
		existing, err := m.adapter.Read(target)
		if err != nil {
			return InstallResult{}, err
		}
		content, err := m.catalog.Content(desc)
		if err != nil {
			return InstallResult{}, err
		}
		if opts.Backup {
			backupPath, err := m.Backup(target)
			if err != nil {
				return InstallResult{}, err
			}
			result.BackupPath = backupPath
		}
		merged := mergeContents(existing, content, desc.Version)
		if err := m.adapter.Write(target, merged); err != nil {
			return InstallResult{}, err
		}
		result.Action = "merged"

	case opts.Overwrite:
		if opts.Backup {
			backupPath, err := m.Backup(target)
			if err != nil {
				return InstallResult{}, err
			}
			result.BackupPath = backupPath
		}
		content, err := m.catalog.Content(desc)
		if err != nil {
			return InstallResult{}, err
		}
		if err := m.adapter.Write(target, content); err != nil {
			return InstallResult{}, err
		}
		result.Action = "overwritten"

	default:
		return InstallResult{}, &ConflictError{ID: id, Path: target}
	}

	rec := registry.Record{
		ID:          id,
		Version:     desc.Version,
		InstalledAt: m.now().UTC(),
		Customized:  false,
	}
	if err := m.store.Upsert(rec); err != nil {
		// The file is already written; filesystem and registry are now
		// inconsistent. Report rather than roll back.
		return result, fmt.Errorf("framework %s written to %s but registry update failed: %w", id, target, err)
	}

	m.logger.Printf("install %s@%s: %s (%s)", id, desc.Version, target, result.Action)
	return result, nil
}

func mergeContents(existing, incoming []byte, version string) []byte {
	var out []byte
	out = append(out, []byte(mergeMarkerBegin+"\n")...)
	out = append(out, existing...)
	if len(existing) > 0 && existing[len(existing)-1] != '\n' {
		out = append(out, '\n')
	}
	out = append(out, []byte(mergeMarkerDivider+"\n")...)
	out = append(out, incoming...)
	if len(incoming) > 0 && incoming[len(incoming)-1] != '\n' {
		out = append(out, '\n')
	}
	out = append(out, []byte(fmt.Sprintf("%s %s\n", mergeMarkerEnd, version))...)
	return out
}
