package framework

import (
	"fmt"

	"guidepost/internal/registry"
)

// UpdateCandidate describes one framework whose registry version differs
// from the catalog version. Versions compare as plain strings; any textual
// difference counts as an update.
type UpdateCandidate struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	CurrentVersion string   `json:"current_version"`
	LatestVersion  string   `json:"latest_version"`
	Changes        []string `json:"changes"`
}

// CheckForUpdates compares every registry record against the catalog.
// Records whose id is absent from the catalog are silently skipped.
func (m *Manager) CheckForUpdates() ([]UpdateCandidate, error) {
	records, err := m.store.List()
	if err != nil {
		return nil, err
	}

	var candidates []UpdateCandidate
	for _, rec := range records {
		desc, ok, err := m.catalog.Get(rec.ID)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		if rec.Version == desc.Version {
			continue
		}
		candidates = append(candidates, UpdateCandidate{
			ID:             rec.ID,
			Name:           desc.Name,
			CurrentVersion: rec.Version,
			LatestVersion:  desc.Version,
			Changes: []string{
				fmt.Sprintf("updated to version %s", desc.Version),
			},
		})
	}
	return candidates, nil
}

// Decision is the user's answer at an update prompt.
type Decision int

const (
	DecisionCancel Decision = iota
	DecisionShowDiff
	DecisionProceed
)

// Prompt carries the context a DecisionProvider needs to ask the user about
// one pending update.
type Prompt struct {
	ID             string
	Name           string
	CurrentVersion string
	LatestVersion  string
	// Customized warns the user that proceeding overwrites local edits
	// (after a backup).
	Customized bool
}

// DecisionProvider answers update prompts. The interactive CLI backs it with
// a terminal prompt; tests script it.
type DecisionProvider interface {
	Decide(p Prompt) (Decision, error)
	ShowDiff(c Comparison) error
}

// updateState is the explicit finite-state machine behind Update. ShowingDiff
// always transitions back to Prompt.
type updateState int

const (
	statePrompt updateState = iota
	stateShowingDiff
	stateConfirmed
	stateCancelled
)

// UpdateResult reports the outcome of a single framework update.
type UpdateResult struct {
	ID          string
	FromVersion string
	ToVersion   string
	BackupPath  string
}

// Update brings one installed framework up to the catalog version through an
// interactive confirmation flow. The prompts are the only cancellation
// points; once the write begins the operation runs to completion. Customized
// targets always take a backup before the overwrite and have their
// customized flag cleared afterwards: the update subsumes the prior edits
// and the backup is the safety net.
func (m *Manager) Update(id string, provider DecisionProvider) (UpdateResult, error) {
	desc, ok, err := m.catalog.Get(id)
	if err != nil {
		return UpdateResult{}, err
	}
	if !ok {
		return UpdateResult{}, &NotFoundError{ID: id}
	}

	target := m.pp.FrameworkFile(id)
	exists, err := m.adapter.Exists(target)
	if err != nil {
		return UpdateResult{}, err
	}
	if !exists {
		return UpdateResult{}, &NotInstalledError{ID: id}
	}

	cmp, err := m.DetectCustomization(id)
	if err != nil {
		return UpdateResult{}, err
	}

	rec, _, err := m.store.Get(id)
	if err != nil {
		return UpdateResult{}, err
	}

	prompt := Prompt{
		ID:             id,
		Name:           desc.Name,
		CurrentVersion: rec.Version,
		LatestVersion:  desc.Version,
		Customized:     cmp.Customized,
	}

	state := statePrompt
	for state != stateConfirmed {
		switch state {
		case statePrompt:
			decision, err := provider.Decide(prompt)
			if err != nil {
				return UpdateResult{}, err
			}
			switch decision {
			case DecisionShowDiff:
				state = stateShowingDiff
			case DecisionProceed:
				state = stateConfirmed
			default:
				state = stateCancelled
			}
		case stateShowingDiff:
			if err := provider.ShowDiff(cmp); err != nil {
				return UpdateResult{}, err
			}
			state = statePrompt
		case stateCancelled:
			m.logger.Printf("update %s: cancelled by user", id)
			return UpdateResult{}, &CancelledError{ID: id}
		}
	}

	result := UpdateResult{ID: id, FromVersion: rec.Version, ToVersion: desc.Version}

	if cmp.Customized || m.backupOnUpdate {
		backupPath, err := m.Backup(target)
		if err != nil {
			return UpdateResult{}, err
		}
		result.BackupPath = backupPath
	}

	content, err := m.catalog.Content(desc)
	if err != nil {
		return UpdateResult{}, err
	}
	if err := m.adapter.Write(target, content); err != nil {
		return UpdateResult{}, err
	}

	newRec := registry.Record{
		ID:          id,
		Version:     desc.Version,
		InstalledAt: m.now().UTC(),
		Customized:  false,
	}
	if err := m.store.Upsert(newRec); err != nil {
		return result, fmt.Errorf("framework %s updated at %s but registry update failed: %w", id, target, err)
	}

	m.logger.Printf("update %s: %s -> %s", id, result.FromVersion, result.ToVersion)
	return result, nil
}

// UpdateAll computes the candidate set once, then updates each candidate
// sequentially. The first failure (including a user cancellation) aborts the
// sweep; updates already applied stay applied. Each framework's update is an
// independent unit of work.
func (m *Manager) UpdateAll(provider DecisionProvider) ([]UpdateResult, error) {
	candidates, err := m.CheckForUpdates()
	if err != nil {
		return nil, err
	}

	results := make([]UpdateResult, 0, len(candidates))
	for _, cand := range candidates {
		res, err := m.Update(cand.ID, provider)
		if err != nil {
			return results, fmt.Errorf("update %s: %w", cand.ID, err)
		}
		results = append(results, res)
	}
	return results, nil
}
