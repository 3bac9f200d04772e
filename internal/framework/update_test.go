package framework

import (
	"errors"
	"os"
	"testing"
	"time"

	"guidepost/internal/registry"
)

func installAt(t *testing.T, mgr *Manager, id, version string) {
	t.Helper()
	if _, err := mgr.Install(id, InstallOptions{Overwrite: true}); err != nil {
		t.Fatalf("install %s: %v", id, err)
	}
	if version != "" {
		rec, ok, err := mgr.Metadata(id)
		if err != nil || !ok {
			t.Fatalf("metadata %s: ok=%v err=%v", id, ok, err)
		}
		rec.Version = version
		if err := mgr.store.Upsert(rec); err != nil {
			t.Fatalf("pin version: %v", err)
		}
	}
}

func TestCheckForUpdatesReportsOnlyStaleVersions(t *testing.T) {
	mgr, _, _ := newTestManager(t)

	// adr installed at an older version; code-review not installed at all.
	installAt(t, mgr, "adr", "0.9.0")

	candidates, err := mgr.CheckForUpdates()
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if len(candidates) != 1 {
		t.Fatalf("expected 1 candidate, got %d", len(candidates))
	}

	cand := candidates[0]
	if cand.ID != "adr" {
		t.Fatalf("id: %s", cand.ID)
	}
	if cand.CurrentVersion != "0.9.0" || cand.LatestVersion != "1.0.0" {
		t.Fatalf("versions: %s -> %s", cand.CurrentVersion, cand.LatestVersion)
	}
	if len(cand.Changes) == 0 {
		t.Fatal("expected at least one change line")
	}
}

func TestCheckForUpdatesUsesExactStringComparison(t *testing.T) {
	mgr, _, _ := newTestManager(t)

	// Pre-release suffix differs textually, so it counts as an update even
	// though semver would order it differently.
	installAt(t, mgr, "adr", "1.0.0-beta.1")

	candidates, err := mgr.CheckForUpdates()
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if len(candidates) != 1 {
		t.Fatalf("expected 1 candidate, got %d", len(candidates))
	}

	// Equal strings are never a candidate.
	installAt(t, mgr, "adr", "")
	candidates, err = mgr.CheckForUpdates()
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if len(candidates) != 0 {
		t.Fatalf("expected no candidates, got %v", candidates)
	}
}

func TestCheckForUpdatesSkipsOrphanedRecords(t *testing.T) {
	mgr, _, _ := newTestManager(t)

	if err := mgr.store.Upsert(registry.Record{ID: "ghost", Version: "0.1.0", InstalledAt: time.Now()}); err != nil {
		t.Fatalf("seed orphan: %v", err)
	}

	candidates, err := mgr.CheckForUpdates()
	if err != nil {
		t.Fatalf("check must tolerate orphans: %v", err)
	}
	for _, cand := range candidates {
		if cand.ID == "ghost" {
			t.Fatal("orphaned record reported as updatable")
		}
	}

	installed, err := mgr.Installed()
	if err != nil {
		t.Fatalf("installed: %v", err)
	}
	for _, fw := range installed {
		if fw.Record.ID == "ghost" {
			t.Fatal("orphaned record included in installed listing")
		}
	}
}

func TestUpdateMissingFileFailsWithoutWrites(t *testing.T) {
	mgr, spy, _ := newTestManager(t)
	spy.reset()

	provider := &scriptedProvider{decisions: []Decision{DecisionProceed}}
	_, err := mgr.Update("adr", provider)

	var notInstalled *NotInstalledError
	if !errors.As(err, &notInstalled) {
		t.Fatalf("expected NotInstalledError, got %v", err)
	}
	if got := spy.writes(); len(got) != 0 {
		t.Fatalf("expected no writes, got %v", got)
	}
}

func TestUpdateCancelLeavesStateUntouched(t *testing.T) {
	mgr, spy, pp := newTestManager(t)
	installAt(t, mgr, "adr", "0.9.0")

	before, _ := os.ReadFile(pp.FrameworkFile("adr"))
	registryBefore, _ := os.ReadFile(pp.RegistryFile)
	spy.reset()

	provider := &scriptedProvider{decisions: []Decision{DecisionCancel}}
	_, err := mgr.Update("adr", provider)

	var cancelled *CancelledError
	if !errors.As(err, &cancelled) {
		t.Fatalf("expected CancelledError, got %v", err)
	}
	if got := spy.writes(); len(got) != 0 {
		t.Fatalf("expected no writes after cancel, got %v", got)
	}

	after, _ := os.ReadFile(pp.FrameworkFile("adr"))
	if string(before) != string(after) {
		t.Fatal("file changed despite cancellation")
	}
	registryAfter, _ := os.ReadFile(pp.RegistryFile)
	if string(registryBefore) != string(registryAfter) {
		t.Fatal("registry changed despite cancellation")
	}
}

func TestUpdateShowDiffReprompts(t *testing.T) {
	mgr, _, _ := newTestManager(t)
	installAt(t, mgr, "adr", "0.9.0")

	provider := &scriptedProvider{decisions: []Decision{DecisionShowDiff, DecisionShowDiff, DecisionProceed}}
	res, err := mgr.Update("adr", provider)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if provider.diffCount != 2 {
		t.Fatalf("expected 2 diff displays, got %d", provider.diffCount)
	}
	if res.FromVersion != "0.9.0" || res.ToVersion != "1.0.0" {
		t.Fatalf("versions: %s -> %s", res.FromVersion, res.ToVersion)
	}

	rec, ok, err := mgr.Metadata("adr")
	if err != nil || !ok {
		t.Fatalf("metadata: ok=%v err=%v", ok, err)
	}
	if rec.Version != "1.0.0" {
		t.Fatalf("registry version not bumped: %s", rec.Version)
	}
}

func TestUpdateCustomizedTakesBackupAndClearsFlag(t *testing.T) {
	mgr, _, pp := newTestManager(t)
	installAt(t, mgr, "adr", "0.9.0")

	// Local edit plus registry bookkeeping.
	writeFixture(t, pp.FrameworkFile("adr"), "locally edited guidance\n")
	if err := mgr.MarkCustomized("adr"); err != nil {
		t.Fatalf("mark customized: %v", err)
	}

	provider := &scriptedProvider{decisions: []Decision{DecisionProceed}}
	res, err := mgr.Update("adr", provider)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if res.BackupPath == "" {
		t.Fatal("customized update must take a backup")
	}

	backup, err := os.ReadFile(res.BackupPath)
	if err != nil {
		t.Fatalf("read backup: %v", err)
	}
	if string(backup) != "locally edited guidance\n" {
		t.Fatalf("backup content mismatch: %q", backup)
	}

	data, _ := os.ReadFile(pp.FrameworkFile("adr"))
	if string(data) != adrContent {
		t.Fatalf("target not updated: %q", data)
	}

	rec, ok, err := mgr.Metadata("adr")
	if err != nil || !ok {
		t.Fatalf("metadata: ok=%v err=%v", ok, err)
	}
	if rec.Customized {
		t.Fatal("customized flag must reset after update")
	}
	if rec.CustomizedAt != nil {
		t.Fatal("customized_at must clear after update")
	}
}

func TestUpdateNotCustomizedSkipsBackup(t *testing.T) {
	mgr, _, pp := newTestManager(t)
	installAt(t, mgr, "adr", "0.9.0")

	provider := &scriptedProvider{decisions: []Decision{DecisionProceed}}
	res, err := mgr.Update("adr", provider)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if res.BackupPath != "" {
		t.Fatalf("unexpected backup: %s", res.BackupPath)
	}

	entries, err := os.ReadDir(pp.FrameworksDir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected only the framework file, got %d entries", len(entries))
	}
}

func TestUpdateAllStopsOnCancellationWithoutRollback(t *testing.T) {
	mgr, _, pp := newTestManager(t)
	installAt(t, mgr, "adr", "0.9.0")
	installAt(t, mgr, "code-review", "1.5.0")

	// First update proceeds, second cancels.
	provider := &scriptedProvider{decisions: []Decision{DecisionProceed, DecisionCancel}}
	results, err := mgr.UpdateAll(provider)

	var cancelled *CancelledError
	if !errors.As(err, &cancelled) {
		t.Fatalf("expected CancelledError, got %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("expected 1 applied update, got %d", len(results))
	}

	// The first update stays applied.
	first, ok, err := mgr.Metadata(results[0].ID)
	if err != nil || !ok {
		t.Fatalf("metadata: ok=%v err=%v", ok, err)
	}
	if first.Version != results[0].ToVersion {
		t.Fatalf("first update rolled back: %s", first.Version)
	}

	data, _ := os.ReadFile(pp.FrameworkFile(results[0].ID))
	if len(data) == 0 {
		t.Fatal("first update's file missing")
	}
}
