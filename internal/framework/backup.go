package framework

import "fmt"

// backupTimeFormat is sortable and contains no filesystem-hostile characters.
const backupTimeFormat = "20060102-150405"

// Backup copies the file at path to a timestamped sibling and returns the
// new path. The original is never deleted; restoring is a manual copy back.
// Two backups taken in the same second collide at the same path, in which
// case the later one wins; callers can simply re-invoke.
func (m *Manager) Backup(path string) (string, error) {
	backupPath := fmt.Sprintf("%s.backup-%s", path, m.now().Format(backupTimeFormat))
	if err := m.adapter.Copy(path, backupPath); err != nil {
		return "", fmt.Errorf("backup %s: %w", path, err)
	}
	m.logger.Printf("backup created: %s", backupPath)
	return backupPath, nil
}
