package tui

import "github.com/charmbracelet/lipgloss"

var (
	// HeaderStyle styles column header rows and prompt titles.
	HeaderStyle = lipgloss.NewStyle().Bold(true)

	// WarnStyle flags customized frameworks and destructive choices.
	WarnStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))

	// GoodStyle marks up-to-date and success states.
	GoodStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))

	// UpdateStyle marks frameworks with a pending update.
	UpdateStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("4"))

	// ErrStyle marks failures.
	ErrStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))

	// FaintStyle de-emphasizes secondary text.
	FaintStyle = lipgloss.NewStyle().Faint(true)

	cursorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("5")).Bold(true)
	selectedStyle = lipgloss.NewStyle().Bold(true)

	// DiffLocalHeader and DiffCatalogHeader label the two panes of a
	// side-by-side content comparison.
	DiffLocalHeader   = WarnStyle.Bold(true)
	DiffCatalogHeader = UpdateStyle.Bold(true)
)
