package tui

import (
	"fmt"
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// Choice is one selectable option in a prompt.
type Choice struct {
	Label string
	// Warn renders the option in the warning style.
	Warn bool
}

// ErrChoiceAborted is returned when the user quits the prompt (q, esc,
// ctrl+c) instead of picking an option.
var ErrChoiceAborted = fmt.Errorf("choice aborted")

// chooseModel is a minimal single-select bubbletea model.
type chooseModel struct {
	title   string
	detail  string
	choices []Choice
	cursor  int
	picked  int
	aborted bool
}

func (m chooseModel) Init() tea.Cmd {
	return nil
}

func (m chooseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "ctrl+c", "q", "esc":
		m.aborted = true
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.choices)-1 {
			m.cursor++
		}
	case "enter", " ":
		m.picked = m.cursor
		return m, tea.Quit
	}
	return m, nil
}

func (m chooseModel) View() string {
	var b strings.Builder
	b.WriteString(HeaderStyle.Render(m.title))
	b.WriteString("\n")
	if m.detail != "" {
		b.WriteString(FaintStyle.Render(m.detail))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	for i, choice := range m.choices {
		cursor := "  "
		label := choice.Label
		if choice.Warn {
			label = WarnStyle.Render(label)
		}
		if i == m.cursor {
			cursor = cursorStyle.Render("> ")
			label = selectedStyle.Render(choice.Label)
		}
		fmt.Fprintf(&b, "%s%s\n", cursor, label)
	}

	b.WriteString("\n")
	b.WriteString(FaintStyle.Render("↑/↓ move · enter select · q cancel"))
	b.WriteString("\n")
	return b.String()
}

// Choose displays a single-select prompt and returns the index of the picked
// option.
func Choose(out io.Writer, title, detail string, choices []Choice) (int, error) {
	model := chooseModel{title: title, detail: detail, choices: choices, picked: -1}
	p := tea.NewProgram(model, tea.WithOutput(out))

	final, err := p.Run()
	if err != nil {
		return -1, err
	}

	m, ok := final.(chooseModel)
	if !ok || m.aborted || m.picked < 0 {
		return -1, ErrChoiceAborted
	}
	return m.picked, nil
}
