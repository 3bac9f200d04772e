package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"guidepost/internal/framework"
	"guidepost/internal/tui"
)

// tuiProvider answers update prompts with a bubbletea single-select menu.
type tuiProvider struct {
	out io.Writer
}

func (p tuiProvider) Decide(prompt framework.Prompt) (framework.Decision, error) {
	title := fmt.Sprintf("Update %s: %s -> %s", prompt.Name, prompt.CurrentVersion, prompt.LatestVersion)

	detail := ""
	proceedLabel := "Proceed with update"
	if prompt.Customized {
		detail = "This framework has local edits. Updating backs them up, then overwrites them."
		proceedLabel = "Back up local edits and update"
	}

	choices := []tui.Choice{
		{Label: "Show differences"},
		{Label: proceedLabel, Warn: prompt.Customized},
		{Label: "Cancel"},
	}

	picked, err := tui.Choose(p.out, title, detail, choices)
	if err != nil {
		if err == tui.ErrChoiceAborted {
			return framework.DecisionCancel, nil
		}
		return framework.DecisionCancel, err
	}

	switch picked {
	case 0:
		return framework.DecisionShowDiff, nil
	case 1:
		return framework.DecisionProceed, nil
	default:
		return framework.DecisionCancel, nil
	}
}

func (p tuiProvider) ShowDiff(cmp framework.Comparison) error {
	tui.WriteComparison(p.out, cmp.ID, cmp.Installed, cmp.Canonical)
	return nil
}

// plainProvider reads single-letter answers from standard input, for
// non-tty runs.
type plainProvider struct {
	in  *bufio.Reader
	out io.Writer
}

func newPlainProvider(in io.Reader, out io.Writer) plainProvider {
	return plainProvider{in: bufio.NewReader(in), out: out}
}

func (p plainProvider) Decide(prompt framework.Prompt) (framework.Decision, error) {
	fmt.Fprintf(p.out, "Update %s: %s -> %s\n", prompt.Name, prompt.CurrentVersion, prompt.LatestVersion)
	if prompt.Customized {
		fmt.Fprintln(p.out, "Warning: local edits detected. Proceeding backs them up, then overwrites them.")
	}
	fmt.Fprint(p.out, "[d]iff / [p]roceed / [c]ancel: ")

	line, err := p.in.ReadString('\n')
	if err != nil && line == "" {
		return framework.DecisionCancel, nil
	}

	switch strings.ToLower(strings.TrimSpace(line)) {
	case "d", "diff":
		return framework.DecisionShowDiff, nil
	case "p", "proceed", "y", "yes":
		return framework.DecisionProceed, nil
	default:
		return framework.DecisionCancel, nil
	}
}

func (p plainProvider) ShowDiff(cmp framework.Comparison) error {
	tui.WriteComparison(p.out, cmp.ID, cmp.Installed, cmp.Canonical)
	return nil
}

// autoProvider proceeds without prompting, for --yes runs.
type autoProvider struct{}

func (autoProvider) Decide(framework.Prompt) (framework.Decision, error) {
	return framework.DecisionProceed, nil
}

func (autoProvider) ShowDiff(framework.Comparison) error { return nil }
