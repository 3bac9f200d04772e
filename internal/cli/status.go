package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"guidepost/internal/framework"
	"guidepost/internal/tui"
)

func newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show installed frameworks and pending updates",
		RunE:  runStatus,
	}
	return cmd
}

type statusRow struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Installed  string `json:"installed_version"`
	Latest     string `json:"latest_version"`
	Customized bool   `json:"customized"`
	State      string `json:"state"`
}

func runStatus(cmd *cobra.Command, _ []string) error {
	ws, err := openWorkspace()
	if err != nil {
		return err
	}
	defer ws.Close()

	installed, err := ws.mgr.Installed()
	if err != nil {
		return err
	}

	candidates, err := ws.mgr.CheckForUpdates()
	if err != nil {
		return err
	}
	pending := make(map[string]framework.UpdateCandidate, len(candidates))
	for _, cand := range candidates {
		pending[cand.ID] = cand
	}

	rows := make([]statusRow, 0, len(installed))
	for _, fw := range installed {
		row := statusRow{
			ID:         fw.Record.ID,
			Name:       fw.Descriptor.Name,
			Installed:  fw.Record.Version,
			Latest:     fw.Descriptor.Version,
			Customized: fw.Record.Customized,
			State:      "up to date",
		}
		if _, ok := pending[fw.Record.ID]; ok {
			row.State = "update available"
		}
		rows = append(rows, row)
	}

	if outputJSON {
		return writeJSON(cmd, rows)
	}

	if len(rows) == 0 {
		cmd.Println("No frameworks installed.")
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tINSTALLED\tLATEST\tSTATE")
	for _, row := range rows {
		state := row.State
		if !plainOutput {
			state = styleState(row.State)
		}
		if row.Customized {
			state += " (customized)"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", row.ID, row.Name, row.Installed, row.Latest, state)
	}
	return w.Flush()
}

func styleState(state string) string {
	switch state {
	case "up to date":
		return tui.GoodStyle.Render(state)
	case "update available":
		return tui.UpdateStyle.Render(state)
	default:
		return state
	}
}
