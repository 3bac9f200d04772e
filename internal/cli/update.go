package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"guidepost/internal/framework"
	"guidepost/internal/tui"
)

func newUpdateCmd() *cobra.Command {
	var (
		updateAll bool
		assumeYes bool
		checkOnly bool
	)

	cmd := &cobra.Command{
		Use:   "update [<id>]",
		Short: "Update installed frameworks to their catalog versions",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUpdate(cmd, args, updateAll, assumeYes, checkOnly)
		},
	}

	cmd.Flags().BoolVar(&updateAll, "all", false, "Update every framework with a pending update")
	cmd.Flags().BoolVar(&assumeYes, "yes", false, "Proceed without prompting")
	cmd.Flags().BoolVar(&checkOnly, "check", false, "Only list pending updates")

	return cmd
}

func runUpdate(cmd *cobra.Command, args []string, updateAll, assumeYes, checkOnly bool) error {
	ws, err := openWorkspace()
	if err != nil {
		return err
	}
	defer ws.Close()

	if checkOnly {
		return runUpdateCheck(cmd, ws)
	}

	if updateAll == (len(args) > 0) {
		return fmt.Errorf("pass exactly one of <id> or --all")
	}

	provider, err := chooseProvider(cmd, assumeYes)
	if err != nil {
		return err
	}

	if updateAll {
		results, err := ws.mgr.UpdateAll(provider)
		for _, res := range results {
			printUpdateResult(cmd, res)
		}
		if err != nil {
			return err
		}
		if outputJSON {
			return writeJSON(cmd, results)
		}
		if len(results) == 0 {
			cmd.Println("Everything is up to date.")
		}
		return nil
	}

	res, err := ws.mgr.Update(args[0], provider)
	if err != nil {
		return err
	}
	if outputJSON {
		return writeJSON(cmd, res)
	}
	printUpdateResult(cmd, res)
	return nil
}

func runUpdateCheck(cmd *cobra.Command, ws *workspace) error {
	candidates, err := ws.mgr.CheckForUpdates()
	if err != nil {
		return err
	}

	if outputJSON {
		return writeJSON(cmd, candidates)
	}

	if len(candidates) == 0 {
		cmd.Println("Everything is up to date.")
		return nil
	}

	for _, cand := range candidates {
		cmd.Printf("%s: %s -> %s\n", cand.ID, cand.CurrentVersion, cand.LatestVersion)
		for _, change := range cand.Changes {
			cmd.Printf("  %s\n", change)
		}
	}
	return nil
}

func chooseProvider(cmd *cobra.Command, assumeYes bool) (framework.DecisionProvider, error) {
	if assumeYes {
		return autoProvider{}, nil
	}

	switch tui.DetectMode(cmd.OutOrStdout(), plainOutput, outputJSON) {
	case tui.ModeTUI:
		return tuiProvider{out: cmd.OutOrStdout()}, nil
	case tui.ModePlain:
		return newPlainProvider(cmd.InOrStdin(), cmd.OutOrStdout()), nil
	default:
		return nil, fmt.Errorf("interactive update is unavailable with --json; pass --yes")
	}
}

func printUpdateResult(cmd *cobra.Command, res framework.UpdateResult) {
	if outputJSON {
		return
	}
	cmd.Printf("updated %s: %s -> %s\n", res.ID, res.FromVersion, res.ToVersion)
	if res.BackupPath != "" {
		cmd.Printf("  backup: %s\n", res.BackupPath)
	}
}
