package cli

import (
	"github.com/spf13/cobra"

	"guidepost/internal/framework"
)

func newInstallCmd() *cobra.Command {
	var opts framework.InstallOptions

	cmd := &cobra.Command{
		Use:   "install <id>",
		Short: "Install a framework into the workspace",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInstall(cmd, args[0], opts)
		},
	}

	cmd.Flags().BoolVar(&opts.Overwrite, "overwrite", false, "Replace an existing file")
	cmd.Flags().BoolVar(&opts.Merge, "merge", false, "Concatenate existing and new content with conflict markers")
	cmd.Flags().BoolVar(&opts.Backup, "backup", false, "Back up the existing file before writing")

	return cmd
}

func runInstall(cmd *cobra.Command, id string, opts framework.InstallOptions) error {
	ws, err := openWorkspace()
	if err != nil {
		return err
	}
	defer ws.Close()

	result, err := ws.mgr.Install(id, opts)
	if err != nil {
		return err
	}

	if outputJSON {
		return writeJSON(cmd, result)
	}

	cmd.Printf("%s %s@%s -> %s\n", result.Action, result.ID, result.Version, result.Path)
	if result.BackupPath != "" {
		cmd.Printf("  backup: %s\n", result.BackupPath)
	}
	return nil
}
