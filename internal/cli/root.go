package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"guidepost/internal/framework"
)

var (
	projectDir  string
	outputJSON  bool
	plainOutput bool
)

// Execute runs the root cobra command. A user cancellation exits non-zero
// but is reported as a declined outcome, not an error.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		var cancelled *framework.CancelledError
		if errors.As(err, &cancelled) {
			fmt.Fprintln(os.Stderr, "cancelled: no changes made")
		} else {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		}
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "guidepost",
		Short: "Manage versioned guidance frameworks in a project workspace",
	}

	cmd.PersistentFlags().StringVar(&projectDir, "project", "", "Path to workspace directory")
	cmd.PersistentFlags().BoolVar(&outputJSON, "json", false, "Output machine-readable JSON")
	cmd.PersistentFlags().BoolVar(&plainOutput, "plain", false, "Disable interactive prompts and styling")

	cmd.AddCommand(newInitCmd())
	cmd.AddCommand(newListCmd())
	cmd.AddCommand(newShowCmd())
	cmd.AddCommand(newStatusCmd())
	cmd.AddCommand(newInstallCmd())
	cmd.AddCommand(newUpdateCmd())
	cmd.AddCommand(newMarkCustomizedCmd())

	return cmd
}
