package cli

import (
	"github.com/spf13/cobra"
)

func newMarkCustomizedCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mark-customized <id>",
		Short: "Record that a framework's installed content has local edits",
		Args:  cobra.ExactArgs(1),
		RunE:  runMarkCustomized,
	}
	return cmd
}

func runMarkCustomized(cmd *cobra.Command, args []string) error {
	id := args[0]

	ws, err := openWorkspace()
	if err != nil {
		return err
	}
	defer ws.Close()

	if err := ws.mgr.MarkCustomized(id); err != nil {
		return err
	}

	if rec, ok, err := ws.mgr.Metadata(id); err != nil {
		return err
	} else if !ok {
		cmd.Printf("%s has no registry entry; nothing recorded\n", id)
		return nil
	} else if outputJSON {
		return writeJSON(cmd, rec)
	}

	cmd.Printf("%s marked customized\n", id)
	return nil
}
