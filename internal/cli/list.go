package cli

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"guidepost/internal/catalog"
)

func newListCmd() *cobra.Command {
	var (
		searchQuery  string
		categoryName string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List frameworks available in the catalog",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runList(cmd, searchQuery, categoryName)
		},
	}

	cmd.Flags().StringVar(&searchQuery, "search", "", "Filter by literal substring of name, description, or category")
	cmd.Flags().StringVar(&categoryName, "category", "", "Filter by category")

	return cmd
}

func runList(cmd *cobra.Command, searchQuery, categoryName string) error {
	ws, err := openWorkspace()
	if err != nil {
		return err
	}
	defer ws.Close()

	var entries []catalog.Descriptor
	switch {
	case categoryName != "":
		entries, err = ws.mgr.ByCategory(catalog.Category(categoryName))
	default:
		entries, err = ws.mgr.Search(searchQuery)
	}
	if err != nil {
		return err
	}

	if outputJSON {
		return writeJSON(cmd, entries)
	}

	if len(entries) == 0 {
		cmd.Println("No frameworks found.")
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tCATEGORY\tVERSION")
	for _, desc := range entries {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", desc.ID, desc.Name, desc.Category, desc.Version)
	}
	return w.Flush()
}

func writeJSON(cmd *cobra.Command, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	cmd.Println(string(data))
	return nil
}
