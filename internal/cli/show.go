package cli

import (
	"strings"
	"time"

	"github.com/spf13/cobra"

	"guidepost/internal/framework"
)

func newShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show one framework's catalog entry and installed state",
		Args:  cobra.ExactArgs(1),
		RunE:  runShow,
	}
	return cmd
}

type showOutput struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Description  string     `json:"description"`
	Category     string     `json:"category"`
	Version      string     `json:"version"`
	Dependencies []string   `json:"dependencies,omitempty"`
	Installed    bool       `json:"installed"`
	Path         string     `json:"path,omitempty"`
	InstalledVer string     `json:"installed_version,omitempty"`
	InstalledAt  *time.Time `json:"installed_at,omitempty"`
	Customized   bool       `json:"customized"`
	CustomizedAt *time.Time `json:"customized_at,omitempty"`
}

func runShow(cmd *cobra.Command, args []string) error {
	id := args[0]

	ws, err := openWorkspace()
	if err != nil {
		return err
	}
	defer ws.Close()

	desc, ok, err := ws.mgr.Get(id)
	if err != nil {
		return err
	}
	if !ok {
		return &framework.NotFoundError{ID: id}
	}

	installed, err := ws.mgr.IsInstalled(id)
	if err != nil {
		return err
	}

	out := showOutput{
		ID:           desc.ID,
		Name:         desc.Name,
		Description:  desc.Description,
		Category:     string(desc.Category),
		Version:      desc.Version,
		Dependencies: desc.Dependencies,
		Installed:    installed,
	}
	if installed {
		out.Path = ws.mgr.TargetPath(id)
	}

	if rec, found, err := ws.mgr.Metadata(id); err != nil {
		return err
	} else if found {
		out.InstalledVer = rec.Version
		installedAt := rec.InstalledAt
		out.InstalledAt = &installedAt
		out.Customized = rec.Customized
		out.CustomizedAt = rec.CustomizedAt
	}

	if outputJSON {
		return writeJSON(cmd, out)
	}

	cmd.Printf("%s (%s)\n", out.Name, out.ID)
	cmd.Printf("  category:    %s\n", out.Category)
	cmd.Printf("  version:     %s\n", out.Version)
	if out.Description != "" {
		cmd.Printf("  description: %s\n", out.Description)
	}
	if len(out.Dependencies) > 0 {
		cmd.Printf("  depends on:  %s\n", strings.Join(out.Dependencies, ", "))
	}
	if !out.Installed {
		cmd.Println("  installed:   no")
		return nil
	}
	cmd.Printf("  installed:   yes (%s)\n", out.Path)
	if out.InstalledVer != "" {
		cmd.Printf("  local ver:   %s\n", out.InstalledVer)
	}
	if out.Customized {
		cmd.Println("  customized:  yes")
	}
	return nil
}
