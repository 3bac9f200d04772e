package tui

import (
	"fmt"
	"io"
	"strings"
)

// WriteComparison renders the installed and canonical texts one after the
// other with labeled dividers. The lifecycle core supplies both full texts;
// no line-level patch is computed.
func WriteComparison(out io.Writer, id, installed, canonical string) {
	divider := FaintStyle.Render(strings.Repeat("─", 60))

	fmt.Fprintln(out, divider)
	fmt.Fprintln(out, DiffLocalHeader.Render(fmt.Sprintf("── installed %s (local copy)", id)))
	fmt.Fprintln(out, divider)
	fmt.Fprint(out, ensureTrailingNewline(installed))

	fmt.Fprintln(out, divider)
	fmt.Fprintln(out, DiffCatalogHeader.Render(fmt.Sprintf("── catalog %s (canonical)", id)))
	fmt.Fprintln(out, divider)
	fmt.Fprint(out, ensureTrailingNewline(canonical))
	fmt.Fprintln(out, divider)
}

func ensureTrailingNewline(s string) string {
	if s == "" || strings.HasSuffix(s, "\n") {
		return s
	}
	return s + "\n"
}
