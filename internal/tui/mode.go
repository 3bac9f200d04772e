package tui

import (
	"io"
	"os"
	"runtime"
	"strings"
)

// OutputMode describes how interactive prompts should be rendered.
type OutputMode int

const (
	// ModeTUI uses bubbletea for interactive prompts.
	ModeTUI OutputMode = iota
	// ModePlain reads single-letter answers from standard input.
	ModePlain
	// ModeJSON writes structured JSON output; prompting is unavailable.
	ModeJSON
)

// DetectMode determines the appropriate output mode for the given writer.
func DetectMode(out io.Writer, plain, jsonOutput bool) OutputMode {
	if jsonOutput {
		return ModeJSON
	}
	if plain {
		return ModePlain
	}
	file, ok := out.(*os.File)
	if !ok {
		return ModePlain
	}
	info, err := file.Stat()
	if err != nil {
		return ModePlain
	}
	if info.Mode()&os.ModeCharDevice == 0 {
		return ModePlain
	}
	if runtime.GOOS != "windows" {
		term := os.Getenv("TERM")
		if term == "" || strings.EqualFold(term, "dumb") {
			return ModePlain
		}
	}
	return ModeTUI
}
