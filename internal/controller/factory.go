package controller

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

// Mode selects how tracing progress is rendered.
type Mode string

const (
	// ModeAuto picks the TUI when the command writes to a terminal.
	ModeAuto Mode = "auto"
	// ModePlain always prints plain stage lines and tables.
	ModePlain Mode = "plain"
	// ModeTUI always runs the Bubble Tea interface.
	ModeTUI Mode = "tui"
)

// ModeEnv names the environment variable that overrides terminal detection.
const ModeEnv = "PEPTRACE_UI"

// ParseMode reads a mode name. An empty name means ModeAuto.
func ParseMode(name string) (Mode, error) {
	switch mode := Mode(strings.ToLower(strings.TrimSpace(name))); mode {
	case "":
		return ModeAuto, nil
	case ModeAuto, ModePlain, ModeTUI:
		return mode, nil
	default:
		return ModeAuto, fmt.Errorf("unknown UI mode %q, want auto, plain or tui", name)
	}
}

// NewUI creates the UI for a trace, score or view run.
// ModeTUI returns a TUI (Bubble Tea), ModePlain a SimpleUI (plain text).
// ModeAuto chooses the TUI only when the command output is a terminal, so
// piped runs and CI logs get plain lines.
func NewUI(cmd *cobra.Command, mode Mode) UI {
	useTTY := mode == ModeTUI || (mode == ModeAuto && IsTTY(cmd.OutOrStdout()))
	if useTTY {
		return NewTUI(cmd.OutOrStdout())
	}

	return NewSimpleUI(cmd)
}

// IsTTY checks if the given writer is a terminal (TTY).
// Returns true for character devices.
// Returns false if the output is redirected to a file, pipe or buffer.
func IsTTY(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}

	fileInfo, err := file.Stat()
	if err != nil {
		return false
	}

	return (fileInfo.Mode() & os.ModeCharDevice) != 0
}
