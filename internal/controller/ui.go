// Package controller provides output adapters for displaying scan and
// rewrite results.
package controller

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	m "github.com/mouse-blink/sqlporter/internal/model"
)

// UI defines the interface for reporting workflow progress and results.
// Implementations can use different output methods (plain text, TUI).
type UI interface {
	Infof(format string, args ...any)
	Successf(format string, args ...any)
	DisplayScan(result m.ScanResult)
	DisplayModified(files []m.Path, dryRun bool)
	StartRewrite(total int)
	FileProcessed(path m.Path, modified bool)
	FinishRewrite()
}

// NewUI creates a UI based on whether TTY mode is enabled. When useTTY is
// true it returns a Bubble Tea progress view, otherwise plain text.
func NewUI(cmd *cobra.Command, useTTY bool) UI {
	if useTTY {
		return NewTUI(cmd)
	}

	return NewSimpleUI(cmd)
}

// IsTTY checks if the given writer is an interactive terminal. Returns
// false if the output is redirected to a file or pipe.
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
