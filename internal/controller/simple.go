package controller

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/charmbracelet/lipgloss"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "github.com/mouse-blink/sqlporter/internal/model"
)

var (
	infoStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	successStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
)

// SimpleUI implements UI using cobra Command's output writer.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// Infof prints a styled status line.
func (s *SimpleUI) Infof(format string, args ...any) {
	s.printf("%s\n", infoStyle.Render(fmt.Sprintf(format, args...)))
}

// Successf prints a styled success line.
func (s *SimpleUI) Successf(format string, args ...any) {
	s.printf("%s %s\n", successStyle.Render("✓"), fmt.Sprintf(format, args...))
}

// DisplayScan renders the non-portable function tally as a table.
func (s *SimpleUI) DisplayScan(result m.ScanResult) {
	names := make([]string, 0, len(result))
	for name := range result {
		names = append(names, name)
	}

	sort.Strings(names)

	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Function", "Count"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT})

	total := 0

	for _, name := range names {
		table.Append([]string{name, fmt.Sprintf("%d", result[name])})
		total += result[name]
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Functions %d", len(names)),
		fmt.Sprintf("%d", total),
	})

	table.Render()
	s.printf("\n%s", tableBuffer.String())
}

// DisplayModified lists the files a rewrite changed or would change.
func (s *SimpleUI) DisplayModified(files []m.Path, dryRun bool) {
	for _, path := range files {
		s.printf("  %s\n", path)
	}

	if dryRun {
		s.printf("\nWould modify %d file(s)\n", len(files))
		return
	}

	s.Successf("Modified %d file(s)", len(files))
}

// StartRewrite announces the beginning of a rewrite pass.
func (s *SimpleUI) StartRewrite(total int) {
	s.Infof("Rewriting %d file(s)...", total)
}

// FileProcessed is a no-op for plain output; results are listed at the end.
func (s *SimpleUI) FileProcessed(_ m.Path, _ bool) {}

// FinishRewrite is a no-op for plain output.
func (s *SimpleUI) FinishRewrite() {}

func (s *SimpleUI) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
