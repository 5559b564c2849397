package controller

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	m "github.com/mouse-blink/sqlporter/internal/model"
)

// TUI renders rewrite progress with Bubble Tea and falls back to SimpleUI
// behavior for the table and status output.
type TUI struct {
	*SimpleUI
	out  io.Writer
	prog *tea.Program
	done chan struct{}
}

// NewTUI creates a TUI writing to the command's output.
func NewTUI(cmd *cobra.Command) *TUI {
	return &TUI{
		SimpleUI: NewSimpleUI(cmd),
		out:      cmd.OutOrStdout(),
	}
}

// StartRewrite launches the progress view.
func (t *TUI) StartRewrite(total int) {
	t.done = make(chan struct{})
	t.prog = tea.NewProgram(newRewriteModel(total), tea.WithOutput(t.out))

	go func() {
		_, _ = t.prog.Run()
		close(t.done)
	}()
}

// FileProcessed forwards one file result to the progress view.
func (t *TUI) FileProcessed(path m.Path, modified bool) {
	if t.prog == nil {
		return
	}

	t.prog.Send(fileProcessedMsg{path: path, modified: modified})
}

// FinishRewrite stops the progress view and waits for it to shut down.
func (t *TUI) FinishRewrite() {
	if t.prog == nil {
		return
	}

	t.prog.Send(rewriteDoneMsg{})
	<-t.done
	t.prog = nil
}

type fileProcessedMsg struct {
	path     m.Path
	modified bool
}

type rewriteDoneMsg struct{}

var currentFileStyle = lipgloss.NewStyle().Faint(true)

type rewriteModel struct {
	spinner   spinner.Model
	bar       progress.Model
	total     int
	processed int
	modified  int
	lastPath  m.Path
}

func newRewriteModel(total int) rewriteModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return rewriteModel{
		spinner: sp,
		bar:     progress.New(progress.WithDefaultGradient()),
		total:   total,
	}
}

// Init starts the spinner ticking.
func (rm rewriteModel) Init() tea.Cmd {
	return rm.spinner.Tick
}

// Update advances the model for progress events and animation frames.
func (rm rewriteModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case fileProcessedMsg:
		rm.processed++
		rm.lastPath = msg.path

		if msg.modified {
			rm.modified++
		}

		return rm, rm.bar.SetPercent(rm.percent())
	case rewriteDoneMsg:
		return rm, tea.Quit
	case spinner.TickMsg:
		var cmd tea.Cmd
		rm.spinner, cmd = rm.spinner.Update(msg)

		return rm, cmd
	case progress.FrameMsg:
		updated, cmd := rm.bar.Update(msg)
		rm.bar = updated.(progress.Model)

		return rm, cmd
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return rm, tea.Quit
		}
	}

	return rm, nil
}

// View renders the spinner, progress bar and counters.
func (rm rewriteModel) View() string {
	view := fmt.Sprintf(
		"%s Rewriting models %d/%d (%d modified)\n%s\n",
		rm.spinner.View(),
		rm.processed,
		rm.total,
		rm.modified,
		rm.bar.View(),
	)

	if rm.lastPath != "" {
		view += currentFileStyle.Render(string(rm.lastPath)) + "\n"
	}

	return view
}

func (rm rewriteModel) percent() float64 {
	if rm.total == 0 {
		return 1
	}

	return float64(rm.processed) / float64(rm.total)
}
