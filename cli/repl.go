package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/kestrelsec/cybuddy/dispatch"
	"github.com/kestrelsec/cybuddy/transcript"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("81"))
	commandStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("179"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("114"))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	dimStyle     = lipgloss.NewStyle().Faint(true)
	accentStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("141"))
	promptStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("41"))
)

// RenderLine styles one transcript line for plain terminal output
func RenderLine(line transcript.Line) string {
	switch line.Kind {
	case transcript.KindTitle:
		return titleStyle.Render(line.Text)
	case transcript.KindCommand:
		return commandStyle.Render(line.Text)
	case transcript.KindSuccess:
		return successStyle.Render(line.Text)
	case transcript.KindWarning:
		return warningStyle.Render(line.Text)
	case transcript.KindError:
		return errorStyle.Render(line.Text)
	case transcript.KindDim:
		return dimStyle.Render(line.Text)
	case transcript.KindAccent:
		return accentStyle.Render(line.Text)
	}
	return line.Text
}

// PrintLines writes styled lines to w
func PrintLines(w io.Writer, lines []transcript.Line) {
	for _, line := range lines {
		fmt.Fprintln(w, RenderLine(line))
	}
}

// HistoryRecorder saves submitted lines; satisfied by history.Store
type HistoryRecorder interface {
	Add(command string) error
}

// REPL is the line-mode fallback loop used when the terminal cannot
// host the full-screen session
type REPL struct {
	disp    *dispatch.Dispatcher
	history HistoryRecorder
	in      io.Reader
	out     io.Writer
}

func NewREPL(disp *dispatch.Dispatcher, history HistoryRecorder, in io.Reader, out io.Writer) *REPL {
	return &REPL{disp: disp, history: history, in: in, out: out}
}

// Run reads lines until EOF or an exit command. Returns the process
// exit code.
func (r *REPL) Run(ctx context.Context, reason string) int {
	if reason != "" {
		fmt.Fprintln(r.out, dimStyle.Render("line mode: "+reason))
	}
	PrintLines(r.out, []transcript.Line{
		{Kind: transcript.KindTitle, Text: "cybuddy :: cybersecurity study assistant"},
		{Kind: transcript.KindDim, Text: "type a question or /help for commands, exit to leave"},
	})

	scanner := bufio.NewScanner(r.in)
	for {
		fmt.Fprint(r.out, promptStyle.Render("> "))
		if !scanner.Scan() {
			fmt.Fprintln(r.out)
			return 0
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if r.history != nil {
			r.history.Add(line)
		}

		res := r.disp.Execute(line)
		PrintLines(r.out, res.Lines)
		if res.Async != nil {
			// Line mode has no event loop; wait for the answer inline
			PrintLines(r.out, res.Async(ctx))
		}
		if res.IsExit {
			return 0
		}
	}
}
