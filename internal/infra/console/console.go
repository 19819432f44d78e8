// Package console prints the installer's user-facing notices.
package console

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/runoshun/install-deps/internal/domain"
)

// Ensure Printer implements domain.Console interface.
var _ domain.Console = (*Printer)(nil)

// Printer writes notices to an output stream. Colors are applied only when
// the stream is a terminal, so redirected output carries the bare messages.
type Printer struct {
	out     io.Writer
	running lipgloss.Style
	failed  lipgloss.Style
	done    lipgloss.Style
}

// New creates a Printer bound to out.
func New(out io.Writer) *Printer {
	r := lipgloss.NewRenderer(out)
	return &Printer{
		out:     out,
		running: r.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		failed:  r.NewStyle().Bold(true).Foreground(lipgloss.Color("9")),
		done:    r.NewStyle().Bold(true).Foreground(lipgloss.Color("10")),
	}
}

// Running announces an install command about to start in dir.
func (p *Printer) Running(command, dir string) {
	_, _ = fmt.Fprintf(p.out, "\n%s\n", p.running.Render(domain.RunningMessage(command, dir)))
}

// NotFound reports a missing target directory.
func (p *Printer) NotFound(name string) {
	_, _ = fmt.Fprintln(p.out, domain.NotFoundMessage(name))
}

// Failed reports an install command that exited non-zero.
func (p *Printer) Failed(command string) {
	_, _ = fmt.Fprintln(p.out, p.failed.Render(domain.FailedMessage(command)))
}

// Done prints the final confirmation.
func (p *Printer) Done() {
	_, _ = fmt.Fprintf(p.out, "\n%s\n", p.done.Render(domain.DoneMessage))
}
