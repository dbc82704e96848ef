package cli

import (
	"io"
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// Notifier prints one-line status messages, the terminal counterpart of a
// toast notification.
type Notifier struct {
	w       io.Writer
	success *color.Color
	failure *color.Color
	info    *color.Color
}

// NewNotifier returns a Notifier writing to w. Colour is used only when
// colored is true.
func NewNotifier(w io.Writer, colored bool) *Notifier {
	n := &Notifier{
		w:       w,
		success: color.New(color.FgGreen),
		failure: color.New(color.FgRed),
		info:    color.New(color.FgCyan),
	}
	for _, c := range []*color.Color{n.success, n.failure, n.info} {
		if colored {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return n
}

func (n *Notifier) Success(msg string) { _, _ = n.success.Fprintln(n.w, msg) }
func (n *Notifier) Error(msg string)   { _, _ = n.failure.Fprintln(n.w, msg) }
func (n *Notifier) Info(msg string)    { _, _ = n.info.Fprintln(n.w, msg) }

// FieldError prints an inline validation message under a prompt.
func (n *Notifier) FieldError(msg string) { _, _ = n.failure.Fprintln(n.w, "  ! "+msg) }

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
