package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/dmitrijs2005/contactbook/internal/client/services"
	"github.com/dmitrijs2005/contactbook/internal/logging"
)

// App binds a ContactService to a terminal.
type App struct {
	service   services.ContactService
	reader    *bufio.Reader
	out       io.Writer
	notify    *Notifier
	confirmer Confirmer
	log       logging.Logger
	format    string
	loc       *time.Location
}

// NewApp returns an App reading user input from in and writing to out.
// Colour is enabled only when out is a terminal.
func NewApp(svc services.ContactService, in io.Reader, out io.Writer, log logging.Logger) *App {
	reader := bufio.NewReader(in)
	return &App{
		service:   svc,
		reader:    reader,
		out:       out,
		notify:    NewNotifier(out, isTerminal(out)),
		confirmer: NewPromptConfirmer(reader, out),
		log:       log,
		format:    FormatText,
		loc:       time.Local,
	}
}

// Run shows the current list and starts the REPL. It returns when the user
// exits, input ends or ctx is cancelled.
func (a *App) Run(ctx context.Context) {
	fmt.Fprintln(a.out, "Welcome to contactbook (type 'help' for commands)")
	_ = a.List(ctx)
	runREPL(ctx, a, a.reader, a.out)
}
