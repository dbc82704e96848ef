package cli

import (
	"bufio"
	"context"
	"io"
)

// Confirmer asks the user for a yes/no decision. The answer arrives on the
// returned channel, which yields exactly one value.
type Confirmer interface {
	RequestConfirmation(ctx context.Context, message string) <-chan bool
}

// PromptConfirmer asks on the terminal. Only "y" or "yes" confirm.
// It reads from the caller's reader, so the caller must not read again until
// the answer arrives. A context cancelled mid-read leaves that read pending;
// the REPL only cancels on shutdown.
type PromptConfirmer struct {
	reader *bufio.Reader
	w      io.Writer
}

func NewPromptConfirmer(reader *bufio.Reader, w io.Writer) *PromptConfirmer {
	return &PromptConfirmer{reader: reader, w: w}
}

func (p *PromptConfirmer) RequestConfirmation(ctx context.Context, message string) <-chan bool {
	ch := make(chan bool, 1)
	if ctx.Err() != nil {
		ch <- false
		close(ch)
		return ch
	}
	go func() {
		defer close(ch)
		answer, err := GetSimpleText(p.reader, message+" [y/N]", p.w)
		ch <- err == nil && isYes(answer)
	}()
	return ch
}

// AutoConfirmer confirms everything. It backs the --yes flag.
type AutoConfirmer struct{}

func (AutoConfirmer) RequestConfirmation(context.Context, string) <-chan bool {
	ch := make(chan bool, 1)
	ch <- true
	close(ch)
	return ch
}

// awaitConfirmation blocks until c answers. Cancellation counts as "no".
func awaitConfirmation(ctx context.Context, c Confirmer, message string) bool {
	select {
	case ok := <-c.RequestConfirmation(ctx, message):
		return ok
	case <-ctx.Done():
		return false
	}
}
