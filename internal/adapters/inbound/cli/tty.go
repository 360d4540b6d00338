package cli

import (
	"io"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/mattn/go-isatty"
)

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// waitIndicator is a spinner that only draws on terminals. Stop is safe to
// call more than once.
type waitIndicator struct {
	s *spinner.Spinner
}

func startWaiting(w io.Writer, prefix string) *waitIndicator {
	if !isTerminal(w) {
		return &waitIndicator{}
	}
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(w))
	s.Prefix = prefix
	s.Start()
	return &waitIndicator{s: s}
}

func (wi *waitIndicator) Stop() {
	if wi.s != nil {
		wi.s.Stop()
		wi.s = nil
	}
}
