package tui

import (
	"io"

	"github.com/arjunmw/focal/internal/timer"
)

// BellNotifier is the notification sink for completion events: it rings the
// terminal bell unless muted. The mute flag lives here, outside the timer
// state machine.
type BellNotifier struct {
	out   io.Writer
	muted bool
}

func NewBellNotifier(out io.Writer) *BellNotifier {
	return &BellNotifier{out: out}
}

func (n *BellNotifier) SetMuted(muted bool) { n.muted = muted }
func (n *BellNotifier) Muted() bool         { return n.muted }

// CountdownDone rings the bell for the finished mode. Errors are reported to
// the caller, which swallows them; an unplayable alert never affects the
// timer.
func (n *BellNotifier) CountdownDone(timer.Mode) error {
	if n.muted || n.out == nil {
		return nil
	}
	_, err := io.WriteString(n.out, "\a")
	return err
}
