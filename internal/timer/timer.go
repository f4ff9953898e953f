// Package timer implements the countdown state machine: mode switching,
// start/pause, per-second ticks, and completion notification. It does no
// scheduling of its own; the caller drives Tick from a periodic source and
// uses the generation counter to discard ticks scheduled before the most
// recent state change.
package timer

import (
	"github.com/arjunmw/focal/internal/util"
)

// Notifier receives the one-shot completion event when a countdown reaches
// zero. A failing notifier must not affect timer state; errors are logged
// and swallowed.
type Notifier interface {
	CountdownDone(mode Mode) error
}

// Timer is the live countdown instance. It is not safe for concurrent use;
// the TUI event loop is the only caller.
type Timer struct {
	cfg       Config
	mode      Mode
	remaining int // seconds
	total     int // seconds at countdown start, for progress display
	running   bool
	gen       uint64
	notifier  Notifier
}

// New creates a timer in work mode, idle, loaded with the configured work
// duration. notifier may be nil.
func New(cfg Config, notifier Notifier) *Timer {
	t := &Timer{cfg: cfg, mode: ModeWork, notifier: notifier}
	t.reload()
	return t
}

func (t *Timer) Mode() Mode         { return t.mode }
func (t *Timer) Remaining() int     { return t.remaining }
func (t *Timer) Total() int         { return t.total }
func (t *Timer) Running() bool      { return t.running }
func (t *Timer) Config() Config     { return t.cfg }
func (t *Timer) Generation() uint64 { return t.gen }

// reload sets remaining to the full configured duration for the current mode.
func (t *Timer) reload() {
	t.remaining = t.cfg.Minutes(t.mode) * 60
	t.total = t.remaining
}

// SwitchMode stops any running countdown and loads the new mode's full
// configured duration. The generation bump invalidates ticks scheduled for
// the previous countdown before the new state is applied.
func (t *Timer) SwitchMode(mode Mode) {
	t.gen++
	t.mode = mode
	t.running = false
	t.reload()
}

// ToggleRun flips the running flag and reports the new value. Starting with
// an exhausted countdown reloads the full duration first, so a completed
// countdown can never immediately re-fire its completion event.
func (t *Timer) ToggleRun() bool {
	t.gen++
	if t.running {
		t.running = false
		return false
	}
	if t.remaining == 0 {
		t.reload()
	}
	t.running = true
	return true
}

// Reset stops the countdown and restores the full configured duration for
// the current mode. Idempotent.
func (t *Timer) Reset() {
	t.gen++
	t.running = false
	t.reload()
}

// Tick applies one elapsed second. gen must match the timer's current
// generation; a stale or idle tick is a no-op. Returns true when this tick
// completed the countdown, in which case the timer is left idle at zero and
// the notifier has been invoked exactly once with the finished mode.
func (t *Timer) Tick(gen uint64) bool {
	if gen != t.gen || !t.running {
		return false
	}
	if t.remaining > 0 {
		t.remaining--
	}
	if t.remaining > 0 {
		return false
	}
	t.running = false
	t.gen++
	if t.notifier != nil {
		util.LogError("completion notify", t.notifier.CountdownDone(t.mode))
	}
	return true
}

// SetMinutes updates the configured duration for a mode, clamped to its
// valid range, and returns the applied value. An in-progress countdown keeps
// its current remaining time until the next reset or mode switch; an idle
// timer sitting at a full countdown picks up the new duration immediately.
func (t *Timer) SetMinutes(mode Mode, minutes int) int {
	applied := t.cfg.SetMinutes(mode, minutes)
	if mode == t.mode && !t.running && t.remaining == t.total {
		t.reload()
	}
	return applied
}
