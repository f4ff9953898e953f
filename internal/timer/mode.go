package timer

import "fmt"

// Mode identifies which countdown phase the timer is in.
type Mode int

const (
	ModeWork Mode = iota
	ModeBreak
	ModeExtra
)

// Modes lists all modes in display order.
func Modes() []Mode {
	return []Mode{ModeWork, ModeBreak, ModeExtra}
}

func (m Mode) String() string {
	switch m {
	case ModeWork:
		return "work"
	case ModeBreak:
		return "break"
	case ModeExtra:
		return "extra"
	}
	return fmt.Sprintf("mode(%d)", int(m))
}

// Label returns the display name for the mode.
func (m Mode) Label() string {
	switch m {
	case ModeWork:
		return "Focus"
	case ModeBreak:
		return "Break"
	case ModeExtra:
		return "Extra Time"
	}
	return "Unknown"
}

// ParseMode maps a stored mode name back to its Mode value.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "work":
		return ModeWork, nil
	case "break":
		return ModeBreak, nil
	case "extra":
		return ModeExtra, nil
	}
	return ModeWork, fmt.Errorf("unknown timer mode %q", s)
}

// MinuteRange holds the valid configured duration bounds for a mode.
type MinuteRange struct {
	Min int
	Max int
}

// Range returns the valid duration range, in minutes, for the mode.
func (m Mode) Range() MinuteRange {
	switch m {
	case ModeBreak:
		return MinuteRange{Min: 1, Max: 30}
	case ModeExtra:
		return MinuteRange{Min: 1, Max: 15}
	default:
		return MinuteRange{Min: 1, Max: 60}
	}
}
