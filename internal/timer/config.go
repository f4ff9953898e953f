package timer

import (
	"time"

	"github.com/arjunmw/focal/internal/util"
)

// Default configured durations, in minutes.
const (
	DefaultWorkMinutes  = 25
	DefaultBreakMinutes = 5
	DefaultExtraMinutes = 5
)

// Config maps each mode to its configured countdown duration in minutes.
// The zero value is not usable; construct with DefaultConfig.
type Config struct {
	minutes [3]int
}

func DefaultConfig() Config {
	var c Config
	c.minutes[ModeWork] = DefaultWorkMinutes
	c.minutes[ModeBreak] = DefaultBreakMinutes
	c.minutes[ModeExtra] = DefaultExtraMinutes
	return c
}

// Minutes returns the configured duration for the mode.
func (c Config) Minutes(m Mode) int {
	return c.minutes[m]
}

// Duration returns the configured duration as a time.Duration.
func (c Config) Duration(m Mode) time.Duration {
	return time.Duration(c.minutes[m]) * time.Minute
}

// SetMinutes stores a new duration for the mode, clamped to the mode's valid
// range, and returns the value actually applied. A zero or negative duration
// can never result.
func (c *Config) SetMinutes(m Mode, minutes int) int {
	r := m.Range()
	applied := util.Clamp(minutes, r.Min, r.Max)
	c.minutes[m] = applied
	return applied
}
