package database

import (
	"context"

	"github.com/arjunmw/focal/internal/timer"
)

// SettingsStore defines the settings persistence operations the TUI uses.
type SettingsStore interface {
	LoadTimerConfig(ctx context.Context, base timer.Config) timer.Config
	SaveMinutes(ctx context.Context, mode timer.Mode, minutes int) error
	Muted(ctx context.Context) bool
	SetMuted(ctx context.Context, muted bool) error
	Premium(ctx context.Context) bool
	SetPremium(ctx context.Context, premium bool) error
	Theme(ctx context.Context) (string, bool)
	SetTheme(ctx context.Context, name string) error
}

// SessionStore defines completed-session history operations.
type SessionStore interface {
	AddSession(ctx context.Context, mode timer.Mode, minutes int) error
	RecentSessions(ctx context.Context, limit int) ([]Session, error)
	ModeTotals(ctx context.Context) ([]ModeTotal, error)
}

// Store combines all repository interfaces.
//
//go:generate mockgen -source=interface.go -destination=../tui/mock_store_test.go -package=tui
type Store interface {
	SettingsStore
	SessionStore
}

var _ Store = (*Database)(nil)
