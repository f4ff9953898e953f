package database

import (
	"context"
	"time"

	"github.com/arjunmw/focal/internal/timer"
)

// Session is one completed countdown.
type Session struct {
	ID          int64
	Mode        string
	Minutes     int
	CompletedAt time.Time
}

// ModeTotal aggregates completed sessions per mode.
type ModeTotal struct {
	Mode         string
	Count        int
	TotalMinutes int
}

// AddSession records a completed countdown.
func (d *Database) AddSession(ctx context.Context, mode timer.Mode, minutes int) error {
	_, err := d.DB.ExecContext(ctx,
		"INSERT INTO sessions (mode, minutes) VALUES (?, ?)", mode.String(), minutes)
	return wrapSessionErr("add", err)
}

// RecentSessions returns up to limit completed sessions, newest first.
func (d *Database) RecentSessions(ctx context.Context, limit int) ([]Session, error) {
	rows, err := d.DB.QueryContext(ctx,
		"SELECT id, mode, minutes, completed_at FROM sessions ORDER BY completed_at DESC, id DESC LIMIT ?", limit)
	if err != nil {
		return nil, wrapSessionErr("list", err)
	}
	defer rows.Close()

	var sessions []Session
	for rows.Next() {
		var s Session
		if err := rows.Scan(&s.ID, &s.Mode, &s.Minutes, &s.CompletedAt); err != nil {
			return nil, wrapSessionErr("scan", err)
		}
		sessions = append(sessions, s)
	}
	return sessions, wrapSessionErr("list", rows.Err())
}

// ModeTotals returns per-mode completion counts and minute totals.
func (d *Database) ModeTotals(ctx context.Context) ([]ModeTotal, error) {
	rows, err := d.DB.QueryContext(ctx,
		"SELECT mode, COUNT(*), COALESCE(SUM(minutes), 0) FROM sessions GROUP BY mode ORDER BY mode")
	if err != nil {
		return nil, wrapSessionErr("aggregate", err)
	}
	defer rows.Close()

	var totals []ModeTotal
	for rows.Next() {
		var t ModeTotal
		if err := rows.Scan(&t.Mode, &t.Count, &t.TotalMinutes); err != nil {
			return nil, wrapSessionErr("scan", err)
		}
		totals = append(totals, t)
	}
	return totals, wrapSessionErr("aggregate", rows.Err())
}
