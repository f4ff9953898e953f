package tui

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/arjunmw/focal/internal/config"
	"github.com/arjunmw/focal/internal/database"
)

// GenerateSessionReport writes recent session history to a PDF in dir (the
// working directory when empty) and returns the absolute path.
func GenerateSessionReport(ctx context.Context, store database.SessionStore, dir string) (string, error) {
	totals, err := store.ModeTotals(ctx)
	if err != nil {
		return "", fmt.Errorf("load totals: %w", err)
	}
	sessions, err := store.RecentSessions(ctx, config.ReportSessionLimit)
	if err != nil {
		return "", fmt.Errorf("load sessions: %w", err)
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(40, 10, fmt.Sprintf("Focus Report: %s", time.Now().Format("2006-01-02")))
	pdf.Ln(12)

	pdf.SetFont("Arial", "B", 14)
	pdf.Cell(0, 10, "Totals")
	pdf.Ln(8)
	pdf.SetFont("Arial", "", 12)
	if len(totals) == 0 {
		pdf.Cell(0, 8, "  No completed sessions yet.")
		pdf.Ln(8)
	}
	for _, t := range totals {
		pdf.Cell(0, 8, fmt.Sprintf("  %-6s %3d sessions, %s", t.Mode, t.Count, formatMinutes(t.TotalMinutes)))
		pdf.Ln(6)
	}
	pdf.Ln(4)

	if len(sessions) > 0 {
		pdf.SetFont("Arial", "B", 14)
		pdf.Cell(0, 10, fmt.Sprintf("Recent Sessions (last %d)", len(sessions)))
		pdf.Ln(8)
		pdf.SetFont("Arial", "", 12)
		for _, s := range sessions {
			stamp := s.CompletedAt.Format("2006-01-02 15:04")
			pdf.Cell(0, 8, fmt.Sprintf("  %s  %-6s %s", stamp, s.Mode, formatMinutes(s.Minutes)))
			pdf.Ln(6)
		}
	}

	filename := fmt.Sprintf("focal_report_%s.pdf", time.Now().Format("2006-01-02"))
	if dir != "" {
		filename = filepath.Join(dir, filename)
	}
	if err := pdf.OutputFileAndClose(filename); err != nil {
		return "", fmt.Errorf("write report: %w", err)
	}
	abs, err := filepath.Abs(filename)
	if err != nil {
		return filename, nil
	}
	return abs, nil
}
