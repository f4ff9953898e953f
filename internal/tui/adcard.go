package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Static ad copy shown to free users; rotates while the timer ticks.
var adTaglines = []string{
	"Focal Premium: no ads, just focus. Press [u] to upgrade.",
	"Enjoying Focal? Premium removes this card and supports development.",
	"Deep work deserves a clean screen. Go Premium with [u].",
	"Your next focus session could be ad-free. [u] to see plans.",
}

func (m TimerModel) renderAdCard(width int) string {
	if m.premium || width < 20 {
		return ""
	}
	frame := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(CurrentTheme.Dim.GetForeground()).
		Padding(0, 1)
	extra := lipgloss.Width(frame.Render(""))
	contentWidth := width - extra
	if contentWidth < 10 {
		contentWidth = 10
	}
	text := adTaglines[m.adIdx%len(adTaglines)]
	body := CurrentTheme.Dim.Render("AD  ") + CurrentTheme.Ad.Render(text)
	return frame.Width(contentWidth).Render(ansi.Wrap(body, contentWidth, ""))
}
