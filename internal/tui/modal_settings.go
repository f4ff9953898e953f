package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/arjunmw/focal/internal/timer"
	"github.com/arjunmw/focal/internal/util"
)

func (m TimerModel) updateSettings(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	modes := timer.Modes()
	switch msg.String() {
	case "esc", "enter", "q", "s":
		m.modal = ModalNone
	case "up", "k":
		if m.settings.Cursor > 0 {
			m.settings.Cursor--
		}
	case "down", "j":
		if m.settings.Cursor < len(modes)-1 {
			m.settings.Cursor++
		}
	case "left", "h", "-":
		m = m.adjustMinutes(modes[m.settings.Cursor], -1)
	case "right", "l", "+":
		m = m.adjustMinutes(modes[m.settings.Cursor], +1)
	}
	return m, nil
}

// adjustMinutes nudges a mode's configured duration and persists the applied
// (range-clamped) value. An in-progress countdown is untouched until the
// next reset or mode switch.
func (m TimerModel) adjustMinutes(mode timer.Mode, delta int) TimerModel {
	applied := m.timer.SetMinutes(mode, m.timer.Config().Minutes(mode)+delta)
	util.LogError("save duration", m.store.SaveMinutes(m.ctx, mode, applied))
	return m
}

func (m TimerModel) renderSettingsModal() string {
	var b strings.Builder
	b.WriteString(CurrentTheme.Focused.Render("Timer Durations") + "\n\n")

	for i, mode := range timer.Modes() {
		r := mode.Range()
		cursor := "  "
		style := CurrentTheme.Dim
		if i == m.settings.Cursor {
			cursor = "> "
			style = CurrentTheme.Focused
		}
		line := fmt.Sprintf("%s%-10s %3d min   (%d-%d)",
			cursor, mode.Label(), m.timer.Config().Minutes(mode), r.Min, r.Max)
		b.WriteString(style.Render(line) + "\n")
	}

	b.WriteString("\n" + CurrentTheme.Dim.Render("[↑/↓] Select  [←/→] Adjust  [Esc] Close"))

	frame := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(CurrentTheme.Border).
		Padding(1, 2)
	return frame.Render(b.String())
}
