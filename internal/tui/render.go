package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/arjunmw/focal/internal/timer"
)

func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

func (m TimerModel) View() string {
	if m.width == 0 {
		return "Initializing..."
	}
	if m.err != nil {
		return fmt.Sprintf("\nError: %v\n\nPress any key to continue.", m.err)
	}

	var body string
	switch m.modal {
	case ModalSettings:
		body = m.renderSettingsModal()
	case ModalSubscribe:
		body = m.renderSubscribeModal()
	default:
		body = m.renderTimerPane()
	}

	var lines []string
	lines = append(lines, splitLines(m.renderTabs())...)
	lines = append(lines, splitLines(body)...)
	if ad := m.renderAdCard(m.width); ad != "" {
		lines = append(lines, splitLines(ad)...)
	}
	if m.message != "" {
		lines = append(lines, CurrentTheme.Alert.Render(m.message))
	}
	lines = append(lines, m.renderFooter())

	if m.height > 0 {
		if len(lines) > m.height {
			lines = lines[:m.height]
		} else if len(lines) < m.height {
			lines = append(lines, make([]string, m.height-len(lines))...)
		}
	}
	return "\x1b[H\x1b[2J" + strings.Join(lines, "\n")
}

func (m TimerModel) renderTabs() string {
	var tabs []string
	for i, mode := range timer.Modes() {
		label := fmt.Sprintf("[%d] %s", i+1, mode.Label())
		style := CurrentTheme.Tab
		if mode == m.timer.Mode() {
			style = CurrentTheme.TabOn
		}
		tabs = append(tabs, style.Render(label))
	}
	row := strings.Join(tabs, CurrentTheme.Dim.Render("  |  "))
	title := CurrentTheme.Title.Render(fmt.Sprintf("FOCAL v%s", AppVersion))
	return lipgloss.PlaceHorizontal(m.width, lipgloss.Center, title) + "\n" +
		lipgloss.PlaceHorizontal(m.width, lipgloss.Center, row)
}

func (m TimerModel) renderTimerPane() string {
	var b strings.Builder

	clockStyle := CurrentTheme.Clock
	if !m.timer.Running() {
		clockStyle = CurrentTheme.Paused
	}
	b.WriteString(clockStyle.Render(formatClock(m.timer.Remaining())) + "\n\n")

	if total := m.timer.Total(); total > 0 {
		elapsed := total - m.timer.Remaining()
		b.WriteString(m.progress.ViewAs(float64(elapsed)/float64(total)) + "\n\n")
	}

	switch {
	case m.completed != nil:
		b.WriteString(CurrentTheme.Alert.Render(fmt.Sprintf("%s finished!", (*m.completed).Label())))
		if *m.completed == timer.ModeWork {
			b.WriteString("  " + CurrentTheme.Focused.Render("[e] Start extra time"))
		}
	case m.timer.Running():
		b.WriteString(CurrentTheme.Focused.Render("Counting down..."))
	case m.timer.Remaining() < m.timer.Total():
		b.WriteString(CurrentTheme.Dim.Render("Paused — [space] to resume"))
	default:
		b.WriteString(CurrentTheme.Dim.Render("Ready — [space] to start"))
	}

	frame := lipgloss.NewStyle().
		Align(lipgloss.Center).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(CurrentTheme.Border).
		Padding(1, 2)
	extra := lipgloss.Width(frame.Render(""))
	width := m.width - extra
	if width < 1 {
		width = 1
	}
	return frame.Width(width).Render(b.String())
}

func (m TimerModel) renderFooter() string {
	runKey := "[space]Start"
	if m.timer.Running() {
		runKey = "[space]Pause"
	}
	mute := "[m]Mute"
	if m.muted {
		mute = "[m]Unmute"
	}
	help := fmt.Sprintf("%s|[r]Reset|[1-3]Mode|[s]Settings|%s|[t]Theme|[ctrl+r]Report", runKey, mute)
	if !m.premium {
		help += "|[u]Premium"
	}
	help += "|[q]Quit"
	return lipgloss.PlaceHorizontal(m.width, lipgloss.Center, CurrentTheme.Dim.Render(help))
}
