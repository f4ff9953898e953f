package tui

import (
	"context"
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"

	"github.com/arjunmw/focal/internal/config"
	"github.com/arjunmw/focal/internal/database"
	"github.com/arjunmw/focal/internal/timer"
	"github.com/arjunmw/focal/internal/util"
)

var AppVersion = "0"

// TickMsg is the per-second countdown signal. Gen stamps the timer generation
// the tick was scheduled for; a mismatch means the countdown it belonged to
// was paused, reset, or switched away from in the meantime.
type TickMsg struct {
	Gen uint64
	At  time.Time
}

func tickCmd(gen uint64) tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg { return TickMsg{Gen: gen, At: t} })
}

// TimerModel is the bubbletea model for the timer screen.
type TimerModel struct {
	ctx      context.Context
	store    database.Store
	timer    *timer.Timer
	notifier *BellNotifier
	progress progress.Model

	muted     bool
	premium   bool
	themeName string

	// completed holds the mode of the most recent completion until the next
	// user action, driving the banner and the [e] extra-time affordance.
	completed *timer.Mode

	modal     ModalType
	settings  settingsState
	subscribe subscribeState

	adIdx  int
	adTick int

	err           error
	message       string
	width, height int
}

// NewTimerModel builds the timer screen. cfg is the merged configuration
// (file defaults overlaid with stored settings); bellOut receives the
// completion bell.
func NewTimerModel(ctx context.Context, store database.Store, cfg timer.Config, bellOut io.Writer) TimerModel {
	notifier := NewBellNotifier(bellOut)

	m := TimerModel{
		ctx:       ctx,
		store:     store,
		notifier:  notifier,
		progress:  progress.New(progress.WithDefaultGradient()),
		themeName: config.DefaultTheme,
	}
	m.timer = timer.New(cfg, notifier)
	m.progress.Width = 30

	if store != nil {
		m.muted = store.Muted(ctx)
		m.premium = store.Premium(ctx)
		if name, ok := store.Theme(ctx); ok {
			if _, known := Themes[name]; known {
				m.themeName = name
			}
		}
	}
	notifier.SetMuted(m.muted)
	SetTheme(m.themeName)
	return m
}

// Timer exposes the underlying state machine, mainly for tests.
func (m TimerModel) Timer() *timer.Timer { return m.timer }

func (m TimerModel) Init() tea.Cmd { return nil }

func (m TimerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		if m.width > 0 {
			target := 30
			if m.width < 60 {
				target = m.width / 2
			}
			if target < 10 {
				target = 10
			}
			m.progress.Width = target
		}
		return m, nil

	case TickMsg:
		return m.handleTick(msg)

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		if m.err != nil {
			m.err = nil
			return m, nil
		}
		if m.message != "" {
			m.message = ""
		}
		switch m.modal {
		case ModalSettings:
			return m.updateSettings(msg)
		case ModalSubscribe:
			return m.updateSubscribe(msg)
		}
		return m.handleKey(msg)
	}
	return m, nil
}

func (m TimerModel) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	if msg.Gen != m.timer.Generation() {
		// Stale tick from before a pause, reset, or mode switch.
		return m, nil
	}
	minutes := m.timer.Total() / 60
	if m.timer.Tick(msg.Gen) {
		mode := m.timer.Mode()
		m.completed = &mode
		util.LogError("record session", m.store.AddSession(m.ctx, mode, minutes))
		return m, nil
	}
	if !m.premium {
		m.adTick++
		if m.adTick >= config.AdRotateSeconds {
			m.adTick = 0
			m.adIdx = (m.adIdx + 1) % len(adTaglines)
		}
	}
	if m.timer.Running() {
		return m, tickCmd(m.timer.Generation())
	}
	return m, nil
}

func (m TimerModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case " ":
		m.completed = nil
		if m.timer.ToggleRun() {
			return m, tickCmd(m.timer.Generation())
		}
		return m, nil
	case "r":
		m.completed = nil
		m.timer.Reset()
		return m, nil
	case "1", "w":
		return m.switchMode(timer.ModeWork), nil
	case "2", "b":
		return m.switchMode(timer.ModeBreak), nil
	case "3", "x":
		return m.switchMode(timer.ModeExtra), nil
	case "e":
		// Extra-time affordance after a finished work countdown. The state
		// machine never switches on its own; this is the one-key shortcut.
		if m.completed != nil && *m.completed == timer.ModeWork {
			m.completed = nil
			m.timer.SwitchMode(timer.ModeExtra)
			m.timer.ToggleRun()
			return m, tickCmd(m.timer.Generation())
		}
		return m, nil
	case "m":
		m.muted = !m.muted
		m.notifier.SetMuted(m.muted)
		util.LogError("save mute", m.store.SetMuted(m.ctx, m.muted))
		return m, nil
	case "t":
		m.themeName = NextTheme(m.themeName)
		SetTheme(m.themeName)
		util.LogError("save theme", m.store.SetTheme(m.ctx, m.themeName))
		return m, nil
	case "s":
		m.modal = ModalSettings
		m.settings = settingsState{}
		return m, nil
	case "u":
		if m.premium {
			m.message = "Premium is already active."
			return m, nil
		}
		m.modal = ModalSubscribe
		m.subscribe = newSubscribeState()
		return m, textinput.Blink
	case "ctrl+r":
		path, err := GenerateSessionReport(m.ctx, m.store, "")
		if err != nil {
			m.err = err
			return m, nil
		}
		m.message = "Report written: " + path
		return m, nil
	}
	return m, nil
}

func (m TimerModel) switchMode(mode timer.Mode) TimerModel {
	m.completed = nil
	m.timer.SwitchMode(mode)
	return m
}
