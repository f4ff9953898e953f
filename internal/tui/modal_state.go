package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
)

type ModalType int

const (
	ModalNone ModalType = iota
	ModalSettings
	ModalSubscribe
)

// settingsState tracks the duration editor: one row per mode.
type settingsState struct {
	Cursor int
}

// subscribeState tracks the mock subscription modal: two plan rows plus a
// promo-code input row.
type subscribeState struct {
	Cursor int
	Code   textinput.Model
	Status string
}

func newSubscribeState() subscribeState {
	ti := textinput.New()
	ti.Placeholder = "Promo code..."
	ti.CharLimit = 32
	ti.Width = 24
	return subscribeState{Code: ti}
}
