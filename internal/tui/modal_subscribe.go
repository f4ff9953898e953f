package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/crypto/bcrypt"

	"github.com/arjunmw/focal/internal/util"
)

// Subscription plans offered by the mock upsell. Nothing is ever charged;
// selecting a plan just flips the premium flag.
var subscriptionPlans = []struct {
	Name  string
	Price string
}{
	{"Monthly", "$2.99 / month"},
	{"Yearly", "$23.99 / year"},
}

var promoRow = len(subscriptionPlans)

const promoCode = "FOCAL-FRIENDS"

// promoDigest is derived once at startup so redemption goes through the same
// digest comparison a served code list would use.
var promoDigest, _ = bcrypt.GenerateFromPassword([]byte(promoCode), bcrypt.MinCost)

func validPromoCode(code string) bool {
	return bcrypt.CompareHashAndPassword(promoDigest, []byte(strings.TrimSpace(code))) == nil
}

func (m TimerModel) updateSubscribe(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.modal = ModalNone
		return m, nil
	case "up", "shift+tab":
		if m.subscribe.Cursor > 0 {
			m.subscribe.Cursor--
			m.subscribe.Code.Blur()
		}
		return m, nil
	case "down", "tab":
		if m.subscribe.Cursor < promoRow {
			m.subscribe.Cursor++
			if m.subscribe.Cursor == promoRow {
				m.subscribe.Code.Focus()
			}
		}
		return m, nil
	case "enter":
		if m.subscribe.Cursor < promoRow {
			return m.activatePremium(fmt.Sprintf("%s plan", subscriptionPlans[m.subscribe.Cursor].Name)), nil
		}
		if validPromoCode(m.subscribe.Code.Value()) {
			return m.activatePremium("promo code"), nil
		}
		m.subscribe.Status = "Invalid promo code."
		m.subscribe.Code.Reset()
		return m, nil
	}

	if m.subscribe.Cursor == promoRow {
		var cmd tea.Cmd
		m.subscribe.Code, cmd = m.subscribe.Code.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m TimerModel) activatePremium(via string) TimerModel {
	m.premium = true
	m.modal = ModalNone
	m.message = fmt.Sprintf("Premium unlocked via %s — ads removed. (Mock subscription, nothing was charged.)", via)
	util.LogError("save premium", m.store.SetPremium(m.ctx, true))
	return m
}

func (m TimerModel) renderSubscribeModal() string {
	var b strings.Builder
	b.WriteString(CurrentTheme.Focused.Render("Go Premium") + "\n")
	b.WriteString(CurrentTheme.Dim.Render("Remove ads and support development.") + "\n\n")

	for i, plan := range subscriptionPlans {
		cursor := "  "
		style := CurrentTheme.Dim
		if i == m.subscribe.Cursor {
			cursor = "> "
			style = CurrentTheme.Focused
		}
		b.WriteString(style.Render(fmt.Sprintf("%s%-8s %s", cursor, plan.Name, plan.Price)) + "\n")
	}

	cursor := "  "
	if m.subscribe.Cursor == promoRow {
		cursor = "> "
	}
	b.WriteString(cursor + m.subscribe.Code.View() + "\n")

	if m.subscribe.Status != "" {
		b.WriteString("\n" + CurrentTheme.Alert.Render(m.subscribe.Status))
	}
	b.WriteString("\n" + CurrentTheme.Dim.Render("[↑/↓] Select  [Enter] Subscribe  [Esc] Close"))

	frame := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(CurrentTheme.Border).
		Padding(1, 2)
	return frame.Render(b.String())
}
