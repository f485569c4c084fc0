package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var tabNames = []string{"Calendar", "Reminders", "Account"}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.state == StateGreeting {
		return m.viewGreeting()
	}

	var b strings.Builder
	b.WriteString(m.viewHeader())
	b.WriteString("\n")
	b.WriteString(m.viewToast())
	b.WriteString("\n")

	switch m.state {
	case StateAddReminder, StateRegister, StateLogin:
		b.WriteString(docStyle.Render(m.form.View()))
	case StateConfirmDelete:
		b.WriteString(docStyle.Render(m.viewConfirmDelete()))
	case StateReminders:
		b.WriteString(docStyle.Render(m.listModel.View()))
	case StateAccount:
		b.WriteString(docStyle.Render(m.accountModel.View()))
	default:
		b.WriteString(docStyle.Render(m.monthModel.View()))
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m Model) viewHeader() string {
	tabs := make([]string, 0, len(tabNames))
	for i, name := range tabNames {
		if SessionState(i) == m.activeTab() {
			tabs = append(tabs, activeTabStyle.Render(name))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(name))
		}
	}
	row := lipgloss.JoinHorizontal(lipgloss.Top, tabs...)

	clock := clockStyle.Render(m.clock.Format("Monday, 02 Jan 2006 15:04:05"))
	gap := m.width - lipgloss.Width(row) - lipgloss.Width(clock)
	if gap < 1 {
		gap = 1
	}
	return row + strings.Repeat(" ", gap) + clock
}

// activeTab folds modal states back onto the tab they were opened from so
// the header keeps the right tab highlighted under a form or confirm.
func (m Model) activeTab() SessionState {
	switch m.state {
	case StateCalendar, StateReminders, StateAccount:
		return m.state
	case StateRegister, StateLogin:
		return StateAccount
	default:
		return m.previousState
	}
}

func (m Model) viewToast() string {
	switch m.statusKind {
	case statusSuccess:
		return successToastStyle.Render(m.status)
	case statusError:
		return errorToastStyle.Render(m.status)
	default:
		return ""
	}
}

func (m Model) viewConfirmDelete() string {
	if m.toDelete == nil {
		return ""
	}
	prompt := dangerStyle.Render(fmt.Sprintf("Delete reminder %q?", m.toDelete.Event))
	return prompt + "\n\n  y: delete    n: keep"
}

func (m Model) viewGreeting() string {
	body := fmt.Sprintf("Welcome to remindcal!\n\nYour identifier is\n\n  %s\n\nIt was generated for this machine and is reused on\nevery start. Press any key to continue.", m.greetingID)
	box := greetingStyle.Render(body)
	if m.width == 0 || m.height == 0 {
		return box
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}
