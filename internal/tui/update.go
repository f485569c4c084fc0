package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/mwidmann/remindcal/internal/logger"
	"github.com/mwidmann/remindcal/internal/tui/components/account"
	"github.com/mwidmann/remindcal/internal/tui/components/month"
	"github.com/mwidmann/remindcal/internal/tui/components/reminderlist"
	"github.com/mwidmann/remindcal/internal/tui/handlers"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	// Data and timer messages are handled in every state so the refresh
	// loop keeps running underneath forms and confirms.
	switch msg := msg.(type) {
	case remindersMsg:
		if msg.err != nil {
			logger.Warn("list fetch failed", "error", msg.err)
			return m, m.setStatus(statusError, errText("Failed to load reminders", msg.err))
		}
		m.listModel.SetReminders(msg.reminders)
		m.monthModel.SetAll(msg.reminders)
		if m.snapshots != nil {
			if err := m.snapshots.Put(m.userID, msg.reminders); err != nil {
				logger.Warn("snapshot write failed", "error", err)
			}
		}
		return m, nil

	case monthDataMsg:
		// A response for a month we already navigated away from is stale;
		// drop it instead of painting the wrong markers.
		if msg.month != m.monthModel.Visible() {
			return m, nil
		}
		if msg.err != nil {
			logger.Warn("month fetch failed", "error", msg.err)
			m.monthModel.SetEntries(nil)
			return m, m.setStatus(statusError, errText("Failed to load month", msg.err))
		}
		m.monthModel.SetEntries(msg.entries)
		return m, nil

	case usersMsg:
		if msg.err != nil {
			logger.Warn("users fetch failed", "error", msg.err)
			return m, m.setStatus(statusError, errText("Failed to load users", msg.err))
		}
		m.accountModel.SetUsers(msg.users)
		return m, nil

	case mutationDoneMsg:
		if msg.err != nil {
			return m, m.setStatus(statusError, errText("Failed to "+msg.op, msg.err))
		}
		text := msg.result.Message
		if text == "" {
			text = msg.op + " succeeded"
		}
		cmds = append(cmds, m.setStatus(statusSuccess, text), m.refreshAll())
		if msg.refreshUsers {
			cmds = append(cmds, m.fetchUsers())
		}
		return m, tea.Batch(cmds...)

	case syncTickMsg:
		// Re-fetch without touching month, selection, or cursor state.
		return m, tea.Batch(m.refreshAll(), m.syncTick())

	case clockTickMsg:
		m.clock = time.Time(msg)
		return m, clockTick()

	case statusExpiredMsg:
		if msg.seq == m.statusSeq {
			m.status = ""
			m.statusKind = statusNone
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		contentHeight := msg.Height - 4 // tabs + toast + help

		h, v := docStyle.GetFrameSize()
		m.monthModel.SetSize(msg.Width-h, contentHeight-v)
		m.listModel.SetSize(msg.Width-h, contentHeight-v)
		m.accountModel.SetSize(msg.Width-h, contentHeight-v)
	}

	// Greeting: any key dismisses the one-time identifier notice.
	if m.state == StateGreeting {
		if _, ok := msg.(tea.KeyMsg); ok {
			m.state = StateCalendar
		}
		return m, nil
	}

	// Form states share a lifecycle: Esc aborts, StateCompleted submits.
	if m.state == StateAddReminder || m.state == StateRegister || m.state == StateLogin {
		return m.updateForm(msg)
	}

	if m.state == StateConfirmDelete {
		return m.updateConfirmDelete(msg)
	}

	// Component messages.
	switch msg := msg.(type) {
	case month.NavigateMsg:
		m.monthModel.Navigate(msg.Delta)
		return m, m.fetchMonth(m.monthModel.Visible())

	case month.SelectMsg:
		m.monthModel.Select(msg.Key)
		return m, nil

	case reminderlist.DeleteReminderMsg:
		r := msg.Reminder
		m.toDelete = &r
		m.previousState = m.state
		m.state = StateConfirmDelete
		return m, nil

	case reminderlist.CompleteReminderMsg:
		return m, m.completeReminder(msg.ID)

	case account.RegisterMsg:
		m.registerForm = &handlers.RegisterFormModel{}
		m.form = handlers.NewRegisterForm(m.registerForm)
		m.state = StateRegister
		return m, m.form.Init()

	case account.LoginMsg:
		m.loginForm = &handlers.LoginFormModel{}
		m.form = handlers.NewLoginForm(m.loginForm)
		m.state = StateLogin
		return m, m.form.Init()

	case account.RefreshUsersMsg:
		return m, m.fetchUsers()

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Tab):
			m.state = (m.state + 1) % numMainTabs
			return m, nil
		case key.Matches(msg, m.keys.ShiftTab):
			m.state = (m.state - 1 + numMainTabs) % numMainTabs
			return m, nil
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		case key.Matches(msg, m.keys.Add):
			if m.state == StateCalendar || m.state == StateReminders {
				m.noteForm = &handlers.NoteFormModel{}
				m.form = handlers.NewNoteForm(m.noteForm)
				m.previousState = m.state
				m.state = StateAddReminder
				return m, m.form.Init()
			}
		case key.Matches(msg, m.keys.Refresh):
			return m, tea.Batch(m.refreshAll(), m.fetchUsers())
		}
	}

	// Route everything else to the active tab's component.
	var cmd tea.Cmd
	switch m.state {
	case StateCalendar:
		m.monthModel, cmd = m.monthModel.Update(msg)
		cmds = append(cmds, cmd)
	case StateReminders:
		m.listModel, cmd = m.listModel.Update(msg)
		cmds = append(cmds, cmd)
	case StateAccount:
		m.accountModel, cmd = m.accountModel.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

func (m Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
		m.state = m.formReturnState()
		return m, nil
	}

	var cmds []tea.Cmd
	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}
	cmds = append(cmds, cmd)

	switch m.form.State {
	case huh.StateCompleted:
		submitted := m.state
		m.state = m.formReturnState()
		switch submitted {
		case StateAddReminder:
			cmds = append(cmds, m.createReminder(m.noteForm.Text))
		case StateRegister:
			cmds = append(cmds, m.register(m.registerForm.Username, m.registerForm.Email, m.registerForm.Password))
		case StateLogin:
			cmds = append(cmds, m.login(m.loginForm.Username, m.loginForm.Password))
		}
	case huh.StateAborted:
		m.state = m.formReturnState()
	}
	return m, tea.Batch(cmds...)
}

// formReturnState maps a form state back to the tab it was opened from.
func (m Model) formReturnState() SessionState {
	switch m.state {
	case StateAddReminder:
		if m.previousState == StateReminders {
			return StateReminders
		}
		return StateCalendar
	case StateRegister, StateLogin:
		return StateAccount
	default:
		return StateCalendar
	}
}

func (m Model) updateConfirmDelete(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch keyMsg.String() {
	case "y", "Y":
		var cmd tea.Cmd
		if m.toDelete != nil {
			cmd = m.deleteReminder(m.toDelete.ID)
		}
		m.toDelete = nil
		m.state = m.previousState
		return m, cmd
	case "n", "N", "esc", "q":
		// Declined: nothing is sent, nothing changes.
		m.toDelete = nil
		m.state = m.previousState
	}
	return m, nil
}

func errText(prefix string, err error) string {
	return fmt.Sprintf("%s: %v", prefix, err)
}
