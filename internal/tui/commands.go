package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	cal "github.com/mwidmann/remindcal/internal/calendar"
	"github.com/mwidmann/remindcal/internal/models"
)

// remindersMsg carries the result of a full-list fetch.
type remindersMsg struct {
	reminders []models.Reminder
	err       error
}

// monthDataMsg carries the result of a month fetch, tagged with the month it
// was requested for so responses that outlived a navigation can be dropped.
type monthDataMsg struct {
	month   cal.Month
	entries []models.MonthEntry
	err     error
}

// usersMsg carries the demo user directory.
type usersMsg struct {
	users []models.User
	err   error
}

// mutationDoneMsg reports a create/complete/delete/register/login outcome.
// refreshUsers additionally reloads the user directory (after register).
type mutationDoneMsg struct {
	op           string
	result       models.Result
	err          error
	refreshUsers bool
}

// syncTickMsg drives the periodic re-fetch of list and month data.
type syncTickMsg time.Time

// clockTickMsg advances the header clock once a second.
type clockTickMsg time.Time

// statusExpiredMsg clears the transient toast; seq guards against a stale
// expiry wiping a newer message.
type statusExpiredMsg struct {
	seq int
}

func (m Model) fetchReminders() tea.Cmd {
	client, userID := m.client, m.userID
	return func() tea.Msg {
		reminders, err := client.ListAll(context.Background(), userID)
		return remindersMsg{reminders: reminders, err: err}
	}
}

func (m Model) fetchMonth(month cal.Month) tea.Cmd {
	client, userID := m.client, m.userID
	return func() tea.Msg {
		entries, err := client.ListForMonth(context.Background(), userID, month.Year, int(month.Month))
		return monthDataMsg{month: month, entries: entries, err: err}
	}
}

func (m Model) fetchUsers() tea.Cmd {
	client := m.client
	return func() tea.Msg {
		users, err := client.ListUsers(context.Background())
		return usersMsg{users: users, err: err}
	}
}

func (m Model) createReminder(note string) tea.Cmd {
	client, userID := m.client, m.userID
	return func() tea.Msg {
		result, err := client.Create(context.Background(), userID, note)
		return mutationDoneMsg{op: "add", result: result, err: err}
	}
}

func (m Model) deleteReminder(id int64) tea.Cmd {
	client, userID := m.client, m.userID
	return func() tea.Msg {
		result, err := client.Delete(context.Background(), id, userID)
		return mutationDoneMsg{op: "delete", result: result, err: err}
	}
}

func (m Model) completeReminder(id int64) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		result, err := client.Complete(context.Background(), id)
		return mutationDoneMsg{op: "complete", result: result, err: err}
	}
}

func (m Model) register(username, email, password string) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		result, err := client.Register(context.Background(), username, email, password)
		return mutationDoneMsg{op: "register", result: result, err: err, refreshUsers: true}
	}
}

func (m Model) login(username, password string) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		result, err := client.Login(context.Background(), username, password)
		return mutationDoneMsg{op: "login", result: result, err: err}
	}
}

// refreshAll is the full re-fetch issued after every successful mutation and
// on every sync tick: list plus visible month, with the agenda re-derived
// when the list lands. The periodic tick and a user action may race; the
// last response to arrive wins the render.
func (m Model) refreshAll() tea.Cmd {
	return tea.Batch(m.fetchReminders(), m.fetchMonth(m.monthModel.Visible()))
}

func (m Model) syncTick() tea.Cmd {
	return tea.Tick(m.pollInterval, func(t time.Time) tea.Msg {
		return syncTickMsg(t)
	})
}

func clockTick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return clockTickMsg(t)
	})
}
