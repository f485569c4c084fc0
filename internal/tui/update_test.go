package tui

import (
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mwidmann/remindcal/internal/api"
	"github.com/mwidmann/remindcal/internal/identity"
	"github.com/mwidmann/remindcal/internal/models"
	"github.com/mwidmann/remindcal/internal/tui/components/reminderlist"
)

// testModel builds a root model on the reminders tab with a pre-persisted
// identity, so no greeting state and no first-run writes get in the way. The
// client points at a closed port; commands that do fire fail fast with a
// transport error.
func testModel(t *testing.T) Model {
	t.Helper()
	store := identity.FileStore{Path: filepath.Join(t.TempDir(), "user_id")}
	if err := store.Set("0e3af441-9b0a-4f58-9f07-6f9b8c9b5c01"); err != nil {
		t.Fatal(err)
	}
	m := NewModel(Options{
		Client:       api.New("http://127.0.0.1:1"),
		Identity:     identity.NewWithStores(store),
		PollInterval: time.Second,
	})
	m.state = StateReminders
	return m
}

func press(t *testing.T, m Model, k string) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)})
	return next.(Model), cmd
}

func TestDeleteEntersConfirmWithoutDispatching(t *testing.T) {
	m := testModel(t)
	r := models.Reminder{ID: 42, Event: "dentist"}

	next, cmd := m.Update(reminderlist.DeleteReminderMsg{Reminder: r})
	m = next.(Model)

	if cmd != nil {
		t.Fatal("delete dispatched before confirmation")
	}
	if m.state != StateConfirmDelete {
		t.Fatalf("state = %v, want confirm", m.state)
	}
	if m.toDelete == nil || m.toDelete.ID != 42 {
		t.Errorf("toDelete = %+v", m.toDelete)
	}
}

func TestDeclinedDeleteChangesNothing(t *testing.T) {
	m := testModel(t)
	m.listModel.SetReminders([]models.Reminder{{ID: 42, Event: "dentist"}})

	next, _ := m.Update(reminderlist.DeleteReminderMsg{Reminder: models.Reminder{ID: 42, Event: "dentist"}})
	m = next.(Model)

	m, cmd := press(t, m, "n")
	if cmd != nil {
		t.Error("declining issued a command")
	}
	if m.state != StateReminders {
		t.Errorf("state = %v, want reminders tab restored", m.state)
	}
	if m.toDelete != nil {
		t.Errorf("toDelete not cleared: %+v", m.toDelete)
	}
	if r, ok := m.listModel.Selected(); !ok || r.ID != 42 {
		t.Errorf("list changed after declined delete: %+v ok=%v", r, ok)
	}
}

func TestConfirmedDeleteDispatches(t *testing.T) {
	m := testModel(t)

	next, _ := m.Update(reminderlist.DeleteReminderMsg{Reminder: models.Reminder{ID: 42, Event: "dentist"}})
	m = next.(Model)

	m, cmd := press(t, m, "y")
	if cmd == nil {
		t.Fatal("confirming issued no command")
	}
	if m.state != StateReminders {
		t.Errorf("state = %v, want reminders tab restored", m.state)
	}
	if m.toDelete != nil {
		t.Errorf("toDelete not cleared: %+v", m.toDelete)
	}

	// The dispatched command is the delete itself; against the closed port it
	// resolves to a failed delete outcome, never some other message.
	res := cmd()
	msg, ok := res.(mutationDoneMsg)
	if !ok {
		t.Fatalf("command produced %T, want mutationDoneMsg", res)
	}
	if msg.op != "delete" {
		t.Errorf("op = %q, want delete", msg.op)
	}
	if msg.err == nil {
		t.Error("expected transport error against closed port")
	}
}

func TestEscAbortsConfirm(t *testing.T) {
	m := testModel(t)

	next, _ := m.Update(reminderlist.DeleteReminderMsg{Reminder: models.Reminder{ID: 7}})
	m = next.(Model)

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = next.(Model)
	if cmd != nil {
		t.Error("esc issued a command")
	}
	if m.state != StateReminders || m.toDelete != nil {
		t.Errorf("confirm not aborted: state=%v toDelete=%+v", m.state, m.toDelete)
	}
}
