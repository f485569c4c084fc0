package reminderlist

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mwidmann/remindcal/internal/models"
)

func sample() []models.Reminder {
	at := func(day int) models.Timestamp {
		return models.NewTimestamp(time.Date(2026, time.March, day, 9, 0, 0, 0, time.Local))
	}
	return []models.Reminder{
		{ID: 3, Event: "latest", DateTime: at(20)},
		{ID: 1, Event: "earliest", DateTime: at(5), Metadata: map[string]string{"location": "office"}},
		{ID: 2, Event: "middle", DateTime: at(12), Completed: true},
	}
}

func press(m Model, k string) (Model, tea.Msg) {
	var msg tea.Msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
	next, cmd := m.Update(msg)
	if cmd == nil {
		return next, nil
	}
	return next, cmd()
}

func TestSetRemindersSortsAscending(t *testing.T) {
	m := New(80, 24)
	m.SetReminders(sample())

	r, ok := m.Selected()
	if !ok {
		t.Fatal("no selection with populated list")
	}
	if r.Event != "earliest" {
		t.Errorf("first row = %q, want earliest", r.Event)
	}
}

func TestCursorClampsAfterShrink(t *testing.T) {
	m := New(80, 24)
	m.SetReminders(sample())
	m, _ = press(m, "j")
	m, _ = press(m, "j")

	m.SetReminders(sample()[:1])
	r, ok := m.Selected()
	if !ok {
		t.Fatal("selection lost after shrink")
	}
	if r.ID != 3 {
		t.Errorf("selected ID = %d", r.ID)
	}
}

func TestDeleteEmitsSelectedReminder(t *testing.T) {
	m := New(80, 24)
	m.SetReminders(sample())
	m, _ = press(m, "j") // cursor to "middle"

	_, msg := press(m, "d")
	del, ok := msg.(DeleteReminderMsg)
	if !ok {
		t.Fatalf("want DeleteReminderMsg, got %T", msg)
	}
	if del.Reminder.Event != "middle" {
		t.Errorf("Event = %q", del.Reminder.Event)
	}
}

func TestCompleteSkipsAlreadyDone(t *testing.T) {
	m := New(80, 24)
	m.SetReminders(sample())

	// Cursor on "earliest": not completed, should emit.
	_, msg := press(m, "c")
	cm, ok := msg.(CompleteReminderMsg)
	if !ok {
		t.Fatalf("want CompleteReminderMsg, got %T", msg)
	}
	if cm.ID != 1 {
		t.Errorf("ID = %d", cm.ID)
	}

	// Cursor on "middle": already completed, no message.
	m, _ = press(m, "j")
	if _, msg := press(m, "c"); msg != nil {
		t.Errorf("completed reminder emitted %T", msg)
	}
}

func TestToggleOnlyWithMetadata(t *testing.T) {
	m := New(80, 24)
	m.SetReminders(sample())

	m2, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if !m2.expanded[1] {
		t.Error("row with metadata did not expand")
	}
	m3, _ := m2.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if m3.expanded[1] {
		t.Error("second toggle did not collapse")
	}

	// "latest" has no metadata; toggling should be a no-op.
	m3, _ = press(m3, "j")
	m3, _ = press(m3, "j")
	m4, _ := m3.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if m4.expanded[3] {
		t.Error("row without metadata expanded")
	}
}

func TestEmptyListHint(t *testing.T) {
	m := New(80, 24)
	m.SetReminders(nil)

	if _, ok := m.Selected(); ok {
		t.Error("empty list has a selection")
	}
	view := m.View()
	if view == "" {
		t.Error("empty view should show the add hint")
	}

	// Delete and complete must not emit for an empty list.
	if _, msg := press(m, "d"); msg != nil {
		t.Errorf("delete on empty list emitted %T", msg)
	}
	if _, msg := press(m, "c"); msg != nil {
		t.Errorf("complete on empty list emitted %T", msg)
	}
}
