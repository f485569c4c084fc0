package format

import (
	"testing"
	"time"

	"github.com/mwidmann/remindcal/internal/models"
)

func TestTitleCase(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"favorite_meals", "Favorite Meals"},
		{"event", "Event"},
		{"repeat_interval", "Repeat Interval"},
		{"_leading", "Leading"},
		{"double__underscore", "Double Underscore"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := TitleCase(tt.in); got != tt.want {
			t.Errorf("TitleCase(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestRepeat(t *testing.T) {
	tests := []struct {
		name string
		r    models.Reminder
		want string
	}{
		{"no repeat", models.Reminder{RepeatType: models.RepeatNone}, ""},
		{"empty type", models.Reminder{}, ""},
		{"yearly", models.Reminder{RepeatType: models.RepeatYearly}, "(repeats yearly)"},
		{"monthly", models.Reminder{RepeatType: models.RepeatMonthly, RepeatInterval: 1}, "(repeats monthly)"},
		{"every three months", models.Reminder{RepeatType: models.RepeatMonthly, RepeatInterval: 3}, "(repeats every 3 months)"},
		{"unknown kind", models.Reminder{RepeatType: models.RepeatOther}, "(repeats)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Repeat(tt.r); got != tt.want {
				t.Errorf("Repeat() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestListRowPrefersServerFormatting(t *testing.T) {
	r := models.Reminder{
		Event:     "dentist",
		Formatted: "Thursday, 12 September 2026 at 14:30",
		DateTime:  models.NewTimestamp(time.Date(2026, time.September, 12, 14, 30, 0, 0, time.Local)),
	}
	if got := ListRow(r); got != "Thursday, 12 September 2026 at 14:30 - dentist" {
		t.Errorf("ListRow() = %q", got)
	}
}

func TestListRowFallsBackToLocalFormat(t *testing.T) {
	r := models.Reminder{
		Event:    "dentist",
		DateTime: models.NewTimestamp(time.Date(2026, time.September, 12, 14, 30, 0, 0, time.Local)),
	}
	if got := ListRow(r); got != "2026-09-12 14:30 - dentist" {
		t.Errorf("ListRow() = %q", got)
	}
}

func TestStatus(t *testing.T) {
	if got := Status(models.Reminder{NotifiedStatus: "sent by mail"}); got != "sent by mail" {
		t.Errorf("server-supplied status ignored: %q", got)
	}
	if got := Status(models.Reminder{Notified: true}); got != "notified" {
		t.Errorf("Status() = %q, want notified", got)
	}
	if got := Status(models.Reminder{}); got != "pending" {
		t.Errorf("Status() = %q, want pending", got)
	}
}

func TestAgendaRow(t *testing.T) {
	r := models.Reminder{
		Event:    "standup",
		DateTime: models.NewTimestamp(time.Date(2026, time.March, 10, 9, 15, 0, 0, time.Local)),
		Notified: true,
	}
	if got := AgendaRow(r); got != "09:15 - standup (notified)" {
		t.Errorf("AgendaRow() = %q", got)
	}
}
