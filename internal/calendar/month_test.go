package calendar

import (
	"testing"
	"time"

	"github.com/mwidmann/remindcal/internal/models"
)

func TestMonthDays(t *testing.T) {
	tests := []struct {
		name  string
		month Month
		want  int
	}{
		{"leap february", Month{2024, time.February}, 29},
		{"non-leap february", Month{2025, time.February}, 28},
		{"thirty days", Month{2026, time.April}, 30},
		{"thirty-one days", Month{2026, time.August}, 31},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.month.Days(); got != tt.want {
				t.Errorf("Days() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestMonthWrap(t *testing.T) {
	dec := Month{2025, time.December}
	if got := dec.Next(); got != (Month{2026, time.January}) {
		t.Errorf("Next() from December = %v", got)
	}
	jan := Month{2026, time.January}
	if got := jan.Prev(); got != (Month{2025, time.December}) {
		t.Errorf("Prev() from January = %v", got)
	}
	if got := (Month{2026, time.May}).Next(); got != (Month{2026, time.June}) {
		t.Errorf("Next() mid-year = %v", got)
	}
}

func TestMonthTitleAndKey(t *testing.T) {
	m := Month{2024, time.February}
	if got := m.Title(); got != "February 2024" {
		t.Errorf("Title() = %q", got)
	}
	if got := m.Key(3); got != "2024-02-03" {
		t.Errorf("Key(3) = %q", got)
	}
}

func TestGridLeadingBlanks(t *testing.T) {
	// February 2024 starts on a Thursday: four blank cells, then day 1.
	m := Month{2024, time.February}
	cells := Grid(m, nil, "")

	if len(cells) != 4+29 {
		t.Fatalf("len(cells) = %d, want 33", len(cells))
	}
	for i := 0; i < 4; i++ {
		if cells[i].Day != 0 {
			t.Errorf("cell %d should be blank, got day %d", i, cells[i].Day)
		}
	}
	if cells[4].Day != 1 || cells[4].Key != "2024-02-01" {
		t.Errorf("first day cell = %+v", cells[4])
	}
	if cells[len(cells)-1].Day != 29 {
		t.Errorf("last day = %d, want 29", cells[len(cells)-1].Day)
	}
}

func TestGridMarkers(t *testing.T) {
	m := Month{2024, time.February}
	entries := []models.MonthEntry{
		{Date: "2024-02-05"},
		{Date: "2024-02-14"},
		{Date: "2024-02-14"},
	}
	cells := Grid(m, entries, "2024-02-05")

	byDay := map[int]Cell{}
	for _, c := range cells {
		if c.Day != 0 {
			byDay[c.Day] = c
		}
	}

	if byDay[5].Marker != MarkerSingle {
		t.Errorf("day 5 marker = %v, want single", byDay[5].Marker)
	}
	if !byDay[5].Selected {
		t.Error("day 5 should be selected")
	}
	if byDay[14].Marker != MarkerMultiple {
		t.Errorf("day 14 marker = %v, want multiple", byDay[14].Marker)
	}
	if byDay[6].Marker != MarkerNone {
		t.Errorf("day 6 marker = %v, want none", byDay[6].Marker)
	}
}

func TestGridNilEntries(t *testing.T) {
	cells := Grid(Month{2026, time.March}, nil, "")
	for _, c := range cells {
		if c.Marker != MarkerNone {
			t.Fatalf("cell %+v has marker without entries", c)
		}
	}
}

func TestAgendaFiltersAndSorts(t *testing.T) {
	at := func(hour int) models.Timestamp {
		return models.NewTimestamp(time.Date(2026, time.March, 10, hour, 0, 0, 0, time.Local))
	}
	all := []models.Reminder{
		{ID: 1, Event: "evening", DateTime: at(19)},
		{ID: 2, Event: "other day", DateTime: models.NewTimestamp(time.Date(2026, time.March, 11, 9, 0, 0, 0, time.Local))},
		{ID: 3, Event: "morning", DateTime: at(8)},
		{ID: 4, Event: "noon", DateTime: at(12)},
	}

	got := Agenda(all, "2026-03-10")
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}
	wantOrder := []string{"morning", "noon", "evening"}
	for i, w := range wantOrder {
		if got[i].Event != w {
			t.Errorf("agenda[%d] = %q, want %q", i, got[i].Event, w)
		}
	}
}

func TestAgendaEmptyDay(t *testing.T) {
	all := []models.Reminder{
		{ID: 1, DateTime: models.NewTimestamp(time.Date(2026, time.March, 10, 8, 0, 0, 0, time.Local))},
	}
	if got := Agenda(all, "2026-03-25"); len(got) != 0 {
		t.Errorf("expected empty agenda, got %d entries", len(got))
	}
}
