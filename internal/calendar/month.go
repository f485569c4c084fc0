package calendar

import (
	"fmt"
	"sort"
	"time"

	"github.com/mwidmann/remindcal/internal/models"
)

// Marker classifies a day cell by how many reminders fall on it.
type Marker int

const (
	MarkerNone Marker = iota
	MarkerSingle
	MarkerMultiple
)

// Cell is one day cell of the month grid. Blank cells pad the first week so
// day 1 lands on its weekday column.
type Cell struct {
	Day      int    // 1-based day of month, 0 for a leading blank
	Key      string // YYYY-MM-DD, "" for a leading blank
	Marker   Marker
	Selected bool
}

// Month identifies a visible month. Month is 1-based (time.Month).
type Month struct {
	Year  int
	Month time.Month
}

// CurrentMonth returns the month containing now.
func CurrentMonth(now time.Time) Month {
	return Month{Year: now.Year(), Month: now.Month()}
}

// Next advances one month, wrapping December into January of the next year.
func (m Month) Next() Month {
	if m.Month == time.December {
		return Month{Year: m.Year + 1, Month: time.January}
	}
	return Month{Year: m.Year, Month: m.Month + 1}
}

// Prev goes back one month, wrapping January into December of the prior year.
func (m Month) Prev() Month {
	if m.Month == time.January {
		return Month{Year: m.Year - 1, Month: time.December}
	}
	return Month{Year: m.Year, Month: m.Month - 1}
}

// Title renders e.g. "February 2024".
func (m Month) Title() string {
	return fmt.Sprintf("%s %d", m.Month, m.Year)
}

// Days returns the number of days in the month, via day 0 of the next month.
func (m Month) Days() int {
	return time.Date(m.Year, m.Month+1, 0, 0, 0, 0, 0, time.Local).Day()
}

// StartWeekday returns the weekday of day 1 (Sunday=0), which is also the
// number of leading blank cells in the grid.
func (m Month) StartWeekday() time.Weekday {
	return time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, time.Local).Weekday()
}

// Key returns the YYYY-MM-DD key for a day of this month.
func (m Month) Key(day int) string {
	return fmt.Sprintf("%04d-%02d-%02d", m.Year, int(m.Month), day)
}

// Grid lays out the month as leading blanks followed by numbered cells,
// marking each day by the number of month entries whose date equals its key.
// A nil or empty entries slice produces a marker-free grid, so a failed
// month fetch still yields a fully navigable calendar.
func Grid(m Month, entries []models.MonthEntry, selected string) []Cell {
	counts := make(map[string]int, len(entries))
	for _, e := range entries {
		counts[e.Date]++
	}

	blanks := int(m.StartWeekday())
	days := m.Days()
	cells := make([]Cell, 0, blanks+days)
	for i := 0; i < blanks; i++ {
		cells = append(cells, Cell{})
	}
	for day := 1; day <= days; day++ {
		key := m.Key(day)
		c := Cell{Day: day, Key: key, Selected: key == selected}
		switch n := counts[key]; {
		case n >= 2:
			c.Marker = MarkerMultiple
		case n == 1:
			c.Marker = MarkerSingle
		}
		cells = append(cells, c)
	}
	return cells
}

// Agenda filters the full reminder set down to the given day key and returns
// it in ascending timestamp order. The sort is stable so same-instant
// reminders keep their server order.
func Agenda(all []models.Reminder, dateKey string) []models.Reminder {
	var out []models.Reminder
	for _, r := range all {
		if r.DateKey() == dateKey {
			out = append(out, r)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].DateTime.Before(out[j].DateTime)
	})
	return out
}
