package format

import (
	"strconv"
	"strings"

	"github.com/mwidmann/remindcal/internal/constants"
	"github.com/mwidmann/remindcal/internal/models"
)

// TitleCase turns a snake_case metadata key into a display label,
// e.g. "favorite_meals" -> "Favorite Meals".
func TitleCase(key string) string {
	words := strings.Split(key, "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	out := strings.Join(words, " ")
	return strings.Join(strings.Fields(out), " ")
}

// Repeat returns the parenthesized recurrence annotation for a reminder,
// or "" when it does not repeat.
func Repeat(r models.Reminder) string {
	if !r.Repeats() {
		return ""
	}
	switch r.RepeatType {
	case models.RepeatYearly:
		return "(repeats yearly)"
	case models.RepeatMonthly:
		if r.RepeatInterval > 1 {
			return "(repeats every " + strconv.Itoa(r.RepeatInterval) + " months)"
		}
		return "(repeats monthly)"
	default:
		return "(repeats)"
	}
}

// ListRow is the one-line label for the flat reminder list.
func ListRow(r models.Reminder) string {
	when := r.Formatted
	if when == "" {
		when = r.DateTime.Time().Local().Format(constants.DateFormat + " " + constants.TimeFormat)
	}
	parts := []string{when, "-", r.Event}
	if rep := Repeat(r); rep != "" {
		parts = append(parts, rep)
	}
	return strings.Join(parts, " ")
}

// AgendaRow is the label for a day-agenda entry: time of day, text, repeat
// annotation, and the notified/pending status tag.
func AgendaRow(r models.Reminder) string {
	parts := []string{r.DateTime.Time().Local().Format(constants.TimeFormat), "-", r.Event}
	if rep := Repeat(r); rep != "" {
		parts = append(parts, rep)
	}
	parts = append(parts, "("+Status(r)+")")
	return strings.Join(parts, " ")
}

// Status returns the notified/pending tag. The server may supply its own
// wording; fall back to a local one when it doesn't.
func Status(r models.Reminder) string {
	if r.NotifiedStatus != "" {
		return r.NotifiedStatus
	}
	if r.Notified {
		return "notified"
	}
	return "pending"
}
