package models

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/mwidmann/remindcal/internal/constants"
)

// RepeatKind describes a reminder's recurrence rule as sent by the server.
type RepeatKind string

const (
	RepeatNone    RepeatKind = "none"
	RepeatYearly  RepeatKind = "yearly"
	RepeatMonthly RepeatKind = "monthly_interval"
	RepeatOther   RepeatKind = "other"
)

// Reminder is the client projection of a server-owned reminder record.
// The server assigns IDs and owns all mutations; the client only renders.
type Reminder struct {
	ID             int64             `json:"id"`
	UserID         string            `json:"user_id,omitempty"`
	Event          string            `json:"event"`
	DateTime       Timestamp         `json:"datetime"`
	Formatted      string            `json:"formatted_datetime,omitempty"`
	RepeatType     RepeatKind        `json:"repeat_type"`
	RepeatInterval int               `json:"repeat_interval,omitempty"`
	Completed      bool              `json:"is_completed"`
	Notified       bool              `json:"notified"`
	NotifiedStatus string            `json:"notified_status,omitempty"`
	Metadata       map[string]string `json:"metadata,omitempty"`
}

// DateKey returns the reminder's local calendar day as YYYY-MM-DD. Agenda
// filtering compares this against the selected day key.
func (r Reminder) DateKey() string {
	return r.DateTime.Time().Local().Format(constants.DateFormat)
}

// Repeats reports whether the reminder has a recurrence rule. RepeatInterval
// is undefined when this is false.
func (r Reminder) Repeats() bool {
	return r.RepeatType != "" && r.RepeatType != RepeatNone
}

// Timestamp wraps time.Time to accept the handful of datetime layouts the
// service emits (RFC3339 and space-separated SQL text).
type Timestamp struct {
	t time.Time
}

// NewTimestamp wraps t.
func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{t: t}
}

// Time returns the underlying time.
func (ts Timestamp) Time() time.Time {
	return ts.t
}

var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
}

func (ts *Timestamp) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	s = strings.TrimSpace(s)
	for _, layout := range timestampLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			ts.t = t
			return nil
		}
	}
	return fmt.Errorf("unrecognized datetime %q", s)
}

func (ts Timestamp) MarshalJSON() ([]byte, error) {
	return json.Marshal(ts.t.Format(constants.DateTimeFormat))
}

// Before reports whether ts is earlier than other. Used for agenda ordering.
func (ts Timestamp) Before(other Timestamp) bool {
	return ts.t.Before(other.t)
}

// MonthEntry is the trimmed per-day projection returned by the month
// endpoint. Only Date matters for grid markers.
type MonthEntry struct {
	Date  string `json:"date"`
	Event string `json:"event,omitempty"`
}

// Result is the generic mutation response: {success, message}.
type Result struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// User is a row from the registration demo's user directory.
type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}
