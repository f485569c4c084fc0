package models

import (
	"encoding/json"
	"testing"
	"time"
)

func TestTimestampUnmarshalLayouts(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"rfc3339", `"2026-09-12T14:30:00Z"`},
		{"iso without zone", `"2026-09-12T14:30:00"`},
		{"sql text", `"2026-09-12 14:30:00"`},
		{"sql text no seconds", `"2026-09-12 14:30"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ts Timestamp
			if err := json.Unmarshal([]byte(tt.in), &ts); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			got := ts.Time()
			if got.Year() != 2026 || got.Month() != time.September || got.Day() != 12 {
				t.Errorf("date = %v", got)
			}
			if got.Hour() != 14 || got.Minute() != 30 {
				t.Errorf("time of day = %v", got)
			}
		})
	}
}

func TestTimestampUnmarshalRejectsGarbage(t *testing.T) {
	var ts Timestamp
	if err := json.Unmarshal([]byte(`"next tuesday"`), &ts); err == nil {
		t.Error("expected error for unparseable datetime")
	}
	if err := json.Unmarshal([]byte(`42`), &ts); err == nil {
		t.Error("expected error for non-string datetime")
	}
}

func TestTimestampRoundTrip(t *testing.T) {
	orig := NewTimestamp(time.Date(2026, time.September, 12, 14, 30, 0, 0, time.UTC))
	data, err := json.Marshal(orig)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var back Timestamp
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !back.Time().Equal(orig.Time()) {
		t.Errorf("round trip: got %v, want %v", back.Time(), orig.Time())
	}
}

func TestReminderDateKey(t *testing.T) {
	r := Reminder{DateTime: NewTimestamp(time.Date(2026, time.March, 5, 23, 45, 0, 0, time.Local))}
	if got := r.DateKey(); got != "2026-03-05" {
		t.Errorf("DateKey() = %q", got)
	}
}

func TestReminderRepeats(t *testing.T) {
	tests := []struct {
		kind RepeatKind
		want bool
	}{
		{RepeatNone, false},
		{"", false},
		{RepeatYearly, true},
		{RepeatMonthly, true},
		{RepeatOther, true},
	}
	for _, tt := range tests {
		r := Reminder{RepeatType: tt.kind}
		if got := r.Repeats(); got != tt.want {
			t.Errorf("Repeats() with %q = %v, want %v", tt.kind, got, tt.want)
		}
	}
}

func TestReminderUnmarshalWireShape(t *testing.T) {
	raw := `{
		"id": 7,
		"event": "dentist",
		"datetime": "2026-09-12 14:30:00",
		"repeat_type": "none",
		"is_completed": true,
		"notified": false,
		"metadata": {"location": "downtown", "repeat_type": "none"}
	}`
	var r Reminder
	if err := json.Unmarshal([]byte(raw), &r); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if r.ID != 7 || r.Event != "dentist" {
		t.Errorf("basic fields: %+v", r)
	}
	if !r.Completed || r.Notified {
		t.Errorf("flags: completed=%v notified=%v", r.Completed, r.Notified)
	}
	if r.Metadata["location"] != "downtown" {
		t.Errorf("metadata = %v", r.Metadata)
	}
}
