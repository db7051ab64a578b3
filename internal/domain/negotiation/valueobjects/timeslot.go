package valueobjects

import (
	"fmt"
	"strings"
	"time"
)

const clockLayout = "15:04"

// namedWindows are the fixed installation windows offered in the booking flow.
var namedWindows = map[string][2]string{
	"morning":   {"08:00", "12:00"},
	"afternoon": {"12:00", "17:00"},
	"evening":   {"17:00", "20:00"},
	"all_day":   {"08:00", "20:00"},
}

// TimeSlot is either one of the named windows or an explicit start/end pair
// on the proposed day.
type TimeSlot struct {
	name  string
	start string
	end   string
}

// NewNamedTimeSlot returns one of morning, afternoon, evening or all_day.
func NewNamedTimeSlot(name string) (TimeSlot, error) {
	w, ok := namedWindows[name]
	if !ok {
		return TimeSlot{}, fmt.Errorf("unknown time slot: %s", name)
	}
	return TimeSlot{name: name, start: w[0], end: w[1]}, nil
}

// NewCustomTimeSlot builds an explicit HH:MM window. end must be after start.
func NewCustomTimeSlot(start, end string) (TimeSlot, error) {
	s, err := time.Parse(clockLayout, start)
	if err != nil {
		return TimeSlot{}, fmt.Errorf("invalid start time %q", start)
	}
	e, err := time.Parse(clockLayout, end)
	if err != nil {
		return TimeSlot{}, fmt.Errorf("invalid end time %q", end)
	}
	if !e.After(s) {
		return TimeSlot{}, fmt.Errorf("end time must be after start time")
	}
	return TimeSlot{start: s.Format(clockLayout), end: e.Format(clockLayout)}, nil
}

// ParseTimeSlot reverses String.
func ParseTimeSlot(s string) (TimeSlot, error) {
	if start, end, ok := strings.Cut(s, "-"); ok {
		return NewCustomTimeSlot(start, end)
	}
	return NewNamedTimeSlot(s)
}

// Name is empty for custom windows.
func (t TimeSlot) Name() string  { return t.name }
func (t TimeSlot) Start() string { return t.start }
func (t TimeSlot) End() string   { return t.end }

func (t TimeSlot) IsNamed() bool {
	return t.name != ""
}

func (t TimeSlot) IsZero() bool {
	return t.start == "" && t.end == ""
}

// String is the storage form: the window name, or "HH:MM-HH:MM".
func (t TimeSlot) String() string {
	if t.name != "" {
		return t.name
	}
	return t.start + "-" + t.end
}
