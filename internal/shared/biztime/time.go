// Package biztime holds the business timezone. Timestamps are stored in UTC;
// calendar dates such as a proposed installation day are interpreted in the
// business timezone.
package biztime

import (
	"fmt"
	"sync"
	"time"
)

// DefaultTimezone is used when no timezone is configured.
const DefaultTimezone = "Europe/Dublin"

// DateLayout is the wire format for calendar dates.
const DateLayout = "2006-01-02"

var (
	bizLocation     *time.Location
	bizLocationOnce sync.Once
	initErr         error
)

// Init sets the business timezone once per process.
func Init(tz string) error {
	bizLocationOnce.Do(func() {
		if tz == "" {
			tz = DefaultTimezone
		}
		bizLocation, initErr = time.LoadLocation(tz)
	})
	return initErr
}

func MustInit(tz string) {
	if err := Init(tz); err != nil {
		panic(fmt.Sprintf("failed to initialize business timezone %q: %v", tz, err))
	}
}

func Location() *time.Location {
	if bizLocation == nil {
		MustInit("")
	}
	return bizLocation
}

func NowUTC() time.Time {
	return time.Now().UTC()
}

// Today returns midnight of the current business day.
func Today() time.Time {
	return StartOfDay(time.Now())
}

// StartOfDay returns midnight of t's business day, in the business timezone.
func StartOfDay(t time.Time) time.Time {
	b := t.In(Location())
	return time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, Location())
}

// ParseDate parses a YYYY-MM-DD calendar date in the business timezone.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, s, Location())
}

// FormatDate renders t's business day as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.In(Location()).Format(DateLayout)
}
