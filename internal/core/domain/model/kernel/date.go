package kernel

import (
	"fmt"
	"time"

	"vetpickup/internal/pkg/errs"
)

const (
	// DateLayout is the wire and storage layout of a Date.
	DateLayout = "2006-01-02"
	// TimeOfDayLayout is the wire and storage layout of a TimeOfDay.
	TimeOfDayLayout = "15:04:05"

	shortTimeOfDayLayout = "15:04"
	secondsPerDay        = 24 * 60 * 60
)

var (
	ErrDateIsNotConstructed      = errs.NewValueIsRequiredError("date")
	ErrTimeOfDayIsNotConstructed = errs.NewValueIsRequiredError("time of day")
)

// Date is a calendar day without a time zone, e.g. a pickup date.
// Internally it is kept as midnight UTC so that two dates compare equal
// regardless of where they were parsed.
type Date struct {
	t time.Time
}

// NewDate builds a Date and rejects days that do not exist (e.g. February 30).
func NewDate(year int, month time.Month, day int) (Date, error) {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || t.Month() != month || t.Day() != day {
		return Date{}, errs.NewValueIsInvalidErrorWithCause(
			"date",
			fmt.Errorf("%04d-%02d-%02d does not exist", year, int(month), day),
		)
	}
	return Date{t: t}, nil
}

// DateOf returns the calendar day of t in t's own location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{t: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses a "2006-01-02" string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, errs.NewValueIsInvalidErrorWithCause("date", err)
	}
	return Date{t: t}, nil
}

func (d Date) String() string {
	if d.t.IsZero() {
		return ""
	}
	return d.t.Format(DateLayout)
}

// Time returns midnight UTC of the day.
func (d Date) Time() time.Time {
	return d.t
}

func (d Date) IsEqual(other Date) bool {
	return d.t.Equal(other.t)
}

func (d Date) Before(other Date) bool {
	return d.t.Before(other.t)
}

func (d Date) Validate() error {
	if d.t.IsZero() {
		return ErrDateIsNotConstructed
	}
	return nil
}

// TimeOfDay is a wall clock time with second precision, e.g. the moment a
// request was registered or the start of a requester's service hours.
type TimeOfDay struct {
	seconds     int
	constructed bool
}

// NewTimeOfDay validates each component separately.
func NewTimeOfDay(hour, minute, second int) (TimeOfDay, error) {
	if hour < 0 || hour > 23 {
		return TimeOfDay{}, errs.NewValueIsOutOfRangeError("hour", hour, 0, 23)
	}
	if minute < 0 || minute > 59 {
		return TimeOfDay{}, errs.NewValueIsOutOfRangeError("minute", minute, 0, 59)
	}
	if second < 0 || second > 59 {
		return TimeOfDay{}, errs.NewValueIsOutOfRangeError("second", second, 0, 59)
	}
	return TimeOfDay{seconds: hour*3600 + minute*60 + second, constructed: true}, nil
}

// TimeOfDayOf returns the wall clock time of t in t's own location, truncated to seconds.
func TimeOfDayOf(t time.Time) TimeOfDay {
	h, m, s := t.Clock()
	return TimeOfDay{seconds: h*3600 + m*60 + s, constructed: true}
}

// ParseTimeOfDay accepts "15:04:05" and "15:04".
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	t, err := time.Parse(TimeOfDayLayout, s)
	if err != nil {
		var shortErr error
		t, shortErr = time.Parse(shortTimeOfDayLayout, s)
		if shortErr != nil {
			return TimeOfDay{}, errs.NewValueIsInvalidErrorWithCause("time of day", err)
		}
	}
	return TimeOfDayOf(t), nil
}

func (t TimeOfDay) Hour() int   { return t.seconds / 3600 }
func (t TimeOfDay) Minute() int { return t.seconds % 3600 / 60 }
func (t TimeOfDay) Second() int { return t.seconds % 60 }

func (t TimeOfDay) String() string {
	if !t.constructed {
		return ""
	}
	return fmt.Sprintf("%02d:%02d:%02d", t.Hour(), t.Minute(), t.Second())
}

// Compare returns -1, 0 or +1 like cmp.Compare.
func (t TimeOfDay) Compare(other TimeOfDay) int {
	switch {
	case t.seconds < other.seconds:
		return -1
	case t.seconds > other.seconds:
		return 1
	default:
		return 0
	}
}

func (t TimeOfDay) Before(other TimeOfDay) bool {
	return t.seconds < other.seconds
}

func (t TimeOfDay) IsEqual(other TimeOfDay) bool {
	return t.constructed == other.constructed && t.seconds == other.seconds
}

// Within reports whether t lies in [start, end], both ends inclusive.
func (t TimeOfDay) Within(start, end TimeOfDay) bool {
	return t.seconds >= start.seconds && t.seconds <= end.seconds
}

func (t TimeOfDay) Validate() error {
	if !t.constructed || t.seconds < 0 || t.seconds >= secondsPerDay {
		return ErrTimeOfDayIsNotConstructed
	}
	return nil
}
