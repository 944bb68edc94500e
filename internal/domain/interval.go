package domain

import (
	"fmt"
	"time"
)

// Interval is a half-open [Start, End) time span used for scheduling.
// End is expected to be after Start, but the type itself enforces nothing.
type Interval struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// NewInterval returns an Interval spanning [start, end).
func NewInterval(start, end time.Time) Interval {
	return Interval{Start: start, End: end}
}

// Overlaps reports whether the two intervals intersect under the half-open
// rule: intervals that merely touch (one's End equals the other's Start)
// do not overlap.
func (i Interval) Overlaps(other Interval) bool {
	return i.Start.Before(other.End) && other.Start.Before(i.End)
}

// Before reports whether this interval starts before the other.
func (i Interval) Before(other Interval) bool {
	return i.Start.Before(other.Start)
}

// Equal reports value equality of both bounds.
func (i Interval) Equal(other Interval) bool {
	return i.Start.Equal(other.Start) && i.End.Equal(other.End)
}

func (i Interval) String() string {
	return fmt.Sprintf("[%s, %s)", i.Start.Format(time.RFC3339), i.End.Format(time.RFC3339))
}

// Day identifies a calendar day. It is a plain comparable value, suitable
// as a map key, rather than a formatted string.
type Day struct {
	Year  int        `json:"year"`
	Month time.Month `json:"month"`
	Day   int        `json:"day"`
}

// DayOf returns the calendar day containing t, in t's location.
func DayOf(t time.Time) Day {
	y, m, d := t.Date()
	return Day{Year: y, Month: m, Day: d}
}

// Before reports whether d is an earlier calendar day than other.
func (d Day) Before(other Day) bool {
	if d.Year != other.Year {
		return d.Year < other.Year
	}
	if d.Month != other.Month {
		return d.Month < other.Month
	}
	return d.Day < other.Day
}

func (d Day) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}
