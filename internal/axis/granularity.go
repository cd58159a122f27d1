/*
Package axis chooses tick granularity for a time domain, generates the ticks, maps instants onto
pixel offsets, and formats the Gregorian/Julian labels drawn under each tick.
*/
package axis

import (
	"fmt"
	"time"
)

// Span is the length of a time domain in milliseconds. time.Duration cannot hold domains longer
// than about 292 years, which the axis routinely shows.
type Span int64

// Reference lengths. A year is 366 days for granularity comparisons.
const (
	Day  Span = 24 * 60 * 60 * 1000
	Year Span = 366 * Day

	// DayLimit is the longest domain labelled day by day (31.5 days).
	DayLimit Span = Day * 63 / 2
)

// SpanOf returns the length of the domain [start, end].
func SpanOf(start, end time.Time) Span {
	return Span(end.UnixMilli() - start.UnixMilli())
}

// Days returns the span as a fractional number of days.
func (s Span) Days() float64 {
	return float64(s) / float64(Day)
}

// Unit is the calendar unit ticks are aligned to.
type Unit int

const (
	UnitDay Unit = iota
	UnitMonth
	UnitYear
)

func (u Unit) String() string {
	switch u {
	case UnitDay:
		return "day"
	case UnitMonth:
		return "month"
	default:
		return "year"
	}
}

// Spec is a tick interval: every Step units.
type Spec struct {
	Unit Unit
	Step int
}

func (s Spec) String() string {
	return fmt.Sprintf("%s/%d", s.Unit, s.Step)
}

// SelectGranularity picks the tick interval for a domain of the given length. Thresholds are
// inclusive: a domain of exactly 31.5 days is still labelled by day.
//
//	length <= 31.5 days   day/1
//	length <= 1 year      month/1
//	length <= 10 years    year/1
//	length <= 100 years   year/10
//	otherwise             year/10^floor(log10(length in years))
func SelectGranularity(length Span) Spec {
	switch {
	case length <= DayLimit:
		return Spec{Unit: UnitDay, Step: 1}
	case length <= Year:
		return Spec{Unit: UnitMonth, Step: 1}
	case length <= 10*Year:
		return Spec{Unit: UnitYear, Step: 1}
	case length <= 100*Year:
		return Spec{Unit: UnitYear, Step: 10}
	}

	// Integer powers avoid math.Log10 landing just below an exact power of ten.
	years := float64(length) / float64(Year)
	step := 1
	for float64(step)*10 <= years {
		step *= 10
	}
	return Spec{Unit: UnitYear, Step: step}
}
