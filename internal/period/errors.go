package period

import (
	"errors"
	"fmt"
	"time"

	"timeaxis/internal/calendar"
)

// Sentinel errors for broad classification. None of them is fatal: callers keep the last valid
// period and carry on.
var (
	ErrDateParse    = errors.New("date parse error")
	ErrInvalidRange = errors.New("invalid range")
	ErrOutOfDomain  = errors.New("click outside tick intervals")
	ErrBusy         = errors.New("scale transition in progress")
	ErrNoPeriod     = errors.New("no period selected")
)

// ParseError reports text that does not resolve to a usable date.
type ParseError struct {
	Input  string
	Reason string
}

func (e *ParseError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("parse date %q: %s", e.Input, e.Reason)
}

func (e *ParseError) Unwrap() error { return ErrDateParse }

// RangeError reports a period whose start is not before its end.
type RangeError struct {
	Start, End time.Time
}

func (e *RangeError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Start.Equal(e.End) {
		return fmt.Sprintf("start date %s equals end date", calendar.FromTime(e.Start))
	}
	return fmt.Sprintf("start date %s is after end date %s", calendar.FromTime(e.Start), calendar.FromTime(e.End))
}

func (e *RangeError) Unwrap() error { return ErrInvalidRange }
