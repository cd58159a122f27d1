/*
Package period resolves highlighted periods on the timeline axis: from a click on the axis, from
dates typed by the user, and through a Controller that owns the selection for a session.
*/
package period

import (
	"fmt"
	"time"

	"timeaxis/internal/calendar"
)

// Period is a highlighted span [Start, End). Start is always before End.
type Period struct {
	Start time.Time
	End   time.Time
}

// New returns the period [start, end), or a *RangeError when start is not before end.
func New(start, end time.Time) (Period, error) {
	if !start.Before(end) {
		return Period{}, &RangeError{Start: start, End: end}
	}
	return Period{Start: start.UTC(), End: end.UTC()}, nil
}

// Contains reports whether t lies in [Start, End).
func (p Period) Contains(t time.Time) bool {
	return !t.Before(p.Start) && t.Before(p.End)
}

// Clip intersects the period with the visible domain [start, end]. It returns false when the
// period lies completely outside it.
func (p Period) Clip(start, end time.Time) (Period, bool) {
	if !p.End.After(start) || !p.Start.Before(end) {
		return Period{}, false
	}
	clipped := p
	if clipped.Start.Before(start) {
		clipped.Start = start
	}
	if clipped.End.After(end) {
		clipped.End = end
	}
	return clipped, true
}

// Equal reports whether both periods cover the same instants.
func (p Period) Equal(o Period) bool {
	return p.Start.Equal(o.Start) && p.End.Equal(o.End)
}

func (p Period) String() string {
	return fmt.Sprintf("%s .. %s", calendar.FromTime(p.Start), calendar.FromTime(p.End))
}
