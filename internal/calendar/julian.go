package calendar

import "time"

// Phase places a date relative to the century leap-day transition of its year.
type Phase int

const (
	// Steady years have no transition: the gap is constant all year.
	Steady Phase = iota
	// Before the transition the pre-increase gap applies.
	Before
	// At the transition instant the Julian calendar has a leap day the Gregorian lacks.
	At
	// After the transition the post-increase gap applies.
	After
)

func (p Phase) String() string {
	switch p {
	case Before:
		return "before"
	case At:
		return "at"
	case After:
		return "after"
	default:
		return "steady"
	}
}

// Gap returns the number of days the Julian calendar lags the Gregorian calendar in the
// astronomical year, once any transition of that year has happened.
func Gap(year int) int {
	return floorDiv(year, 100) - floorDiv(year, 400) - 2
}

// IsTransitionYear reports whether the year is a century that the Julian calendar treats as a
// leap year and the Gregorian calendar does not.
func IsTransitionYear(year int) bool {
	return year%100 == 0 && year%400 != 0
}

// TransitionDate returns the Gregorian date on which the gap grows by one in a transition year:
// March 1 shifted forward by the pre-increase gap. It corresponds to Julian 29 February.
func TransitionDate(year int) time.Time {
	marchFirst := time.Date(year, time.March, 1, 0, 0, 0, 0, time.UTC)
	return marchFirst.AddDate(0, 0, Gap(year)-1)
}

// TransitionPhase classifies the day of t against its year's transition date.
func TransitionPhase(t time.Time) Phase {
	day := midnight(t)
	if !IsTransitionYear(day.Year()) {
		return Steady
	}
	switch edge := TransitionDate(day.Year()); {
	case day.Before(edge):
		return Before
	case day.Equal(edge):
		return At
	default:
		return After
	}
}

// ToJulian converts the Gregorian day of t into its proleptic Julian date. It returns false
// when the year lies outside the supported range; callers omit the Julian rendering then.
func ToJulian(t time.Time) (Date, bool) {
	day := midnight(t)
	year := day.Year()
	if !Supported(year) {
		return Date{}, false
	}

	switch TransitionPhase(day) {
	case At:
		return Date{Year: year, Month: time.February, Day: 29}, true
	case Before:
		return FromTime(day.AddDate(0, 0, -(Gap(year) - 1))), true
	default:
		return FromTime(day.AddDate(0, 0, -Gap(year))), true
	}
}

func midnight(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
