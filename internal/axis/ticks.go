package axis

import "time"

// Ticks returns every boundary of the interval described by spec within [start, end], in UTC and
// strictly increasing. Endpoints that fall on a boundary are included.
//
// Day and month ticks are consecutive midnights and first-of-month midnights. Year ticks are
// January 1 of the astronomical years divisible by spec.Step, so a step of 10 yields -50, -40,
// ..., 0, 10 across the era boundary.
func Ticks(start, end time.Time, spec Spec) []time.Time {
	start, end = start.UTC(), end.UTC()
	if end.Before(start) {
		return nil
	}
	step := spec.Step
	if step < 1 {
		step = 1
	}

	var ticks []time.Time
	switch spec.Unit {
	case UnitDay:
		y, m, d := start.Date()
		t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
		if t.Before(start) {
			t = t.AddDate(0, 0, 1)
		}
		for ; !t.After(end); t = t.AddDate(0, 0, step) {
			ticks = append(ticks, t)
		}

	case UnitMonth:
		y, m, _ := start.Date()
		t := time.Date(y, m, 1, 0, 0, 0, 0, time.UTC)
		if t.Before(start) {
			t = t.AddDate(0, 1, 0)
		}
		for ; !t.After(end); t = t.AddDate(0, step, 0) {
			ticks = append(ticks, t)
		}

	default:
		year := start.Year()
		if newYear(year).Before(start) {
			year++
		}
		for year = ceilMultiple(year, step); !newYear(year).After(end); year += step {
			ticks = append(ticks, newYear(year))
		}
	}
	return ticks
}

func newYear(year int) time.Time {
	return time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
}

// ceilMultiple rounds n up to the nearest multiple of step, for negative n as well.
func ceilMultiple(n, step int) int {
	q := n / step
	if n%step != 0 && n > 0 {
		q++
	}
	return q * step
}
