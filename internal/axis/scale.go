package axis

import (
	"math"
	"time"
)

// Scale maps instants onto pixel offsets and back. Hosts supply one; the labeling code only
// reads it.
type Scale interface {
	Position(t time.Time) float64
	Invert(x float64) time.Time
	Domain() (start, end time.Time)
	Ticks(spec Spec) []time.Time
}

// TimeScale is a linear Scale from a time domain onto a pixel range.
type TimeScale struct {
	start, end time.Time
	r0, r1     float64
}

// NewTimeScale maps [start, end] onto the pixel range [r0, r1].
func NewTimeScale(start, end time.Time, r0, r1 float64) *TimeScale {
	return &TimeScale{start: start.UTC(), end: end.UTC(), r0: r0, r1: r1}
}

// WithDomain returns a scale over the same pixel range showing [start, end].
func (s *TimeScale) WithDomain(start, end time.Time) *TimeScale {
	return NewTimeScale(start, end, s.r0, s.r1)
}

func (s *TimeScale) Domain() (time.Time, time.Time) { return s.start, s.end }

// Range returns the pixel range.
func (s *TimeScale) Range() (float64, float64) { return s.r0, s.r1 }

// Length returns the domain length.
func (s *TimeScale) Length() Span { return SpanOf(s.start, s.end) }

func (s *TimeScale) Position(t time.Time) float64 {
	d0 := float64(s.start.UnixMilli())
	d1 := float64(s.end.UnixMilli())
	if d1 == d0 {
		return (s.r0 + s.r1) / 2
	}
	return s.r0 + (float64(t.UnixMilli())-d0)/(d1-d0)*(s.r1-s.r0)
}

// Invert returns the instant at pixel offset x, rounded to the millisecond.
func (s *TimeScale) Invert(x float64) time.Time {
	if s.r1 == s.r0 {
		return s.start
	}
	d0 := float64(s.start.UnixMilli())
	d1 := float64(s.end.UnixMilli())
	ms := d0 + (x-s.r0)/(s.r1-s.r0)*(d1-d0)
	return time.UnixMilli(int64(math.Round(ms))).UTC()
}

// Ticks generates the ticks of spec across the domain.
func (s *TimeScale) Ticks(spec Spec) []time.Time {
	return Ticks(s.start, s.end, spec)
}

// DefaultTicks generates ticks at the granularity chosen for the scale's domain.
func DefaultTicks(s Scale) []time.Time {
	start, end := s.Domain()
	return s.Ticks(SelectGranularity(SpanOf(start, end)))
}
