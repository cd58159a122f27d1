package axis

import (
	"fmt"
	"math"
	"time"

	"timeaxis/internal/calendar"
)

// TickLabel is a tick ready to draw: its instant, pixel offset and label lines.
type TickLabel struct {
	Tick  time.Time
	X     float64
	Lines []string
}

// FormatLabel returns the label lines of t on a domain of the given length.
//
// Day-level domains get "D/M/Y" in the Gregorian calendar, followed by the Julian "D/M/Y"
// when the year supports conversion. Month-level domains get "M/Y", longer domains "Y".
// Years are written in historical numbering with a BCE suffix, e.g. "15/3/44BCE".
func FormatLabel(t time.Time, length Span) []string {
	g := calendar.FromTime(t)
	year := calendar.DisplayYear(calendar.HistoricalYear(g.Year))

	switch {
	case length <= DayLimit:
		lines := []string{g.String()}
		if j, ok := calendar.ToJulian(t); ok {
			lines = append(lines, j.String())
		}
		return lines
	case length <= Year:
		return []string{fmt.Sprintf("%d/%s", int(g.Month), year)}
	default:
		return []string{year}
	}
}

// Label formats t for the scale's current domain.
func Label(s Scale, t time.Time) []string {
	start, end := s.Domain()
	return FormatLabel(t, SpanOf(start, end))
}

// TickLabels generates the ticks of the scale's domain and labels each of them.
func TickLabels(s Scale) []TickLabel {
	start, end := s.Domain()
	length := SpanOf(start, end)
	ticks := s.Ticks(SelectGranularity(length))

	labels := make([]TickLabel, 0, len(ticks))
	for _, tick := range ticks {
		labels = append(labels, TickLabel{
			Tick:  tick,
			X:     s.Position(tick),
			Lines: FormatLabel(tick, length),
		})
	}
	return labels
}

// FontSize returns the label font size for crowded day-level domains longer than 15 days: the
// size shrinks inversely with the number of days shown. The second result is false when the
// default font size applies.
func FontSize(length Span) (int, bool) {
	if length > DayLimit || length <= 15*Day {
		return 0, false
	}
	return int(math.Floor(200 / length.Days())), true
}
