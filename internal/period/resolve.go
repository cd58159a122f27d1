package period

import "timeaxis/internal/axis"

// ResolveClick returns the tick interval under pixel offset x: the first adjacent tick pair with
// tick[i] <= instant < tick[i+1]. Clicks before the first or after the last tick resolve to
// nothing.
func ResolveClick(x float64, s axis.Scale) (Period, bool) {
	at := s.Invert(x)
	ticks := axis.DefaultTicks(s)
	for i := 0; i+1 < len(ticks); i++ {
		if p := (Period{Start: ticks[i], End: ticks[i+1]}); p.Contains(at) {
			return p, true
		}
	}
	return Period{}, false
}
