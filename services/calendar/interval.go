package calendar

import (
	"time"

	"realtor/models"
)

// Pure interval math for slot generation. No I/O happens here; the busy set is
// always injected by the caller.

// tileWindow splits [windowStart, windowEnd) into consecutive non-overlapping
// intervals of length d, starting at windowStart. A final partial interval
// whose end would exceed windowEnd is discarded, so only full-duration slots
// are ever produced.
func tileWindow(windowStart, windowEnd time.Time, d time.Duration, timezone string) []models.Interval {
	var slots []models.Interval
	for start := windowStart; start.Before(windowEnd); start = start.Add(d) {
		end := start.Add(d)
		if end.After(windowEnd) {
			break
		}
		slots = append(slots, models.Interval{Start: start, End: end, Timezone: timezone})
	}
	return slots
}

// overlaps reports whether two half-open intervals intersect: the later of the
// starts must precede the earlier of the ends. Touching boundaries do not
// overlap. Comparison is between instants, so intervals expressed in different
// zones compare correctly.
func overlaps(a, b models.Interval) bool {
	latestStart := a.Start
	if b.Start.After(latestStart) {
		latestStart = b.Start
	}
	earliestEnd := a.End
	if b.End.Before(earliestEnd) {
		earliestEnd = b.End
	}
	return latestStart.Before(earliestEnd)
}

// excludeBusy returns the candidates that overlap none of the busy intervals,
// preserving order.
func excludeBusy(candidates, busy []models.Interval) []models.Interval {
	var free []models.Interval
	for _, slot := range candidates {
		blocked := false
		for _, b := range busy {
			if overlaps(slot, b) {
				blocked = true
				break
			}
		}
		if !blocked {
			free = append(free, slot)
		}
	}
	return free
}
