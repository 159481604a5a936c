package raptor

// alignToMinute snaps a clock-time in seconds to a minute boundary, rounding
// down unless upper is set, in which case it rounds up (or returns the
// timestamp unchanged if it already falls on a boundary). RunRangeRaptor
// uses this so a caller-supplied window always samples on whole-minute
// departures, matching the one-search-per-minute iteration the propagator
// expects (§4.5).
func alignToMinute(timestamp int, upper bool) int {
	const interval = 60
	lower := timestamp - (timestamp % interval)
	if !upper || lower == timestamp {
		return lower
	}
	return lower + interval
}
