package summary

import (
	"f1telemetrydashboard/pkg/openf1"
	"f1telemetrydashboard/pkg/reference"
)

// maxRaceLaps bounds stint expansion. The remote data occasionally carries a
// stint with no lap_end; treating that as "to end of race" must not turn
// into unbounded work, so the default and any provided lap_end are clamped.
const maxRaceLaps = 200

// tireMap expands each stint's inclusive [lap_start, lap_end] range into a
// lap-number to compound lookup. Overlapping stints resolve last-write-wins
// in fetch order.
func tireMap(stints []openf1.Stint) map[int]string {
	tires := make(map[int]string)
	for _, stint := range stints {
		compound := stint.Compound
		if compound == "" {
			compound = reference.CompoundUnknown
		}
		lapStart := 1
		if stint.LapStart != nil && *stint.LapStart > 0 {
			lapStart = *stint.LapStart
		}
		lapEnd := maxRaceLaps
		if stint.LapEnd != nil && *stint.LapEnd < maxRaceLaps {
			lapEnd = *stint.LapEnd
		}
		for lap := lapStart; lap <= lapEnd; lap++ {
			tires[lap] = compound
		}
	}
	return tires
}

// compoundForLap resolves a lap number against the stint lookup, falling
// back to the unknown sentinel when no stint covers it.
func compoundForLap(tires map[int]string, lapNumber int) string {
	if compound, ok := tires[lapNumber]; ok {
		return compound
	}
	return reference.CompoundUnknown
}
