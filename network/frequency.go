package network

import "math/rand"

// BoardingAssumption selects how GetDepartureAfter resolves a concrete
// boarding time within a frequency entry's headway window.
type BoardingAssumption int

const (
	BestCase BoardingAssumption = iota
	WorstCase
	HalfHeadway
	Fixed
	Proportion
	Random
)

// FrequencyEntry describes a repeating service over one template trip:
// between StartTime and EndTime, a vehicle following TripTemplate's relative
// stop-to-stop offsets departs every HeadwaySeconds. ExactTimes mirrors the
// GTFS frequencies.txt column of the same name; it is carried for callers
// that need it but does not change GetDepartureAfter's resolution rule.
type FrequencyEntry struct {
	StartTime      int
	EndTime        int
	HeadwaySeconds int
	ExactTimes     bool
	TripTemplate   Trip
}

// FixedOffsetSeconds is used only by BoardingAssumption Fixed.
// ProportionFraction is used only by BoardingAssumption Proportion;
// GetDepartureAfter clamps values outside [0,1] to the nearer bound.
type ResolutionParams struct {
	FixedOffsetSeconds  int
	ProportionFraction  float64
	RNG                 *rand.Rand
}

// GetDepartureAfter resolves a concrete boarding at stopIndex within pattern
// on or after earliestTime, for a pattern whose service at that time is
// described by a frequency entry rather than a scheduled trip. It returns a
// materialized Trip (the template trip shifted so its first stop departs at
// the resolved start) so callers never special-case frequency patterns past
// this point.
//
// ok is false when earliestTime falls outside [entry.StartTime, entry.EndTime)
// for every vehicle start that could still serve stopIndex.
func GetDepartureAfter(entry FrequencyEntry, stopIndex int, earliestTime int, assumption BoardingAssumption, params ResolutionParams) (trip Trip, ok bool) {
	if stopIndex < 0 || stopIndex >= len(entry.TripTemplate.Departures) {
		return Trip{}, false
	}
	headway := entry.HeadwaySeconds
	if headway <= 0 {
		return Trip{}, false
	}

	offsetAtStop := entry.TripTemplate.Departures[stopIndex] - entry.TripTemplate.Departures[0]

	// earliestVehicleStart is the smallest template-trip start time such
	// that the vehicle reaches stopIndex no earlier than earliestTime.
	earliestVehicleStart := earliestTime - offsetAtStop
	if earliestVehicleStart < entry.StartTime {
		earliestVehicleStart = entry.StartTime
	} else {
		// round up to the next headway boundary from StartTime
		sinceStart := earliestVehicleStart - entry.StartTime
		remainder := sinceStart % headway
		if remainder != 0 {
			earliestVehicleStart += headway - remainder
		}
	}
	if earliestVehicleStart >= entry.EndTime {
		return Trip{}, false
	}

	var resolvedStart int
	switch assumption {
	case BestCase:
		resolvedStart = earliestVehicleStart
	case WorstCase:
		resolvedStart = earliestVehicleStart + headway
	case HalfHeadway:
		resolvedStart = earliestVehicleStart + headway/2
	case Fixed:
		resolvedStart = earliestVehicleStart + params.FixedOffsetSeconds
	case Proportion:
		frac := params.ProportionFraction
		if frac < 0 {
			frac = 0
		} else if frac > 1 {
			frac = 1
		}
		resolvedStart = earliestVehicleStart + int(frac*float64(headway))
	case Random:
		if params.RNG == nil {
			resolvedStart = earliestVehicleStart + headway/2
		} else {
			resolvedStart = earliestVehicleStart + params.RNG.Intn(headway)
		}
	default:
		resolvedStart = earliestVehicleStart + headway/2
	}

	shift := resolvedStart - entry.TripTemplate.Departures[0]
	arrivals := make([]int, len(entry.TripTemplate.Arrivals))
	departures := make([]int, len(entry.TripTemplate.Departures))
	for i := range arrivals {
		arrivals[i] = entry.TripTemplate.Arrivals[i] + shift
		departures[i] = entry.TripTemplate.Departures[i] + shift
	}
	return Trip{Arrivals: arrivals, Departures: departures}, true
}

// FrequencyEntryFor returns the first frequency entry, in slice order, whose
// window has not yet ended for a vehicle reaching stopIndex at earliestTime,
// or ok=false if none qualifies. The window's start is not checked, so an
// entry that begins after earliestTime also qualifies.
func FrequencyEntryFor(p Pattern, stopIndex int, earliestTime int) (FrequencyEntry, bool) {
	for _, fe := range p.Frequencies {
		if stopIndex >= len(fe.TripTemplate.Departures) {
			continue
		}
		offsetAtStop := fe.TripTemplate.Departures[stopIndex] - fe.TripTemplate.Departures[0]
		if earliestTime-offsetAtStop < fe.EndTime {
			return fe, true
		}
	}
	return FrequencyEntry{}, false
}
