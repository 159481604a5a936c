// Package pathrecon walks the back-pointer chain of either a scheduled
// RaptorState history or a McRAPTOR state to produce a sequence of
// (boardStop, alightStop, pattern, trip) legs (§4.4).
package pathrecon

import (
	"github.com/antigravity/transit-raptor/mcraptor"
	"github.com/antigravity/transit-raptor/network"
	"github.com/antigravity/transit-raptor/raptorstate"
	"github.com/antigravity/transit-raptor/rerr"
)

// Leg is one ride or transfer in a reconstructed path.
type Leg struct {
	Pattern    network.PatternIndex
	Trip       network.TripIndex
	BoardStop  network.Stop
	AlightStop network.Stop
	AlightTime int
}

// Path holds the parallel leg arrays described by §3: Patterns, BoardStops,
// AlightStops, AlightTimes, Trips, all implicitly length L via len(Legs).
// Two paths are equal iff their Legs match element-wise.
type Path struct {
	Legs []Leg
}

// Equal reports element-wise equality of the two paths' legs.
func (p *Path) Equal(other *Path) bool {
	if len(p.Legs) != len(other.Legs) {
		return false
	}
	for i := range p.Legs {
		if p.Legs[i] != other.Legs[i] {
			return false
		}
	}
	return true
}

// FromScheduled walks state backwards from destStop to the access stop,
// emitting one leg per round in which the non-transfer arrival at the
// current stop actually changed (§4.4). The scheduled state records no trip,
// so every leg it emits carries Trip == network.NoTrip.
func FromScheduled(state *raptorstate.State, destStop network.Stop) *Path {
	var legs []Leg
	stop := destStop

	for state.Previous != nil {
		if state.Previous.BestNonTransferTimes[stop] == state.BestNonTransferTimes[stop] {
			state = state.Previous
			continue
		}

		legs = append(legs, Leg{
			Pattern:    state.PreviousPatterns[stop],
			Trip:       network.NoTrip,
			BoardStop:  state.PreviousStop[stop],
			AlightStop: stop,
			AlightTime: state.BestNonTransferTimes[stop],
		})

		stop = state.PreviousStop[stop]
		state = state.Previous
		if state.TransferStop[stop] != network.NoStop {
			stop = state.TransferStop[stop]
		}
	}

	reverseLegs(legs)
	return &Path{Legs: legs}
}

// FromProfile walks a McRAPTOR state's Back chain, skipping transfer/access
// nodes (Pattern == NoPattern) and emitting one leg per vehicle alighting.
func FromProfile(final *mcraptor.State) *Path {
	var legs []Leg
	s := final
	for s != nil {
		if s.IsTransfer() {
			s = s.Back
			continue
		}
		if s.Back == nil {
			rerr.Fatal("pathrecon: transit state missing a boarding predecessor")
		}
		legs = append(legs, Leg{
			Pattern:    s.Pattern,
			Trip:       s.Trip,
			BoardStop:  s.Back.Stop,
			AlightStop: s.Stop,
			AlightTime: s.ClockTime,
		})
		s = s.Back
	}
	reverseLegs(legs)
	return &Path{Legs: legs}
}

func reverseLegs(legs []Leg) {
	for i, j := 0, len(legs)-1; i < j; i, j = i+1, j-1 {
		legs[i], legs[j] = legs[j], legs[i]
	}
}
