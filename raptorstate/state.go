// Package raptorstate implements the per-round scheduled-RAPTOR state
// described by the core spec: best arrival times by stop, split between
// times reached by transit and times reached after a street transfer, plus
// the board-side bookkeeping path reconstruction needs.
//
// This mirrors the teacher's RoundSegment "carry my own history forward"
// style (see go-raptor's mod.go), but trades the teacher's per-stop linked
// span list for dense parallel arrays with an explicit predecessor-round
// pointer, as called for by DESIGN NOTES §9 of the core spec.
package raptorstate

import "github.com/antigravity/transit-raptor/network"

// MinBoardTimeSeconds is the scheduled-RAPTOR equivalent of McRAPTOR's
// BOARD_SLACK: the minimum time between becoming available at a stop and
// boarding a departing vehicle there.
const MinBoardTimeSeconds = 60

// State is a round-scoped snapshot of stop times and back-pointers.
type State struct {
	DepartureTime int
	MaxDurationSeconds int

	BestTimes            []int
	BestNonTransferTimes []int
	PreviousPatterns     []network.PatternIndex
	PreviousStop         []network.Stop
	TransferStop         []network.Stop

	// Previous links to the prior round's state. Nil on round 0.
	Previous *State

	// touched bitsets; Copy gives each new round fresh, empty ones.
	NonTransferTouched []bool
	BestTouched        []bool
}

// New allocates a round-0 state with every stop UNREACHED.
func New(nStops int, departureTime int, maxDurationSeconds int) *State {
	s := &State{
		DepartureTime:        departureTime,
		MaxDurationSeconds:   maxDurationSeconds,
		BestTimes:            make([]int, nStops),
		BestNonTransferTimes: make([]int, nStops),
		PreviousPatterns:     make([]network.PatternIndex, nStops),
		PreviousStop:         make([]network.Stop, nStops),
		TransferStop:         make([]network.Stop, nStops),
		NonTransferTouched:   make([]bool, nStops),
		BestTouched:          make([]bool, nStops),
	}
	for i := range s.BestTimes {
		s.BestTimes[i] = network.UNREACHED
		s.BestNonTransferTimes[i] = network.UNREACHED
		s.PreviousPatterns[i] = network.NoPattern
		s.PreviousStop[i] = network.NoStop
		s.TransferStop[i] = network.NoStop
	}
	return s
}

// Copy performs a shallow-array-copy of all parallel arrays, linking the
// copy's Previous back to the receiver. Used to advance to the next round
// while retaining the prior round for path reconstruction.
func (s *State) Copy() *State {
	next := &State{
		DepartureTime:        s.DepartureTime,
		MaxDurationSeconds:   s.MaxDurationSeconds,
		BestTimes:            append([]int(nil), s.BestTimes...),
		BestNonTransferTimes: append([]int(nil), s.BestNonTransferTimes...),
		PreviousPatterns:     append([]network.PatternIndex(nil), s.PreviousPatterns...),
		PreviousStop:         append([]network.Stop(nil), s.PreviousStop...),
		TransferStop:         append([]network.Stop(nil), s.TransferStop...),
		NonTransferTouched:   make([]bool, len(s.NonTransferTouched)),
		BestTouched:          make([]bool, len(s.BestTouched)),
		Previous:             s,
	}
	return next
}

// Min pointwise-merges other into the receiver, used for range-RAPTOR across
// departure minutes. Ties prefer other (it represents the most recently
// searched minute, which took fewer transfers to reach the same time).
func (s *State) Min(other *State) {
	for stop := range s.BestTimes {
		if other.BestTimes[stop] <= s.BestTimes[stop] {
			s.BestTimes[stop] = other.BestTimes[stop]
			s.TransferStop[stop] = other.TransferStop[stop]
		}
		if other.BestNonTransferTimes[stop] <= s.BestNonTransferTimes[stop] {
			s.BestNonTransferTimes[stop] = other.BestNonTransferTimes[stop]
			s.PreviousPatterns[stop] = other.PreviousPatterns[stop]
			s.PreviousStop[stop] = other.PreviousStop[stop]
		}
	}
}

// SetTimeAtStop applies a candidate arrival time, updating the non-transfer
// and/or best fields as appropriate. It returns false (not an error) when
// the candidate exceeds the duration cap, or when it improves neither field.
func (s *State) SetTimeAtStop(stop network.Stop, t int, fromPattern network.PatternIndex, fromStop network.Stop, transfer bool) bool {
	if t > s.DepartureTime+s.MaxDurationSeconds {
		return false
	}

	updated := false
	if !transfer && t < s.BestNonTransferTimes[stop] {
		s.BestNonTransferTimes[stop] = t
		s.PreviousPatterns[stop] = fromPattern
		s.PreviousStop[stop] = fromStop
		s.NonTransferTouched[stop] = true
		updated = true
	}
	if t < s.BestTimes[stop] {
		s.BestTimes[stop] = t
		s.BestTouched[stop] = true
		if transfer {
			s.TransferStop[stop] = fromStop
		} else {
			s.TransferStop[stop] = network.NoStop
		}
		updated = true
	}
	return updated
}

// SetDepartureTime is used in range-RAPTOR to re-anchor the duration cap for
// a new departure minute, invalidating any times that now exceed it.
func (s *State) SetDepartureTime(newDepartureTime int) {
	s.DepartureTime = newDepartureTime
	cutoff := newDepartureTime + s.MaxDurationSeconds
	for stop := range s.BestTimes {
		if s.BestTimes[stop] > cutoff {
			s.BestTimes[stop] = network.UNREACHED
			s.TransferStop[stop] = network.NoStop
		}
		if s.BestNonTransferTimes[stop] > cutoff {
			s.BestNonTransferTimes[stop] = network.UNREACHED
			s.PreviousPatterns[stop] = network.NoPattern
			s.PreviousStop[stop] = network.NoStop
		}
	}
}

// ClearTouched resets both touched bitsets in place.
func (s *State) ClearTouched() {
	for i := range s.NonTransferTouched {
		s.NonTransferTouched[i] = false
		s.BestTouched[i] = false
	}
}
