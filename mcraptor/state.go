// Package mcraptor implements multi-criteria RAPTOR (McRAPTOR) profile
// routing: departure-time sampling, per-round pattern scanning and transfer
// relaxation over per-stop dominating bags, and propagation to egress.
//
// The pattern-sequence dedup here (rolling hash + equality over the full
// Patterns slice) plays the same role as the teacher's RoundSegment
// fingerprint string in go-raptor's mod.go/raptor_models.go — both exist so
// two walks that board the same sequence of lines collapse into one
// candidate instead of exploring every boarding-stop permutation.
package mcraptor

import "github.com/antigravity/transit-raptor/network"

// primes is the rolling pattern-hash table referenced by DESIGN NOTES §9:
// at least 20 values, order-sensitive by round, chosen for low collision
// among bounded pattern sequences.
var primes = [20]uint64{
	1000000007, 1000000009, 1000000021, 1000000033, 1000000087,
	1000000093, 1000000097, 1000000103, 1000000123, 1000000181,
	1000000207, 1000000223, 1000000241, 1000000271, 1000000289,
	1000000297, 1000000321, 1000000349, 1000000363, 1000000403,
}

func primeForRound(round int) uint64 {
	if round < 0 {
		round = 0
	}
	return primes[round%len(primes)]
}

// State is one node in a McRAPTOR path (§3 McRaptorState).
type State struct {
	Back *State

	ClockTime int
	Pattern   network.PatternIndex
	Trip      network.TripIndex
	Stop      network.Stop
	RoundNum  int

	Patterns    []network.PatternIndex
	PatternHash uint64
}

// Time implements dominate.TimedState.
func (s *State) Time() int { return s.ClockTime }

// Round implements dominate.TimedState.
func (s *State) Round() int { return s.RoundNum }

// IsTransfer reports whether this state represents a transfer, access, or
// egress leg rather than a vehicle alighting.
func (s *State) IsTransfer() bool { return s.Pattern == network.NoPattern }

// newAccessState seeds round 0 at stop, having walked/biked/driven there in
// accessTime seconds from the origin.
func newAccessState(stop network.Stop, clockTime int) *State {
	return &State{
		ClockTime: clockTime,
		Pattern:   network.NoPattern,
		Trip:      network.NoTrip,
		Stop:      stop,
		RoundNum:  0,
	}
}

// boardState extends back by boarding pattern/trip at back.Stop, to alight
// later at a stop determined by the caller. Pattern sequence and hash roll
// forward by appending pattern, per DESIGN NOTES §9.
func boardState(back *State, pattern network.PatternIndex, trip network.TripIndex, round int) *State {
	patterns := append(append([]network.PatternIndex(nil), back.Patterns...), pattern)
	return &State{
		Back:        back,
		ClockTime:   back.ClockTime,
		Pattern:     pattern,
		Trip:        trip,
		Stop:        back.Stop,
		RoundNum:    round,
		Patterns:    patterns,
		PatternHash: back.PatternHash + uint64(pattern)*primeForRound(round),
	}
}

// alightState produces the arrival candidate once boarded is walked forward
// to a new stop at arrivalTime.
func alightState(boarded *State, stop network.Stop, arrivalTime int) *State {
	return &State{
		Back:        boarded.Back,
		ClockTime:   arrivalTime,
		Pattern:     boarded.Pattern,
		Trip:        boarded.Trip,
		Stop:        stop,
		RoundNum:    boarded.RoundNum,
		Patterns:    boarded.Patterns,
		PatternHash: boarded.PatternHash,
	}
}

// transferState extends back across a street transfer; transfers reuse the
// predecessor's pattern hash unchanged (only boarding rolls the hash).
func transferState(back *State, stop network.Stop, arrivalTime int) *State {
	return &State{
		Back:        back,
		ClockTime:   arrivalTime,
		Pattern:     network.NoPattern,
		Trip:        network.NoTrip,
		Stop:        stop,
		RoundNum:    back.RoundNum,
		Patterns:    back.Patterns,
		PatternHash: back.PatternHash,
	}
}

// patternKey equates two states iff their full Patterns arrays are
// element-wise equal (StatePatternKey in the core spec).
type patternKey struct {
	hash uint64
	sig  string
}

func keyFor(s *State) patternKey {
	b := make([]byte, 0, len(s.Patterns)*4)
	for _, p := range s.Patterns {
		b = append(b, byte(p), byte(p>>8), byte(p>>16), byte(p>>24))
	}
	return patternKey{hash: s.PatternHash, sig: string(b)}
}
