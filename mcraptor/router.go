package mcraptor

import (
	"context"
	"math/rand"

	"github.com/antigravity/transit-raptor/dominate"
	"github.com/antigravity/transit-raptor/iterutil"
	"github.com/antigravity/transit-raptor/network"
	"github.com/antigravity/transit-raptor/request"
	"github.com/antigravity/transit-raptor/rerr"
	"github.com/antigravity/transit-raptor/rlog"
)

// BoardSlackSeconds is McRAPTOR's BOARD_SLACK (§6): the minimum time
// between becoming available at a stop and boarding a departing vehicle.
const BoardSlackSeconds = 60

// Result is the aggregate of every departure sample's final states.
type Result struct {
	States []*State
}

// RunProfile executes the full McRAPTOR profile search described by §4.3:
// departure sampling, per-round pattern scan and transfer relaxation over
// dominating bags, egress extension, and aggregation across samples.
//
// ctx is checked between rounds and between departure samples (DESIGN
// NOTES §9); a cancellation returns the states accumulated so far alongside
// ctx.Err().
func RunProfile(ctx context.Context, net *network.TransitNetwork, access map[network.Stop]int, egress map[network.Stop]int, req request.Request, fare dominate.FareCalculator) (*Result, error) {
	if hasFrequencies(net) {
		return nil, rerr.Unsupported("profile routing over a network with frequency-based patterns")
	}

	newList := func() dominate.List {
		if req.MaxFare >= 0 {
			return dominate.NewFareList(fare)
		}
		return dominate.NewSuboptimalList(req.SuboptimalSeconds())
	}

	prng := rand.New(rand.NewSource(originSeed(req.OriginLat)))
	samples := sampleDepartureTimes(req, prng)

	finalList := newList()

	for _, departureTime := range samples {
		select {
		case <-ctx.Done():
			return &Result{States: castAll(finalList.NonDominated())}, ctx.Err()
		default:
		}

		rt := &router{net: net, req: req, newList: newList, prng: prng}
		if err := rt.runOneSample(ctx, departureTime, access, egress, finalList); err != nil {
			return &Result{States: castAll(finalList.NonDominated())}, err
		}
	}

	return &Result{States: castAll(finalList.NonDominated())}, nil
}

func hasFrequencies(net *network.TransitNetwork) bool {
	for _, p := range net.Patterns {
		if p.HasFrequencies() {
			return true
		}
	}
	return false
}

// originSeed derives a deterministic PRNG seed from the origin latitude, per
// DESIGN NOTES §9.
func originSeed(lat float64) int64 {
	return int64(lat * 1e9)
}

// sampleDepartureTimes implements §4.3 step 1: walk backwards from
// toTime-60 to fromTime, subtracting a random gap in
// [0, maxSamplingFrequency) at each step. A zero-width gap is bumped to 1 to
// guarantee termination; the core spec does not address this edge case
// explicitly.
func sampleDepartureTimes(req request.Request, prng *rand.Rand) []int {
	from, to := req.FromTime, req.ToTime
	window := to - from
	if window <= 0 {
		return []int{from}
	}
	maxSamplingFrequency := 2 * window / request.NumberOfSearches
	if maxSamplingFrequency < 1 {
		maxSamplingFrequency = 1
	}

	var samples []int
	t := to - 60
	for t >= from {
		samples = append(samples, t)
		gap := prng.Intn(maxSamplingFrequency)
		if gap == 0 {
			gap = 1
		}
		t -= gap
	}
	return samples
}

// router holds the per-sample mutable scan state.
type router struct {
	net     *network.TransitNetwork
	req     request.Request
	newList func() dominate.List
	prng    *rand.Rand
}

func (rt *router) runOneSample(ctx context.Context, departureTime int, access map[network.Stop]int, egress map[network.Stop]int, finalList dominate.List) error {
	bags := make(map[network.Stop]*bag)

	touchedStops := make(map[network.Stop]bool)
	for stop, accessTime := range access {
		rt.addState(bags, touchedStops, stop, departureTime+accessTime, network.NoPattern, network.NoTrip, nil)
	}
	touchedByAccessTransfer := rt.relaxTransfers(bags, touchedStops, 0, (*bag).unifiedStates)
	for stop := range touchedByAccessTransfer {
		touchedStops[stop] = true
	}
	touchedPatterns := rt.patternsFor(touchedStops)

	for round := 1; round <= rt.req.MaxRides; round++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		if len(touchedPatterns) == 0 {
			rlog.New("mcraptor").Warnf("round %d touched no new patterns, stopping early", round)
			break
		}
		touchedStops = rt.doOneRound(bags, touchedPatterns, round)
		touchedPatterns = rt.patternsFor(touchedStops)
	}

	for stop, egressTime := range egress {
		b, ok := bags[stop]
		if !ok {
			continue
		}
		for _, s := range b.unifiedStates() {
			arrival := s.ClockTime + egressTime
			if arrival > rt.req.HardCutoff() {
				continue
			}
			finalList.Add(transferState(s, network.NoStop, arrival))
		}
	}
	return nil
}

type onboard struct {
	state *State
	trip  network.TripIndex
}

// doOneRound implements §4.3's per-round pattern scan and transfer
// relaxation, returning the set of stops touched (by alighting or
// transfer) this round.
func (rt *router) doOneRound(bags map[network.Stop]*bag, touchedPatterns map[network.PatternIndex]bool, round int) map[network.Stop]bool {
	touchedByAlight := make(map[network.Stop]bool)

	for p := range touchedPatterns {
		pattern := rt.net.Patterns[p]
		statesPerSeq := make(map[patternKey]onboard)

		for i, stop := range pattern.Stops {
			for _, ob := range statesPerSeq {
				trip := pattern.TripSchedules[ob.trip]
				arrival := trip.Arrivals[i]
				rt.addState(bags, touchedByAlight, stop, arrival, p, ob.trip, ob.state)
			}

			if prevBag, ok := bags[stop]; ok {
				for _, s := range prevBag.unifiedStates() {
					if s.RoundNum != round-1 {
						continue
					}
					prevBoardPattern := s.Pattern
					if prevBoardPattern == network.NoPattern && s.Back != nil {
						prevBoardPattern = s.Back.Pattern
					}
					if s.Pattern == p || prevBoardPattern == p {
						continue
					}
					tripIdx, ok := earliestTripAfter(pattern, i, s.ClockTime+BoardSlackSeconds)
					if !ok {
						continue
					}
					key := keyFor(s)
					if existing, has := statesPerSeq[key]; !has || tripIdx < existing.trip {
						statesPerSeq[key] = onboard{state: s, trip: tripIdx}
					}
				}
			}
		}
	}

	touchedByTransfer := rt.doTransfers(bags, touchedByAlight, round)

	all := make(map[network.Stop]bool, len(touchedByAlight)+len(touchedByTransfer))
	for s := range touchedByAlight {
		all[s] = true
	}
	for s := range touchedByTransfer {
		all[s] = true
	}
	return all
}

// doTransfers relaxes transfers from stops reached by a vehicle alighting
// this round (touched holds only alight-kind stops, so the non-transfer
// subset of each bag is the correct source).
func (rt *router) doTransfers(bags map[network.Stop]*bag, touched map[network.Stop]bool, round int) map[network.Stop]bool {
	return rt.relaxTransfers(bags, touched, round, (*bag).nonTransferStates)
}

// relaxTransfers walks touched stops and extends every round-round state
// returned by states(bag) across the network's street transfers. Round 0's
// access-seeded states are transfer-kind (IsTransfer reports true for
// access states too), so runOneSample passes unifiedStates there instead of
// the alighting-only nonTransferStates doTransfers uses for later rounds.
func (rt *router) relaxTransfers(bags map[network.Stop]*bag, touched map[network.Stop]bool, round int, states func(*bag) []*State) map[network.Stop]bool {
	result := make(map[network.Stop]bool)
	speed := rt.req.WalkSpeedMillimetersPerSecond()

	for stop := range touched {
		b, ok := bags[stop]
		if !ok {
			continue
		}
		for _, s := range states(b) {
			if s.RoundNum != round {
				continue
			}
			for _, tr := range rt.net.TransfersByStop[stop] {
				walk := tr.WalkSeconds(speed)
				if walk == network.UNREACHED {
					continue
				}
				rt.addState(bags, result, tr.ToStop, s.ClockTime+walk, network.NoPattern, network.NoTrip, s)
			}
		}
	}
	return result
}

func (rt *router) patternsFor(stops map[network.Stop]bool) map[network.PatternIndex]bool {
	out := make(map[network.PatternIndex]bool)
	for stop := range stops {
		for _, p := range rt.net.PatternsByStop[stop] {
			out[p] = true
		}
	}
	return out
}

func (rt *router) getBag(bags map[network.Stop]*bag, stop network.Stop) *bag {
	b, ok := bags[stop]
	if !ok {
		b = newBag(rt.newList)
		bags[stop] = b
	}
	return b
}

// addState implements §4.3's "Addition to a bag": reject states beyond the
// hard cutoff, fatal on back-pointer monotonicity violations, and delegate
// to the stop's bag.
func (rt *router) addState(bags map[network.Stop]*bag, touched map[network.Stop]bool, stop network.Stop, t int, pattern network.PatternIndex, trip network.TripIndex, back *State) (*State, bool) {
	if t > rt.req.HardCutoff() {
		return nil, false
	}
	if back != nil && back.ClockTime > t {
		rerr.Fataf("mcraptor: back-pointer time decrease (%d > %d) at stop %d", back.ClockTime, t, stop)
	}

	var s *State
	switch {
	case back == nil:
		s = newAccessState(stop, t)
	case pattern == network.NoPattern:
		s = transferState(back, stop, t)
	default:
		boarded := boardState(back, pattern, trip, back.RoundNum+1)
		s = alightState(boarded, stop, t)
	}

	b := rt.getBag(bags, stop)
	ok := b.add(s)
	if ok {
		touched[stop] = true
	}
	return s, ok
}

// earliestTripAfter finds the earliest trip on pattern whose departure from
// stopIndex is strictly after `after`, relying on the FIFO invariant (§3)
// that departures at a fixed stop position are non-decreasing in trip
// order.
func earliestTripAfter(pattern network.Pattern, stopIndex int, after int) (network.TripIndex, bool) {
	it := iterutil.New(pattern.TripSchedules, false)
	idx := 0
	for it.HasNext() {
		trip := it.Next()
		if trip.Departures[stopIndex] > after {
			return network.TripIndex(idx), true
		}
		idx++
	}
	return network.NoTrip, false
}
