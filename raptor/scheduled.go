// Package raptor orchestrates the scheduled-RAPTOR state machine (§4.2):
// per-round pattern scanning, transfer relaxation, and frequency-pattern
// resolution, producing the RaptorState chain path reconstruction walks.
//
// The round loop mirrors the teacher's "marked stops, scan trips, relax
// transfers, repeat" shape in go-raptor's SimpleRaptorDepartAt, trading its
// per-call trips_scanned_from_sequence map for the single onboard-trip scan
// classic RAPTOR uses once state is tracked per round rather than per path.
package raptor

import (
	"context"
	"math/rand"

	"github.com/antigravity/transit-raptor/iterutil"
	"github.com/antigravity/transit-raptor/network"
	"github.com/antigravity/transit-raptor/raptorstate"
	"github.com/antigravity/transit-raptor/request"
	"github.com/antigravity/transit-raptor/rlog"
)

// RunScheduledAt executes a single scheduled-RAPTOR search with round-0
// departing at departureTime, seeded by access. It returns the final
// round's state, linked back through Previous to every earlier round.
//
// rng resolves BoardingAssumption Random draws against frequency patterns
// (§4.7); it may be nil, in which case GetDepartureAfter falls back to its
// half-headway default. Single-shot callers that don't care about Monte
// Carlo variance (the CLI's "search" command, most tests) pass nil.
func RunScheduledAt(ctx context.Context, net *network.TransitNetwork, departureTime int, access map[network.Stop]int, req request.Request, rng *rand.Rand) (*raptorstate.State, error) {
	state := raptorstate.New(net.NStops, departureTime, req.MaxDurationSeconds())

	for stop, accessTime := range access {
		state.SetTimeAtStop(stop, departureTime+accessTime, network.NoPattern, network.NoStop, false)
	}
	relaxTransfers(net, req, state)

	for round := 1; round <= req.MaxRides; round++ {
		select {
		case <-ctx.Done():
			return state, ctx.Err()
		default:
		}

		next := state.Copy()
		touchedPatterns := patternsTouchedBy(net, state.NonTransferTouched, state.BestTouched)
		if len(touchedPatterns) == 0 {
			rlog.New("raptor").Warnf("round %d touched no new patterns, stopping early", round)
			break
		}

		for p := range touchedPatterns {
			scanPattern(net, req, net.Patterns[p], p, state, next, rng)
		}
		relaxTransfers(net, req, next)

		state = next
	}

	return state, nil
}

// hasFrequencies reports whether any pattern in net must be resolved
// through GetDepartureAfter rather than a fixed TripSchedules lookup.
func hasFrequencies(net *network.TransitNetwork) bool {
	for _, p := range net.Patterns {
		if p.HasFrequencies() {
			return true
		}
	}
	return false
}

// RunRangeRaptor runs one or more scheduled searches per minute in
// [req.FromTime, req.ToTime], returning the per-minute BestTimes vectors in
// chronological order. This is the "travelTimesToStopsEachIteration[i][stop]"
// input the propagator (§4.5) consumes.
//
// §6's iterations-per-minute rule only multiplies the per-minute search
// count when the network carries frequency patterns: a schedule-only
// network is deterministic, so additional draws at the same departure
// minute would just repeat the same search. When it applies, each minute's
// row is the average, per stop, of every draw's reachable arrival time
// (stops unreached in every draw stay network.UNREACHED).
func RunRangeRaptor(ctx context.Context, net *network.TransitNetwork, access map[network.Stop]int, req request.Request) ([][]int, error) {
	var iterations [][]int
	from := alignToMinute(req.FromTime, false)
	to := alignToMinute(req.ToTime, true)
	windowMinutes := (to-from)/60 + 1
	draws := req.IterationsPerMinute(hasFrequencies(net), windowMinutes)
	prng := rand.New(rand.NewSource(int64(req.OriginLat*1e9) + 1))

	for t := from; t <= to; t += 60 {
		select {
		case <-ctx.Done():
			return iterations, ctx.Err()
		default:
		}
		row, err := runMinuteDraws(ctx, net, t, access, req, draws, prng)
		if err != nil {
			return iterations, err
		}
		iterations = append(iterations, row)
	}
	return iterations, nil
}

// runMinuteDraws runs draws independent scheduled searches departing at t
// and averages each stop's reachable arrival times across them.
func runMinuteDraws(ctx context.Context, net *network.TransitNetwork, t int, access map[network.Stop]int, req request.Request, draws int, prng *rand.Rand) ([]int, error) {
	sums := make([]int64, net.NStops)
	reached := make([]int, net.NStops)

	for i := 0; i < draws; i++ {
		final, err := RunScheduledAt(ctx, net, t, access, req, prng)
		if err != nil {
			return nil, err
		}
		for stop, v := range final.BestTimes {
			if v == network.UNREACHED {
				continue
			}
			sums[stop] += int64(v)
			reached[stop]++
		}
	}

	row := make([]int, net.NStops)
	for stop := range row {
		if reached[stop] == 0 {
			row[stop] = network.UNREACHED
			continue
		}
		row[stop] = int(sums[stop] / int64(reached[stop]))
	}
	return row, nil
}

// scanPattern implements the per-round pattern scan: walk the pattern's
// stops once, alighting from whatever trip is currently "on board" and
// checking whether the previous round's arrival at this stop lets us catch
// an earlier trip than the one we are on.
func scanPattern(net *network.TransitNetwork, req request.Request, pattern network.Pattern, p network.PatternIndex, prevRound *raptorstate.State, next *raptorstate.State, rng *rand.Rand) {
	var onboard *network.Trip
	boardedAtStop := network.NoStop

	for i, stop := range pattern.Stops {
		if onboard != nil {
			next.SetTimeAtStop(stop, onboard.Arrivals[i], p, boardedAtStop, false)
		}

		prevBest := prevRound.BestTimes[stop]
		if prevBest == network.UNREACHED {
			continue
		}
		earliestBoardTime := prevBest + raptorstate.MinBoardTimeSeconds

		candidate, ok := findBoardableTrip(pattern, req, i, earliestBoardTime, rng)
		if !ok {
			continue
		}
		if onboard == nil || candidate.Departures[i] < onboard.Departures[i] {
			onboard = &candidate
			boardedAtStop = stop
		}
	}
}

// findBoardableTrip returns the earliest trip departing stopIndex strictly
// after earliestBoardTime, resolving frequency entries via GetDepartureAfter
// when the pattern has them (§4.7).
func findBoardableTrip(pattern network.Pattern, req request.Request, stopIndex int, earliestBoardTime int, rng *rand.Rand) (network.Trip, bool) {
	it := iterutil.New(pattern.TripSchedules, false)
	for it.HasNext() {
		trip := it.Next()
		if trip.Departures[stopIndex] > earliestBoardTime {
			return trip, true
		}
	}
	if pattern.HasFrequencies() {
		if entry, ok := network.FrequencyEntryFor(pattern, stopIndex, earliestBoardTime+1); ok {
			params := network.ResolutionParams{
				FixedOffsetSeconds: req.FixedBoardingOffset,
				ProportionFraction: req.ProportionFraction,
				RNG:                rng,
			}
			return network.GetDepartureAfter(entry, stopIndex, earliestBoardTime+1, req.BoardingAssumption, params)
		}
	}
	return network.Trip{}, false
}

func relaxTransfers(net *network.TransitNetwork, req request.Request, state *raptorstate.State) {
	speed := req.WalkSpeedMillimetersPerSecond()
	touchedStops := make([]network.Stop, 0)
	for s, touched := range state.NonTransferTouched {
		if touched {
			touchedStops = append(touchedStops, network.Stop(s))
		}
	}
	for _, stop := range touchedStops {
		baseTime := state.BestNonTransferTimes[stop]
		for _, tr := range net.TransfersByStop[stop] {
			walk := tr.WalkSeconds(speed)
			if walk == network.UNREACHED {
				continue
			}
			state.SetTimeAtStop(tr.ToStop, baseTime+walk, network.NoPattern, stop, true)
		}
	}
}

func patternsTouchedBy(net *network.TransitNetwork, nonTransferTouched, bestTouched []bool) map[network.PatternIndex]bool {
	out := make(map[network.PatternIndex]bool)
	for stop, touched := range nonTransferTouched {
		if !touched && !bestTouched[stop] {
			continue
		}
		for _, p := range net.PatternsByStop[stop] {
			out[p] = true
		}
	}
	return out
}
