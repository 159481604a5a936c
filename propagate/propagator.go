// Package propagate implements the stop-to-target extension step (§4.5):
// taking per-iteration travel-time vectors at stops and extending them to
// arbitrary geographic targets via precomputed stop-to-target distance
// tables, streaming each iteration's result through a caller-supplied
// reducer so the full iteration x target matrix is never materialized.
package propagate

import "github.com/antigravity/transit-raptor/network"

// Reducer summarizes one iteration's timesToTargets vector into a single
// scalar (e.g. a selected-percentile travel time), mirroring the
// applyAsInt(timesToTargets[]) collaborator of §6.
type Reducer interface {
	Reduce(timesToTargets []int) int
}

// ReducerFunc adapts a plain function to Reducer.
type ReducerFunc func(timesToTargets []int) int

func (f ReducerFunc) Reduce(timesToTargets []int) int { return f(timesToTargets) }

// Propagator holds the inputs that are constant across iterations: the
// baseline direct-street times and the per-stop distance tables.
type Propagator struct {
	NonTransferTravelTimesToTargets []int
	Targets                         *network.LinkedTargets
	CutoffSeconds                   int
	SpeedMillimetersPerSecond       int64
}

// New constructs a Propagator. speedMetersPerSecond is pre-multiplied to
// integer millimeters/second once, per §4.5.
func New(nonTransferTravelTimesToTargets []int, targets *network.LinkedTargets, cutoffSeconds int, speedMetersPerSecond float64) *Propagator {
	return &Propagator{
		NonTransferTravelTimesToTargets: nonTransferTravelTimesToTargets,
		Targets:                         targets,
		CutoffSeconds:                   cutoffSeconds,
		SpeedMillimetersPerSecond:       int64(speedMetersPerSecond * 1000),
	}
}

// Propagate runs one iteration per row of travelTimesToStopsEachIteration,
// calling reducer once per iteration with a transient buffer and recording
// its result, in iteration order.
func (p *Propagator) Propagate(travelTimesToStopsEachIteration [][]int, reducer Reducer) []int {
	results := make([]int, len(travelTimesToStopsEachIteration))
	timesToTargets := make([]int, len(p.NonTransferTravelTimesToTargets))

	for i, travelTimesToStopsThisIteration := range travelTimesToStopsEachIteration {
		copy(timesToTargets, p.NonTransferTravelTimesToTargets)

		for stop, t := range travelTimesToStopsThisIteration {
			if t == network.UNREACHED || t > p.CutoffSeconds {
				continue
			}
			if p.Targets == nil || stop >= len(p.Targets.StopToTargetDistance) {
				continue
			}
			for _, td := range p.Targets.StopToTargetDistance[stop] {
				if p.SpeedMillimetersPerSecond <= 0 {
					continue
				}
				candidate := t + int(td.DistanceMillimeters/p.SpeedMillimetersPerSecond)
				if candidate < timesToTargets[td.Target] {
					timesToTargets[td.Target] = candidate
				}
			}
		}

		results[i] = reducer.Reduce(timesToTargets)
	}

	return results
}
