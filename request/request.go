// Package request holds the parameter object both search entrypoints
// accept: the departure-time window, mode set, sub-optimality budget,
// Monte-Carlo draw count, and duration caps (§6).
package request

import "github.com/antigravity/transit-raptor/network"

// NumberOfSearches is the target count of departure-time samples a profile
// search draws from [FromTime, ToTime) (§4.3 step 1).
const NumberOfSearches = 35

// HardCutoffSeconds extends ToTime for the absolute McRAPTOR state cutoff.
const HardCutoffSeconds = 3 * 3600

// Request is the full set of recognized options (§6's table).
type Request struct {
	FromTime int
	ToTime   int

	WalkSpeedMetersPerSecond float64
	BikeSpeedMetersPerSecond float64
	CarSpeedMetersPerSecond  float64

	MaxWalkTimeMinutes int
	MaxBikeTimeMinutes int
	MaxCarTimeMinutes  int
	StreetTimeMinutes  int

	SuboptimalMinutes      int
	MaxTripDurationMinutes int
	MaxRides               int

	MonteCarloDraws int

	// MaxFare, if >= 0, activates the fare-pareto dominating list instead
	// of the suboptimal-budget list.
	MaxFare int

	BoardingAssumption  network.BoardingAssumption
	FixedBoardingOffset int
	ProportionFraction  float64

	// OriginLat seeds the deterministic departure-time/PRNG sampler.
	OriginLat float64
}

// Default returns a Request with the teacher-equivalent defaults this
// module ships: half-headway boarding, a 1.3 m/s walk speed, and a 4-ride
// cap, matching the analysis-mode bound named in §4.3 step 3.
func Default() Request {
	return Request{
		WalkSpeedMetersPerSecond: 1.3,
		BikeSpeedMetersPerSecond: 4.1,
		CarSpeedMetersPerSecond:  17.0,
		MaxWalkTimeMinutes:       30,
		MaxRides:                 4,
		SuboptimalMinutes:        5,
		MaxTripDurationMinutes:   180,
		MonteCarloDraws:          220,
		MaxFare:                  -1,
		BoardingAssumption:       network.HalfHeadway,
	}
}

// WalkSpeedMillimetersPerSecond pre-multiplies the walk speed for integer
// transfer-time and propagation arithmetic, as §4.5 specifies.
func (r Request) WalkSpeedMillimetersPerSecond() int64 {
	return int64(r.WalkSpeedMetersPerSecond * 1000)
}

// SuboptimalSeconds converts SuboptimalMinutes to seconds, as §6 specifies
// ("converted x60").
func (r Request) SuboptimalSeconds() int {
	return r.SuboptimalMinutes * 60
}

// MaxDurationSeconds converts MaxTripDurationMinutes to seconds.
func (r Request) MaxDurationSeconds() int {
	return r.MaxTripDurationMinutes * 60
}

// HardCutoff is the absolute clock-time beyond which no McRAPTOR state may
// be created, regardless of duration caps.
func (r Request) HardCutoff() int {
	return r.ToTime + HardCutoffSeconds
}

// IterationsPerMinute implements the "monteCarloDraws, iterations-per-minute
// rule" row of §6: ceil(draws / windowMinutes) when the network carries
// frequencies, else 1.
func (r Request) IterationsPerMinute(hasFrequencies bool, windowMinutes int) int {
	if !hasFrequencies || windowMinutes <= 0 {
		return 1
	}
	n := (r.MonteCarloDraws + windowMinutes - 1) / windowMinutes
	if n < 1 {
		return 1
	}
	return n
}
