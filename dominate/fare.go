package dominate

// FareCalculator computes the fare accrued by a state's full back-pointer
// chain. Implementations must be monotonically non-decreasing as legs are
// appended and must never return a negative fare; this package trusts that
// contract and does not re-validate it.
type FareCalculator interface {
	CalculateFare(s TimedState) int
}

// FareList holds states pareto-optimal on (time, fare) (§4.1.2).
type FareList struct {
	Fare FareCalculator

	states []TimedState
	fares  []int
}

// NewFareList constructs an empty list backed by the given fare calculator.
func NewFareList(fare FareCalculator) *FareList {
	return &FareList{Fare: fare}
}

// Add implements List.
func (l *FareList) Add(newState TimedState) bool {
	thisFare := l.Fare.CalculateFare(newState)

	kept := l.states[:0]
	keptFares := l.fares[:0]
	for i, other := range l.states {
		otherFare := l.fares[i]
		if other.Time() <= newState.Time() && otherFare <= thisFare {
			// other dominates (or ties) the newcomer: reject outright.
			return false
		}
		if other.Time() >= newState.Time() && otherFare >= thisFare {
			// newcomer dominates (or ties) other: drop other.
			continue
		}
		kept = append(kept, other)
		keptFares = append(keptFares, otherFare)
	}
	l.states = append(kept, newState)
	l.fares = append(keptFares, thisFare)
	return true
}

// NonDominated implements List. FareList never retroactively invalidates a
// member, so this is a plain accessor.
func (l *FareList) NonDominated() []TimedState {
	return l.states
}

// FareAt returns the fare recorded for the i-th retained state, in the same
// order as NonDominated.
func (l *FareList) FareAt(i int) int {
	return l.fares[i]
}
