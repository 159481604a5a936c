package dominate

// SuboptimalList retains every state within SuboptimalSeconds of the best
// observed time, except those strictly dominated by an earlier-round state
// at the same or better time (§4.1.1).
type SuboptimalList struct {
	SuboptimalSeconds int

	bestTime int
	states   []TimedState
}

// NewSuboptimalList constructs an empty list with the given tolerance.
func NewSuboptimalList(suboptimalSeconds int) *SuboptimalList {
	return &SuboptimalList{SuboptimalSeconds: suboptimalSeconds, bestTime: int(^uint(0) >> 1)}
}

// Add implements List.
func (l *SuboptimalList) Add(newState TimedState) bool {
	if len(l.states) > 0 && l.bestTime+l.SuboptimalSeconds < newState.Time() {
		return false
	}
	for _, s := range l.states {
		if s.Round() < newState.Round() && s.Time() <= newState.Time() {
			return false
		}
	}
	if newState.Time() < l.bestTime {
		l.bestTime = newState.Time()
	}
	l.states = append(l.states, newState)
	return true
}

// prune removes any state whose time now exceeds the (possibly improved)
// best time plus the tolerance.
func (l *SuboptimalList) prune() {
	threshold := l.bestTime + l.SuboptimalSeconds
	kept := l.states[:0]
	for _, s := range l.states {
		if s.Time() < threshold {
			kept = append(kept, s)
		}
	}
	l.states = kept
}

// NonDominated implements List.
func (l *SuboptimalList) NonDominated() []TimedState {
	l.prune()
	return l.states
}
