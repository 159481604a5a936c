package mcraptor

import "github.com/antigravity/transit-raptor/dominate"

// bag separates the states retained at one stop by whether they end in a
// transfer (or access/egress) versus a vehicle alighting, per §4.3's
// "Addition to a bag". Boarding draws from the unified set, since both an
// access/transfer arrival and a vehicle alighting are boardable; the
// non-transfer subset instead feeds the per-round transfer relaxation,
// which must not re-walk a state that arrived at its stop by walking.
type bag struct {
	suboptimalSeconds int
	newList           func() dominate.List

	transfer    dominate.List
	nonTransfer dominate.List
	unified     dominate.List
}

func newBag(newList func() dominate.List) *bag {
	return &bag{
		newList:     newList,
		transfer:    newList(),
		nonTransfer: newList(),
		unified:     newList(),
	}
}

// add inserts s into the unified bag and into the transfer/non-transfer
// subset matching its kind. It returns true if s survived in the unified
// bag (the signal callers use to mark a stop touched).
func (b *bag) add(s *State) bool {
	retained := b.unified.Add(s)
	if !retained {
		return false
	}
	if s.IsTransfer() {
		b.transfer.Add(s)
	} else {
		b.nonTransfer.Add(s)
	}
	return true
}

func (b *bag) nonTransferStates() []*State {
	return castAll(b.nonTransfer.NonDominated())
}

func (b *bag) unifiedStates() []*State {
	return castAll(b.unified.NonDominated())
}

func castAll(ts []dominate.TimedState) []*State {
	out := make([]*State, len(ts))
	for i, t := range ts {
		out[i] = t.(*State)
	}
	return out
}
