package dominate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/antigravity/transit-raptor/dominate"
)

type fixedFare struct {
	byTime map[int]int
}

func (f fixedFare) CalculateFare(s dominate.TimedState) int { return f.byTime[s.Time()] }

func TestFareListRejectsDominatedNewcomer(t *testing.T) {
	l := dominate.NewFareList(fixedFare{byTime: map[int]int{100: 2, 200: 3}})

	require.True(t, l.Add(fakeState{time: 100, round: 1}))
	assert.False(t, l.Add(fakeState{time: 200, round: 1}), "slower and pricier must be rejected")
}

func TestFareListDropsStatesItDominates(t *testing.T) {
	l := dominate.NewFareList(fixedFare{byTime: map[int]int{200: 5, 100: 2}})

	require.True(t, l.Add(fakeState{time: 200, round: 1}))
	require.True(t, l.Add(fakeState{time: 100, round: 2}), "faster and cheaper must displace the dominated entry")

	remaining := l.NonDominated()
	require.Len(t, remaining, 1)
	assert.Equal(t, 100, remaining[0].Time())
}

func TestFareListKeepsIncomparableTradeoffs(t *testing.T) {
	l := dominate.NewFareList(fixedFare{byTime: map[int]int{100: 5, 200: 2}})

	require.True(t, l.Add(fakeState{time: 100, round: 1}))
	require.True(t, l.Add(fakeState{time: 200, round: 2}), "slower but cheaper is a genuine tradeoff, not dominated")

	assert.Len(t, l.NonDominated(), 2)
}
