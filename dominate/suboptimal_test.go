package dominate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/antigravity/transit-raptor/dominate"
)

type fakeState struct {
	time  int
	round int
}

func (f fakeState) Time() int  { return f.time }
func (f fakeState) Round() int { return f.round }

func TestSuboptimalListKeepsFewerRoundsEvenWithWorseTime(t *testing.T) {
	l := dominate.NewSuboptimalList(60)

	require.True(t, l.Add(fakeState{time: 100, round: 2}))
	require.True(t, l.Add(fakeState{time: 130, round: 1}), "fewer rounds at a worse-but-in-tolerance time is not dominated")

	assert.Len(t, l.NonDominated(), 2)
}

func TestSuboptimalListRejectsBeyondTolerance(t *testing.T) {
	l := dominate.NewSuboptimalList(60)

	require.True(t, l.Add(fakeState{time: 100, round: 1}))
	assert.False(t, l.Add(fakeState{time: 200, round: 2}))
}

func TestSuboptimalListRejectsDominatedByEarlierRound(t *testing.T) {
	l := dominate.NewSuboptimalList(60)

	require.True(t, l.Add(fakeState{time: 100, round: 1}))
	assert.False(t, l.Add(fakeState{time: 100, round: 2}), "a later round at the same time must not improve anything")
}

func TestSuboptimalListPrunesOnImprovement(t *testing.T) {
	l := dominate.NewSuboptimalList(60)

	require.True(t, l.Add(fakeState{time: 150, round: 1}))
	require.True(t, l.Add(fakeState{time: 90, round: 2}))

	remaining := l.NonDominated()
	assert.Len(t, remaining, 1, "once a better time arrives, the stale entry must fall outside the tolerance window")
	assert.Equal(t, 90, remaining[0].Time())
}
