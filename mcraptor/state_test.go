package mcraptor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/antigravity/transit-raptor/network"
)

func TestBoardStateRollsPatternHashForward(t *testing.T) {
	access := newAccessState(0, 1000)
	boarded := boardState(access, 5, 0, 1)

	assert.Equal(t, []network.PatternIndex{5}, boarded.Patterns)
	assert.NotEqual(t, access.PatternHash, boarded.PatternHash)
}

func TestAlightStateSkipsBoardingNodeInBackChain(t *testing.T) {
	access := newAccessState(0, 1000)
	boarded := boardState(access, 5, 0, 1)
	alighted := alightState(boarded, 3, 1500)

	assert.Same(t, access, alighted.Back, "alighting must point back to the boarding predecessor, not the boarding node itself")
	assert.Equal(t, network.Stop(3), alighted.Stop)
	assert.False(t, alighted.IsTransfer())
}

func TestTransferStateReusesPredecessorHash(t *testing.T) {
	access := newAccessState(0, 1000)
	boarded := boardState(access, 5, 0, 1)
	alighted := alightState(boarded, 3, 1500)

	transferred := transferState(alighted, 4, 1600)
	assert.Equal(t, alighted.PatternHash, transferred.PatternHash)
	assert.True(t, transferred.IsTransfer())
}

func TestKeyForDistinguishesBoardingSequences(t *testing.T) {
	access := newAccessState(0, 1000)

	viaA := boardState(access, 1, 0, 1)
	viaB := boardState(access, 2, 0, 1)

	require.NotEqual(t, keyFor(viaA), keyFor(viaB))
}

func TestKeyForMatchesIdenticalSequences(t *testing.T) {
	access := newAccessState(0, 1000)

	a := boardState(access, 1, 0, 1)
	b := boardState(access, 1, 0, 1)

	assert.Equal(t, keyFor(a), keyFor(b))
}
