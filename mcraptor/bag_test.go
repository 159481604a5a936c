package mcraptor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/antigravity/transit-raptor/dominate"
)

func TestBagSeparatesTransferAndNonTransfer(t *testing.T) {
	b := newBag(func() dominate.List { return dominate.NewSuboptimalList(300) })

	access := newAccessState(0, 1000)
	boarded := boardState(access, 5, 0, 1)
	alighted := alightState(boarded, 3, 1500)
	transferred := transferState(alighted, 4, 1600)

	require.True(t, b.add(alighted))
	require.True(t, b.add(transferred))

	assert.Len(t, b.nonTransferStates(), 1)
	assert.Len(t, b.unifiedStates(), 2)
}

func TestBagAddReturnsFalseWhenDominated(t *testing.T) {
	b := newBag(func() dominate.List { return dominate.NewSuboptimalList(0) })

	fast := newAccessState(0, 100)
	slow := newAccessState(0, 500)

	require.True(t, b.add(fast))
	assert.False(t, b.add(slow))
}
