package network_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/antigravity/transit-raptor/network"
)

func TestTripFIFO(t *testing.T) {
	early := network.Trip{Departures: []int{0, 100}, Arrivals: []int{0, 100}}
	late := network.Trip{Departures: []int{10, 130}, Arrivals: []int{10, 130}}
	overtaking := network.Trip{Departures: []int{10, 90}, Arrivals: []int{10, 90}}

	assert.True(t, early.FIFO(late))
	assert.False(t, late.FIFO(overtaking))
}

func TestTransferWalkSeconds(t *testing.T) {
	tr := network.Transfer{FromStop: 0, ToStop: 1, DistanceMillimeters: 130_000}

	assert.Equal(t, 100, tr.WalkSeconds(1300))
	assert.Equal(t, network.UNREACHED, tr.WalkSeconds(0))
}

func TestNewTransitNetworkDerivesPatternsByStop(t *testing.T) {
	patterns := []network.Pattern{
		{Stops: []network.Stop{0, 1, 2}},
		{Stops: []network.Stop{2, 3}},
	}
	net := network.NewTransitNetwork(4, patterns, nil)

	require.Len(t, net.PatternsByStop, 4)
	assert.Equal(t, []network.PatternIndex{0}, net.PatternsByStop[0])
	assert.Equal(t, []network.PatternIndex{0, 1}, net.PatternsByStop[2])
	assert.Equal(t, []network.PatternIndex{1}, net.PatternsByStop[3])
}

func TestPatternHasFrequencies(t *testing.T) {
	scheduled := network.Pattern{Stops: []network.Stop{0, 1}}
	frequency := network.Pattern{
		Stops:       []network.Stop{0, 1},
		Frequencies: []network.FrequencyEntry{{StartTime: 0, EndTime: 100, HeadwaySeconds: 10}},
	}

	assert.False(t, scheduled.HasFrequencies())
	assert.True(t, frequency.HasFrequencies())
}
