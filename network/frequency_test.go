package network_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/antigravity/transit-raptor/network"
)

func template() network.Trip {
	return network.Trip{
		Departures: []int{0, 600, 1200},
		Arrivals:   []int{0, 600, 1200},
	}
}

func TestGetDepartureAfterBestCase(t *testing.T) {
	entry := network.FrequencyEntry{StartTime: 0, EndTime: 3600, HeadwaySeconds: 600, TripTemplate: template()}

	trip, ok := network.GetDepartureAfter(entry, 0, 100, network.BestCase, network.ResolutionParams{})
	require.True(t, ok)
	assert.Equal(t, 600, trip.Departures[0])
	assert.Equal(t, 1200, trip.Departures[1])
}

func TestGetDepartureAfterHalfHeadway(t *testing.T) {
	entry := network.FrequencyEntry{StartTime: 0, EndTime: 3600, HeadwaySeconds: 600, TripTemplate: template()}

	trip, ok := network.GetDepartureAfter(entry, 0, 0, network.HalfHeadway, network.ResolutionParams{})
	require.True(t, ok)
	assert.Equal(t, 300, trip.Departures[0])
}

func TestGetDepartureAfterAtLaterStop(t *testing.T) {
	entry := network.FrequencyEntry{StartTime: 0, EndTime: 3600, HeadwaySeconds: 600, TripTemplate: template()}

	// Asking to board at stop index 1 (offset 600) no earlier than t=700
	// requires a vehicle whose stop-0 start is at least 100, rounded up to
	// the next headway boundary (600).
	trip, ok := network.GetDepartureAfter(entry, 1, 700, network.BestCase, network.ResolutionParams{})
	require.True(t, ok)
	assert.Equal(t, 600, trip.Departures[0])
	assert.Equal(t, 1200, trip.Departures[1])
}

func TestGetDepartureAfterOutsideWindow(t *testing.T) {
	entry := network.FrequencyEntry{StartTime: 0, EndTime: 1000, HeadwaySeconds: 600, TripTemplate: template()}

	_, ok := network.GetDepartureAfter(entry, 0, 5000, network.BestCase, network.ResolutionParams{})
	assert.False(t, ok)
}

func TestGetDepartureAfterRandomIsDeterministicForASeed(t *testing.T) {
	entry := network.FrequencyEntry{StartTime: 0, EndTime: 3600, HeadwaySeconds: 600, TripTemplate: template()}
	params := network.ResolutionParams{RNG: rand.New(rand.NewSource(42))}

	first, ok := network.GetDepartureAfter(entry, 0, 0, network.Random, params)
	require.True(t, ok)
	assert.GreaterOrEqual(t, first.Departures[0], 0)
	assert.Less(t, first.Departures[0], 600)

	second, ok := network.GetDepartureAfter(entry, 0, 0, network.Random, network.ResolutionParams{RNG: rand.New(rand.NewSource(42))})
	require.True(t, ok)
	assert.Equal(t, first.Departures[0], second.Departures[0], "the same seed must resolve the same boarding")
}

func TestFrequencyEntryForSelectsCoveringEntry(t *testing.T) {
	pattern := network.Pattern{
		Stops: []network.Stop{0, 1, 2},
		Frequencies: []network.FrequencyEntry{
			{StartTime: 0, EndTime: 3600, HeadwaySeconds: 600, TripTemplate: template()},
			{StartTime: 3600, EndTime: 7200, HeadwaySeconds: 300, TripTemplate: template()},
		},
	}

	entry, ok := network.FrequencyEntryFor(pattern, 0, 4000)
	require.True(t, ok)
	assert.Equal(t, 300, entry.HeadwaySeconds)
}
