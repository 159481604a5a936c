package raptor_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/antigravity/transit-raptor/network"
	"github.com/antigravity/transit-raptor/pathrecon"
	"github.com/antigravity/transit-raptor/raptor"
	"github.com/antigravity/transit-raptor/request"
)

// threeStopChain: stop0 -> stop1 -> stop2 on a single pattern with one trip,
// plus a direct walk transfer from stop0 to stop2 that is slower than riding
// through.
func threeStopChain() *network.TransitNetwork {
	pattern := network.Pattern{
		Stops: []network.Stop{0, 1, 2},
		TripSchedules: []network.Trip{
			{
				Departures: []int{8 * 3600, 8*3600 + 300, 8*3600 + 600},
				Arrivals:   []int{8 * 3600, 8*3600 + 300, 8*3600 + 600},
			},
		},
	}
	transfers := make([][]network.Transfer, 3)
	transfers[0] = []network.Transfer{{FromStop: 0, ToStop: 2, DistanceMillimeters: 2_000_000}} // ~1538s at 1.3 m/s
	return network.NewTransitNetwork(3, []network.Pattern{pattern}, transfers)
}

func TestRunScheduledAtPrefersTransitOverSlowWalk(t *testing.T) {
	net := threeStopChain()
	req := request.Default()
	req.MaxRides = 2

	// Depart early enough that access leaves the MinBoardTimeSeconds slack
	// the first round's pattern scan requires to board the 08:00 trip.
	departureTime := 8*3600 - 120
	access := map[network.Stop]int{0: 0}
	final, err := raptor.RunScheduledAt(context.Background(), net, departureTime, access, req, nil)
	require.NoError(t, err)

	assert.Equal(t, 8*3600+600, final.BestTimes[2], "riding the whole way must beat the slow direct walk")

	path := pathrecon.FromScheduled(final, 2)
	require.Len(t, path.Legs, 1)
	assert.Equal(t, network.PatternIndex(0), path.Legs[0].Pattern)
	assert.Equal(t, network.Stop(0), path.Legs[0].BoardStop)
	assert.Equal(t, network.Stop(2), path.Legs[0].AlightStop)
}

func TestRunScheduledAtRespectsMinBoardTime(t *testing.T) {
	pattern := network.Pattern{
		Stops: []network.Stop{0, 1},
		TripSchedules: []network.Trip{
			{Departures: []int{1000, 1010}, Arrivals: []int{1000, 1010}},
			{Departures: []int{1200, 1210}, Arrivals: []int{1200, 1210}},
		},
	}
	net := network.NewTransitNetwork(2, []network.Pattern{pattern}, make([][]network.Transfer, 2))
	req := request.Default()
	req.MaxRides = 1

	// Arriving at stop 0 at exactly 1000 - MinBoardTimeSeconds leaves no
	// slack, so the 1000 departure must be missed and the 1200 one boarded.
	access := map[network.Stop]int{0: 940}
	final, err := raptor.RunScheduledAt(context.Background(), net, 0, access, req, nil)
	require.NoError(t, err)
	assert.Equal(t, 1210, final.BestTimes[1])
}

func TestRunScheduledAtUnreachedWhenNoService(t *testing.T) {
	net := threeStopChain()
	req := request.Default()
	req.MaxRides = 2

	access := map[network.Stop]int{0: 0}
	final, err := raptor.RunScheduledAt(context.Background(), net, 20*3600, access, req, nil)
	require.NoError(t, err)

	assert.NotEqual(t, network.UNREACHED, final.BestTimes[2], "the slow direct walk transfer still reaches stop 2")
	assert.Equal(t, network.UNREACHED, final.BestNonTransferTimes[2], "but never via transit this late")
}
