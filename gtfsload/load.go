// Package gtfsload is the collaborator that turns a GTFS feed into the
// dense-integer TransitNetwork the core consumes. GTFS loading is named an
// external collaborator by the core spec (§1); this package is that
// collaborator, grounded on the same github.com/patrickbr/gtfsparser
// library the teacher's own test suite (go-raptor's raptor_test.go)
// already depends on.
package gtfsload

import (
	"sort"

	"github.com/patrickbr/gtfsparser"
	"github.com/patrickbr/gtfsparser/gtfs"
	"github.com/pkg/errors"

	"github.com/antigravity/transit-raptor/network"
)

// AssumedWalkSpeedMillimetersPerSecond converts a GTFS transfers.txt
// min_transfer_time (a duration) into the DistanceMillimeters the core's
// Transfer model expects (a distance), since GTFS never states a transfer
// distance directly. 1300 mm/s matches the 1.3 m/s pedestrian speed used
// throughout the core spec's worked examples (§8 scenario 3).
const AssumedWalkSpeedMillimetersPerSecond = 1300

// Network is the loaded network plus the stop-id <-> dense-index mapping
// callers need to translate access/egress/GTFS stop IDs at the edges.
type Network struct {
	*network.TransitNetwork
	StopIndexByID map[string]network.Stop
	StopIDByIndex []string
}

// Load parses the GTFS zip at path and builds a Network. Trips are grouped
// into patterns by their ordered stop-ID sequence, mirroring how the
// teacher's own SimpleRaptorInput groups stop times by trip before scanning
// (go-raptor's mod.go PrepareRaptorInput).
func Load(path string) (*Network, error) {
	feed := gtfsparser.NewFeed()
	if err := feed.Parse(path); err != nil {
		return nil, errors.Wrapf(err, "gtfsload: parsing %s", path)
	}

	stopIndexByID := make(map[string]network.Stop, len(feed.Stops))
	stopIDByIndex := make([]string, 0, len(feed.Stops))
	for id := range feed.Stops {
		stopIndexByID[id] = network.Stop(len(stopIDByIndex))
		stopIDByIndex = append(stopIDByIndex, id)
	}

	patternsBySignature := make(map[string]int)
	var patterns []network.Pattern

	for _, trip := range feed.Trips {
		if len(trip.StopTimes) == 0 {
			continue
		}
		sig, stops := patternSignature(trip.StopTimes, stopIndexByID)
		pi, ok := patternsBySignature[sig]
		if !ok {
			pi = len(patterns)
			patternsBySignature[sig] = pi
			patterns = append(patterns, network.Pattern{Stops: stops})
		}

		arrivals := make([]int, len(trip.StopTimes))
		departures := make([]int, len(trip.StopTimes))
		for i, st := range trip.StopTimes {
			arrivals[i] = st.Arrival_time().SecondsSinceMidnight()
			departures[i] = st.Departure_time().SecondsSinceMidnight()
		}
		template := network.Trip{Arrivals: arrivals, Departures: departures}

		// A frequencies.txt row turns a trip's stop_times into a relative
		// template rather than a trip that actually runs at those clock
		// times (mirrors gtfstidy's FrequencyMinimizer, which only treats a
		// trip's StopTimes literally when Frequencies is nil/empty and
		// otherwise expands each Frequency window off the same template).
		if trip.Frequencies != nil && len(*trip.Frequencies) > 0 {
			for _, f := range *trip.Frequencies {
				patterns[pi].Frequencies = append(patterns[pi].Frequencies, network.FrequencyEntry{
					StartTime:      f.Start_time.SecondsSinceMidnight(),
					EndTime:        f.End_time.SecondsSinceMidnight(),
					HeadwaySeconds: f.Headway_secs,
					ExactTimes:     f.Exact_times,
					TripTemplate:   template,
				})
			}
			continue
		}

		patterns[pi].TripSchedules = append(patterns[pi].TripSchedules, template)
	}

	for i := range patterns {
		sortTripsByFirstDeparture(patterns[i].TripSchedules)
	}

	transfersByStop := make([][]network.Transfer, len(stopIDByIndex))
	for _, tr := range feed.Transfers {
		from, ok := stopIndexByID[tr.From_stop.Id]
		if !ok {
			continue
		}
		to, ok := stopIndexByID[tr.To_stop.Id]
		if !ok {
			continue
		}
		transfersByStop[from] = append(transfersByStop[from], network.Transfer{
			FromStop:            from,
			ToStop:              to,
			DistanceMillimeters: int64(tr.Min_transfer_time) * AssumedWalkSpeedMillimetersPerSecond,
		})
	}

	net := network.NewTransitNetwork(len(stopIDByIndex), patterns, transfersByStop)
	return &Network{TransitNetwork: net, StopIndexByID: stopIndexByID, StopIDByIndex: stopIDByIndex}, nil
}

func patternSignature(stopTimes []*gtfs.StopTime, stopIndexByID map[string]network.Stop) (string, []network.Stop) {
	stops := make([]network.Stop, len(stopTimes))
	sig := make([]byte, 0, len(stopTimes)*5)
	for i, st := range stopTimes {
		stop := stopIndexByID[st.Stop().Id]
		stops[i] = stop
		sig = append(sig, byte(stop), byte(stop>>8), byte(stop>>16), byte(stop>>24), '|')
	}
	return string(sig), stops
}

func sortTripsByFirstDeparture(trips []network.Trip) {
	sort.Slice(trips, func(i, j int) bool {
		return trips[i].Departures[0] < trips[j].Departures[0]
	})
}
