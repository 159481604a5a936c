package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/antigravity/transit-raptor/gtfsload"
	"github.com/antigravity/transit-raptor/network"
	"github.com/antigravity/transit-raptor/pathrecon"
	"github.com/antigravity/transit-raptor/raptor"
	"github.com/antigravity/transit-raptor/request"
	"github.com/antigravity/transit-raptor/rlog"
)

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Runs a single scheduled RAPTOR search at a fixed departure time",
	RunE:  runSearch,
}

var departSeconds int

func init() {
	searchCmd.Flags().IntVarP(&departSeconds, "depart", "d", 8*3600, "departure time, seconds since midnight")
	searchCmd.Flags().IntVar(&maxRides, "max-rides", request.Default().MaxRides, "maximum number of transit rides")
}

var maxRides int

func runSearch(cmd *cobra.Command, args []string) error {
	if err := requireFeedAndStops(); err != nil {
		return err
	}
	log := rlog.New("search")

	net, err := gtfsload.Load(gtfsPath)
	if err != nil {
		return fmt.Errorf("loading feed: %w", err)
	}
	from, ok := net.StopIndexByID[fromStop]
	if !ok {
		return fmt.Errorf("unknown stop %q", fromStop)
	}
	dest, ok := net.StopIndexByID[toStop]
	if !ok {
		return fmt.Errorf("unknown stop %q", toStop)
	}

	req := request.Default()
	req.MaxRides = maxRides
	req.FromTime = departSeconds
	req.ToTime = departSeconds

	access := map[network.Stop]int{from: 0}
	final, err := raptor.RunScheduledAt(context.Background(), net.TransitNetwork, departSeconds, access, req, nil)
	if err != nil {
		return err
	}

	if final.BestTimes[dest] == network.UNREACHED {
		log.Infof("no path found from %s to %s", fromStop, toStop)
		return nil
	}

	path := pathrecon.FromScheduled(final, dest)
	printPath(net, path, final.BestTimes[dest])
	return nil
}

func printPath(net *gtfsload.Network, path *pathrecon.Path, arrival int) {
	fmt.Printf("arrival: %s\n", formatClock(arrival))
	for _, leg := range path.Legs {
		board := net.StopIDByIndex[leg.BoardStop]
		alight := net.StopIDByIndex[leg.AlightStop]
		if leg.Pattern == network.NoPattern {
			fmt.Printf("  walk    %s -> %s, arrive %s\n", board, alight, formatClock(leg.AlightTime))
			continue
		}
		fmt.Printf("  pattern %d: %s -> %s, arrive %s\n", leg.Pattern, board, alight, formatClock(leg.AlightTime))
	}
}

func formatClock(seconds int) string {
	h := seconds / 3600
	m := (seconds % 3600) / 60
	s := seconds % 60
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}
