package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/antigravity/transit-raptor/gtfsload"
	"github.com/antigravity/transit-raptor/mcraptor"
	"github.com/antigravity/transit-raptor/network"
	"github.com/antigravity/transit-raptor/pathrecon"
	"github.com/antigravity/transit-raptor/request"
	"github.com/antigravity/transit-raptor/rlog"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Runs a McRAPTOR profile search over a departure-time window",
	RunE:  runProfile,
}

var (
	windowFrom int
	windowTo   int
	boarding   = network.HalfHeadway
)

func init() {
	profileCmd.Flags().IntVar(&windowFrom, "from-time", 7*3600, "window start, seconds since midnight")
	profileCmd.Flags().IntVar(&windowTo, "to-time", 9*3600, "window end, seconds since midnight")
	profileCmd.Flags().VarP(boardingAssumptionFlag{value: &boarding}, "boarding", "b",
		"frequency boarding assumption: best-case, worst-case, half-headway, fixed, proportion, random")
}

func runProfile(cmd *cobra.Command, args []string) error {
	if err := requireFeedAndStops(); err != nil {
		return err
	}
	log := rlog.New("profile")

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
	req.FromTime = windowFrom
	req.ToTime = windowTo
	req.BoardingAssumption = boarding

	access := map[network.Stop]int{from: 0}
	egress := map[network.Stop]int{dest: 0}

	result, err := mcraptor.RunProfile(context.Background(), net.TransitNetwork, access, egress, req, nil)
	if err != nil {
		return err
	}

	if len(result.States) == 0 {
		log.Infof("no non-dominated itineraries found from %s to %s", fromStop, toStop)
		return nil
	}

	for _, final := range result.States {
		path := pathrecon.FromProfile(final)
		printPath(net, path, final.ClockTime)
	}
	return nil
}
