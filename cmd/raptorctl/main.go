// Command raptorctl runs a single scheduled or profile transit search
// against a GTFS feed and prints the resulting path. Its command/flag
// layout is grounded on tidbyt-gtfs's cmd package: a root command with
// persistent feed flags and one subcommand per query kind.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:          "raptorctl",
	Short:        "Transit routing tool",
	Long:         "Runs scheduled or profile RAPTOR searches against a GTFS feed",
	SilenceUsage: true,
}

var (
	gtfsPath string
	fromStop string
	toStop   string
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&gtfsPath, "gtfs", "g", "", "path to a GTFS zip file")
	rootCmd.PersistentFlags().StringVarP(&fromStop, "from", "f", "", "origin stop ID")
	rootCmd.PersistentFlags().StringVarP(&toStop, "to", "t", "", "destination stop ID")
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(profileCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func requireFeedAndStops() error {
	if gtfsPath == "" {
		return fmt.Errorf("--gtfs is required")
	}
	if fromStop == "" || toStop == "" {
		return fmt.Errorf("--from and --to are required")
	}
	return nil
}
