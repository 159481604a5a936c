package main

import (
	"fmt"

	"github.com/spf13/pflag"

	"github.com/antigravity/transit-raptor/network"
)

// boardingAssumptionFlag adapts network.BoardingAssumption to pflag.Value so
// --boarding can be passed as a name instead of a raw integer.
type boardingAssumptionFlag struct {
	value *network.BoardingAssumption
}

var _ pflag.Value = boardingAssumptionFlag{}

var boardingAssumptionNames = map[string]network.BoardingAssumption{
	"best-case":    network.BestCase,
	"worst-case":   network.WorstCase,
	"half-headway": network.HalfHeadway,
	"fixed":        network.Fixed,
	"proportion":   network.Proportion,
	"random":       network.Random,
}

func (f boardingAssumptionFlag) String() string {
	for name, v := range boardingAssumptionNames {
		if v == *f.value {
			return name
		}
	}
	return "half-headway"
}

func (f boardingAssumptionFlag) Set(s string) error {
	v, ok := boardingAssumptionNames[s]
	if !ok {
		return fmt.Errorf("unknown boarding assumption %q", s)
	}
	*f.value = v
	return nil
}

func (f boardingAssumptionFlag) Type() string { return "boarding" }
