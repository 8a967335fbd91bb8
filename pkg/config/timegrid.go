package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Timegrid defines the fixed hourly slots queried per day. The portal is
// asked for every slot in [FirstHour, LastHour) regardless of the actual
// school schedule; slots without lessons simply return nothing.
type Timegrid struct {
	FirstHour int `yaml:"first_hour"`
	LastHour  int `yaml:"last_hour"`
}

// DefaultTimegrid covers the usual German school day with generous margins.
func DefaultTimegrid() Timegrid {
	return Timegrid{FirstHour: 7, LastHour: 18}
}

// LoadTimegrid reads a YAML timegrid file, e.g.:
//
//	first_hour: 8
//	last_hour: 16
//
// An empty path returns the default grid.
func LoadTimegrid(path string) (Timegrid, error) {
	if path == "" {
		return DefaultTimegrid(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Timegrid{}, fmt.Errorf("failed to read timegrid file: %w", err)
	}

	grid := DefaultTimegrid()
	if err := yaml.Unmarshal(data, &grid); err != nil {
		return Timegrid{}, fmt.Errorf("failed to parse timegrid YAML: %w", err)
	}

	if grid.FirstHour < 0 || grid.LastHour > 24 || grid.FirstHour >= grid.LastHour {
		return Timegrid{}, fmt.Errorf("invalid timegrid: first_hour %d, last_hour %d", grid.FirstHour, grid.LastHour)
	}

	return grid, nil
}

// Hours lists the start hour of every slot in the grid.
func (g Timegrid) Hours() []int {
	var hours []int
	for h := g.FirstHour; h < g.LastHour; h++ {
		hours = append(hours, h)
	}
	return hours
}
