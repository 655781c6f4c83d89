package config

import (
	"fmt"
	"os"
	"runtime"

	"gopkg.in/yaml.v3"
)

// Nav holds the tuning knobs of the navigation engine.
type Nav struct {
	// Region decomposition stops once a quadrant's width or height is
	// at or below this size.
	MinLeafSize int `yaml:"min_leaf_size"`

	// Worker pool size for the reachable-set batch. 0 means NumCPU.
	Workers int `yaml:"workers"`

	// Movement distances precomputed for every anchor.
	MoveDistances []int `yaml:"move_distances"`

	// Walkable cells within this Chebyshev radius of an entity become
	// reachable-set anchors.
	EntityRadius int `yaml:"entity_radius"`

	// Every Nth cell on both axes becomes an anchor for general
	// coverage.
	SampleStride int `yaml:"sample_stride"`
}

// DefaultNav returns Nav with the standard tactical-map tuning.
func DefaultNav() Nav {
	return Nav{
		MinLeafSize:   50,
		Workers:       runtime.NumCPU(),
		MoveDistances: []int{7, 15},
		EntityRadius:  3,
		SampleStride:  10,
	}
}

// LoadNav reads a yaml config from path, applied over defaults.
// A missing file returns the defaults unchanged.
func LoadNav(path string) (Nav, error) {
	cfg := DefaultNav()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	return cfg, nil
}
