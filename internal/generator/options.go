package generator

import (
	"time"

	"github.com/rybkr/keymaze/internal/grid"
)

// Options configures maze generation behavior.
type Options struct {
	Width          int           // Grid columns, at least carve.MinSize
	Height         int           // Grid rows, at least carve.MinSize
	Agents         int           // Number of start markers
	Keys           int           // Number of keys, lettered from 'a'
	Doors          int           // Number of doors, matching the first Doors keys
	Braid          int           // Extra walls removed to create loops
	Timeout        time.Duration // Timeout limits generation time
	Seed           int64         // Seed for reproducible mazes (0 = random)
	EnsureSolvable bool          // EnsureSolvable retries until every key can be collected
}

// DefaultOptions returns standard generator options.
func DefaultOptions() *Options {
	return &Options{
		Width:          DefaultSize,
		Height:         DefaultSize,
		Agents:         grid.DefaultAgents,
		Keys:           6,
		Doors:          3,
		Braid:          4,
		Timeout:        10 * time.Second,
		Seed:           0,
		EnsureSolvable: true,
	}
}
