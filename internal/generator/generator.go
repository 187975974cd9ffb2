package generator

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/zyedidia/generic/mapset"

	"github.com/rybkr/keymaze/internal/carve"
	"github.com/rybkr/keymaze/internal/grid"
	"github.com/rybkr/keymaze/internal/solver"
)

const (
	DefaultSize = 21
	MaxKeys     = 26
)

var (
	ErrGenerationFailed = errors.New("failed to generate solvable maze")
	ErrInvalidSize      = errors.New("maze is too small")
	ErrTooManyItems     = errors.New("maze cannot hold the requested items")
)

// Generator creates key-and-door mazes.
type Generator struct {
	options *Options
	rng     *rand.Rand
}

// New creates a maze generator with the given options.
func New(options *Options) *Generator {
	if options == nil {
		options = DefaultOptions()
	}

	seed := options.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return &Generator{
		options: options,
		rng:     rand.New(rand.NewSource(seed)),
	}
}

// Generate creates a new maze.
// With EnsureSolvable set, candidates are discarded until one can be fully
// collected, or until the timeout elapses.
func (g *Generator) Generate() (*grid.Grid, error) {
	if err := g.validate(); err != nil {
		return nil, err
	}

	start := time.Now()
	timeout := g.options.Timeout

	for attempt := 0; ; attempt++ {
		if attempt > 0 && time.Since(start) >= timeout {
			return nil, fmt.Errorf("%w after %d attempts", ErrGenerationFailed, attempt)
		}

		maze, err := g.generateCandidate()
		if err != nil {
			return nil, err
		}
		if !g.options.EnsureSolvable {
			return maze, nil
		}

		// Verify every key can be collected
		_, err = solver.New(maze, &solver.Options{
			Agents:  g.options.Agents,
			Timeout: timeout,
		}).Solve()
		switch {
		case err == nil:
			return maze, nil
		case errors.Is(err, solver.ErrNoSolution), errors.Is(err, solver.ErrTimeout):
			continue
		default:
			return nil, err
		}
	}
}

// validate checks the options before any carving happens.
func (g *Generator) validate() error {
	o := g.options
	if o.Width < carve.MinSize || o.Height < carve.MinSize {
		return fmt.Errorf("%w: %dx%d, need at least %dx%d", ErrInvalidSize, o.Width, o.Height, carve.MinSize, carve.MinSize)
	}
	if o.Agents < 1 || o.Agents > grid.MaxAgents {
		return fmt.Errorf("%w: got %d, must be between 1 and %d", grid.ErrAgentCount, o.Agents, grid.MaxAgents)
	}
	if o.Keys < 0 || o.Keys > MaxKeys {
		return fmt.Errorf("%w: %d keys, must be between 0 and %d", ErrTooManyItems, o.Keys, MaxKeys)
	}
	if o.Doors < 0 || o.Doors > o.Keys {
		return fmt.Errorf("%w: %d doors for %d keys", ErrTooManyItems, o.Doors, o.Keys)
	}
	return nil
}

// generateCandidate carves a maze and scatters starts, keys and doors over its open cells.
func (g *Generator) generateCandidate() (*grid.Grid, error) {
	o := g.options
	open := carve.Carve(g.rng, o.Width, o.Height, o.Braid)

	maze := grid.New(o.Width, o.Height)
	var floor []int
	for pos, isOpen := range open {
		if isOpen {
			maze.Set(pos, grid.Open)
			floor = append(floor, pos)
		}
	}

	items := o.Agents + o.Keys + o.Doors
	if items > len(floor) {
		return nil, fmt.Errorf("%w: %d items on %d open cells", ErrTooManyItems, items, len(floor))
	}

	// Pick distinct cells by rejection; there are enough free cells to finish.
	reserved := mapset.New[int]()
	place := func(c grid.Cell) {
		for {
			pos := floor[g.rng.Intn(len(floor))]
			if reserved.Has(pos) {
				continue
			}
			reserved.Put(pos)
			maze.Set(pos, c)
			return
		}
	}

	for range o.Agents {
		place(grid.Start)
	}
	for i := range o.Keys {
		place(grid.Cell('a' + i))
	}
	for i := range o.Doors {
		place(grid.Cell('A' + i))
	}

	return maze, nil
}

// GenerateWithSeed is a convenience function to generate a maze with default options and a fixed seed.
func GenerateWithSeed(seed int64) (*grid.Grid, error) {
	opts := DefaultOptions()
	opts.Seed = seed
	return New(opts).Generate()
}
