package solver

import (
	"context"
	"errors"
	"fmt"

	"github.com/rybkr/keymaze/internal/graph"
	"github.com/rybkr/keymaze/internal/grid"
	"github.com/rybkr/keymaze/internal/search"
)

var (
	ErrNoSolution = search.ErrNoSolution
	ErrTimeout    = errors.New("solver timeout exceeded")
)

// Solver computes the fewest total moves needed to collect every key of a maze.
type Solver struct {
	Grid    *grid.Grid
	options *Options
}

// New creates a solver for the given grid.
func New(g *grid.Grid, options *Options) *Solver {
	if options == nil {
		options = DefaultOptions()
	}
	if options.Logger == nil {
		opts := *options
		opts.Logger = discardLogger
		options = &opts
	}

	return &Solver{
		Grid:    g,
		options: options,
	}
}

// Solve returns the minimal total distance.
// Returns ErrNoSolution if some key can never be collected, or a wrapped
// grid error if the grid is not a valid maze.
func (s *Solver) Solve() (int, error) {
	layout, err := grid.Compile(s.Grid, s.options.Agents)
	if err != nil {
		return 0, fmt.Errorf("compiling grid: %w", err)
	}
	if doors := layout.OrphanDoors(); len(doors) > 0 {
		s.options.Logger.Printf("doors without keys are left open: %s", doors)
	}

	g := graph.Build(layout)
	s.options.Logger.Printf("built graph: %d points of interest, %d keys, %d edges",
		g.POICount(), g.Keys, g.EdgeCount())

	ctx, cancel := s.makeContext()
	defer cancel()

	dist, stats, err := search.Search(ctx, g)
	s.options.Logger.Printf("search: %d pushed, %d expanded, %d stale",
		stats.Pushed, stats.Expanded, stats.Stale)
	if errors.Is(err, context.DeadlineExceeded) {
		return 0, ErrTimeout
	}
	return dist, err
}

// makeContext returns a context bounded by the configured timeout, if any.
func (s *Solver) makeContext() (context.Context, context.CancelFunc) {
	if s.options.Timeout > 0 {
		return context.WithTimeout(context.Background(), s.options.Timeout)
	}
	return context.WithCancel(context.Background())
}

// Solve is a convenience function to solve a grid with default options.
func Solve(g *grid.Grid) (int, error) {
	return New(g, nil).Solve()
}
