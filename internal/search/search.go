// Package search finds the cheapest way for a team of agents to collect every
// key of a POI graph. It runs Dijkstra over (agent positions, keys held)
// states, materialising states only as they are reached.
package search

import (
	"context"
	"errors"

	"github.com/zyedidia/generic/heap"

	"github.com/rybkr/keymaze/internal/graph"
	"github.com/rybkr/keymaze/internal/grid"
)

var ErrNoSolution = errors.New("no solution")

// cancelCheckInterval is how many dequeues happen between context checks.
const cancelCheckInterval = 1024

// State is one point of the search space. Positions past the agent count are always zero.
type State struct {
	Positions [grid.MaxAgents]uint8
	Keys      grid.KeySet
}

// Start returns the state with agent i on POI i and no keys held.
func Start(agents int) State {
	var s State
	for i := range agents {
		s.Positions[i] = uint8(i)
	}
	return s
}

// Move returns the state reached when agent follows e.
func (s State) Move(agent int, e graph.Edge, key int) State {
	s.Positions[agent] = uint8(e.To)
	s.Keys = s.Keys.With(key)
	return s
}

// Stats counts the work done by a search.
type Stats struct {
	Pushed   int // states added to the queue
	Expanded int // states whose edges were explored
	Stale    int // queue entries dropped because a shorter path was already known
}

// item is a queue entry. dist may be stale; best holds the authoritative value.
type item struct {
	state State
	dist  int
}

// Search returns the minimum total distance from the start state to any state holding every key.
// It returns ErrNoSolution when that goal cannot be reached, and ctx.Err() if ctx ends first.
func Search(ctx context.Context, g *graph.Graph) (int, Stats, error) {
	var stats Stats
	full := g.Full()

	queue := heap.New[item](func(a, b item) bool {
		return a.dist < b.dist
	})
	best := make(map[State]int)

	start := Start(g.Agents)
	best[start] = 0
	queue.Push(item{state: start})
	stats.Pushed++

	for dequeued := 0; ; dequeued++ {
		if dequeued%cancelCheckInterval == 0 {
			select {
			case <-ctx.Done():
				return 0, stats, ctx.Err()
			default:
			}
		}

		current, ok := queue.Pop()
		if !ok {
			return 0, stats, ErrNoSolution
		}
		if current.dist != best[current.state] {
			stats.Stale++
			continue
		}
		if current.state.Keys == full {
			return current.dist, stats, nil
		}
		stats.Expanded++

		for agent := range g.Agents {
			from := current.state.Positions[agent]
			for _, e := range g.Edges[from] {
				key := g.KeyIndex(e.To)

				// Skip keys we already hold and paths through doors we can't open.
				if current.state.Keys.Has(key) || !current.state.Keys.ContainsAll(e.Requires) {
					continue
				}

				next := current.state.Move(agent, e, key)
				dist := current.dist + e.Dist
				if known, seen := best[next]; seen && dist >= known {
					continue
				}
				best[next] = dist
				queue.Push(item{state: next, dist: dist})
				stats.Pushed++
			}
		}
	}
}
