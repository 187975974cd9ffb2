package graph

import (
	"github.com/rybkr/keymaze/internal/grid"
)

// step is a BFS queue entry: a cell plus the distance and door requirements
// of the path that first reached it.
type step struct {
	pos      int
	dist     int
	requires grid.KeySet
}

// scanner holds the buffers reused across the BFS runs of one Build.
type scanner struct {
	layout    *grid.Layout
	visited   []bool
	queue     []step
	neighbors []int
}

func newScanner(l *grid.Layout) *scanner {
	return &scanner{
		layout:    l,
		visited:   make([]bool, l.Grid().Len()),
		neighbors: make([]int, 0, 4),
	}
}

// Scan performs a breadth-first search from POI root and returns an edge to
// every key reachable from it.
func Scan(l *grid.Layout, root int) []Edge {
	return newScanner(l).scan(root)
}

// scan walks the whole region around root. Doors and keys never stop the walk:
// a door adds its key to the requirements of everything found beyond it,
// and a key emits an edge before the walk carries on through it.
func (s *scanner) scan(root int) []Edge {
	g := s.layout.Grid()
	clear(s.visited)

	var edges []Edge
	start := s.layout.POIPos(root)
	s.visited[start] = true
	s.queue = append(s.queue[:0], step{pos: start})

	for head := 0; head < len(s.queue); head++ {
		current := s.queue[head]

		s.neighbors = g.Neighbors(s.neighbors[:0], current.pos)
		for _, pos := range s.neighbors {
			if s.visited[pos] {
				continue
			}
			c := g.Get(pos)
			if !c.IsWalkable() {
				continue
			}
			s.visited[pos] = true

			next := step{
				pos:      pos,
				dist:     current.dist + 1,
				requires: current.requires | s.layout.DoorRequirement(c),
			}
			if i, ok := s.layout.KeyIndex(c); ok && c.IsKey() {
				edges = append(edges, Edge{
					To:       s.layout.Agents() + i,
					Dist:     next.dist,
					Requires: next.requires,
				})
			}
			s.queue = append(s.queue, next)
		}
	}

	return edges
}
