// Package graph compresses a compiled maze into a graph over its points of
// interest. Every POI gets one edge per key reachable from it, labelled with
// the walking distance and the doors crossed on the way.
package graph

import (
	"github.com/rybkr/keymaze/internal/grid"
)

// Edge is a path from one POI to a key POI.
type Edge struct {
	To       int         // destination POI
	Dist     int         // grid steps
	Requires grid.KeySet // keys whose doors lie on the path
}

// Graph holds the outgoing edges of every POI.
// It is immutable after Build and may be shared by concurrent searches.
type Graph struct {
	Agents int
	Keys   int
	Edges  [][]Edge
}

// Build scans every POI of l and returns the resulting graph.
func Build(l *grid.Layout) *Graph {
	g := &Graph{
		Agents: l.Agents(),
		Keys:   l.KeyCount(),
		Edges:  make([][]Edge, l.POICount()),
	}
	s := newScanner(l)
	for poi := range g.Edges {
		g.Edges[poi] = s.scan(poi)
	}
	return g
}

// POICount returns the number of points of interest.
func (g *Graph) POICount() int {
	return len(g.Edges)
}

// KeyIndex returns the key index of a key POI.
func (g *Graph) KeyIndex(poi int) int {
	return poi - g.Agents
}

// Full returns the set of all keys.
func (g *Graph) Full() grid.KeySet {
	return grid.FullKeySet(g.Keys)
}

// EdgeCount returns the total number of edges.
func (g *Graph) EdgeCount() int {
	count := 0
	for _, edges := range g.Edges {
		count += len(edges)
	}
	return count
}
