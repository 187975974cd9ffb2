package carve

// disjointSet is the disjoint set data structure from CLRS.
type disjointSet struct {
	parent *disjointSet
	rank   int
}

// newDisjointSet returns a new disjointSet containing only itself.
func newDisjointSet() *disjointSet {
	s := &disjointSet{}
	s.parent = s
	return s
}

// findSet finds the root of the set, compressing the path on the way.
func (s *disjointSet) findSet() *disjointSet {
	if s != s.parent {
		s.parent = s.parent.findSet()
	}
	return s.parent
}

// union merges the sets of s and other by rank.
func (s *disjointSet) union(other *disjointSet) {
	x := s.findSet()
	y := other.findSet()
	if x == y {
		return
	}
	if x.rank > y.rank {
		y.parent = x
		return
	}
	x.parent = y
	if x.rank == y.rank {
		y.rank++
	}
}
