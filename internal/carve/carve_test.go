package carve

import (
	"math/rand"
	"testing"
)

func countOpen(open []bool) int {
	n := 0
	for _, o := range open {
		if o {
			n++
		}
	}
	return n
}

// reachable counts the open cells connected to the first room.
func reachable(open []bool, width int) int {
	seen := make([]bool, len(open))
	queue := []int{width + 1}
	seen[width+1] = true
	for head := 0; head < len(queue); head++ {
		pos := queue[head]
		for _, nb := range []int{pos - width, pos + width, pos - 1, pos + 1} {
			if nb >= 0 && nb < len(open) && open[nb] && !seen[nb] {
				seen[nb] = true
				queue = append(queue, nb)
			}
		}
	}
	return len(queue)
}

func TestCarvePerfectMaze(t *testing.T) {
	for _, size := range [][2]int{{5, 5}, {7, 9}, {21, 21}, {10, 8}} {
		width, height := size[0], size[1]
		rooms := ((width - 1) / 2) * ((height - 1) / 2)
		open := Carve(rand.New(rand.NewSource(1)), width, height, 0)

		// A spanning tree over the rooms opens one wall per room but the first.
		if got, want := countOpen(open), 2*rooms-1; got != want {
			t.Errorf("%dx%d: %d open cells, want %d", width, height, got, want)
		}
		if got := reachable(open, width); got != countOpen(open) {
			t.Errorf("%dx%d: %d of %d open cells connected", width, height, got, countOpen(open))
		}
	}
}

func TestCarveBraid(t *testing.T) {
	perfect := countOpen(Carve(rand.New(rand.NewSource(2)), 11, 11, 0))
	braided := countOpen(Carve(rand.New(rand.NewSource(2)), 11, 11, 5))
	if braided != perfect+5 {
		t.Errorf("braid opened %d walls, want 5", braided-perfect)
	}

	// Asking for more loops than there are walls opens every wall.
	all := countOpen(Carve(rand.New(rand.NewSource(2)), 5, 5, 100))
	if all != 8 {
		t.Errorf("fully braided 5x5 has %d open cells, want 8", all)
	}
}

func TestDisjointSet(t *testing.T) {
	a, b, c := newDisjointSet(), newDisjointSet(), newDisjointSet()
	a.union(b)
	if a.findSet() != b.findSet() {
		t.Error("union did not merge sets")
	}
	if a.findSet() == c.findSet() {
		t.Error("unrelated sets merged")
	}
	c.union(a)
	a.union(c)
	if c.findSet() != b.findSet() {
		t.Error("transitive union failed")
	}
}
