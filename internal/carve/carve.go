// Package carve implements randomized maze carving on a rectangular grid of
// wall cells. It has zero external dependencies and no knowledge of the grid
// package so that it can be imported from anywhere without an import cycle.
package carve

import "math/rand"

// MinSize is the smallest width or height that holds more than one room.
const MinSize = 5

// wall is a wall cell separating two rooms.
type wall struct {
	pos   int // position of the wall cell itself
	roomA int
	roomB int
}

// Carve returns a width x height open-cell map (row*width + col) holding a
// perfect maze: rooms sit on odd rows and columns, and exactly one path joins
// any two rooms. braid additional walls are then knocked out to create loops.
//
// Rooms are joined with randomized Kruskal: walls are visited in random order
// and removed whenever the rooms on either side are not yet connected.
func Carve(rng *rand.Rand, width, height, braid int) []bool {
	open := make([]bool, width*height)
	roomCols := (width - 1) / 2
	roomRows := (height - 1) / 2

	roomIndex := func(row, col int) int {
		return (row/2)*roomCols + col/2
	}

	walls := make([]wall, 0, 2*roomRows*roomCols)
	for row := 1; row < height-1; row += 2 {
		for col := 1; col < width-1; col += 2 {
			open[row*width+col] = true
			// Each room owns the wall to its right and the wall below it.
			if col+2 < width-1 {
				walls = append(walls, wall{row*width + col + 1, roomIndex(row, col), roomIndex(row, col+2)})
			}
			if row+2 < height-1 {
				walls = append(walls, wall{(row+1)*width + col, roomIndex(row, col), roomIndex(row+2, col)})
			}
		}
	}

	rng.Shuffle(len(walls), func(i, j int) {
		walls[i], walls[j] = walls[j], walls[i]
	})

	sets := make([]*disjointSet, roomRows*roomCols)
	for i := range sets {
		sets[i] = newDisjointSet()
	}

	var kept []int
	for _, w := range walls {
		a, b := sets[w.roomA], sets[w.roomB]
		if a.findSet() == b.findSet() {
			kept = append(kept, w.pos)
			continue
		}
		a.union(b)
		open[w.pos] = true
	}

	// kept is already in random order.
	for _, pos := range kept[:min(braid, len(kept))] {
		open[pos] = true
	}

	return open
}
