package grid

import (
	"fmt"
	"slices"

	"github.com/zyedidia/generic/mapset"
)

// MaxAgents is the largest agent count a Layout supports.
const MaxAgents = 8

// DefaultAgents is the number of start markers a vault normally has.
const DefaultAgents = 4

// Key is a collectible key and the cell it lies on.
type Key struct {
	Letter byte
	Pos    int
}

// Layout is the compiled form of a grid: its points of interest and the
// key index assignment. POI indices 0..Agents()-1 are the starts in scan
// order, followed by one POI per key in alphabetical order.
//
// Layout is immutable after Compile returns.
type Layout struct {
	grid   *Grid
	starts []int
	keys   []Key

	// keyIndex maps a letter (0-25) to its key index, or -1 when the key is absent.
	keyIndex    [26]int
	orphanDoors mapset.Set[byte]
}

// Compile locates the start and key cells of g and assigns every POI a stable index.
// The caller's grid is not modified; the layout's copy has its starts rewritten to open floor.
func Compile(g *Grid, agents int) (*Layout, error) {
	if err := validateAgents(agents); err != nil {
		return nil, err
	}

	l := &Layout{
		grid:        g.Clone(),
		orphanDoors: mapset.New[byte](),
	}
	for i := range l.keyIndex {
		l.keyIndex[i] = -1
	}

	var seen [26]bool
	for pos, c := range l.grid.cells {
		switch {
		case c == Start:
			l.starts = append(l.starts, pos)
			l.grid.cells[pos] = Open
		case c.IsKey():
			if seen[c.Letter()] {
				row, col := l.grid.RowCol(pos)
				return nil, fmt.Errorf("%w: %q again at row %d, column %d", ErrDuplicateKey, byte(c), row, col)
			}
			seen[c.Letter()] = true
			l.keys = append(l.keys, Key{Letter: byte(c), Pos: pos})
		}
	}
	if err := validateStarts(len(l.starts), agents); err != nil {
		return nil, err
	}

	slices.SortFunc(l.keys, func(a, b Key) int {
		return int(a.Letter) - int(b.Letter)
	})
	for i, k := range l.keys {
		l.keyIndex[k.Letter-'a'] = i
	}

	for _, c := range l.grid.cells {
		if c.IsDoor() && l.keyIndex[c.Letter()] < 0 {
			l.orphanDoors.Put(byte(c))
		}
	}

	return l, nil
}

// Grid returns the compiled grid. Callers must not modify it.
func (l *Layout) Grid() *Grid {
	return l.grid
}

// Agents returns the number of start POIs.
func (l *Layout) Agents() int {
	return len(l.starts)
}

// KeyCount returns the number of keys in the maze.
func (l *Layout) KeyCount() int {
	return len(l.keys)
}

// POICount returns the number of points of interest (starts plus keys).
func (l *Layout) POICount() int {
	return len(l.starts) + len(l.keys)
}

// POIPos returns the grid position of a point of interest.
func (l *Layout) POIPos(poi int) int {
	if poi < len(l.starts) {
		return l.starts[poi]
	}
	return l.keys[poi-len(l.starts)].Pos
}

// Key returns key i in alphabetical order.
func (l *Layout) Key(i int) Key {
	return l.keys[i]
}

// KeyIndex returns the index of the key named by c, which may be a key or a door.
// ok is false for any other cell, or when the key is absent from the maze.
func (l *Layout) KeyIndex(c Cell) (int, bool) {
	if !c.IsKey() && !c.IsDoor() {
		return -1, false
	}
	i := l.keyIndex[c.Letter()]
	return i, i >= 0
}

// DoorRequirement returns the keys needed to walk through cell c.
// Doors without a matching key, and every non-door cell, require nothing.
func (l *Layout) DoorRequirement(c Cell) KeySet {
	if !c.IsDoor() {
		return 0
	}
	if i := l.keyIndex[c.Letter()]; i >= 0 {
		return KeySet(0).With(i)
	}
	return 0
}

// FullKeys returns the set holding every key of the maze.
func (l *Layout) FullKeys() KeySet {
	return FullKeySet(len(l.keys))
}

// OrphanDoors returns the doors that have no matching key, in alphabetical order.
func (l *Layout) OrphanDoors() []byte {
	doors := make([]byte, 0, l.orphanDoors.Size())
	l.orphanDoors.Each(func(door byte) {
		doors = append(doors, door)
	})
	slices.Sort(doors)
	return doors
}
