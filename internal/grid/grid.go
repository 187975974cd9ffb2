package grid

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Cell is a single character of the maze.
type Cell byte

// Fixed cell values. Keys are 'a'-'z' and doors are 'A'-'Z'.
const (
	Wall  Cell = '#'
	Open  Cell = '.'
	Start Cell = '@'
)

// IsKey reports whether c is a key cell.
func (c Cell) IsKey() bool {
	return c >= 'a' && c <= 'z'
}

// IsDoor reports whether c is a door cell.
func (c Cell) IsDoor() bool {
	return c >= 'A' && c <= 'Z'
}

// IsWalkable reports whether an agent may stand on c. Only walls block.
func (c Cell) IsWalkable() bool {
	return c != Wall
}

// Letter returns the alphabet index (0-25) of a key or door.
// Returns -1 for any other cell.
func (c Cell) Letter() int {
	switch {
	case c.IsKey():
		return int(c - 'a')
	case c.IsDoor():
		return int(c - 'A')
	}
	return -1
}

// isValidCell reports whether c belongs to the maze alphabet.
func isValidCell(c Cell) bool {
	return c == Wall || c == Open || c == Start || c.IsKey() || c.IsDoor()
}

// Grid is a rectangular maze stored row-major.
type Grid struct {
	width  int
	height int
	cells  []Cell
}

// New creates a width x height grid filled with walls.
func New(width, height int) *Grid {
	g := &Grid{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
	}
	for pos := range g.cells {
		g.cells[pos] = Wall
	}
	return g
}

// Parse reads a grid from r. Reading stops at the first empty line or at EOF.
func Parse(r io.Reader) (*Grid, error) {
	scanner := bufio.NewScanner(r)
	lines := readBlock(scanner)
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading grid: %w", err)
	}
	return ParseLines(lines)
}

// ParseAll reads every grid in r. Grids are separated by one or more empty lines.
func ParseAll(r io.Reader) ([]*Grid, error) {
	scanner := bufio.NewScanner(r)
	var grids []*Grid
	for {
		lines := readBlock(scanner)
		if len(lines) == 0 {
			break
		}
		g, err := ParseLines(lines)
		if err != nil {
			return nil, fmt.Errorf("grid #%d: %w", len(grids)+1, err)
		}
		grids = append(grids, g)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading grids: %w", err)
	}
	if len(grids) == 0 {
		return nil, ErrEmptyGrid
	}
	return grids, nil
}

// readBlock returns the next run of non-empty lines, skipping leading empty lines.
func readBlock(scanner *bufio.Scanner) []string {
	var lines []string
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if line == "" {
			if len(lines) == 0 {
				continue
			}
			break
		}
		lines = append(lines, line)
	}
	return lines
}

// ParseLines builds a grid from rows of text.
// The width is that of the longest row; cells past the end of a shorter row are walls.
func ParseLines(lines []string) (*Grid, error) {
	width := 0
	for _, line := range lines {
		width = max(width, len(line))
	}
	if len(lines) == 0 || width == 0 {
		return nil, ErrEmptyGrid
	}

	g := New(width, len(lines))
	for row, line := range lines {
		for col := range len(line) {
			c := Cell(line[col])
			if !isValidCell(c) {
				return nil, fmt.Errorf("%w: %q at row %d, column %d", ErrInvalidCell, line[col], row, col)
			}
			g.cells[row*width+col] = c
		}
	}
	return g, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int {
	return g.width
}

// Height returns the number of rows.
func (g *Grid) Height() int {
	return g.height
}

// Len returns the number of cells.
func (g *Grid) Len() int {
	return len(g.cells)
}

// Pos transforms a row and column into a linear position.
// Returns -1 if row and/or col are out of bounds.
func (g *Grid) Pos(row, col int) int {
	if row < 0 || row >= g.height || col < 0 || col >= g.width {
		return -1
	}
	return row*g.width + col
}

// RowCol is the inverse of Pos.
func (g *Grid) RowCol(pos int) (row, col int) {
	return pos / g.width, pos % g.width
}

// Get returns the cell at pos. Out of bounds positions read as walls.
func (g *Grid) Get(pos int) Cell {
	if pos < 0 || pos >= len(g.cells) {
		return Wall
	}
	return g.cells[pos]
}

// Set places c at pos.
func (g *Grid) Set(pos int, c Cell) error {
	if pos < 0 || pos >= len(g.cells) {
		return fmt.Errorf("%w: position %d must be in range [0, %d)", ErrInvalidPosition, pos, len(g.cells))
	}
	if !isValidCell(c) {
		return fmt.Errorf("%w: %q", ErrInvalidCell, byte(c))
	}
	g.cells[pos] = c
	return nil
}

// Neighbors appends the in-bounds orthogonal neighbours of pos to dst
// in up, down, left, right order and returns the extended slice.
func (g *Grid) Neighbors(dst []int, pos int) []int {
	row, col := g.RowCol(pos)
	if row > 0 {
		dst = append(dst, pos-g.width)
	}
	if row+1 < g.height {
		dst = append(dst, pos+g.width)
	}
	if col > 0 {
		dst = append(dst, pos-1)
	}
	if col+1 < g.width {
		dst = append(dst, pos+1)
	}
	return dst
}

// CountStarts returns the number of start markers in the grid.
func (g *Grid) CountStarts() int {
	count := 0
	for _, c := range g.cells {
		if c == Start {
			count++
		}
	}
	return count
}

// Clone creates an independent copy of the grid.
func (g *Grid) Clone() *Grid {
	if g == nil {
		return nil
	}
	clone := *g
	clone.cells = make([]Cell, len(g.cells))
	copy(clone.cells, g.cells)
	return &clone
}

// String returns the grid as newline-separated rows without a trailing newline.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(len(g.cells) + g.height)

	for row := range g.height {
		if row > 0 {
			sb.WriteByte('\n')
		}
		for _, c := range g.cells[row*g.width : (row+1)*g.width] {
			sb.WriteByte(byte(c))
		}
	}

	return sb.String()
}
