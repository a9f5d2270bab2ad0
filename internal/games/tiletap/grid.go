package tiletap

import (
	"fmt"
	"math/rand"
)

// TapResult is the outcome of tapping a tile.
type TapResult int

const (
	Miss TapResult = iota // Tile was already hidden, nothing changed
	Hit                   // Tile was visible and has been swapped with a hidden one
)

// String returns the result name.
func (r TapResult) String() string {
	if r == Hit {
		return "Hit"
	}
	return "Miss"
}

// Tile is one cell of the grid. Display attributes live in the layout.
type Tile struct {
	Visible bool
}

// TileGrid owns the visibility of a rows x columns matrix of tiles.
// The number of hidden tiles is fixed at construction: each hit hides the
// tapped tile and reveals exactly one previously hidden tile.
type TileGrid struct {
	rows    int
	columns int
	cells   [][]Tile
	hidden  []Coord // Exactly the invisible cells; order carries no meaning
	rng     *rand.Rand
}

// NewTileGrid creates a grid where every tile is visible except the given
// coordinates. The hidden set must be non-empty, duplicate-free, inside the
// grid, and smaller than the grid itself.
func NewTileGrid(rows, columns int, hidden []Coord, rng *rand.Rand) (*TileGrid, error) {
	if rows < 1 || columns < 1 {
		return nil, fmt.Errorf("tiletap: grid %dx%d: %w", rows, columns, ErrInvalidArgument)
	}
	if len(hidden) == 0 || len(hidden) >= rows*columns {
		return nil, fmt.Errorf("tiletap: %d hidden tiles on a %dx%d grid: %w",
			len(hidden), rows, columns, ErrInvalidArgument)
	}

	g := &TileGrid{
		rows:    rows,
		columns: columns,
		cells:   make([][]Tile, rows),
		hidden:  make([]Coord, len(hidden)),
		rng:     rng,
	}
	for r := range g.cells {
		g.cells[r] = make([]Tile, columns)
		for c := range g.cells[r] {
			g.cells[r][c].Visible = true
		}
	}

	for i, c := range hidden {
		if !g.InBounds(c) {
			return nil, fmt.Errorf("tiletap: hidden tile %v outside %dx%d grid: %w", c, rows, columns, ErrInvalidArgument)
		}
		if !g.cells[c.Row][c.Col].Visible {
			return nil, fmt.Errorf("tiletap: hidden tile %v listed twice: %w", c, ErrInvalidArgument)
		}
		g.cells[c.Row][c.Col].Visible = false
		g.hidden[i] = c
	}

	return g, nil
}

// Rows returns the number of rows.
func (g *TileGrid) Rows() int {
	return g.rows
}

// Columns returns the number of columns.
func (g *TileGrid) Columns() int {
	return g.columns
}

// InBounds returns true if the coordinate is inside the grid.
func (g *TileGrid) InBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < g.rows && c.Col >= 0 && c.Col < g.columns
}

// IsVisible reports whether the tile at c can be tapped for score.
func (g *TileGrid) IsVisible(c Coord) (bool, error) {
	if !g.InBounds(c) {
		return false, fmt.Errorf("tiletap: tile %v: %w", c, ErrOutOfRange)
	}
	return g.cells[c.Row][c.Col].Visible, nil
}

// Tap applies the swap rule at c.
//
// A hidden tile is a Miss and leaves the grid untouched. A visible tile is a
// Hit: it becomes hidden, and one tile chosen uniformly from the hidden set
// as it stood before the tap becomes visible in its place.
func (g *TileGrid) Tap(c Coord) (TapResult, error) {
	if !g.InBounds(c) {
		return Miss, fmt.Errorf("tiletap: tap %v: %w", c, ErrOutOfRange)
	}
	if !g.cells[c.Row][c.Col].Visible {
		return Miss, nil
	}

	i := g.rng.Intn(len(g.hidden))
	revealed := g.hidden[i]

	g.cells[c.Row][c.Col].Visible = false
	g.cells[revealed.Row][revealed.Col].Visible = true
	g.hidden[i] = c

	return Hit, nil
}

// HiddenCount returns the number of hidden tiles. It never changes.
func (g *TileGrid) HiddenCount() int {
	return len(g.hidden)
}

// Hidden returns a copy of the hidden coordinates.
func (g *TileGrid) Hidden() []Coord {
	out := make([]Coord, len(g.hidden))
	copy(out, g.hidden)
	return out
}

// Visibility returns a copy of the visibility matrix indexed [row][col].
func (g *TileGrid) Visibility() [][]bool {
	out := make([][]bool, g.rows)
	for r := range g.cells {
		out[r] = make([]bool, g.columns)
		for c, t := range g.cells[r] {
			out[r][c] = t.Visible
		}
	}
	return out
}
