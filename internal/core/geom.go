// Package core provides fundamental types and utilities for the game platform.
// It contains no external dependencies (especially no Bubble Tea or Ebitengine)
// to keep game logic pure and testable.
package core

import "cmp"

// Rect represents an axis-aligned rectangle in canvas layout units.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Inset shrinks the rectangle by d on every side. Width and height never go
// below zero.
func (r Rect) Inset(d int) Rect {
	return Rect{X: r.X + d, Y: r.Y + d, W: max(r.W-2*d, 0), H: max(r.H-2*d, 0)}
}

// GridLayout places rows x cols equally sized cells inside an area.
type GridLayout struct {
	Bounds  Rect // Area covered by all cells and gaps
	CellW   int
	CellH   int
	Spacing int
}

// FitGrid centers a rows x cols grid of cells in area. Cells use the
// preferred size when it fits and shrink (down to 1x1) when it does not.
// The grid is centered horizontally and vertically; it is pinned to the top
// of area when even the smallest cells overflow it.
func FitGrid(area Rect, rows, cols, cellW, cellH, spacing int) GridLayout {
	rows, cols = max(rows, 1), max(cols, 1)
	w := max(1, min(cellW, (area.W-spacing*(cols-1))/cols))
	h := max(1, min(cellH, (area.H-spacing*(rows-1))/rows))

	gw := w*cols + spacing*(cols-1)
	gh := h*rows + spacing*(rows-1)
	return GridLayout{
		Bounds:  NewRect(area.X+(area.W-gw)/2, area.Y+max(0, (area.H-gh)/2), gw, gh),
		CellW:   w,
		CellH:   h,
		Spacing: spacing,
	}
}

// Cell returns the rectangle of the cell at row, col.
func (g GridLayout) Cell(row, col int) Rect {
	return NewRect(
		g.Bounds.X+col*(g.CellW+g.Spacing),
		g.Bounds.Y+row*(g.CellH+g.Spacing),
		g.CellW, g.CellH,
	)
}

// Clamp restricts v to [lo, hi].
func Clamp[T cmp.Ordered](v, lo, hi T) T {
	return min(max(v, lo), hi)
}
