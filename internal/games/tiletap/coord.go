package tiletap

import "fmt"

// Coord addresses a tile by row and column.
type Coord struct {
	Row int
	Col int
}

// At is a convenience constructor for Coord.
func At(row, col int) Coord {
	return Coord{Row: row, Col: col}
}

// String returns a string representation of the coordinate.
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// ToLinear converts a coordinate to its row-major index for a grid with the
// given number of columns.
func ToLinear(c Coord, columns int) (int, error) {
	if columns <= 0 || c.Row < 0 || c.Col < 0 || c.Col >= columns {
		return 0, fmt.Errorf("tiletap: linear index of %v with %d columns: %w", c, columns, ErrInvalidArgument)
	}
	return c.Row*columns + c.Col, nil
}

// ToCoordinate converts a row-major index back to a coordinate.
func ToCoordinate(linear, columns int) (Coord, error) {
	if columns <= 0 || linear < 0 {
		return Coord{}, fmt.Errorf("tiletap: coordinate of %d with %d columns: %w", linear, columns, ErrInvalidArgument)
	}
	return Coord{Row: linear / columns, Col: linear % columns}, nil
}
