package tiletap

// The keypad scheme follows a numeric keypad: 7 8 9 is the top row,
// 1 2 3 the bottom row. It only addresses a 3x3 grid.
const keypadSize = 3

// KeypadCoord returns the tile addressed by keypad digit n (1-9).
func KeypadCoord(n int) (Coord, bool) {
	if n < 1 || n > 9 {
		return Coord{}, false
	}
	i := n - 1
	return Coord{Row: keypadSize - 1 - i/keypadSize, Col: i % keypadSize}, true
}

// KeypadDigit returns the keypad digit that taps c on a 3x3 grid.
func KeypadDigit(c Coord) (int, bool) {
	if c.Row < 0 || c.Row >= keypadSize || c.Col < 0 || c.Col >= keypadSize {
		return 0, false
	}
	return (keypadSize-1-c.Row)*keypadSize + c.Col + 1, true
}
