package core

// Canvas is the presentation surface games draw onto.
// Coordinates and sizes are in the canvas's own layout units:
// character cells for the terminal, pixels for the window.
type Canvas interface {
	// Bounds returns the drawable width and height.
	Bounds() (w, h int)

	// Clear resets the whole canvas to the background.
	Clear()

	// FillRect draws a solid rectangle.
	FillRect(r Rect, c Color)

	// DrawLabel draws text with its top-left corner at (x, y).
	DrawLabel(x, y int, text string, size int, c Color)

	// MeasureText returns the rendered width of text at the given size.
	MeasureText(text string, size int) int
}

// TextCenter returns the position that centers text on the canvas.
// The vertical position treats size as the glyph height; terminal canvases
// pass a size of 1.
func TextCenter(c Canvas, text string, size int) (int, int) {
	w, h := c.Bounds()
	x := (w - c.MeasureText(text, size)) / 2
	y := (h - size) / 2
	return x, y
}

// CenteredX returns the x position that centers text horizontally.
func CenteredX(c Canvas, text string, size int) int {
	x, _ := TextCenter(c, text, size)
	return x
}
