// Package window provides the Ebitengine frontend for Tile Tap.
// It opens a desktop window, polls the keyboard and draws games through
// the core.Canvas interface.
package window

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/tiletap/internal/core"
)

// baseFontSize is the glyph height of basicfont.Face7x13.
const baseFontSize = 13

// Canvas implements core.Canvas over an Ebitengine image. Sizes are pixels;
// text is basicfont scaled to the requested size.
type Canvas struct {
	dst    *ebiten.Image
	width  int
	height int
	face   text.Face
}

// NewCanvas creates a canvas with the given logical size. Drawing needs a
// target set with SetTarget.
func NewCanvas(width, height int) *Canvas {
	return &Canvas{
		width:  width,
		height: height,
		face:   text.NewGoXFace(basicfont.Face7x13),
	}
}

// SetTarget directs drawing to img and adopts its size.
func (c *Canvas) SetTarget(img *ebiten.Image) {
	c.dst = img
	if img != nil {
		b := img.Bounds()
		c.width, c.height = b.Dx(), b.Dy()
	}
}

// Bounds returns the canvas size in pixels.
func (c *Canvas) Bounds() (int, int) {
	return c.width, c.height
}

// Clear fills the target with the background color.
func (c *Canvas) Clear() {
	if c.dst == nil {
		return
	}
	c.dst.Fill(Background)
}

// FillRect draws a solid rectangle.
func (c *Canvas) FillRect(r core.Rect, col core.Color) {
	if c.dst == nil || r.W <= 0 || r.H <= 0 {
		return
	}
	vector.DrawFilledRect(c.dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), RGBA(col), false)
}

// DrawLabel draws text with its top-left corner at (x, y).
func (c *Canvas) DrawLabel(x, y int, s string, size int, col core.Color) {
	if c.dst == nil || s == "" {
		return
	}
	scale := fontScale(size)

	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(RGBA(col))
	text.Draw(c.dst, s, c.face, op)
}

// MeasureText returns the width of s in pixels at size.
func (c *Canvas) MeasureText(s string, size int) int {
	return int(math.Ceil(text.Advance(s, c.face) * fontScale(size)))
}

func fontScale(size int) float64 {
	if size <= 0 {
		size = baseFontSize
	}
	return float64(size) / baseFontSize
}
