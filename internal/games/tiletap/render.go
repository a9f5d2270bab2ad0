package tiletap

import (
	"fmt"

	"github.com/vovakirdan/tiletap/internal/config"
	"github.com/vovakirdan/tiletap/internal/core"
)

// palette is a layout with its color names resolved.
type palette struct {
	config.Layout
	tile, hidden, cursor core.Color
	text, title, sel     core.Color
	drawHidden           bool
}

func newPalette(l config.Layout) palette {
	p := palette{Layout: l}
	p.tile = color(l.TileColor)
	p.cursor = color(l.CursorColor)
	p.text = color(l.TextColor)
	p.title = color(l.TitleColor)
	p.sel = color(l.SelectColor)
	if l.HiddenColor != "" {
		p.hidden = color(l.HiddenColor)
		p.drawHidden = true
	}
	return p
}

// color resolves a validated color name.
func color(name string) core.Color {
	c, _ := core.ParseColor(name)
	return c
}

// layout returns the layout section for the surface the game renders onto.
func (g *Game) layout() config.Layout {
	if g.surface == core.SurfaceWindow {
		return g.cfg.Window
	}
	return g.cfg.Terminal
}

// glyphHeight returns the height of text at size. Terminal text is one cell tall.
func (g *Game) glyphHeight(size int) int {
	if g.surface == core.SurfaceTerminal {
		return 1
	}
	return size
}

// lineHeight is the vertical advance for a line of text at size.
func (g *Game) lineHeight(size int) int {
	h := g.glyphHeight(size)
	return h + max(1, h/2)
}

// Render draws the current screen onto dst.
func (g *Game) Render(dst core.Canvas) {
	dst.Clear()
	if g.round == nil {
		return
	}

	p := newPalette(g.layout())
	w, h := dst.Bounds()

	y := g.lineHeight(p.TitleFontSize) / 2
	title := g.cfg.Menu.Title
	dst.DrawLabel(core.CenteredX(dst, title, p.TitleFontSize), y, title, p.TitleFontSize, p.title)
	y += g.lineHeight(p.TitleFontSize)

	footerY := h - g.lineHeight(p.FontSize)

	switch g.round.State() {
	case StateIdle:
		g.renderMenu(dst, p)
		g.renderFooter(dst, p, footerY, "up/down select, enter confirm, q quit")
	case StateRunning:
		g.renderHUD(dst, p, y)
		y += g.lineHeight(p.FontSize)
		g.renderGrid(dst, p, core.NewRect(0, y, w, footerY-y-p.Spacing))
		if g.round.Paused() {
			g.renderCentered(dst, p, "PAUSED", p.sel)
			g.renderFooter(dst, p, footerY, "p resume, q quit")
		} else {
			g.renderFooter(dst, p, footerY, g.tapHint())
		}
	case StateOver:
		g.renderOver(dst, p)
		g.renderFooter(dst, p, footerY, "enter continue")
	}
}

func (g *Game) tapHint() string {
	if g.cfg.Round.Input == config.InputKeypad {
		return "keys 1-9 tap, p pause, q quit"
	}
	return "arrows move, space tap, p pause, q quit"
}

// renderMenu draws the options stacked around the vertical center.
func (g *Game) renderMenu(dst core.Canvas, p palette) {
	_, h := dst.Bounds()
	opts := g.menu.Options()

	total := 0
	for _, o := range opts {
		total += g.lineHeight(o.FontSize)
	}
	y := (h - total) / 2

	for i, o := range opts {
		label := o.Label
		c := p.text
		if i == g.menu.Index() {
			label = "> " + label + " <"
			c = p.sel
		}
		dst.DrawLabel(core.CenteredX(dst, label, o.FontSize), y, label, o.FontSize, c)
		y += g.lineHeight(o.FontSize)
	}

	if g.rounds > 0 {
		line := fmt.Sprintf("Last: %d  Best: %d  Rounds: %d", g.lastScore, g.best, g.rounds)
		dst.DrawLabel(core.CenteredX(dst, line, p.FontSize), y+g.lineHeight(p.FontSize), line, p.FontSize, p.text)
	}
}

func (g *Game) renderHUD(dst core.Canvas, p palette, y int) {
	hud := fmt.Sprintf("Score: %d   Time: %.1f", g.round.Score(), g.round.Remaining())
	c := p.text
	if g.flash > 0 {
		c = core.ColorRed
	}
	dst.DrawLabel(core.CenteredX(dst, hud, p.FontSize), y, hud, p.FontSize, c)
}

// renderGrid draws every visible tile, hidden tiles when the layout asks for
// them, the cursor frame and keypad digit labels.
func (g *Game) renderGrid(dst core.Canvas, p palette, area core.Rect) {
	rc := g.round.Config()
	grid := core.FitGrid(area, rc.Rows, rc.Columns, p.TileWidth, p.TileHeight, p.Spacing)
	cursorMode := g.cfg.Round.Input == config.InputCursor

	for row := 0; row < rc.Rows; row++ {
		for col := 0; col < rc.Columns; col++ {
			c := At(row, col)
			r := grid.Cell(row, col)

			if cursorMode && c == g.cursor {
				dst.FillRect(r, p.cursor)
				r = r.Inset(max(1, min(grid.CellW, grid.CellH)/10))
			}

			visible, err := g.round.IsVisible(c)
			if err != nil {
				continue
			}
			switch {
			case visible:
				dst.FillRect(r, p.tile)
			case p.drawHidden:
				dst.FillRect(r, p.hidden)
			}

			if n, ok := KeypadDigit(c); ok && !cursorMode && rc.Rows == 3 && rc.Columns == 3 {
				label := fmt.Sprintf("%d", n)
				lx := r.X + (r.W-dst.MeasureText(label, p.FontSize))/2
				ly := r.Y + (r.H-g.glyphHeight(p.FontSize))/2
				dst.DrawLabel(lx, ly, label, p.FontSize, p.text)
			}
		}
	}
}

func (g *Game) renderOver(dst core.Canvas, p palette) {
	head := "Time's up!"
	if g.round.EndedByMiss() {
		head = "Missed!"
	}
	g.renderCentered(dst, p, head, p.sel)

	_, h := dst.Bounds()
	y := (h-g.glyphHeight(p.FontSize))/2 + g.lineHeight(p.FontSize)
	lines := []string{
		fmt.Sprintf("Tiles tapped: %d", g.round.Score()),
		fmt.Sprintf("Best this session: %d", g.best),
	}
	for _, line := range lines {
		dst.DrawLabel(core.CenteredX(dst, line, p.FontSize), y, line, p.FontSize, p.text)
		y += g.lineHeight(p.FontSize)
	}
}

func (g *Game) renderCentered(dst core.Canvas, p palette, text string, c core.Color) {
	x, _ := core.TextCenter(dst, text, p.FontSize)
	_, h := dst.Bounds()
	dst.DrawLabel(x, (h-g.glyphHeight(p.FontSize))/2, text, p.FontSize, c)
}

func (g *Game) renderFooter(dst core.Canvas, p palette, y int, text string) {
	dst.DrawLabel(core.CenteredX(dst, text, p.FontSize), y, text, p.FontSize, core.ColorGray)
}
