package window

import (
	"image/color"

	"github.com/vovakirdan/tiletap/internal/core"
)

// Background is the clear color of the window.
var Background = color.RGBA{0xf5, 0xf5, 0xf5, 0xff}

// palette maps core colors to window colors. Named colors follow their
// common web definitions.
var palette = map[core.Color]color.RGBA{
	core.ColorDefault:       {0x50, 0x50, 0x50, 0xff},
	core.ColorRed:           {0xff, 0x00, 0x00, 0xff},
	core.ColorGreen:         {0x00, 0x80, 0x00, 0xff},
	core.ColorYellow:        {0xff, 0xd7, 0x00, 0xff},
	core.ColorBlue:          {0x00, 0x00, 0xff, 0xff},
	core.ColorMagenta:       {0xff, 0x00, 0xff, 0xff},
	core.ColorCyan:          {0x00, 0xff, 0xff, 0xff},
	core.ColorWhite:         {0xff, 0xff, 0xff, 0xff},
	core.ColorBrightRed:     {0xff, 0x55, 0x55, 0xff},
	core.ColorBrightGreen:   {0x55, 0xff, 0x55, 0xff},
	core.ColorBrightYellow:  {0xff, 0xff, 0x55, 0xff},
	core.ColorBrightBlue:    {0x55, 0x55, 0xff, 0xff},
	core.ColorBrightMagenta: {0xff, 0x55, 0xff, 0xff},
	core.ColorBrightCyan:    {0x55, 0xff, 0xff, 0xff},
	core.ColorBrightWhite:   {0xff, 0xff, 0xff, 0xff},
	core.ColorOrange:        {0xff, 0xa5, 0x00, 0xff},
	core.ColorGray:          {0x80, 0x80, 0x80, 0xff},
	core.ColorPurple:        {0x80, 0x00, 0x80, 0xff},
}

// RGBA returns the window color for c. Unknown colors use the default.
func RGBA(c core.Color) color.RGBA {
	if rgba, ok := palette[c]; ok {
		return rgba
	}
	return palette[core.ColorDefault]
}
