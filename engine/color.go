package engine

import "fmt"

// Color is the tag stored in a board cell. ColorNone marks an empty cell.
//
// Color implements image/color.Color so frontends can draw cells directly.
type Color uint8

const (
	ColorNone Color = iota
	ColorRed
	ColorGreen
	ColorBlue
	ColorYellow
	ColorOrange

	colorCount
)

var palette = [colorCount][3]uint8{
	ColorNone:   {0x00, 0x00, 0x00},
	ColorRed:    {0xFF, 0x00, 0x00},
	ColorGreen:  {0x00, 0xFF, 0x00},
	ColorBlue:   {0x00, 0x00, 0xFF},
	ColorYellow: {0xFF, 0xFF, 0x00},
	ColorOrange: {0xFF, 0xA5, 0x00},
}

// Empty reports whether c marks an unoccupied cell.
func (c Color) Empty() bool {
	return c == ColorNone
}

// RGB returns the 8-bit channels of c. Unknown tags render black.
func (c Color) RGB() (r, g, b uint8) {
	if c >= colorCount {
		return 0, 0, 0
	}
	p := palette[c]
	return p[0], p[1], p[2]
}

// RGBA implements image/color.Color. ColorNone is fully transparent.
func (c Color) RGBA() (r, g, b, a uint32) {
	if c == ColorNone || c >= colorCount {
		return 0, 0, 0, 0
	}
	r8, g8, b8 := c.RGB()
	r = uint32(r8)
	r |= r << 8
	g = uint32(g8)
	g |= g << 8
	b = uint32(b8)
	b |= b << 8
	return r, g, b, 0xFFFF
}

// Hex returns the tag as #RRGGBB.
func (c Color) Hex() string {
	r, g, b := c.RGB()
	return fmt.Sprintf("#%02X%02X%02X", r, g, b)
}

func (c Color) String() string {
	switch c {
	case ColorNone:
		return "none"
	case ColorRed:
		return "red"
	case ColorGreen:
		return "green"
	case ColorBlue:
		return "blue"
	case ColorYellow:
		return "yellow"
	case ColorOrange:
		return "orange"
	}
	return fmt.Sprintf("Color(%d)", uint8(c))
}
