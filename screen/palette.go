package screen

import (
	"periph.io/x/devices/v3/st7735s/rgb565"
)

// PaletteSize is the number of palette slots addressable by a cell.
const PaletteSize = 16

// Palette maps a 4-bit cell color index to a physical color.
type Palette [PaletteSize]rgb565.Color

// Indices of DefaultPalette.
const (
	Black uint8 = iota
	Blue
	Green
	Cyan
	Red
	Magenta
	Brown
	LightGray
	DarkGray
	LightBlue
	LightGreen
	LightCyan
	LightRed
	LightMagenta
	Yellow
	White
)

// DefaultPalette holds the 16 CGA colors.
var DefaultPalette = Palette{
	Black:        rgb565.New(0x00, 0x00, 0x00),
	Blue:         rgb565.New(0x00, 0x00, 0xAA),
	Green:        rgb565.New(0x00, 0xAA, 0x00),
	Cyan:         rgb565.New(0x00, 0xAA, 0xAA),
	Red:          rgb565.New(0xAA, 0x00, 0x00),
	Magenta:      rgb565.New(0xAA, 0x00, 0xAA),
	Brown:        rgb565.New(0xAA, 0x55, 0x00),
	LightGray:    rgb565.New(0xAA, 0xAA, 0xAA),
	DarkGray:     rgb565.New(0x55, 0x55, 0x55),
	LightBlue:    rgb565.New(0x55, 0x55, 0xFF),
	LightGreen:   rgb565.New(0x55, 0xFF, 0x55),
	LightCyan:    rgb565.New(0x55, 0xFF, 0xFF),
	LightRed:     rgb565.New(0xFF, 0x55, 0x55),
	LightMagenta: rgb565.New(0xFF, 0x55, 0xFF),
	Yellow:       rgb565.New(0xFF, 0xFF, 0x55),
	White:        rgb565.New(0xFF, 0xFF, 0xFF),
}

func validIndex(i uint8) bool {
	return i < PaletteSize
}
