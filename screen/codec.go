package screen

import (
	"periph.io/x/devices/v3/st7735s/rgb565"
)

// encode resolves the pixels of c.
//
// Solid sprites, and glyphs whose two colors are the same physical color,
// resolve to a single color with solid set. Other glyphs are decoded into
// s.pix. ok is false for sprites that have nothing to send.
func (s *Screen) encode(c Cell) (color rgb565.Color, solid, ok bool) {
	sp := c.Sprite()
	switch sp {
	case SolidBlack:
		return rgb565.Black, true, true
	case SolidWhite:
		return rgb565.White, true, true
	case SolidBackground:
		return s.palette[c.Background()], true, true
	case SolidForeground:
		return s.palette[c.Foreground()], true, true
	}
	if !sp.IsGlyph() {
		return 0, false, false
	}
	bg := s.palette[c.Background()]
	fg := s.palette[c.Foreground()]
	if bg == fg {
		return bg, true, true
	}
	s.pix.Fill(bg)
	bits := &glyphs[sp-firstGlyph]
	for y := 0; y < CellHeight; y++ {
		for x := 0; x < CellWidth; x++ {
			if bits[y]&(1<<uint(x)) != 0 {
				s.pix.SetRGB565(x, y, fg)
			}
		}
	}
	return 0, false, true
}
