package screen

import (
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Cell size in pixels.
const (
	CellWidth  = 8
	CellHeight = 16
)

// glyphBaseline is the row the font baseline sits on. It leaves two blank
// rows above the ascent of the 7x13 face and one below its descent.
const glyphBaseline = 13

// glyphs holds one bitmap per printable ASCII code. Row y of a glyph is a
// byte whose bit x is set when pixel (x, y) uses the foreground color.
var glyphs = rasterize(basicfont.Face7x13)

// Glyph returns the bitmap for the printable ASCII code c.
func Glyph(c byte) ([CellHeight]uint8, bool) {
	if !Sprite(c).IsGlyph() {
		return [CellHeight]uint8{}, false
	}
	return glyphs[c-firstGlyph], true
}

func rasterize(face *basicfont.Face) [glyphCount][CellHeight]uint8 {
	var t [glyphCount][CellHeight]uint8
	dot := fixed.P(1, glyphBaseline)
	for i := range t {
		dr, mask, mp, _, ok := face.Glyph(dot, rune(firstGlyph+i))
		if !ok {
			continue
		}
		for y := dr.Min.Y; y < dr.Max.Y; y++ {
			if y < 0 || y >= CellHeight {
				continue
			}
			for x := dr.Min.X; x < dr.Max.X; x++ {
				if x < 0 || x >= CellWidth {
					continue
				}
				_, _, _, a := mask.At(mp.X+x-dr.Min.X, mp.Y+y-dr.Min.Y).RGBA()
				if a >= 0x8000 {
					t[i][y] |= 1 << uint(x)
				}
			}
		}
	}
	return t
}
