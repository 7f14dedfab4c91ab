package screen

// Sprite is the content code of a cell: one of the special sprites below or
// a printable ASCII code.
type Sprite uint8

// Special sprites bypass glyph decoding.
const (
	// Transparent cells are never sent; whatever is on the panel stays.
	Transparent Sprite = iota
	SolidBlack
	SolidWhite
	// SolidBackground fills the cell with its background color.
	SolidBackground
	// SolidForeground fills the cell with its foreground color.
	SolidForeground

	numSpecial
)

const (
	firstGlyph = ' '
	lastGlyph  = '~'
	glyphCount = lastGlyph - firstGlyph + 1
)

// IsSpecial reports whether s is one of the special sprites.
func (s Sprite) IsSpecial() bool {
	return s < numSpecial
}

// IsGlyph reports whether s is a printable ASCII code.
func (s Sprite) IsGlyph() bool {
	return s >= firstGlyph && s <= lastGlyph
}

// Valid reports whether s can be stored in a cell.
func (s Sprite) Valid() bool {
	return s.IsSpecial() || s.IsGlyph()
}

// UsesBackground reports whether the pixels of s depend on the background
// color of its cell.
func (s Sprite) UsesBackground() bool {
	switch s {
	case SolidBackground:
		return true
	case Transparent, SolidBlack, SolidWhite, SolidForeground:
		return false
	}
	return s.IsGlyph()
}

// UsesForeground reports whether the pixels of s depend on the foreground
// color of its cell.
func (s Sprite) UsesForeground() bool {
	switch s {
	case SolidForeground:
		return true
	case Transparent, SolidBlack, SolidWhite, SolidBackground:
		return false
	}
	return s.IsGlyph()
}

// Cell is one packed frame-buffer entry:
//
//	bit  15    dirty
//	bits 14-8  sprite
//	bits 7-4   foreground palette index
//	bits 3-0   background palette index
type Cell uint16

const (
	cellDirty   Cell = 1 << 15
	spriteShift      = 8
	spriteMask       = 0x7F
	fgShift          = 4
	indexMask        = 0x0F
)

// MakeCell packs a clean cell.
func MakeCell(s Sprite, bg, fg uint8) Cell {
	return Cell(uint16(s&spriteMask)<<spriteShift | uint16(fg&indexMask)<<fgShift | uint16(bg&indexMask))
}

// Sprite returns the content code of the cell.
func (c Cell) Sprite() Sprite {
	return Sprite(c>>spriteShift) & spriteMask
}

// Background returns the background palette index.
func (c Cell) Background() uint8 {
	return uint8(c) & indexMask
}

// Foreground returns the foreground palette index.
func (c Cell) Foreground() uint8 {
	return uint8(c>>fgShift) & indexMask
}

// Dirty reports whether the panel still shows stale content for the cell.
func (c Cell) Dirty() bool {
	return c&cellDirty != 0
}

// Clean returns the cell without its dirty flag.
func (c Cell) Clean() Cell {
	return c &^ cellDirty
}

func (c Cell) markDirty() Cell {
	return c | cellDirty
}

// SameSprite reports whether a and b are known to produce identical pixels,
// ignoring the dirty flag.
//
// Two cells are the same when they hold the same fixed sprite, the same solid
// sprite with the same color index for the channel it uses, or the same glyph
// with the same indices for both channels. Everything else is considered
// different, even if the pixels happen to match.
func SameSprite(a, b Cell) bool {
	s := a.Sprite()
	if s != b.Sprite() {
		return false
	}
	switch s {
	case Transparent, SolidBlack, SolidWhite:
		return true
	case SolidBackground:
		return a.Background() == b.Background()
	case SolidForeground:
		return a.Foreground() == b.Foreground()
	}
	if s.IsGlyph() {
		return a.Background() == b.Background() && a.Foreground() == b.Foreground()
	}
	return false
}
