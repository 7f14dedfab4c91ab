package screen

import (
	"periph.io/x/devices/v3/st7735s/rgb565"
)

// SetColor recolors the cell at (row, col), changing only the channels its
// sprite uses, and reports whether the cell changed.
func (s *Screen) SetColor(row, col int, bg, fg uint8) (bool, error) {
	if !s.inGrid(row, col) {
		return false, ErrOutOfRange
	}
	if !validIndex(bg) || !validIndex(fg) {
		return false, ErrPaletteIndex
	}
	i := row*s.cols + col
	return s.recolor(i, func(uint8) uint8 { return bg }, func(uint8) uint8 { return fg }), nil
}

// SetDefaultColors replaces the default colors. Every cell using the old
// default background or foreground on a channel its sprite uses is moved to
// the new one. It returns the number of cells changed.
func (s *Screen) SetDefaultColors(bg, fg uint8) (int, error) {
	if !validIndex(bg) || !validIndex(fg) {
		return 0, ErrPaletteIndex
	}
	obg, ofg := s.bg, s.fg
	s.bg, s.fg = bg, fg
	return s.recolorAll(remap(obg, bg), remap(ofg, fg)), nil
}

// ChangeColor moves every cell using palette index src on a used channel to
// dst, and returns the number of cells changed.
func (s *Screen) ChangeColor(src, dst uint8) (int, error) {
	if !validIndex(src) || !validIndex(dst) {
		return 0, ErrPaletteIndex
	}
	m := remap(src, dst)
	return s.recolorAll(m, m), nil
}

// SetPaletteColor sets palette index i to the color (r, g, b) and marks every
// cell showing it as stale. It returns the number of cells marked, which is 0
// when the palette entry already holds that color.
func (s *Screen) SetPaletteColor(i, r, g, b uint8) (int, error) {
	if !validIndex(i) {
		return 0, ErrPaletteIndex
	}
	c := rgb565.New(r, g, b)
	if s.palette[i] == c {
		return 0, nil
	}
	s.palette[i] = c
	changed := 0
	for k, cell := range s.cells {
		sp := cell.Sprite()
		if (sp.UsesBackground() && cell.Background() == i) || (sp.UsesForeground() && cell.Foreground() == i) {
			s.cells[k] = cell.markDirty()
			changed++
		}
	}
	return changed, nil
}

func remap(from, to uint8) func(uint8) uint8 {
	return func(c uint8) uint8 {
		if c == from {
			return to
		}
		return c
	}
}

func (s *Screen) recolorAll(bg, fg func(uint8) uint8) int {
	changed := 0
	for i := range s.cells {
		if s.recolor(i, bg, fg) {
			changed++
		}
	}
	return changed
}

// recolor maps the used channels of cell i through bg and fg. The cell is
// rewritten only if the result differs.
func (s *Screen) recolor(i int, bg, fg func(uint8) uint8) bool {
	old := s.cells[i]
	sp := old.Sprite()
	nbg, nfg := old.Background(), old.Foreground()
	if sp.UsesBackground() {
		nbg = bg(nbg)
	}
	if sp.UsesForeground() {
		nfg = fg(nfg)
	}
	return s.put(i, MakeCell(sp, nbg, nfg)) != 0
}
