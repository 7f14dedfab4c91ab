package screen

// PrintChar writes c at (row, col) in the default colors and returns the
// number of cells changed.
func (s *Screen) PrintChar(row, col int, c byte) (int, error) {
	return s.PrintCharColor(row, col, c, s.bg, s.fg)
}

// PrintCharColor writes c at (row, col) in the given palette colors and
// returns the number of cells changed.
func (s *Screen) PrintCharColor(row, col int, c byte, bg, fg uint8) (int, error) {
	if !s.inGrid(row, col) {
		return 0, ErrOutOfRange
	}
	if !validIndex(bg) || !validIndex(fg) {
		return 0, ErrPaletteIndex
	}
	if !Sprite(c).IsGlyph() {
		return 0, ErrUnprintable
	}
	return s.put(row*s.cols+col, s.makeCell(Sprite(c), bg, fg)), nil
}

// PrintString writes str starting at (row, col) in the default colors.
func (s *Screen) PrintString(row, col int, str string) (int, error) {
	return s.PrintStringColor(row, col, str, s.bg, s.fg)
}

// PrintStringColor writes str starting at (row, col) in the given palette
// colors and returns the number of cells changed.
//
// Writing stops at the end of str, at a NUL byte or at the right edge of the
// grid. It does not wrap. Nothing is written if a character that would be
// written has no glyph.
func (s *Screen) PrintStringColor(row, col int, str string, bg, fg uint8) (int, error) {
	if !s.inGrid(row, col) {
		return 0, ErrOutOfRange
	}
	if !validIndex(bg) || !validIndex(fg) {
		return 0, ErrPaletteIndex
	}
	n := s.cols - col
	for i := 0; i < len(str) && i < n; i++ {
		if str[i] == 0 {
			n = i
			break
		}
		if !Sprite(str[i]).IsGlyph() {
			return 0, ErrUnprintable
		}
	}
	if n > len(str) {
		n = len(str)
	}
	changed := 0
	base := row * s.cols
	for i := 0; i < n; i++ {
		changed += s.put(base+col+i, s.makeCell(Sprite(str[i]), bg, fg))
	}
	return changed, nil
}

// PrintNumber writes n at (row, col) in the default colors using the current
// Format.
func (s *Screen) PrintNumber(row, col int, n int32) (int, error) {
	return s.PrintNumberColor(row, col, n, s.bg, s.fg)
}

// PrintNumberColor writes n at (row, col) in the given palette colors using
// the current Format, and returns the number of cells changed.
//
// The field is Format.Width cells wide, starting at col when left aligned and
// ending at col when right aligned. When the number does not fit in the
// field, or the field does not fit in the grid, the part of the field inside
// the grid is filled with '#'.
func (s *Screen) PrintNumberColor(row, col int, n int32, bg, fg uint8) (int, error) {
	if !s.inGrid(row, col) {
		return 0, ErrOutOfRange
	}
	if !validIndex(bg) || !validIndex(fg) {
		return 0, ErrPaletteIndex
	}
	f := &s.format
	start := f.fieldStart(col)
	end := start + f.Width
	text, err := s.formatNumber(n)
	base := row * s.cols

	if err != nil || len(text) > f.Width || start < 0 || end > s.cols {
		lo, hi := max(start, 0), min(end, s.cols)
		hash := s.makeCell('#', bg, fg)
		changed := 0
		for c := lo; c < hi; c++ {
			changed += s.put(base+c, hash)
		}
		return changed, nil
	}

	pad := f.Width - len(text)
	first := start
	if f.Align == AlignRight {
		first += pad
	}
	space := s.makeCell(' ', bg, fg)
	changed := 0
	for c := start; c < end; c++ {
		cell := space
		if i := c - first; i >= 0 && i < len(text) {
			cell = s.makeCell(Sprite(text[i]), bg, fg)
		}
		changed += s.put(base+c, cell)
	}
	return changed, nil
}

// Paint fills the cell at (row, col) with the palette color and returns the
// number of cells changed.
func (s *Screen) Paint(row, col int, color uint8) (int, error) {
	if !s.inGrid(row, col) {
		return 0, ErrOutOfRange
	}
	if !validIndex(color) {
		return 0, ErrPaletteIndex
	}
	return s.put(row*s.cols+col, MakeCell(SolidBackground, color, s.fg)), nil
}

// SetSprite stores sp at (row, col) as is and returns the number of cells
// changed. It is the only way to store Transparent.
func (s *Screen) SetSprite(row, col int, sp Sprite, bg, fg uint8) (int, error) {
	if !s.inGrid(row, col) {
		return 0, ErrOutOfRange
	}
	if !validIndex(bg) || !validIndex(fg) {
		return 0, ErrPaletteIndex
	}
	if !sp.Valid() {
		return 0, ErrSprite
	}
	return s.put(row*s.cols+col, s.makeCell(sp, bg, fg)), nil
}

// Clear fills every cell with the default background color and returns the
// number of cells changed.
func (s *Screen) Clear() int {
	n, _ := s.ClearColor(s.bg)
	return n
}

// ClearColor fills every cell with the palette color and returns the number
// of cells changed. Cells already showing that color are left alone.
func (s *Screen) ClearColor(color uint8) (int, error) {
	if !validIndex(color) {
		return 0, ErrPaletteIndex
	}
	c := MakeCell(SolidBackground, color, s.fg)
	changed := 0
	for i := range s.cells {
		changed += s.put(i, c)
	}
	return changed, nil
}
