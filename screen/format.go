package screen

import (
	"periph.io/x/devices/v3/st7735s/numfmt"
)

// Align selects how a number is placed relative to the column passed to
// PrintNumber.
type Align uint8

const (
	// AlignLeft starts the field at the column and pads on the right.
	AlignLeft Align = iota
	// AlignRight ends the field at the column and pads on the left.
	AlignRight
)

func (a Align) String() string {
	switch a {
	case AlignLeft:
		return "left"
	case AlignRight:
		return "right"
	}
	return "invalid"
}

// Notation selects the number representation.
type Notation uint8

const (
	// Plain is the decimal representation.
	Plain Notation = iota
	// Engineering uses four significant digits and an SI prefix, see
	// numfmt.AppendEng.
	Engineering
)

func (n Notation) String() string {
	switch n {
	case Plain:
		return "plain"
	case Engineering:
		return "engineering"
	}
	return "invalid"
}

// Format controls PrintNumber.
type Format struct {
	Align    Align
	Notation Notation
	// Width is the field width in cells.
	Width int
	// Exp is the power of ten the printed integer is scaled by in
	// engineering notation.
	Exp int
}

// DefaultFormat is the format a new Screen starts with.
var DefaultFormat = Format{
	Align:    AlignLeft,
	Notation: Plain,
	Width:    numfmt.EngWidth,
}

// Format returns the current number format.
func (s *Screen) Format() Format {
	return s.format
}

// SetFormat replaces the number format.
func (s *Screen) SetFormat(f Format) error {
	if f.Align > AlignRight || f.Notation > Engineering || f.Width <= 0 || f.Width > s.cols {
		return ErrFormat
	}
	s.format = f
	return nil
}

// fieldStart returns the first column of a number field anchored at col.
func (f *Format) fieldStart(col int) int {
	if f.Align == AlignRight {
		return col - f.Width + 1
	}
	return col
}

func (s *Screen) formatNumber(n int32) ([]byte, error) {
	if s.format.Notation == Engineering {
		return numfmt.AppendEng(s.num[:0], n, s.format.Exp)
	}
	return numfmt.AppendPlain(s.num[:0], n), nil
}
