// Package screen keeps a character-cell frame buffer for a small color panel
// and streams only the cells that changed.
//
// The panel is divided into 8x16 pixel cells. Every mutating call updates the
// in-memory cell grid and returns how many cells changed; nothing is sent to
// the panel until Update is called. Update is non-blocking: it either advances
// the transfer in flight or scans a few cells looking for stale content, so it
// can be called from a cooperative main loop.
//
//	dev, _ := st7735s.NewSPI(port, dc, nil)
//	scr, _ := screen.New(dev, nil)
//	scr.PrintString(0, 0, "hello")
//	for {
//		scr.Update()
//		// other work
//	}
package screen

import (
	"errors"
	"fmt"
	"image"

	"periph.io/x/devices/v3/st7735s/rgb565"
)

// ScanLimit is the number of idle cells Update inspects per call.
const ScanLimit = 5

var (
	// ErrOutOfRange is returned for a cell position outside the grid.
	ErrOutOfRange = errors.New("screen: position out of range")
	// ErrPaletteIndex is returned for a color index outside the palette.
	ErrPaletteIndex = errors.New("screen: palette index out of range")
	// ErrUnprintable is returned for characters without a glyph.
	ErrUnprintable = errors.New("screen: unprintable character")
	// ErrSprite is returned for sprite codes that cannot be stored.
	ErrSprite = errors.New("screen: invalid sprite")
	// ErrFormat is returned for an invalid number format.
	ErrFormat = errors.New("screen: invalid format")
)

// Engine moves pixel rectangles to the panel without blocking.
//
// *st7735s.Dev implements it.
type Engine interface {
	// RegisterColorMap starts sending the h*w pixels of pix at (row, col).
	// pix must not be modified until Step returns false.
	RegisterColorMap(row, col, h, w int, pix []uint16) int
	// RegisterSolid starts filling h*w pixels at (row, col) with c.
	RegisterSolid(row, col, h, w int, c rgb565.Color) int
	// Step advances the transfer and reports whether it is still in flight.
	Step() bool
}

// Opts defines the options for the screen.
type Opts struct {
	// W and H are the panel size in pixels. W must be a multiple of
	// CellWidth and H of CellHeight.
	W int
	H int
	// Background and Foreground are the default palette indices.
	Background uint8
	Foreground uint8
}

// DefaultOpts is the recommended default options.
var DefaultOpts = Opts{
	W:          160,
	H:          80,
	Background: Black,
	Foreground: White,
}

type scanState uint8

const (
	stateScan scanState = iota
	stateSend
)

// Screen is the cell frame buffer of one panel.
type Screen struct {
	eng     Engine
	rows    int
	cols    int
	cells   []Cell
	palette Palette
	bg      uint8
	fg      uint8
	format  Format

	state  scanState
	cursor int
	// pix holds the decoded glyph of the cell in flight.
	pix *rgb565.Image
	num [16]byte
}

// New returns a Screen drawing through eng.
//
// It blanks the whole panel with the background color before returning, which
// blocks until eng finishes. eng must be idle.
func New(eng Engine, opts *Opts) (*Screen, error) {
	if opts == nil {
		opts = &DefaultOpts
	}
	if opts.W <= 0 || opts.W%CellWidth != 0 {
		return nil, fmt.Errorf("screen: width %d must be a positive multiple of %d", opts.W, CellWidth)
	}
	if opts.H <= 0 || opts.H%CellHeight != 0 {
		return nil, fmt.Errorf("screen: height %d must be a positive multiple of %d", opts.H, CellHeight)
	}
	if !validIndex(opts.Background) || !validIndex(opts.Foreground) {
		return nil, fmt.Errorf("screen: default colors %d/%d: %w", opts.Background, opts.Foreground, ErrPaletteIndex)
	}
	s := &Screen{
		eng:     eng,
		rows:    opts.H / CellHeight,
		cols:    opts.W / CellWidth,
		palette: DefaultPalette,
		bg:      opts.Background,
		fg:      opts.Foreground,
		format:  DefaultFormat,
		pix:     rgb565.NewImage(image.Rect(0, 0, CellWidth, CellHeight)),
	}
	s.cells = make([]Cell, s.rows*s.cols)
	blank := MakeCell(SolidBackground, s.bg, s.fg)
	for i := range s.cells {
		s.cells[i] = blank
	}
	eng.RegisterSolid(0, 0, opts.H, opts.W, s.palette[s.bg])
	for eng.Step() {
	}
	return s, nil
}

// Rows returns the number of cell rows.
func (s *Screen) Rows() int {
	return s.rows
}

// Cols returns the number of cell columns.
func (s *Screen) Cols() int {
	return s.cols
}

// Cell returns the cell at (row, col).
func (s *Screen) Cell(row, col int) (Cell, error) {
	if !s.inGrid(row, col) {
		return 0, ErrOutOfRange
	}
	return s.cells[row*s.cols+col], nil
}

// Palette returns the physical color of palette index i.
func (s *Screen) Palette(i uint8) (rgb565.Color, error) {
	if !validIndex(i) {
		return 0, ErrPaletteIndex
	}
	return s.palette[i], nil
}

// Defaults returns the default background and foreground indices.
func (s *Screen) Defaults() (bg, fg uint8) {
	return s.bg, s.fg
}

// Pending returns the number of cells waiting to be sent.
func (s *Screen) Pending() int {
	n := 0
	for _, c := range s.cells {
		if c.Dirty() {
			n++
		}
	}
	return n
}

// Flush calls Update until every cell is sent. It blocks.
func (s *Screen) Flush() {
	for s.Update() || s.Pending() != 0 {
	}
}

func (s *Screen) String() string {
	return fmt.Sprintf("screen.Screen{%dx%d}", s.cols, s.rows)
}

func (s *Screen) inGrid(row, col int) bool {
	return row >= 0 && row < s.rows && col >= 0 && col < s.cols
}

// makeCell builds a cell, folding a glyph drawn in a single physical color
// into a plain background fill.
func (s *Screen) makeCell(sp Sprite, bg, fg uint8) Cell {
	if sp.IsGlyph() && s.palette[bg] == s.palette[fg] {
		sp = SolidBackground
	}
	return MakeCell(sp, bg, fg)
}

// put stores c at index i unless the cell already shows the same pixels. It
// returns the number of cells changed.
func (s *Screen) put(i int, c Cell) int {
	if SameSprite(s.cells[i], c) {
		return 0
	}
	s.cells[i] = c.markDirty()
	return 1
}
