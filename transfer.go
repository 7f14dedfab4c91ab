package st7735s

import (
	"periph.io/x/devices/v3/st7735s/rgb565"
)

// payload tells which of the sprite's pixel sources is in use.
type payload uint8

const (
	colorMap payload = iota // pix holds one word per pixel
	solidFill               // color is repeated for every pixel
)

// sprite is the descriptor of one rectangular transfer.
type sprite struct {
	row, col int // origin in pixels
	h, w     int
	n        int // pixel count

	kind  payload
	pix   []uint16 // borrowed, only for colorMap
	color rgb565.Color
}

// state of the transfer engine.
type state uint8

const (
	stateIdle state = iota
	stateCmdColumn
	stateColumnStart
	stateColumnStop
	stateCmdRow
	stateRowStart
	stateRowStop
	stateCmdWrite
	stateDMASend
	stateStop
	statePixelSend
)

var stateNames = [...]string{
	stateIdle:        "idle",
	stateCmdColumn:   "cmd-column",
	stateColumnStart: "column-start",
	stateColumnStop:  "column-stop",
	stateCmdRow:      "cmd-row",
	stateRowStart:    "row-start",
	stateRowStop:     "row-stop",
	stateCmdWrite:    "cmd-write",
	stateDMASend:     "dma-send",
	stateStop:        "stop",
	statePixelSend:   "pixel-send",
}

func (s state) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}
	return "invalid"
}

// RegisterColorMap latches a transfer of a w x h block at pixel (row, col)
// whose pixels are read from pix in row-major order, and returns the pixel
// count.
//
// pix is not copied: it must stay valid and unmodified until Idle reports
// true. The block is not clipped to the display. A zero-area block, or any
// block after Halt, returns 0 and leaves the engine idle. Registering while a
// transfer is in flight panics.
func (d *Dev) RegisterColorMap(row, col, h, w int, pix []uint16) int {
	d.mustBeIdle()
	n := d.area(h, w)
	if n == 0 {
		return 0
	}
	if len(pix) < n {
		panic("st7735s: color map is smaller than the sprite")
	}
	d.start(sprite{row: row, col: col, h: h, w: w, n: n, kind: colorMap, pix: pix})
	return n
}

// RegisterSolid latches a transfer of a w x h block at pixel (row, col)
// filled with c, and returns the pixel count.
//
// The same rules as RegisterColorMap apply.
func (d *Dev) RegisterSolid(row, col, h, w int, c rgb565.Color) int {
	d.mustBeIdle()
	n := d.area(h, w)
	if n == 0 {
		return 0
	}
	d.start(sprite{row: row, col: col, h: h, w: w, n: n, kind: solidFill, color: c})
	return n
}

// DrawColorMap registers a color map sprite and blocks until it is sent.
func (d *Dev) DrawColorMap(row, col, h, w int, pix []uint16) int {
	n := d.RegisterColorMap(row, col, h, w, pix)
	for d.Step() {
	}
	return n
}

// DrawSolid registers a solid sprite and blocks until it is sent.
func (d *Dev) DrawSolid(row, col, h, w int, c rgb565.Color) int {
	n := d.RegisterSolid(row, col, h, w, c)
	for d.Step() {
	}
	return n
}

// Idle reports whether no transfer is in flight.
func (d *Dev) Idle() bool {
	return d.state == stateIdle
}

// area returns the pixel count of a h x w block, or 0 when nothing can be
// sent.
func (d *Dev) area(h, w int) int {
	if d.halted || h <= 0 || w <= 0 {
		return 0
	}
	return h * w
}

func (d *Dev) mustBeIdle() {
	if d.state != stateIdle {
		panic("st7735s: sprite registered while a transfer is in flight")
	}
}

func (d *Dev) start(s sprite) {
	d.sprite = s
	d.sent = 0
	d.state = stateCmdColumn
}

// Step advances the transfer as far as the hardware allows without waiting
// and reports whether the transfer is still in flight.
//
// It must be called repeatedly until it returns false. The software pixel
// loop writes at most one pixel per call.
func (d *Dev) Step() bool {
	s := &d.sprite
	for {
		switch d.state {
		case stateIdle:
			return false

		case stateCmdColumn:
			if !d.startCommand(cmdColumnAddress) {
				return true
			}
			d.state = stateColumnStart

		case stateColumnStart:
			x := s.col + d.xOffset
			if d.dma != nil {
				if !d.startAddressBurst(x, x+s.w-1) {
					return true
				}
				d.state = stateCmdRow
				continue
			}
			if !d.startData(uint16(x)) {
				return true
			}
			d.state = stateColumnStop

		case stateColumnStop:
			if !d.bus.TxReady() {
				return true
			}
			d.bus.Write(uint16(s.col + d.xOffset + s.w - 1))
			d.state = stateCmdRow

		case stateCmdRow:
			if !d.startCommand(cmdRowAddress) {
				return true
			}
			d.state = stateRowStart

		case stateRowStart:
			y := s.row + d.yOffset
			if d.dma != nil {
				if !d.startAddressBurst(y, y+s.h-1) {
					return true
				}
				d.state = stateCmdWrite
				continue
			}
			if !d.startData(uint16(y)) {
				return true
			}
			d.state = stateRowStop

		case stateRowStop:
			if !d.bus.TxReady() {
				return true
			}
			d.bus.Write(uint16(s.row + d.yOffset + s.h - 1))
			d.state = stateCmdWrite

		case stateCmdWrite:
			if !d.startCommand(cmdMemoryWrite) {
				return true
			}
			if d.dma != nil {
				d.state = stateDMASend
			} else {
				d.state = statePixelSend
			}

		case stateDMASend:
			if !d.hwIdle() {
				return true
			}
			d.bus.SetFrame(16)
			d.bus.SetMode(Data)
			if s.kind == solidFill {
				d.solid[0] = uint16(s.color)
				d.dma.StartDMA(d.solid[:], s.n, false)
			} else {
				d.dma.StartDMA(s.pix, s.n, true)
			}
			d.state = stateStop
			return true

		case statePixelSend:
			if d.sent == 0 {
				if !d.startData(d.pixel(0)) {
					return true
				}
			} else {
				if !d.bus.TxReady() {
					return true
				}
				d.bus.Write(d.pixel(d.sent))
			}
			d.sent++
			if d.sent < s.n {
				return true
			}
			d.state = stateStop

		case stateStop:
			if !d.hwIdle() {
				return true
			}
			d.state = stateIdle
			return false

		default:
			// Unknown state: resynchronize rather than hang the display.
			d.state = stateIdle
			return false
		}
	}
}

func (d *Dev) pixel(i int) uint16 {
	if d.sprite.kind == solidFill {
		return uint16(d.sprite.color)
	}
	return d.sprite.pix[i]
}

// startCommand sends an 8-bit command once the bus is idle.
func (d *Dev) startCommand(cmd byte) bool {
	if !d.hwIdle() {
		return false
	}
	d.bus.SetFrame(8)
	d.bus.SetMode(Command)
	d.bus.Write(uint16(cmd))
	return true
}

// startData sends the first 16-bit data word after a command once the bus is
// idle.
func (d *Dev) startData(w uint16) bool {
	if !d.hwIdle() {
		return false
	}
	d.bus.SetFrame(16)
	d.bus.SetMode(Data)
	d.bus.Write(w)
	return true
}

// startAddressBurst sends a start/stop address pair as one DMA burst.
func (d *Dev) startAddressBurst(start, stop int) bool {
	if !d.hwIdle() {
		return false
	}
	d.addr[0] = uint16(start)
	d.addr[1] = uint16(stop)
	d.bus.SetFrame(16)
	d.bus.SetMode(Data)
	d.dma.StartDMA(d.addr[:], 2, true)
	return true
}
