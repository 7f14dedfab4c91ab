// Package st7735s controls a ST7735S color LCD via SPI.
//
// See the examples for how to use this package.
package st7735s

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"time"

	"github.com/jonboulle/clockwork"
	"periph.io/x/conn/v3/display"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
	"periph.io/x/devices/v3/st7735s/rgb565"
)

const (
	cmdSleepIn          = 0x10
	cmdSleepOut         = 0x11
	cmdInversionOff     = 0x20
	cmdInversionOn      = 0x21
	cmdDisplayOff       = 0x28
	cmdDisplayOn        = 0x29
	cmdColumnAddress    = 0x2A
	cmdRowAddress       = 0x2B
	cmdMemoryWrite      = 0x2C
	cmdMemoryAccess     = 0x36
	cmdPixelFormat      = 0x3A
	cmdFrameRateNormal  = 0xB1
	cmdFrameRateIdle    = 0xB2
	cmdFrameRatePartial = 0xB3
	cmdInversionControl = 0xB4
	cmdPower1           = 0xC0
	cmdPower2           = 0xC1
	cmdPower3           = 0xC2
	cmdPower4           = 0xC3
	cmdPower5           = 0xC4
	cmdVCOM             = 0xC5
	cmdGammaPositive    = 0xE0
	cmdGammaNegative    = 0xE1

	// seqEnd terminates the payload of one command in an init sequence, and
	// the whole sequence when it appears in place of a command.
	seqEnd = 0xFF

	// Controller RAM size in landscape orientation.
	ramWidth  = 162
	ramHeight = 132
)

// initSequence configures a 0.96" 160x80 IPS panel in landscape mode.
var initSequence = []byte{
	cmdInversionOn, seqEnd,
	cmdFrameRateNormal, 0x05, 0x3A, 0x3A, seqEnd,
	cmdFrameRateIdle, 0x05, 0x3A, 0x3A, seqEnd,
	cmdFrameRatePartial, 0x05, 0x3A, 0x3A, 0x05, 0x3A, 0x3A, seqEnd,
	cmdInversionControl, 0x03, seqEnd,
	cmdPower1, 0x62, 0x02, 0x04, seqEnd,
	cmdPower2, 0xC0, seqEnd,
	cmdPower3, 0x0D, 0x00, seqEnd,
	cmdPower4, 0x8D, 0x6A, seqEnd,
	cmdPower5, 0x8D, 0xEE, seqEnd,
	cmdVCOM, 0x0E, seqEnd,
	cmdGammaPositive, 0x10, 0x0E, 0x02, 0x03, 0x0E, 0x07, 0x02, 0x07, 0x0A, 0x12, 0x27, 0x37, 0x00, 0x0D, 0x0E, 0x10, seqEnd,
	cmdGammaNegative, 0x10, 0x0E, 0x03, 0x03, 0x0F, 0x06, 0x02, 0x08, 0x0A, 0x13, 0x26, 0x36, 0x00, 0x0D, 0x0E, 0x10, seqEnd,
	cmdPixelFormat, 0x05, seqEnd, // 16 bits per pixel
	cmdMemoryAccess, 0x78, seqEnd, // Row/column exchange, BGR
	cmdDisplayOn, seqEnd,
	seqEnd,
}

// Opts is the configuration for the ST7735S display.
type Opts struct {
	// Visible area in pixels
	W int
	H int

	// Position of the visible glass inside the controller RAM. XOffset is
	// added to every column address, YOffset to every row address.
	XOffset int
	YOffset int

	// NoDMA forces the software pixel loop even if the bus supports DMA.
	NoDMA bool

	// SPI clock for NewSPI (default: 15MHz)
	Freq physic.Frequency

	// Optional pins
	RST gpio.PinOut // Reset pin, active low
	CS  gpio.PinOut // Chip select, held low for the whole session

	// Clock used for reset timing (default: real clock)
	Clock clockwork.Clock
}

// DefaultOpts describes the common 0.96" 160x80 module.
var DefaultOpts = Opts{
	W:       160,
	H:       80,
	XOffset: 1,
	YOffset: 26,
	Freq:    15 * physic.MegaHertz,
}

// Dev is the device handle for the ST7735S display.
type Dev struct {
	// Communication
	bus Bus
	dma DMA // nil when the software pixel loop is used
	rst gpio.PinOut
	cs  gpio.PinOut

	clock clockwork.Clock

	// Display geometry
	rect             image.Rectangle
	xOffset, yOffset int

	// Transfer state
	sprite sprite
	state  state
	sent   int       // pixel words written by the software loop
	addr   [2]uint16 // DMA source for address bursts
	solid  [1]uint16 // DMA source for solid fills

	halted bool
}

// NewSPI creates a new ST7735S device connected via SPI.
//
// The SPI port is configured for Mode0 (CPOL=0, CPHA=0), 8-bit transfers.
// 16-bit frames are sent most significant byte first. The dc (Data/Command)
// GPIO pin must be provided and configured as an output.
//
// opts can be nil to use DefaultOpts.
func NewSPI(p spi.Port, dc gpio.PinOut, opts *Opts) (*Dev, error) {
	if opts == nil {
		o := DefaultOpts
		opts = &o
	}
	if dc == nil {
		return nil, errors.New("st7735s: dc pin is required")
	}
	f := opts.Freq
	if f == 0 {
		f = DefaultOpts.Freq
	}
	c, err := p.Connect(f, spi.Mode0, 8)
	if err != nil {
		return nil, fmt.Errorf("st7735s: failed to connect: %w", err)
	}
	return New(newSPIBus(c, dc), opts)
}

// New creates a new ST7735S device on an arbitrary Bus and runs the
// initialization sequence.
//
// DMA is used when b also implements DMA, unless opts.NoDMA is set.
//
// opts can be nil to use DefaultOpts.
func New(b Bus, opts *Opts) (*Dev, error) {
	if opts == nil {
		o := DefaultOpts
		opts = &o
	}
	if opts.W <= 0 || opts.XOffset < 0 || opts.W+opts.XOffset > ramWidth {
		return nil, fmt.Errorf("st7735s: width %d at offset %d does not fit %d columns", opts.W, opts.XOffset, ramWidth)
	}
	if opts.H <= 0 || opts.YOffset < 0 || opts.H+opts.YOffset > ramHeight {
		return nil, fmt.Errorf("st7735s: height %d at offset %d does not fit %d rows", opts.H, opts.YOffset, ramHeight)
	}

	d := &Dev{
		bus:     b,
		rst:     opts.RST,
		cs:      opts.CS,
		clock:   opts.Clock,
		rect:    image.Rect(0, 0, opts.W, opts.H),
		xOffset: opts.XOffset,
		yOffset: opts.YOffset,
	}
	if dma, ok := b.(DMA); ok && !opts.NoDMA {
		d.dma = dma
	}
	if d.clock == nil {
		d.clock = clockwork.NewRealClock()
	}

	if err := d.init(); err != nil {
		return nil, err
	}
	return d, nil
}

// init resets the controller and sends the initialization sequence.
func (d *Dev) init() error {
	if d.cs != nil {
		if err := d.cs.Out(gpio.Low); err != nil {
			return fmt.Errorf("st7735s: failed to pull CS low: %w", err)
		}
	}

	// Hardware reset sequence (if RST pin is provided)
	if d.rst != nil {
		if err := d.rst.Out(gpio.Low); err != nil {
			return fmt.Errorf("st7735s: failed to pull RST low: %w", err)
		}
		d.clock.Sleep(time.Millisecond)

		if err := d.rst.Out(gpio.High); err != nil {
			return fmt.Errorf("st7735s: failed to pull RST high: %w", err)
		}
		d.clock.Sleep(time.Millisecond)
	}

	d.sendCommand(cmdSleepOut)
	d.clock.Sleep(120 * time.Millisecond)

	if err := d.replay(initSequence); err != nil {
		return err
	}
	return d.Err()
}

// replay sends an init sequence made of [cmd][data...][seqEnd] entries and
// closed by a lone seqEnd.
func (d *Dev) replay(seq []byte) error {
	i := 0
	for {
		if i >= len(seq) {
			return errors.New("st7735s: init sequence is not terminated")
		}
		cmd := seq[i]
		i++
		if cmd == seqEnd {
			return nil
		}
		j := i
		for j < len(seq) && seq[j] != seqEnd {
			j++
		}
		if j == len(seq) {
			return fmt.Errorf("st7735s: payload of command %#02x is not terminated", cmd)
		}
		d.sendCommand(cmd, seq[i:j]...)
		i = j + 1
	}
}

// sendCommand sends a command and its 8-bit parameters, spinning on the bus.
func (d *Dev) sendCommand(cmd byte, data ...byte) {
	d.waitIdle()
	d.bus.SetFrame(8)
	d.bus.SetMode(Command)
	d.bus.Write(uint16(cmd))
	if len(data) == 0 {
		return
	}
	d.waitIdle()
	d.bus.SetMode(Data)
	for _, b := range data {
		for !d.bus.TxReady() {
		}
		d.bus.Write(uint16(b))
	}
}

func (d *Dev) waitIdle() {
	for !d.hwIdle() {
	}
}

// hwIdle reports whether both the SPI peripheral and the DMA channel are done.
func (d *Dev) hwIdle() bool {
	if d.bus.Busy() {
		return false
	}
	return d.dma == nil || !d.dma.DMABusy()
}

// Color converts 8-bit channels to RGB565.
func Color(r, g, b uint8) rgb565.Color {
	return rgb565.New(r, g, b)
}

// Err returns the first I/O error reported by the bus, if the bus keeps one.
func (d *Dev) Err() error {
	if e, ok := d.bus.(interface{ Err() error }); ok {
		return e.Err()
	}
	return nil
}

// ColorModel returns the color model of the display.
func (d *Dev) ColorModel() color.Model {
	return rgb565.Model
}

// Bounds returns the image bounds of the display.
func (d *Dev) Bounds() image.Rectangle {
	return d.rect
}

// Draw draws an image onto the display, blocking until it is sent.
// The dst rectangle is clipped to the display; src point sp is aligned with
// dst.Min.
func (d *Dev) Draw(dst image.Rectangle, src image.Image, sp image.Point) error {
	if d.halted {
		return errors.New("st7735s: halted")
	}
	if !d.Idle() {
		return errors.New("st7735s: transfer in flight")
	}
	clipped := dst.Intersect(d.rect)
	if clipped.Empty() {
		return nil
	}
	sp = sp.Add(clipped.Min.Sub(dst.Min))

	img := rgb565.NewImage(image.Rect(0, 0, clipped.Dx(), clipped.Dy()))
	draw.Draw(img, img.Bounds(), src, sp, draw.Src)
	d.DrawColorMap(clipped.Min.Y, clipped.Min.X, clipped.Dy(), clipped.Dx(), img.Pix)
	return d.Err()
}

// Invert inverts the display colors.
//
// The IPS glass runs with controller inversion on, so normal mode sends
// INVON and inverted mode INVOFF.
func (d *Dev) Invert(invert bool) error {
	if d.halted {
		return errors.New("st7735s: halted")
	}
	if !d.Idle() {
		return errors.New("st7735s: transfer in flight")
	}
	cmd := byte(cmdInversionOn)
	if invert {
		cmd = cmdInversionOff
	}
	d.sendCommand(cmd)
	return d.Err()
}

// Halt turns the display off and puts the controller to sleep.
func (d *Dev) Halt() error {
	if !d.Idle() {
		return errors.New("st7735s: transfer in flight")
	}
	d.halted = true
	d.sendCommand(cmdDisplayOff)
	d.sendCommand(cmdSleepIn)
	return d.Err()
}

// String returns a string representation of the device.
func (d *Dev) String() string {
	return fmt.Sprintf("st7735s.Dev{%dx%d}", d.rect.Dx(), d.rect.Dy())
}

var _ display.Drawer = &Dev{}
