package st7735s

import (
	"encoding/binary"
	"fmt"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/gpio"
)

// Mode selects how the controller interprets the next frames on the bus.
type Mode uint8

const (
	// Command frames are sent with D/C low.
	Command Mode = iota
	// Data frames are sent with D/C high.
	Data
)

func (m Mode) String() string {
	if m == Command {
		return "command"
	}
	return "data"
}

// Bus is the register-level view of the SPI peripheral driving the panel,
// including the D/C line.
//
// None of the methods may block. Busy and TxReady mirror the BSY and TXE
// status flags; the transfer engine polls them and never touches framing or
// D/C while Busy reports true.
type Bus interface {
	// Busy reports whether a frame is still being shifted out.
	Busy() bool
	// TxReady reports whether the transmit buffer can accept a frame.
	TxReady() bool
	// SetFrame selects 8 or 16 bit frames.
	SetFrame(bits int)
	// SetMode drives the D/C line.
	SetMode(m Mode)
	// Write pushes one frame. Only the low byte is sent in 8-bit framing.
	Write(w uint16)
}

// DMA is implemented by buses that can stream 16-bit words to the SPI
// peripheral without the CPU.
//
// src must stay valid and unmodified until DMABusy reports false. When
// increment is false the first word of src is sent n times.
type DMA interface {
	StartDMA(src []uint16, n int, increment bool)
	DMABusy() bool
}

// spiBus adapts a periph.io connection to Bus and DMA.
//
// periph.io transactions are synchronous, so the bus is never busy between
// calls and a DMA burst completes inside StartDMA.
type spiBus struct {
	c         conn.Conn
	dc        gpio.PinOut
	bits      int
	maxTxSize int
	word      [2]byte
	chunk     []byte
	err       error
}

func newSPIBus(c conn.Conn, dc gpio.PinOut) *spiBus {
	// Get the maxTxSize from the conn if it implements the conn.Limits
	// interface, otherwise use 4096 bytes.
	maxTxSize := 0
	if limits, ok := c.(conn.Limits); ok {
		maxTxSize = limits.MaxTxSize()
	}
	if maxTxSize <= 0 || maxTxSize > 4096 {
		maxTxSize = 4096
	}
	// Bursts are packed a whole 16-bit word at a time.
	maxTxSize &^= 1
	if maxTxSize < 2 {
		maxTxSize = 2
	}
	return &spiBus{
		c:         c,
		dc:        dc,
		bits:      8,
		maxTxSize: maxTxSize,
		chunk:     make([]byte, maxTxSize),
	}
}

func (b *spiBus) Busy() bool    { return false }
func (b *spiBus) TxReady() bool { return true }
func (b *spiBus) DMABusy() bool { return false }

func (b *spiBus) SetFrame(bits int) {
	b.bits = bits
}

func (b *spiBus) SetMode(m Mode) {
	l := gpio.Low
	if m == Data {
		l = gpio.High
	}
	if err := b.dc.Out(l); err != nil {
		b.fail(fmt.Errorf("st7735s: failed to drive DC %s: %w", m, err))
	}
}

func (b *spiBus) Write(w uint16) {
	p := b.word[:1]
	if b.bits == 16 {
		binary.BigEndian.PutUint16(b.word[:], w)
		p = b.word[:]
	} else {
		b.word[0] = byte(w)
	}
	b.tx(p)
}

func (b *spiBus) StartDMA(src []uint16, n int, increment bool) {
	i := 0
	for n > 0 {
		k := 0
		for ; k+2 <= len(b.chunk) && n > 0; k += 2 {
			w := src[0]
			if increment {
				w = src[i]
				i++
			}
			binary.BigEndian.PutUint16(b.chunk[k:], w)
			n--
		}
		b.tx(b.chunk[:k])
	}
}

func (b *spiBus) tx(p []byte) {
	if b.err != nil {
		return
	}
	if err := b.c.Tx(p, nil); err != nil {
		b.fail(fmt.Errorf("st7735s: spi write failed: %w", err))
	}
}

func (b *spiBus) fail(err error) {
	if b.err == nil {
		b.err = err
	}
}

// Err returns the first I/O error seen by the bus.
func (b *spiBus) Err() error {
	return b.err
}
