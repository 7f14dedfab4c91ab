package screen_test

import (
	"reflect"
	"testing"

	"periph.io/x/conn/v3/gpio/gpiotest"
	"periph.io/x/conn/v3/spi/spitest"
	"periph.io/x/devices/v3/st7735s"
	"periph.io/x/devices/v3/st7735s/screen"
)

func TestScreenOnST7735S(t *testing.T) {
	port := &spitest.Record{}
	dev, err := st7735s.NewSPI(port, &gpiotest.Pin{N: "DC"}, nil)
	if err != nil {
		t.Fatalf("NewSPI() error = %v", err)
	}
	s, err := screen.New(dev, nil)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if !dev.Idle() {
		t.Fatal("panel blanking left the device busy")
	}

	port.Ops = nil
	if n, err := s.PrintCharColor(1, 2, 'T', screen.Blue, screen.Yellow); n != 1 || err != nil {
		t.Fatalf("PrintCharColor() = %d, %v", n, err)
	}
	s.Flush()

	if len(port.Ops) != 6 {
		t.Fatalf("got %d writes, want 6", len(port.Ops))
	}
	// Cell (1, 2) covers columns 16..23 and rows 16..31 of the glass.
	want := [][]byte{
		{0x2A}, {0x00, 0x11, 0x00, 0x18},
		{0x2B}, {0x00, 0x2A, 0x00, 0x39},
		{0x2C},
	}
	for i, w := range want {
		if got := port.Ops[i].W; !reflect.DeepEqual(got, w) {
			t.Errorf("write %d = %#v, want %#v", i, got, w)
		}
	}

	g, _ := screen.Glyph('T')
	bg, fg := screen.DefaultPalette[screen.Blue], screen.DefaultPalette[screen.Yellow]
	pix := port.Ops[5].W
	if len(pix) != 2*screen.CellWidth*screen.CellHeight {
		t.Fatalf("pixel write is %d bytes", len(pix))
	}
	for y := 0; y < screen.CellHeight; y++ {
		for x := 0; x < screen.CellWidth; x++ {
			c := bg
			if g[y]&(1<<uint(x)) != 0 {
				c = fg
			}
			i := 2 * (y*screen.CellWidth + x)
			if got := uint16(pix[i])<<8 | uint16(pix[i+1]); got != uint16(c) {
				t.Fatalf("pixel (%d, %d) = %#04x, want %#04x", x, y, got, uint16(c))
			}
		}
	}
	if err := dev.Err(); err != nil {
		t.Errorf("Err() = %v", err)
	}
}
