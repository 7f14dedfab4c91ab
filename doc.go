// Package st7735s controls a ST7735S color LCD via SPI.
//
// The ST7735S is a 16-bit color TFT controller with a 162x132 frame memory.
// This driver targets the common 0.96" module showing a 160x80 window of that
// memory, and implements the display.Drawer interface from periph.io.
//
// # Display Characteristics
//
// - 16-bit RGB565 color
// - 160x80 visible pixels at column offset 1 and row offset 26 of the RAM
// - Landscape orientation, BGR panel order, inversion on
// - Pixel writes to any rectangular window of the RAM
//
// # Hardware Connection
//
// Connect the ST7735S display to your system via SPI:
//
//	Display Pin → System Pin
//	GND         → GND
//	VCC         → 3.3V
//	SCL         → SPI Clock (SCLK)
//	SDA         → SPI Data (MOSI)
//	DC          → GPIO (any available pin)
//	CS          → SPI Chip Select (or GND if always selected)
//	RES         → Optional: GPIO for hardware reset
//	BLK         → 3.3V or a GPIO for the backlight
//
// # Basic Usage
//
//	package main
//
//	import (
//		"periph.io/x/conn/v3/gpio/gpioreg"
//		"periph.io/x/conn/v3/spi/spireg"
//		"periph.io/x/devices/v3/st7735s"
//		"periph.io/x/host/v3"
//	)
//
//	func main() {
//		host.Init()
//		spiBus, _ := spireg.Open("")
//		dcPin := gpioreg.ByName("GPIO25")
//
//		dev, _ := st7735s.NewSPI(spiBus, dcPin, nil)
//		defer dev.Halt()
//
//		// Fill the screen with red.
//		dev.DrawSolid(0, 0, 80, 160, st7735s.Color(0xFF, 0, 0))
//	}
//
// # Non-blocking Transfers
//
// Pixels are sent as sprites: a rectangle at a pixel position filled either
// from a color map or with a single color. RegisterColorMap and RegisterSolid
// only latch the sprite; each call to Step then advances the transfer as far
// as the bus allows without waiting, and returns false once the sprite is
// fully sent:
//
//	dev.RegisterColorMap(16, 8, 16, 8, pix)
//	for dev.Step() {
//		// other work
//	}
//
// The color map is not copied. It must not be modified until Idle reports
// true. Sprites are not clipped to the display: a sprite outside the visible
// window lands in the hidden part of the RAM, and addresses past the end of
// the RAM are left to the controller.
//
// Registering a sprite while a transfer is in flight panics. After Halt,
// sprites are dropped: the Register methods return 0 and the bus stays quiet.
//
// DrawColorMap, DrawSolid and the display.Drawer methods block until the
// transfer completes.
//
// # DMA
//
// When the Bus passed to New also implements DMA, address pairs and pixel
// runs are handed over as bursts, and Step returns while they are in
// progress. NewSPI uses an adapter that implements DMA by sending bursts as
// packets bounded by the port's maximum transfer size. Set Opts.NoDMA to write
// one word per Step instead.
//
// # Using Hardware Reset Pin (Optional)
//
// If your display has a reset (RES) pin connected to a GPIO, provide it in
// Opts:
//
//	opts := st7735s.DefaultOpts
//	opts.RST = gpioreg.ByName("GPIO24")
//	dev, _ := st7735s.NewSPI(spiBus, dcPin, &opts)
//
// The driver pulls RST low for 1ms and waits 1ms after releasing it. If RST is
// nil the driver relies on power-on reset. It then leaves sleep mode, waits
// 120ms and sends the panel configuration.
//
// # Text
//
// Package screen keeps a character-cell frame buffer on top of Dev and only
// sends the cells that changed.
//
// # Datasheet
//
// Command codes and the power-on configuration follow the Sitronix ST7735S
// datasheet, V1.4.
package st7735s
