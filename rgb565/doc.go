// Package rgb565 provides the 16-bit color format used by the ST7735S display.
//
// Each pixel is one 16-bit word laid out as RRRRRGGG GGGBBBBB and is sent to
// the controller high byte first.
//
//	Channel: R     G      B
//	Bits:    15-11 10-5   4-0
//
// This package provides:
//
// - Color: an RGB565 color that implements color.Color
// - Model: a color model converting standard Go colors to Color
// - Image: a word-per-pixel image whose Pix slice is a ready-made color map
//
// Example usage:
//
//	// An 8x16 pixel buffer
//	img := rgb565.NewImage(image.Rect(0, 0, 8, 16))
//
//	// Paint it pure red
//	img.Fill(rgb565.New(0xFF, 0x00, 0x00))
//
//	// Use with standard Go image operations
//	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
package rgb565
