package theme

import (
	"fmt"
	"image/color"
)

// Color is an 8-bit RGB color.
type Color struct {
	R, G, B uint8
}

var _ color.Color = Color{}

// FromWord decodes a 0xRRGGBB?? word; the low byte is ignored.
func FromWord(w uint32) Color {
	return Color{R: uint8(w >> 24), G: uint8(w >> 16), B: uint8(w >> 8)}
}

// Word encodes c as 0xRRGGBB00.
func (c Color) Word() uint32 {
	return uint32(c.R)<<24 | uint32(c.G)<<16 | uint32(c.B)<<8
}

// RGBA implements color.Color. Colors are always opaque.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}.RGBA()
}

// Luminance returns the relative luminance 0.2126r + 0.7152g + 0.0722b with
// channels scaled by 1/256.
func (c Color) Luminance() float64 {
	return 0.2126*(float64(c.R)/256) +
		0.7152*(float64(c.G)/256) +
		0.0722*(float64(c.B)/256)
}

// Hex returns the "#rrggbb" form.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// String implements fmt.Stringer.
func (c Color) String() string {
	return c.Hex()
}

// MarshalText implements encoding.TextMarshaler.
func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.Hex()), nil
}

// Palette is one theme record.
type Palette [PaletteSize]Color
