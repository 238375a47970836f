package abgr

import "image/color"

// Color is a color with 8-bit red, green, blue, and alpha channels.
// The channels are non-premultiplied. The zero value is fully
// transparent black.
//
// Color is a plain comparable value: == compares all four channels,
// which is exactly equivalent to comparing packed values, and a Color
// may be used as a map key with those semantics.
type Color struct {
	R, G, B, A uint8
}

// New creates a color from channel bytes.
func New(r, g, b, a uint8) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// RGB creates an opaque color from channel bytes.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 0xFF}
}

// NewInt creates a color from int channels. Each component is clamped
// to [0, 255]; out-of-range input never fails.
func NewInt(r, g, b, a int) Color {
	return Color{
		R: uint8(clamp255(r)),
		G: uint8(clamp255(g)),
		B: uint8(clamp255(b)),
		A: uint8(clamp255(a)),
	}
}

// RGBInt creates an opaque color from int channels, clamped like NewInt.
func RGBInt(r, g, b int) Color {
	return NewInt(r, g, b, 255)
}

// NewFloat creates a color from normalized [0, 1] channels. Each
// component is scaled by 255, truncated toward zero, and then clamped
// like NewInt. Truncation happens before the clamp, so NewFloat(-0.5,
// 0, 0, 1) truncates -127.5 to -127 and then clamps to 0.
func NewFloat(r, g, b, a float32) Color {
	return NewInt(int(r*255), int(g*255), int(b*255), int(a*255))
}

// RGBFloat creates an opaque color from normalized [0, 1] channels.
func RGBFloat(r, g, b float32) Color {
	return NewFloat(r, g, b, 1)
}

// FromPacked creates a color from its packed 0xAABBGGRR form.
func FromPacked(p uint32) Color {
	return Color{
		R: uint8(p),
		G: uint8(p >> 8),
		B: uint8(p >> 16),
		A: uint8(p >> 24),
	}
}

// Packed returns the color as a single uint32 with R in the least
// significant byte and A in the most significant byte (0xAABBGGRR).
// The byte order is fixed by the shifts below and does not depend on
// host endianness.
func (c Color) Packed() uint32 {
	return uint32(c.R) | uint32(c.G)<<8 | uint32(c.B)<<16 | uint32(c.A)<<24
}

// RGBA implements the standard color.Color interface, returning
// alpha-premultiplied 16-bit channels.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}.RGBA()
}

// NRGBA returns the color as a standard non-premultiplied color.NRGBA.
// The conversion is lossless in both directions.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// FromColor converts a standard color.Color to a Color.
func FromColor(c color.Color) Color {
	if c, ok := c.(Color); ok {
		return c
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Color{R: n.R, G: n.G, B: n.B, A: n.A}
}

// Model is the color.Model for Color, for use with the standard image
// machinery.
var Model color.Model = color.ModelFunc(func(c color.Color) color.Color {
	return FromColor(c)
})

// clamp255 restricts a value to [0, 255] range.
func clamp255(x int) int {
	if x < 0 {
		return 0
	}
	if x > 255 {
		return 255
	}
	return x
}

// Common colors
var (
	Black       = RGB(0, 0, 0)
	White       = RGB(255, 255, 255)
	Red         = RGB(255, 0, 0)
	Green       = RGB(0, 255, 0)
	Blue        = RGB(0, 0, 255)
	Yellow      = RGB(255, 255, 0)
	Cyan        = RGB(0, 255, 255)
	Magenta     = RGB(255, 0, 255)
	Transparent = New(0, 0, 0, 0)
)
