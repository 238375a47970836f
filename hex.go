package abgr

import "fmt"

// Hex converts a hex string to a Color. An optional leading '#' is
// allowed. Supported forms: "RGB", "RGBA", "RRGGBB", "RRGGBBAA"; the
// short forms expand each digit to both nibbles ("f" becomes 0xFF).
// Alpha defaults to 255 when absent. Malformed input is an error, like
// Parse and unlike the clamping constructors.
func Hex(hex string) (Color, error) {
	s := hex
	if s != "" && s[0] == '#' {
		s = s[1:]
	}
	if len(s) != 3 && len(s) != 4 && len(s) != 6 && len(s) != 8 {
		return Color{}, fmt.Errorf("abgr: invalid hex color length in %q", hex)
	}

	var d [8]uint8
	for i := 0; i < len(s); i++ {
		v, ok := hexNibble(s[i])
		if !ok {
			return Color{}, fmt.Errorf("abgr: invalid hex digit %q in %q", s[i], hex)
		}
		d[i] = v
	}

	switch len(s) {
	case 3: // RGB
		return Color{R: d[0] * 17, G: d[1] * 17, B: d[2] * 17, A: 0xFF}, nil
	case 4: // RGBA
		return Color{R: d[0] * 17, G: d[1] * 17, B: d[2] * 17, A: d[3] * 17}, nil
	case 6: // RRGGBB
		return Color{R: d[0]<<4 | d[1], G: d[2]<<4 | d[3], B: d[4]<<4 | d[5], A: 0xFF}, nil
	default: // RRGGBBAA
		return Color{R: d[0]<<4 | d[1], G: d[2]<<4 | d[3], B: d[4]<<4 | d[5], A: d[6]<<4 | d[7]}, nil
	}
}

// Hex returns the color as "#rrggbb" when fully opaque, "#rrggbbaa"
// otherwise, following the same omit-opaque-alpha rule as String.
func (c Color) Hex() string {
	if c.A == 0xFF {
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

// hexNibble decodes a single hex digit.
func hexNibble(c byte) (uint8, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}
