package abgr

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Parse errors. Per-component failures (non-numeric text, values outside
// [0, 255]) are reported as wrapped strconv errors instead.
var (
	ErrTooFewParts  = errors.New("abgr: at least 3 color components required")
	ErrTooManyParts = errors.New("abgr: at most 4 color components allowed")
)

// Parse converts a decimal channel list such as "212, 120, 27" or
// "100 232 242 250" to a Color. The input is split on any run of commas
// and spaces; empty fields between delimiters are ignored, so
// "0, , ,, 8, , 210, 255" has exactly four components. Three components
// are R, G, B with alpha 255; four are R, G, B, A. Each component must
// be a base-10 unsigned integer in [0, 255]: unlike the int and float
// constructors, Parse never clamps, it fails.
func Parse(s string) (Color, error) {
	parts := strings.FieldsFunc(s, isDelim)
	if len(parts) < 3 {
		return Color{}, fmt.Errorf("%w, got %d in %q", ErrTooFewParts, len(parts), s)
	}
	if len(parts) > 4 {
		return Color{}, fmt.Errorf("%w, got %d in %q", ErrTooManyParts, len(parts), s)
	}

	var ch [4]uint8
	ch[3] = 0xFF
	for i, part := range parts {
		v, err := strconv.ParseUint(part, 10, 8)
		if err != nil {
			return Color{}, fmt.Errorf("abgr: invalid color component %q: %w", part, err)
		}
		ch[i] = uint8(v)
	}
	return Color{R: ch[0], G: ch[1], B: ch[2], A: ch[3]}, nil
}

func isDelim(r rune) bool {
	return r == ',' || r == ' '
}

// String returns the decimal channel list form accepted by Parse:
// "R, G, B" when the color is fully opaque, "R, G, B, A" otherwise.
func (c Color) String() string {
	if c.A == 0xFF {
		return fmt.Sprintf("%d, %d, %d", c.R, c.G, c.B)
	}
	return fmt.Sprintf("%d, %d, %d, %d", c.R, c.G, c.B, c.A)
}
