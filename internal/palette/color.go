package palette

import (
	"fmt"
	"strconv"
	"strings"
)

// BlockSize is the number of hex digits in one colour block.
const BlockSize = 6

// Color is a canonical colour block: exactly six lowercase hex digits.
type Color string

// Palette is an ordered list of colours, word order first, then chunk order.
type Palette []Color

// ParseColor accepts "rrggbb" or "#rrggbb" in any case and returns the
// canonical form.
func ParseColor(s string) (Color, error) {
	c := Color(strings.ToLower(strings.TrimPrefix(s, "#")))
	if !c.Valid() {
		return "", fmt.Errorf("%w: %q", ErrMalformedColor, s)
	}
	return c, nil
}

// FromRGB builds a colour from its channels.
func FromRGB(r, g, b uint8) Color {
	return Color(fmt.Sprintf("%02x%02x%02x", r, g, b))
}

// Valid reports whether c is exactly six lowercase hex digits.
func (c Color) Valid() bool {
	if len(c) != BlockSize {
		return false
	}
	for i := 0; i < len(c); i++ {
		ch := c[i]
		if (ch < '0' || ch > '9') && (ch < 'a' || ch > 'f') {
			return false
		}
	}
	return true
}

// RGB returns the three channels. The colour must be valid.
func (c Color) RGB() (r, g, b uint8) {
	return channel(c[0:2]), channel(c[2:4]), channel(c[4:6])
}

// Hex returns the colour with a leading '#'.
func (c Color) Hex() string {
	return "#" + string(c)
}

func channel(s Color) uint8 {
	v, _ := strconv.ParseUint(string(s), 16, 8)
	return uint8(v)
}

// Strings returns the palette as plain strings.
func (p Palette) Strings() []string {
	out := make([]string, len(p))
	for i, c := range p {
		out[i] = string(c)
	}
	return out
}

// Validate returns ErrMalformedColor for the first invalid block.
func (p Palette) Validate() error {
	for i, c := range p {
		if !c.Valid() {
			return fmt.Errorf("%w: block %d is %q", ErrMalformedColor, i, string(c))
		}
	}
	return nil
}
