package cards

import (
	"fmt"
	"strconv"
	"strings"
)

// Color is an RGB triple. Its canonical textual form is "#RRGGBB" with
// uppercase hex digits.
type Color struct {
	Red   uint8
	Green uint8
	Blue  uint8
}

// NewColor builds a color from its channels.
func NewColor(red, green, blue uint8) Color {
	return Color{Red: red, Green: green, Blue: blue}
}

// ErrInvalidLength is returned by FromHex when the stripped input is not
// exactly 6 characters.
var ErrInvalidLength = fmt.Errorf("invalid length! Hex data length must be exactly 6 characters")

// FromHex parses a hex color. A single leading '#' is allowed.
func FromHex(hex string) (Color, error) {
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) != 6 {
		return Color{}, ErrInvalidLength
	}
	red, err := strconv.ParseUint(hex[0:2], 16, 8)
	if err != nil {
		return Color{}, fmt.Errorf("integer parsing error: %w", err)
	}
	green, err := strconv.ParseUint(hex[2:4], 16, 8)
	if err != nil {
		return Color{}, fmt.Errorf("integer parsing error: %w", err)
	}
	blue, err := strconv.ParseUint(hex[4:6], 16, 8)
	if err != nil {
		return Color{}, fmt.Errorf("integer parsing error: %w", err)
	}
	return Color{Red: uint8(red), Green: uint8(green), Blue: uint8(blue)}, nil
}

func (c Color) String() string {
	return fmt.Sprintf("#%02X%02X%02X", c.Red, c.Green, c.Blue)
}

// MarshalJSON encodes the color in its canonical hex form for the renderer.
func (c Color) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(c.String())), nil
}
