package subtitles

import (
	"strconv"
	"strings"
)

// Color is a plain RGB triple. The subtitle format carries an alpha channel
// in style colors but it is ignored here.
type Color struct {
	R uint8
	G uint8
	B uint8
}

var White = Color{R: 255, G: 255, B: 255}

// ParseColor decodes the format's "&H...&" hexadecimal color notation. The
// hex digits are ordered blue-green-red with the red channel in the least
// significant byte, so "&H0000FF&" is pure red. Anything that does not decode
// falls back to white.
func ParseColor(text string) Color {
	str := strings.ToUpper(strings.TrimSpace(text))
	str = strings.TrimPrefix(str, "&H")
	str = strings.TrimSuffix(str, "&")

	value, parseErr := strconv.ParseUint(str, 16, 64)
	if parseErr != nil || value > 0xFFFFFFFF {
		return White
	}

	return Color{
		R: uint8(value),
		G: uint8(value >> 8),
		B: uint8(value >> 16),
	}
}
