package converter

import (
	"fmt"
	"strconv"
)

// FallbackColor is the fixed gray used whenever a color value is absent or
// unparsable.
const FallbackColor = "#808080"

// ToHex converts a decimal color string to "#RRGGBB". Empty, non-integer,
// and negative inputs all collapse to FallbackColor. Values above 0xFFFFFF
// format to more than six hex digits; the output tracks the input integer
// exactly rather than clamping.
func ToHex(value string) string {
	if value == "" {
		return FallbackColor
	}
	n, err := strconv.ParseInt(value, 10, 64)
	if err != nil || n < 0 {
		return FallbackColor
	}
	return fmt.Sprintf("#%06X", n)
}
