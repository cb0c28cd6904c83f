package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// HexToRGB converts a "#RRGGBB" or "#AARRGGBB" color to its red, green and
// blue components. The alpha channel, when present, is ignored.
// Example: "#808080" -> 128, 128, 128
func HexToRGB(hexColor string) (r, g, b int, err error) {
	value := strings.TrimPrefix(strings.TrimSpace(hexColor), "#")
	switch len(value) {
	case 6:
	case 8:
		value = value[2:]
	default:
		return 0, 0, 0, fmt.Errorf("invalid color %q: expected #RRGGBB", hexColor)
	}

	colorInt, err := strconv.ParseUint(value, 16, 32)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("failed to parse color string: %w", err)
	}

	return int(colorInt >> 16 & 0xFF), int(colorInt >> 8 & 0xFF), int(colorInt & 0xFF), nil
}
