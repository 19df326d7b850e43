package compiler

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/tacogips/embedscript/internal/template/model"
)

// DefaultFallbackColor is substituted for colors that cannot be parsed.
const DefaultFallbackColor = 0x2F3136

// maxColor is the largest 24-bit RGB value.
const maxColor = 0xFFFFFF

// ParseColor parses "#RRGGBB", "0xRRGGBB" or a bare hex string. A bare
// string that is not a 24-bit hex value is read as a decimal integer, the
// form chat clients report colors in.
// It never fails: unparsable input yields a ColorFallback carrying fallback
// and a diagnostic.
func ParseColor(value string, fallback int) model.ColorParse {
	text := strings.TrimSpace(value)
	hex := strings.TrimPrefix(text, "#")
	if hex == text {
		hex = strings.TrimPrefix(strings.ToLower(text), "0x")
	}

	n, err := strconv.ParseUint(hex, 16, 32)
	if (err != nil || n > maxColor) && hex == text {
		n, err = strconv.ParseUint(text, 10, 32)
	}
	if err != nil || hex == "" || n > maxColor {
		return model.ColorFallback{
			Value:      fallback,
			Diagnostic: fmt.Sprintf("invalid color %q, using #%06X", value, fallback),
		}
	}
	return model.ColorOK{Value: int(n)}
}

// FormatColor renders a color as "#RRGGBB".
func FormatColor(color int) string {
	return fmt.Sprintf("#%06X", color)
}
