package model

// ColorParse is the outcome of parsing a color directive: ColorOK or ColorFallback.
type ColorParse interface {
	// Color returns the color to render.
	Color() int
}

// ColorOK is a successfully parsed color.
type ColorOK struct {
	Value int
}

// ColorFallback is a sentinel color substituted for an unparsable value.
// Diagnostic describes what could not be parsed.
type ColorFallback struct {
	Value      int
	Diagnostic string
}

// Color returns the parsed color.
func (c ColorOK) Color() int { return c.Value }

// Color returns the sentinel color.
func (c ColorFallback) Color() int { return c.Value }
