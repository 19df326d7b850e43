package parser

import (
	"strings"
)

// Directive is one {name: payload} unit of a template.
type Directive struct {
	// Name is the directive name (e.g., "title", "field").
	Name string
	// Payload is the trimmed text after the first ':'.
	// nil means the directive had no ':' at all.
	Payload *string
	// RawText is the original segment.
	RawText string
}

// HasPayload reports whether the directive carried a ':'.
func (d Directive) HasPayload() bool {
	return d.Payload != nil
}

// ParseDirective strips the outer braces of a segment and splits it on the first ':'.
func ParseDirective(segment string) Directive {
	inner := strings.TrimPrefix(segment, "{")
	inner = strings.TrimSuffix(inner, "}")

	name, payload, found := strings.Cut(inner, ":")
	d := Directive{
		Name:    strings.TrimSpace(name),
		RawText: segment,
	}
	if found {
		payload = strings.TrimSpace(payload)
		d.Payload = &payload
	}
	return d
}
