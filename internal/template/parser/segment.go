package parser

import (
	"strings"

	"github.com/tacogips/embedscript/internal/debug"
)

const (
	// Marker is the optional leading token identifying an embed template.
	Marker = "{embed}"
	// Separator separates directives.
	Separator = "$v"
	// CodeFence is a literal triple backtick.
	CodeFence = "```"
	// EscapedCodeFence is the escape sequence standing in for CodeFence in
	// serialized templates.
	EscapedCodeFence = "\\`\\`\\`"
)

// Segment splits a template into directive segments (braces included).
//
// A leading Marker is stripped and EscapedCodeFence is restored to
// CodeFence before splitting on Separator. Every segment is checked before
// any is returned: each must be wrapped in braces and none may contain
// two directives without a separator ("}{").
func Segment(template string) ([]string, error) {
	text := strings.TrimSpace(template)
	text = strings.TrimPrefix(text, Marker)
	text = strings.ReplaceAll(text, EscapedCodeFence, CodeFence)
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, Separator)

	parts := strings.Split(text, Separator)
	segments := make([]string, 0, len(parts))
	for _, part := range parts {
		segments = append(segments, strings.TrimSpace(part))
	}

	for _, seg := range segments {
		if !strings.HasPrefix(seg, "{") || !strings.HasSuffix(seg, "}") {
			return nil, newFormatError("directive must be wrapped in {}", seg)
		}
		if strings.Contains(seg, "}{") {
			return nil, newFormatError("missing "+Separator+" between directives", seg)
		}
	}

	debug.Debug("[parser] Segment: %d segment(s)", len(segments))
	return segments, nil
}
