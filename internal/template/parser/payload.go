package parser

import (
	"strconv"
	"strings"

	"github.com/tacogips/embedscript/internal/template/model"
)

// AttributeSeparator separates the parts of a multi-attribute payload.
const AttributeSeparator = " && "

// Sub-attribute labels stripped from multi-attribute parts.
const (
	labelValue  = "value:"
	labelInline = "inline:"
	labelIcon   = "icon:"
	labelURL    = "url:"
	labelLink   = "link:"
	labelEmoji  = "emoji:"
)

// IsMultiAttribute reports whether payload holds an AttributeSet.
func IsMultiAttribute(payload string) bool {
	return strings.Contains(payload, AttributeSeparator)
}

// SplitAttributes splits a multi-attribute payload into trimmed parts.
func SplitAttributes(payload string) []string {
	parts := strings.Split(payload, AttributeSeparator)
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

// stripLabel removes a leading sub-attribute label (e.g. "value:") and trims the rest.
func stripLabel(part, label string) string {
	return strings.TrimSpace(strings.TrimPrefix(part, label))
}

// hasLabel reports whether part starts with label.
func hasLabel(part, label string) bool {
	return strings.HasPrefix(part, label)
}

// decomposeField builds a field from name, value and optional inline parts.
func decomposeField(parts []string) model.Field {
	f := model.Field{Name: parts[0]}
	if len(parts) > 1 {
		f.Value = stripLabel(parts[1], labelValue)
	}
	if len(parts) > 2 {
		f.Inline = parseInline(stripLabel(parts[2], labelInline))
	}
	return f
}

// parseInline parses an inline flag; anything unparsable is false.
func parseInline(value string) bool {
	inline, err := strconv.ParseBool(strings.ToLower(value))
	if err != nil {
		return false
	}
	return inline
}

// decomposeFooter builds the footer sub-map from text and icon parts.
func decomposeFooter(parts []string) model.SubMap {
	footer := model.SubMap{{Key: "text", Value: parts[0]}}
	if len(parts) > 1 {
		footer = append(footer, model.Pair{Key: "icon", Value: stripLabel(parts[1], labelIcon)})
	}
	return footer
}

// decomposeButton builds a link button from label, link and optional emoji parts.
func decomposeButton(parts []string) model.LinkButton {
	b := model.LinkButton{Label: parts[0]}
	for _, part := range parts[1:] {
		switch {
		case hasLabel(part, labelEmoji):
			b.Emoji = stripLabel(part, labelEmoji)
		case b.URL == "":
			b.URL = stripLabel(part, labelLink)
		}
	}
	return b
}

// decomposeAuthor builds a multi-source author draft. icon: and url: parts
// are validated immediately.
func decomposeAuthor(parts []string) (model.AuthorDraft, error) {
	draft := model.AuthorDraft{Source: model.AuthorMulti, Name: parts[0]}
	for _, part := range parts[1:] {
		switch {
		case hasLabel(part, labelIcon):
			draft.Icon = stripLabel(part, labelIcon)
			if err := ValidateURL("author.icon", draft.Icon); err != nil {
				return draft, err
			}
		case hasLabel(part, labelURL):
			draft.URL = stripLabel(part, labelURL)
			if err := ValidateURL("author.url", draft.URL); err != nil {
				return draft, err
			}
		}
	}
	return draft, nil
}

// decomposeSubMap splits each part on its first ':' into a key/value pair.
func decomposeSubMap(parts []string) model.SubMap {
	sub := make(model.SubMap, 0, len(parts))
	for _, part := range parts {
		key, value, _ := strings.Cut(part, ":")
		sub = append(sub, model.Pair{
			Key:   strings.TrimSpace(key),
			Value: strings.TrimSpace(value),
		})
	}
	return sub
}
