// Package serializer turns rendered cards back into template text.
package serializer

import (
	"strconv"
	"strings"

	"github.com/tacogips/embedscript/internal/debug"
	"github.com/tacogips/embedscript/internal/template/compiler"
	"github.com/tacogips/embedscript/internal/template/model"
	"github.com/tacogips/embedscript/internal/template/parser"
)

// Serialize emits a template that compiles back into card, buttons and content.
// Directives are written in a fixed order: content, title, description,
// timestamp, url, fields, footer, author, image, thumbnail, color, labels.
func Serialize(card *model.Card, buttons []model.LinkButton, content string) string {
	w := &writer{}
	w.b.WriteString(parser.Marker)

	if content != "" {
		w.directive(model.DirectiveContent, content)
	}

	if card != nil {
		w.directive(model.DirectiveTitle, card.Title)
		w.directive(model.DirectiveDescription, card.Description)
		w.directive(model.DirectiveTimestamp, card.Timestamp)
		w.directive(model.DirectiveURL, card.URL)

		for _, f := range card.Fields {
			w.multi(model.DirectiveField,
				f.Name,
				"value: "+f.Value,
				"inline: "+strconv.FormatBool(f.Inline))
		}

		// A footer or author without text has no template form: the payload
		// trim would eat the separator and turn the icon into text.
		if card.Footer != nil && card.Footer.Text != "" {
			if card.Footer.IconURL != "" {
				w.multi(model.DirectiveFooter, card.Footer.Text, "icon: "+card.Footer.IconURL)
			} else {
				w.directive(model.DirectiveFooter, card.Footer.Text)
			}
		}

		if a := card.Author; a != nil && a.Name != "" {
			if a.URL == "" && a.IconURL == "" {
				w.directive(model.DirectiveAuthor, a.Name)
			} else {
				parts := []string{a.Name}
				if a.URL != "" {
					parts = append(parts, "url: "+a.URL)
				}
				if a.IconURL != "" {
					parts = append(parts, "icon: "+a.IconURL)
				}
				w.multi(model.DirectiveAuthor, parts...)
			}
		}

		if card.Image != nil {
			w.directive(model.DirectiveImage, card.Image.URL)
		}
		if card.Thumbnail != nil {
			w.directive(model.DirectiveThumbnail, card.Thumbnail.URL)
		}
		if card.Color != nil {
			w.directive(model.DirectiveColor, compiler.FormatColor(*card.Color))
		}
	}

	for _, b := range buttons {
		parts := []string{b.Label, "link: " + b.URL}
		if b.Emoji != "" {
			parts = append(parts, "emoji: "+b.Emoji)
		}
		w.multi(model.DirectiveLabel, parts...)
	}

	debug.Debug("[serializer] wrote %d directive(s)", w.count)
	return w.b.String()
}

type writer struct {
	b     strings.Builder
	count int
}

// directive writes $v{name: value}, skipping empty values.
func (w *writer) directive(name, value string) {
	if value == "" {
		return
	}
	w.b.WriteString(parser.Separator)
	w.b.WriteString("{")
	w.b.WriteString(name)
	w.b.WriteString(": ")
	w.b.WriteString(escape(value))
	w.b.WriteString("}")
	w.count++
}

func (w *writer) multi(name string, parts ...string) {
	w.b.WriteString(parser.Separator)
	w.b.WriteString("{")
	w.b.WriteString(name)
	w.b.WriteString(": ")
	w.b.WriteString(escape(strings.Join(parts, parser.AttributeSeparator)))
	w.b.WriteString("}")
	w.count++
}

func escape(s string) string {
	return strings.ReplaceAll(s, parser.CodeFence, parser.EscapedCodeFence)
}
