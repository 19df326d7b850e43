package compiler

import (
	"strconv"
	"strings"

	"github.com/tacogips/embedscript/internal/debug"
	"github.com/tacogips/embedscript/internal/template/model"
	"github.com/tacogips/embedscript/internal/template/parser"
)

// emptyMedia are image/thumbnail values that remove the attribute.
var emptyMedia = map[string]bool{"": true, "none": true}

// normalize reshapes the document into an artifact. It expands shorthand
// forms, merges author drafts, parses the color and drops scratch keys.
// Size limits are not checked here.
func (c *Compiler) normalize(doc *model.IntermediateDocument) (*model.Artifact, error) {
	artifact := &model.Artifact{
		Content: doc.Content,
		Buttons: doc.Buttons,
	}
	artifact.AutoDeleteSeconds = normalizeAutoDelete(doc.AutoDelete)

	embed := doc.Embed
	card := &model.Card{
		Title:       attrText(embed[model.DirectiveTitle]),
		Description: attrText(embed[model.DirectiveDescription]),
		URL:         attrText(embed[model.DirectiveURL]),
		Timestamp:   attrText(embed[model.DirectiveTimestamp]),
		Fields:      doc.Fields(),
	}

	var err error
	if card.Image, err = normalizeMedia(model.DirectiveImage, embed[model.DirectiveImage]); err != nil {
		return nil, err
	}
	if card.Thumbnail, err = normalizeMedia(model.DirectiveThumbnail, embed[model.DirectiveThumbnail]); err != nil {
		return nil, err
	}
	if card.Footer, err = normalizeFooter(embed[model.DirectiveFooter]); err != nil {
		return nil, err
	}
	if card.Author, err = mergeAuthors(doc.Authors); err != nil {
		return nil, err
	}

	if raw, ok := embed[model.DirectiveColor]; ok {
		parsed := ParseColor(attrText(raw), c.opts.FallbackColor)
		color := parsed.Color()
		card.Color = &color
		if fb, ok := parsed.(model.ColorFallback); ok {
			debug.Debug("[compiler] color fallback: %s", fb.Diagnostic)
			artifact.Error = fb.Diagnostic
		}
	}

	for _, name := range doc.Unknown {
		debug.Debug("[compiler] dropping unknown attribute %q", name)
	}

	if !card.IsEmpty() {
		artifact.Card = card
	}
	return artifact, nil
}

// attrText returns the text of an attribute. A sub-map is joined back into
// its "key: value && ..." source form.
func attrText(a model.Attribute) string {
	switch v := a.(type) {
	case model.Scalar:
		return string(v)
	case model.SubMap:
		parts := make([]string, 0, len(v))
		for _, p := range v {
			if p.Value == "" {
				parts = append(parts, p.Key)
				continue
			}
			parts = append(parts, p.Key+": "+p.Value)
		}
		return strings.Join(parts, parser.AttributeSeparator)
	default:
		return ""
	}
}

func normalizeAutoDelete(raw *string) *int {
	if raw == nil {
		return nil
	}
	seconds, err := strconv.Atoi(strings.TrimSpace(*raw))
	if err != nil || seconds <= 0 {
		debug.Debug("[compiler] ignoring autodelete %q", *raw)
		return nil
	}
	return &seconds
}

func normalizeMedia(name string, a model.Attribute) (*model.Media, error) {
	switch v := a.(type) {
	case model.Scalar:
		value := strings.TrimSpace(string(v))
		if emptyMedia[strings.ToLower(value)] {
			return nil, nil
		}
		if err := parser.ValidateURL(name+".url", value); err != nil {
			return nil, err
		}
		return &model.Media{URL: value}, nil
	case model.SubMap:
		url, _ := v.Get("url")
		return &model.Media{URL: url}, nil
	default:
		return nil, nil
	}
}

func normalizeFooter(a model.Attribute) (*model.Footer, error) {
	switch v := a.(type) {
	case model.Scalar:
		return &model.Footer{Text: string(v)}, nil
	case model.SubMap:
		footer := &model.Footer{}
		footer.Text, _ = v.Get("text")
		if icon, ok := v.Get("icon"); ok {
			footer.IconURL = cleanIcon(icon)
			if footer.IconURL != "" {
				if err := parser.ValidateURL("footer.iconUrl", footer.IconURL); err != nil {
					return nil, err
				}
			}
		}
		return footer, nil
	default:
		return nil, nil
	}
}

// mergeAuthors folds the single and multi author drafts into one author.
// Multi values win where present; its icon is always preferred.
func mergeAuthors(drafts map[model.AuthorSource]*model.AuthorDraft) (*model.Author, error) {
	single, multi := drafts[model.AuthorSingle], drafts[model.AuthorMulti]
	if single == nil && multi == nil {
		return nil, nil
	}

	author := &model.Author{}
	if single != nil {
		author.Name = single.Name
		author.URL = single.URL
		author.IconURL = cleanIcon(single.Icon)
	}
	if multi != nil {
		if multi.Name != "" {
			author.Name = multi.Name
		}
		if multi.URL != "" {
			author.URL = multi.URL
		}
		if icon := cleanIcon(multi.Icon); icon != "" {
			author.IconURL = icon
		}
	}

	if author.IconURL != "" {
		if err := parser.ValidateURL("author.iconUrl", author.IconURL); err != nil {
			return nil, err
		}
	}
	return author, nil
}

// cleanIcon strips leftover "icon:" or "icon" label text.
func cleanIcon(icon string) string {
	icon = strings.TrimSpace(icon)
	icon = strings.TrimPrefix(icon, "icon:")
	if !strings.HasPrefix(icon, "http") {
		icon = strings.TrimPrefix(icon, "icon")
	}
	return strings.TrimSpace(icon)
}
