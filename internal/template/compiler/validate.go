package compiler

import (
	"fmt"
	"unicode/utf8"

	"github.com/tacogips/embedscript/internal/template/model"
	"github.com/tacogips/embedscript/internal/template/parser"
)

// Limits are the size constraints of the rendering surface, in characters.
type Limits struct {
	Title       int `json:"title" yaml:"title" validate:"gt=0"`
	Description int `json:"description" yaml:"description" validate:"gt=0"`
	AuthorName  int `json:"author_name" yaml:"author_name" validate:"gt=0"`
	FieldName   int `json:"field_name" yaml:"field_name" validate:"gt=0"`
	FieldValue  int `json:"field_value" yaml:"field_value" validate:"gt=0"`
	FooterText  int `json:"footer_text" yaml:"footer_text" validate:"gt=0"`
	Total       int `json:"total" yaml:"total" validate:"gt=0"`
}

// DefaultLimits returns the Discord embed limits.
func DefaultLimits() Limits {
	return Limits{
		Title:       256,
		Description: 4096,
		AuthorName:  256,
		FieldName:   256,
		FieldValue:  1024,
		FooterText:  2048,
		Total:       6000,
	}
}

// Validate checks a card against the limits and URL rules.
func Validate(card *model.Card, limits Limits) error {
	if card == nil {
		return nil
	}

	if err := checkLength("title", card.Title, limits.Title); err != nil {
		return err
	}
	if err := checkLength("description", card.Description, limits.Description); err != nil {
		return err
	}
	if card.Author != nil {
		if err := checkLength("author.name", card.Author.Name, limits.AuthorName); err != nil {
			return err
		}
	}
	for i, f := range card.Fields {
		if err := checkLength(fmt.Sprintf("fields[%d].name", i), f.Name, limits.FieldName); err != nil {
			return err
		}
		if err := checkLength(fmt.Sprintf("fields[%d].value", i), f.Value, limits.FieldValue); err != nil {
			return err
		}
	}
	if card.Footer != nil {
		if err := checkLength("footer.text", card.Footer.Text, limits.FooterText); err != nil {
			return err
		}
	}

	if card.Image != nil {
		if err := parser.ValidateURL("image.url", card.Image.URL); err != nil {
			return err
		}
	}
	if card.Thumbnail != nil {
		if err := parser.ValidateURL("thumbnail.url", card.Thumbnail.URL); err != nil {
			return err
		}
	}
	if card.Author != nil {
		if card.Author.IconURL != "" {
			if err := parser.ValidateURL("author.iconUrl", card.Author.IconURL); err != nil {
				return err
			}
		}
		if card.Author.URL != "" {
			if err := parser.ValidateURL("author.url", card.Author.URL); err != nil {
				return err
			}
		}
	}
	if card.Footer != nil && card.Footer.IconURL != "" {
		if err := parser.ValidateURL("footer.iconUrl", card.Footer.IconURL); err != nil {
			return err
		}
	}

	if over := Weight(card) - limits.Total; over > 0 {
		return parser.NewInvalidEmbedError("embed",
			fmt.Sprintf("embed exceeds %d characters by %d", limits.Total, over))
	}
	return nil
}

// ValidateButtons checks that every button links to a well-formed URL.
func ValidateButtons(buttons []model.LinkButton) error {
	for i, b := range buttons {
		if err := parser.ValidateURL(fmt.Sprintf("label[%d].link", i), b.URL); err != nil {
			return err
		}
	}
	return nil
}

// Weight is the aggregate character count of a card: title, description,
// every field name and value, footer text and author name.
func Weight(card *model.Card) int {
	n := length(card.Title) + length(card.Description)
	for _, f := range card.Fields {
		n += length(f.Name) + length(f.Value)
	}
	if card.Footer != nil {
		n += length(card.Footer.Text)
	}
	if card.Author != nil {
		n += length(card.Author.Name)
	}
	return n
}

func checkLength(attribute, value string, limit int) error {
	if over := length(value) - limit; over > 0 {
		return parser.NewInvalidEmbedError(attribute,
			fmt.Sprintf("%s is %d characters too long (limit %d)", attribute, over, limit))
	}
	return nil
}

func length(s string) int {
	return utf8.RuneCountInString(s)
}
