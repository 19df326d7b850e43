package cli

import (
	"fmt"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/tacogips/embedscript/internal/template/compiler"
	"github.com/tacogips/embedscript/internal/template/model"
	"github.com/tacogips/embedscript/internal/template/parser"
)

// askOne asks a single question. Tests replace it with scripted answers.
var askOne = survey.AskOne

// maxPromptFields caps the field loop at what a chat client displays.
const maxPromptFields = 25

// Draft is the message assembled by PromptForMessage.
type Draft struct {
	Content string
	Card    *model.Card
	Buttons []model.LinkButton
}

// PromptForMessage interactively asks for every part of a message.
func PromptForMessage() (*Draft, error) {
	draft := &Draft{Card: &model.Card{}}
	card := draft.Card

	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, "Describe the message. Leave a question empty to skip it.")
	fmt.Fprintln(stdout)

	steps := []struct {
		message string
		help    string
		target  *string
		check   survey.Validator
	}{
		{"Content", "Plain text shown above the card", &draft.Content, nil},
		{"Title", "Card title", &card.Title, nil},
		{"Description", "Card body", &card.Description, nil},
		{"URL", "Link opened by the title", &card.URL, optionalURL(model.DirectiveURL)},
		{"Color", "Hex color such as #5865F2", nil, optionalColor},
	}
	var color string
	for _, s := range steps {
		target := s.target
		if target == nil {
			target = &color
		}
		if err := promptString(s.message, s.help, target, s.check); err != nil {
			return nil, err
		}
	}
	if color != "" {
		c := compiler.ParseColor(color, compiler.DefaultFallbackColor).Color()
		card.Color = &c
	}

	if err := promptMedia(card); err != nil {
		return nil, err
	}
	if err := promptFooterAndAuthor(card); err != nil {
		return nil, err
	}

	var stamp bool
	if err := promptBool("Include a timestamp?", &stamp); err != nil {
		return nil, err
	}
	if stamp {
		card.Timestamp = "now"
	}

	fields, err := promptFields()
	if err != nil {
		return nil, err
	}
	card.Fields = fields

	buttons, err := promptButtons()
	if err != nil {
		return nil, err
	}
	draft.Buttons = buttons

	if card.IsEmpty() {
		draft.Card = nil
	}
	return draft, nil
}

func promptMedia(card *model.Card) error {
	var image, thumbnail string
	if err := promptString("Image URL", "Large image below the body", &image, optionalURL("image.url")); err != nil {
		return err
	}
	if err := promptString("Thumbnail URL", "Small image in the corner", &thumbnail, optionalURL("thumbnail.url")); err != nil {
		return err
	}
	if image != "" {
		card.Image = &model.Media{URL: image}
	}
	if thumbnail != "" {
		card.Thumbnail = &model.Media{URL: thumbnail}
	}
	return nil
}

func promptFooterAndAuthor(card *model.Card) error {
	var footer, author string
	if err := promptString("Footer", "Small text at the bottom", &footer, nil); err != nil {
		return err
	}
	if err := promptString("Author", "Name shown above the title", &author, nil); err != nil {
		return err
	}
	if footer != "" {
		card.Footer = &model.Footer{Text: footer}
	}
	if author != "" {
		card.Author = &model.Author{Name: author}
	}
	return nil
}

// promptFields asks for fields until the user declines another one.
func promptFields() ([]model.Field, error) {
	var fields []model.Field
	for len(fields) < maxPromptFields {
		var more bool
		if err := promptBool("Add a field?", &more); err != nil {
			return nil, err
		}
		if !more {
			break
		}

		var f model.Field
		if err := promptString("Field name", "", &f.Name, survey.Required); err != nil {
			return nil, err
		}
		if err := promptString("Field value", "", &f.Value, survey.Required); err != nil {
			return nil, err
		}
		if err := promptBool("Inline?", &f.Inline); err != nil {
			return nil, err
		}
		fields = append(fields, f)
	}
	return fields, nil
}

// promptButtons asks for link buttons until the user declines another one.
func promptButtons() ([]model.LinkButton, error) {
	var buttons []model.LinkButton
	for len(buttons) < compiler.ButtonsPerRow*compiler.MaxActionRows {
		var more bool
		if err := promptBool("Add a link button?", &more); err != nil {
			return nil, err
		}
		if !more {
			break
		}

		var b model.LinkButton
		if err := promptString("Button label", "", &b.Label, survey.Required); err != nil {
			return nil, err
		}
		link := survey.ComposeValidators(survey.Required, optionalURL("label.link"))
		if err := promptString("Button link", "", &b.URL, link); err != nil {
			return nil, err
		}
		if err := promptString("Button emoji", "Unicode emoji or <:name:id>", &b.Emoji, nil); err != nil {
			return nil, err
		}
		buttons = append(buttons, b)
	}
	return buttons, nil
}

// promptString prompts for a string value.
func promptString(message, help string, target *string, check survey.Validator) error {
	prompt := &survey.Input{
		Message: message,
		Default: *target,
		Help:    help,
	}

	opts := []survey.AskOpt{}
	if check != nil {
		opts = append(opts, survey.WithValidator(check))
	}

	var result string
	if err := askOne(prompt, &result, opts...); err != nil {
		return err
	}
	*target = strings.TrimSpace(result)
	return nil
}

// promptBool prompts for a yes/no answer.
func promptBool(message string, target *bool) error {
	prompt := &survey.Confirm{
		Message: message,
		Default: *target,
	}
	return askOne(prompt, target)
}

// optionalURL accepts an empty answer or an http(s) URL.
func optionalURL(attribute string) survey.Validator {
	return func(val interface{}) error {
		str, ok := val.(string)
		if !ok {
			return fmt.Errorf("expected string, got %T", val)
		}
		str = strings.TrimSpace(str)
		if str == "" {
			return nil
		}
		if err := parser.ValidateURL(attribute, str); err != nil {
			return fmt.Errorf("must be an http(s) URL")
		}
		return nil
	}
}

// optionalColor accepts an empty answer or a #RRGGBB color.
func optionalColor(val interface{}) error {
	str, ok := val.(string)
	if !ok {
		return fmt.Errorf("expected string, got %T", val)
	}
	str = strings.TrimSpace(str)
	if str == "" {
		return nil
	}
	if _, bad := compiler.ParseColor(str, compiler.DefaultFallbackColor).(model.ColorFallback); bad {
		return fmt.Errorf("must be a hex color such as #5865F2")
	}
	return nil
}
