package serializer

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/tacogips/embedscript/internal/template/model"
)

// FromMessageEmbed converts a delivered Discord embed into a card.
// A zero color is treated as unset.
func FromMessageEmbed(embed *discordgo.MessageEmbed) *model.Card {
	if embed == nil {
		return nil
	}

	card := &model.Card{
		Title:       embed.Title,
		Description: embed.Description,
		URL:         embed.URL,
		Timestamp:   embed.Timestamp,
	}
	if embed.Color != 0 {
		color := embed.Color
		card.Color = &color
	}
	for _, f := range embed.Fields {
		if f == nil {
			continue
		}
		card.Fields = append(card.Fields, model.Field{Name: f.Name, Value: f.Value, Inline: f.Inline})
	}
	if embed.Footer != nil {
		card.Footer = &model.Footer{Text: embed.Footer.Text, IconURL: embed.Footer.IconURL}
	}
	if embed.Author != nil {
		card.Author = &model.Author{Name: embed.Author.Name, URL: embed.Author.URL, IconURL: embed.Author.IconURL}
	}
	if embed.Image != nil && embed.Image.URL != "" {
		card.Image = &model.Media{URL: embed.Image.URL}
	}
	if embed.Thumbnail != nil && embed.Thumbnail.URL != "" {
		card.Thumbnail = &model.Media{URL: embed.Thumbnail.URL}
	}
	return card
}

// ButtonsFromComponents collects the link buttons of a message's action rows.
// Other component types are skipped.
func ButtonsFromComponents(components []discordgo.MessageComponent) []model.LinkButton {
	var buttons []model.LinkButton
	for _, c := range components {
		var row []discordgo.MessageComponent
		switch r := c.(type) {
		case discordgo.ActionsRow:
			row = r.Components
		case *discordgo.ActionsRow:
			row = r.Components
		default:
			continue
		}

		for _, inner := range row {
			var button discordgo.Button
			switch b := inner.(type) {
			case discordgo.Button:
				button = b
			case *discordgo.Button:
				button = *b
			default:
				continue
			}
			if button.Style != discordgo.LinkButton {
				continue
			}
			buttons = append(buttons, model.LinkButton{
				Label: button.Label,
				URL:   button.URL,
				Emoji: emojiText(button.Emoji),
			})
		}
	}
	return buttons
}

// FromMessage serializes a delivered message: its content, first embed and link buttons.
func FromMessage(msg *discordgo.Message) string {
	var card *model.Card
	if len(msg.Embeds) > 0 {
		card = FromMessageEmbed(msg.Embeds[0])
	}
	return Serialize(card, ButtonsFromComponents(msg.Components), msg.Content)
}

// emojiText renders a component emoji the way templates write it.
func emojiText(e *discordgo.ComponentEmoji) string {
	if e == nil {
		return ""
	}
	if e.ID == "" {
		return e.Name
	}
	if e.Animated {
		return fmt.Sprintf("<a:%s:%s>", e.Name, e.ID)
	}
	return fmt.Sprintf("<:%s:%s>", e.Name, e.ID)
}
