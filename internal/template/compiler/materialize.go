package compiler

import (
	"regexp"

	"github.com/bwmarrin/discordgo"
	"github.com/tacogips/embedscript/internal/debug"
	"github.com/tacogips/embedscript/internal/template/model"
)

const (
	// ButtonsPerRow is the number of buttons an action row holds.
	ButtonsPerRow = 5
	// MaxActionRows is the number of action rows a message holds.
	MaxActionRows = 5
)

// customEmojiPattern matches <:name:id> and <a:name:id>.
var customEmojiPattern = regexp.MustCompile(`^<(a?):([A-Za-z0-9_~]+):(\d+)>$`)

// Materialize converts an artifact into a Discord message.
func Materialize(artifact *model.Artifact) *discordgo.MessageSend {
	msg := &discordgo.MessageSend{}
	if artifact.Content != nil {
		msg.Content = *artifact.Content
	}
	if artifact.Card != nil {
		msg.Embeds = []*discordgo.MessageEmbed{MessageEmbed(artifact.Card)}
	}
	msg.Components = ActionRows(artifact.Buttons)
	return msg
}

// MessageEmbed converts a card into a Discord embed.
func MessageEmbed(card *model.Card) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Type:        discordgo.EmbedTypeRich,
		Title:       card.Title,
		Description: card.Description,
		URL:         card.URL,
		Timestamp:   card.Timestamp,
	}
	if card.Color != nil {
		embed.Color = *card.Color
	}
	for _, f := range card.Fields {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:   f.Name,
			Value:  f.Value,
			Inline: f.Inline,
		})
	}
	if card.Footer != nil {
		embed.Footer = &discordgo.MessageEmbedFooter{
			Text:    card.Footer.Text,
			IconURL: card.Footer.IconURL,
		}
	}
	if card.Author != nil {
		embed.Author = &discordgo.MessageEmbedAuthor{
			Name:    card.Author.Name,
			URL:     card.Author.URL,
			IconURL: card.Author.IconURL,
		}
	}
	if card.Image != nil {
		embed.Image = &discordgo.MessageEmbedImage{URL: card.Image.URL}
	}
	if card.Thumbnail != nil {
		embed.Thumbnail = &discordgo.MessageEmbedThumbnail{URL: card.Thumbnail.URL}
	}
	return embed
}

// ActionRows lays out link buttons in rows of ButtonsPerRow.
// Buttons beyond MaxActionRows rows are dropped.
func ActionRows(buttons []model.LinkButton) []discordgo.MessageComponent {
	var rows []discordgo.MessageComponent
	for start := 0; start < len(buttons); start += ButtonsPerRow {
		if len(rows) == MaxActionRows {
			debug.Debug("[compiler] dropping %d button(s) beyond %d rows", len(buttons)-start, MaxActionRows)
			break
		}
		end := min(start+ButtonsPerRow, len(buttons))
		row := discordgo.ActionsRow{}
		for _, b := range buttons[start:end] {
			row.Components = append(row.Components, linkButton(b))
		}
		rows = append(rows, row)
	}
	return rows
}

func linkButton(b model.LinkButton) discordgo.Button {
	button := discordgo.Button{
		Label: b.Label,
		Style: discordgo.LinkButton,
		URL:   b.URL,
	}
	if b.Emoji != "" {
		button.Emoji = componentEmoji(b.Emoji)
	}
	return button
}

func componentEmoji(text string) *discordgo.ComponentEmoji {
	if m := customEmojiPattern.FindStringSubmatch(text); m != nil {
		return &discordgo.ComponentEmoji{
			Name:     m[2],
			ID:       m[3],
			Animated: m[1] == "a",
		}
	}
	return &discordgo.ComponentEmoji{Name: text}
}
