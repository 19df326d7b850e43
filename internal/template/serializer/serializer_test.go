package serializer

import (
	"testing"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/google/go-cmp/cmp"
	"github.com/tacogips/embedscript/internal/template/compiler"
	"github.com/tacogips/embedscript/internal/template/model"
)

func testCompiler() *compiler.Compiler {
	now := time.Date(2024, 5, 1, 12, 30, 0, 0, time.UTC)
	return compiler.New(compiler.Options{Now: func() time.Time { return now }})
}

func intPtr(n int) *int { return &n }

func TestSerialize(t *testing.T) {
	tests := []struct {
		name     string
		card     *model.Card
		buttons  []model.LinkButton
		content  string
		expected string
	}{
		{
			name:     "empty",
			expected: "{embed}",
		},
		{
			name:     "content only",
			content:  "hello",
			expected: "{embed}$v{content: hello}",
		},
		{
			name: "fixed order",
			card: &model.Card{
				Color:       intPtr(0xFF0000),
				Footer:      &model.Footer{Text: "F"},
				Fields:      []model.Field{{Name: "a", Value: "1", Inline: true}},
				Description: "D",
				Title:       "T",
			},
			buttons:  []model.LinkButton{{Label: "Go", URL: "https://example.com"}},
			content:  "hi",
			expected: "{embed}$v{content: hi}$v{title: T}$v{description: D}$v{field: a && value: 1 && inline: true}$v{footer: F}$v{color: #FF0000}$v{label: Go && link: https://example.com}",
		},
		{
			name: "multi footer and author",
			card: &model.Card{
				Footer: &model.Footer{Text: "F", IconURL: "https://example.com/f.png"},
				Author: &model.Author{Name: "A", URL: "https://example.com", IconURL: "https://example.com/a.png"},
			},
			expected: "{embed}$v{footer: F && icon: https://example.com/f.png}$v{author: A && url: https://example.com && icon: https://example.com/a.png}",
		},
		{
			name:     "media and scalar author",
			card:     &model.Card{Author: &model.Author{Name: "A"}, Image: &model.Media{URL: "https://example.com/i.png"}, Thumbnail: &model.Media{URL: "https://example.com/t.png"}},
			expected: "{embed}$v{author: A}$v{image: https://example.com/i.png}$v{thumbnail: https://example.com/t.png}",
		},
		{
			name:     "escapes code fences",
			card:     &model.Card{Description: "run ```go test```"},
			expected: "{embed}$v{description: run \\`\\`\\`go test\\`\\`\\`}",
		},
		{
			name: "footer and author without text skipped",
			card: &model.Card{
				Title:  "T",
				Footer: &model.Footer{IconURL: "https://example.com/i.png"},
				Author: &model.Author{IconURL: "https://example.com/a.png"},
			},
			expected: "{embed}$v{title: T}",
		},
		{
			name:     "button emoji",
			buttons:  []model.LinkButton{{Label: "Docs", URL: "https://example.com", Emoji: "<:book:42>"}},
			expected: "{embed}$v{label: Docs && link: https://example.com && emoji: <:book:42>}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Serialize(tt.card, tt.buttons, tt.content)
			if got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestRoundTrip(t *testing.T) {
	tests := []struct {
		name     string
		template string
	}{
		{
			name:     "title description field footer image",
			template: "{embed}$v{title: Hello}$v{description: World}$v{field: k && value: v}$v{footer: bye}$v{image: https://example.com/a.png}",
		},
		{
			name: "everything",
			template: "$v{content: top}$v{title: T}$v{description: see ```code```}$v{timestamp: x}$v{url: https://example.com}" +
				"$v{field: a && value: 1 && inline: true}$v{field: b && value: 2 && inline: no}" +
				"$v{footer: F && icon: https://example.com/f.png}$v{author: A && icon: https://example.com/a.png && url: https://example.com/me}" +
				"$v{thumbnail: https://example.com/t.png}$v{color: #5865F2}$v{autodelete: 0}" +
				"$v{label: One && link: https://example.com/1 && emoji: <a:spin:99>}$v{label: Two && link: https://example.com/2}",
		},
		{
			name:     "content only",
			template: "$v{content: nothing else}",
		},
		{
			name:     "text directives with separator",
			template: "$v{content: Tom && Jerry}$v{title: a && b}$v{description: see https://example.com && more}",
		},
	}

	c := testCompiler()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			first, err := c.Compile(tt.template, nil, false)
			if err != nil {
				t.Fatalf("compile: %v", err)
			}

			content := ""
			if first.Content != nil {
				content = *first.Content
			}
			text := Serialize(first.Card, first.Buttons, content)

			second, err := c.Compile(text, nil, false)
			if err != nil {
				t.Fatalf("recompile %q: %v", text, err)
			}
			if diff := cmp.Diff(first.Artifact, second.Artifact); diff != "" {
				t.Errorf("round trip mismatch (-first +second):\n%s", diff)
			}
		})
	}
}

func TestFromMessageEmbed(t *testing.T) {
	embed := &discordgo.MessageEmbed{
		Type:        discordgo.EmbedTypeRich,
		Title:       "T",
		Description: "D",
		Color:       0x123456,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "n", Value: "v", Inline: true},
			nil,
		},
		Footer:    &discordgo.MessageEmbedFooter{Text: "F"},
		Author:    &discordgo.MessageEmbedAuthor{Name: "A", URL: "https://example.com"},
		Image:     &discordgo.MessageEmbedImage{URL: "https://example.com/i.png"},
		Thumbnail: &discordgo.MessageEmbedThumbnail{},
	}

	expected := &model.Card{
		Title:       "T",
		Description: "D",
		Color:       intPtr(0x123456),
		Fields:      []model.Field{{Name: "n", Value: "v", Inline: true}},
		Footer:      &model.Footer{Text: "F"},
		Author:      &model.Author{Name: "A", URL: "https://example.com"},
		Image:       &model.Media{URL: "https://example.com/i.png"},
	}

	if diff := cmp.Diff(expected, FromMessageEmbed(embed)); diff != "" {
		t.Errorf("card mismatch (-want +got):\n%s", diff)
	}
	if FromMessageEmbed(nil) != nil {
		t.Errorf("expected nil card for nil embed")
	}
	if card := FromMessageEmbed(&discordgo.MessageEmbed{Title: "x"}); card.Color != nil {
		t.Errorf("expected zero color to be unset, got %v", *card.Color)
	}
}

func TestButtonsFromComponents(t *testing.T) {
	components := []discordgo.MessageComponent{
		discordgo.ActionsRow{Components: []discordgo.MessageComponent{
			discordgo.Button{Label: "A", Style: discordgo.LinkButton, URL: "https://example.com/a"},
			discordgo.Button{Label: "skip", Style: discordgo.PrimaryButton, CustomID: "x"},
		}},
		&discordgo.ActionsRow{Components: []discordgo.MessageComponent{
			&discordgo.Button{
				Label: "B",
				Style: discordgo.LinkButton,
				URL:   "https://example.com/b",
				Emoji: &discordgo.ComponentEmoji{Name: "party", ID: "7", Animated: true},
			},
			&discordgo.Button{Label: "C", Style: discordgo.LinkButton, URL: "https://example.com/c", Emoji: &discordgo.ComponentEmoji{Name: "👍"}},
		}},
	}

	expected := []model.LinkButton{
		{Label: "A", URL: "https://example.com/a"},
		{Label: "B", URL: "https://example.com/b", Emoji: "<a:party:7>"},
		{Label: "C", URL: "https://example.com/c", Emoji: "👍"},
	}
	if diff := cmp.Diff(expected, ButtonsFromComponents(components)); diff != "" {
		t.Errorf("buttons mismatch (-want +got):\n%s", diff)
	}
}

func TestFromMessageRoundTrip(t *testing.T) {
	template := "$v{content: hi}$v{title: T}$v{color: #00AAFF}$v{field: f && value: v}" +
		"$v{label: Go && link: https://example.com && emoji: <:blob:12345>}"

	c := testCompiler()
	first, err := c.Compile(template, nil, true)
	if err != nil {
		t.Fatalf("compile: %v", err)
	}

	msg := &discordgo.Message{
		Content:    first.Message.Content,
		Embeds:     first.Message.Embeds,
		Components: first.Message.Components,
	}
	second, err := c.Compile(FromMessage(msg), nil, false)
	if err != nil {
		t.Fatalf("recompile: %v", err)
	}
	if diff := cmp.Diff(first.Artifact, second.Artifact); diff != "" {
		t.Errorf("round trip mismatch (-first +second):\n%s", diff)
	}
}
