package model

// Card is the structured rich-content reply object.
type Card struct {
	Title       string  `json:"title,omitempty"`
	Description string  `json:"description,omitempty"`
	URL         string  `json:"url,omitempty"`
	Timestamp   string  `json:"timestamp,omitempty"`
	Color       *int    `json:"color,omitempty"`
	Fields      []Field `json:"fields,omitempty"`
	Footer      *Footer `json:"footer,omitempty"`
	Author      *Author `json:"author,omitempty"`
	Image       *Media  `json:"image,omitempty"`
	Thumbnail   *Media  `json:"thumbnail,omitempty"`
}

// Field is a named, optionally inline, entry of a Card.
type Field struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline"`
}

// Footer is the footer block of a Card.
type Footer struct {
	Text    string `json:"text"`
	IconURL string `json:"iconUrl,omitempty"`
}

// Author is the author block of a Card.
type Author struct {
	Name    string `json:"name"`
	URL     string `json:"url,omitempty"`
	IconURL string `json:"iconUrl,omitempty"`
}

// Media is an image or thumbnail reference.
type Media struct {
	URL string `json:"url"`
}

// IsEmpty reports whether the card carries nothing worth rendering.
func (c *Card) IsEmpty() bool {
	if c == nil {
		return true
	}
	return c.Title == "" &&
		c.Description == "" &&
		c.URL == "" &&
		c.Timestamp == "" &&
		c.Color == nil &&
		len(c.Fields) == 0 &&
		c.Footer == nil &&
		c.Author == nil &&
		c.Image == nil &&
		c.Thumbnail == nil
}

// LinkButton is a link-style action button attached to a message.
type LinkButton struct {
	Label string `json:"label,omitempty"`
	Emoji string `json:"emoji,omitempty"`
	URL   string `json:"url"`
}

// Artifact is the compiled, validated output of a template.
type Artifact struct {
	Content           *string      `json:"content,omitempty"`
	Card              *Card        `json:"card,omitempty"`
	Buttons           []LinkButton `json:"actionButtons,omitempty"`
	AutoDeleteSeconds *int         `json:"autoDeleteSeconds,omitempty"`
	// Error is a non-fatal diagnostic; only a color fallback sets it.
	Error string `json:"error,omitempty"`
}
