package model

// Directive names with structural handling. Any other name is stored as a
// free-form attribute of the card.
const (
	DirectiveContent     = "content"
	DirectiveAutoDelete  = "autodelete"
	DirectiveTitle       = "title"
	DirectiveDescription = "description"
	DirectiveURL         = "url"
	DirectiveTimestamp   = "timestamp"
	DirectiveColor       = "color"
	DirectiveField       = "field"
	DirectiveFooter      = "footer"
	DirectiveAuthor      = "author"
	DirectiveUthor       = "uthor"
	DirectiveImage       = "image"
	DirectiveThumbnail   = "thumbnail"
	DirectiveLabel       = "label"
)

// FieldsKey is the embed key holding the ordered field list.
const FieldsKey = "fields"

// KnownDirectives lists every directive name the compiler understands.
var KnownDirectives = []string{
	DirectiveContent,
	DirectiveAutoDelete,
	DirectiveTitle,
	DirectiveDescription,
	DirectiveURL,
	DirectiveTimestamp,
	DirectiveColor,
	DirectiveField,
	DirectiveFooter,
	DirectiveAuthor,
	DirectiveImage,
	DirectiveThumbnail,
	DirectiveLabel,
}

// IsKnownDirective reports whether name is a directive the compiler understands.
func IsKnownDirective(name string) bool {
	if name == DirectiveUthor {
		return true
	}
	for _, known := range KnownDirectives {
		if known == name {
			return true
		}
	}
	return false
}

// Attribute is a single value of the intermediate embed map.
// It is one of Scalar, SubMap or FieldList.
type Attribute interface {
	attribute()
}

// Scalar is a single string payload.
type Scalar string

// Pair is one key/value entry of a SubMap.
type Pair struct {
	Key   string
	Value string
}

// SubMap is an ordered list of key/value pairs parsed from a
// multi-attribute payload.
type SubMap []Pair

// FieldList is the ordered list of card fields.
type FieldList []Field

func (Scalar) attribute()    {}
func (SubMap) attribute()    {}
func (FieldList) attribute() {}

// Get returns the value for key. Later entries win over earlier ones.
func (m SubMap) Get(key string) (string, bool) {
	for i := len(m) - 1; i >= 0; i-- {
		if m[i].Key == key {
			return m[i].Value, true
		}
	}
	return "", false
}

// AuthorSource identifies which directive form produced an author draft.
type AuthorSource int

const (
	// AuthorSingle is produced by a scalar author directive ({author: name}).
	AuthorSingle AuthorSource = iota
	// AuthorMulti is produced by a multi-attribute author directive
	// ({author: name && icon: ... && url: ...}).
	AuthorMulti
)

// String returns the string representation of the author source.
func (s AuthorSource) String() string {
	switch s {
	case AuthorSingle:
		return "single"
	case AuthorMulti:
		return "multi"
	default:
		return "unknown"
	}
}

// AuthorDraft is an author block before normalization.
type AuthorDraft struct {
	Source AuthorSource
	Name   string
	URL    string
	Icon   string
}
