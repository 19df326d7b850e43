package parser

import (
	"time"

	"github.com/tacogips/embedscript/internal/debug"
	"github.com/tacogips/embedscript/internal/template/model"
)

// TimestampLayout is the serialized form of the timestamp directive.
const TimestampLayout = time.RFC3339

// Parser turns template text into an intermediate document.
type Parser interface {
	// Parse segments the template and folds its directives into a document.
	Parse(template string) (*Parsed, error)
}

// Parsed is the outcome of parsing a template.
type Parsed struct {
	// Document is the folded directive sequence. Nil when ShortCircuit is set.
	Document *model.IntermediateDocument
	// ShortCircuit holds the name of the first directive without a ':'.
	// Everything else in the template is discarded when it is set.
	ShortCircuit *string
}

// DefaultParser implements Parser.
type DefaultParser struct {
	now func() time.Time
}

// NewParser creates a new DefaultParser reading the wall clock for timestamps.
func NewParser() Parser {
	return &DefaultParser{now: time.Now}
}

// NewParserWithClock creates a DefaultParser using now for timestamps.
func NewParserWithClock(now func() time.Time) Parser {
	if now == nil {
		now = time.Now
	}
	return &DefaultParser{now: now}
}

// Parse segments the template and folds its directives into a document.
// Processing order:
// 1. Segment and check brace structure of every segment
// 2. Parse each segment into a directive (short-circuit on a missing ':')
// 3. Decompose each payload and fold it into the document
func (p *DefaultParser) Parse(template string) (*Parsed, error) {
	debug.Debug("[parser] Parse: starting with template size=%d bytes", len(template))

	debug.Debug("[parser] Step 1: Segmenting")
	segments, err := Segment(template)
	if err != nil {
		return nil, err
	}

	doc := model.NewIntermediateDocument()
	for i, seg := range segments {
		debug.Debug("[parser] Step 2: Parsing directive %d", i)
		d := ParseDirective(seg)
		if !d.HasPayload() {
			debug.Debug("[parser] directive %q has no payload, returning it as content", d.Name)
			name := d.Name
			return &Parsed{ShortCircuit: &name}, nil
		}

		debug.Debug("[parser] Step 3: Folding directive %q", d.Name)
		if err := p.fold(doc, d); err != nil {
			return nil, err
		}
	}

	debug.Debug("[parser] Parse complete: %d embed key(s), %d button(s)", len(doc.Embed), len(doc.Buttons))
	return &Parsed{Document: doc}, nil
}

// textDirectives keep their whole payload even when it contains the
// attribute separator.
var textDirectives = map[string]bool{
	model.DirectiveContent:     true,
	model.DirectiveAutoDelete:  true,
	model.DirectiveTitle:       true,
	model.DirectiveDescription: true,
}

// fold applies one directive to the document.
func (p *DefaultParser) fold(doc *model.IntermediateDocument, d Directive) error {
	payload := *d.Payload
	if IsMultiAttribute(payload) && !textDirectives[d.Name] {
		return p.foldMulti(doc, d.Name, SplitAttributes(payload))
	}
	return p.foldScalar(doc, d.Name, payload)
}

func (p *DefaultParser) foldMulti(doc *model.IntermediateDocument, name string, parts []string) error {
	switch name {
	case model.DirectiveField:
		doc.AppendField(decomposeField(parts))
	case model.DirectiveFooter:
		doc.Embed[name] = decomposeFooter(parts)
	case model.DirectiveLabel:
		doc.Buttons = append(doc.Buttons, decomposeButton(parts))
	case model.DirectiveAuthor, model.DirectiveUthor:
		draft, err := decomposeAuthor(parts)
		if err != nil {
			return err
		}
		doc.SetAuthor(draft)
	case model.FieldsKey:
		doc.NoteUnknown(name)
	default:
		if !model.IsKnownDirective(name) {
			doc.NoteUnknown(name)
		}
		doc.Embed[name] = decomposeSubMap(parts)
	}
	return nil
}

func (p *DefaultParser) foldScalar(doc *model.IntermediateDocument, name, payload string) error {
	switch name {
	case model.DirectiveContent:
		doc.Content = &payload
	case model.DirectiveAutoDelete:
		doc.AutoDelete = &payload
	case model.DirectiveAuthor, model.DirectiveUthor:
		doc.SetAuthor(model.AuthorDraft{Source: model.AuthorSingle, Name: payload})
	case model.DirectiveURL:
		if err := ValidateURL("url", payload); err != nil {
			return err
		}
		doc.Embed[name] = model.Scalar(payload)
	case model.DirectiveTimestamp:
		doc.Embed[name] = model.Scalar(p.now().UTC().Format(TimestampLayout))
	case model.FieldsKey:
		doc.NoteUnknown(name)
	default:
		if !model.IsKnownDirective(name) {
			doc.NoteUnknown(name)
		}
		doc.Embed[name] = model.Scalar(payload)
	}
	return nil
}
