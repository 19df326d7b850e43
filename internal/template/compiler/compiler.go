// Package compiler turns embed-script templates into validated cards.
//
// A compile runs context substitution, segmentation, directive parsing,
// normalization and validation in that order and either returns a complete
// artifact or an error; it never returns a partially applied template.
// A Compiler holds only immutable options and is safe for concurrent use.
package compiler

import (
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/tacogips/embedscript/internal/debug"
	"github.com/tacogips/embedscript/internal/template/model"
	"github.com/tacogips/embedscript/internal/template/parser"
	"github.com/tacogips/embedscript/internal/template/placeholder"
)

// Options configures a Compiler.
type Options struct {
	// Limits are the card size constraints.
	Limits Limits
	// FallbackColor replaces colors that cannot be parsed.
	FallbackColor int
	// Now supplies the instant used by the timestamp directive.
	Now func() time.Time
}

// DefaultOptions returns the default compiler options.
func DefaultOptions() Options {
	return Options{
		Limits:        DefaultLimits(),
		FallbackColor: DefaultFallbackColor,
		Now:           time.Now,
	}
}

// Compiler compiles templates.
type Compiler struct {
	opts   Options
	parser parser.Parser
}

// Result is a compiled template.
type Result struct {
	model.Artifact
	// Message is the Discord-native message; set only when materialized.
	Message *discordgo.MessageSend `json:"message,omitempty"`
}

// New creates a Compiler. Zero-valued options fall back to their defaults.
func New(opts Options) *Compiler {
	defaults := DefaultOptions()
	mergeLimits(&opts.Limits, defaults.Limits)
	if opts.FallbackColor == 0 {
		opts.FallbackColor = defaults.FallbackColor
	}
	if opts.Now == nil {
		opts.Now = defaults.Now
	}
	return &Compiler{
		opts:   opts,
		parser: parser.NewParserWithClock(opts.Now),
	}
}

var defaultCompiler = New(DefaultOptions())

// Compile compiles template with the default options.
func Compile(template string, values placeholder.Values, materialize bool) (*Result, error) {
	return defaultCompiler.Compile(template, values, materialize)
}

// Compile substitutes values into template and compiles it.
// When materialize is true the result also carries the Discord-native message.
// Processing order:
// 1. Substitute context values
// 2. Parse (segment, directives, payloads)
// 3. Normalize into an artifact
// 4. Validate the card and buttons
// 5. Materialize (optional)
func (c *Compiler) Compile(template string, values placeholder.Values, materialize bool) (*Result, error) {
	result, _, err := c.compile(template, values, materialize)
	return result, err
}

func (c *Compiler) compile(template string, values placeholder.Values, materialize bool) (*Result, *parser.Parsed, error) {
	debug.DebugSection("compile")

	debug.Debug("[compiler] Step 1: Substituting %d context value(s)", len(values))
	text := placeholder.Substitute(template, values)

	debug.Debug("[compiler] Step 2: Parsing")
	parsed, err := c.parser.Parse(text)
	if err != nil {
		return nil, nil, err
	}

	var artifact *model.Artifact
	if parsed.ShortCircuit != nil {
		artifact = &model.Artifact{Content: parsed.ShortCircuit}
	} else {
		debug.Debug("[compiler] Step 3: Normalizing")
		artifact, err = c.normalize(parsed.Document)
		if err != nil {
			return nil, nil, err
		}

		debug.Debug("[compiler] Step 4: Validating")
		if err := Validate(artifact.Card, c.opts.Limits); err != nil {
			return nil, nil, err
		}
		if err := ValidateButtons(artifact.Buttons); err != nil {
			return nil, nil, err
		}
	}

	result := &Result{Artifact: *artifact}
	if materialize {
		debug.Debug("[compiler] Step 5: Materializing")
		result.Message = Materialize(artifact)
	}

	debug.DebugJSON("artifact", result.Artifact)
	return result, parsed, nil
}

func mergeLimits(l *Limits, defaults Limits) {
	if l.Title == 0 {
		l.Title = defaults.Title
	}
	if l.Description == 0 {
		l.Description = defaults.Description
	}
	if l.AuthorName == 0 {
		l.AuthorName = defaults.AuthorName
	}
	if l.FieldName == 0 {
		l.FieldName = defaults.FieldName
	}
	if l.FieldValue == 0 {
		l.FieldValue = defaults.FieldValue
	}
	if l.FooterText == 0 {
		l.FooterText = defaults.FooterText
	}
	if l.Total == 0 {
		l.Total = defaults.Total
	}
}
