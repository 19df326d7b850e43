package compiler

import (
	"errors"
	"fmt"

	"github.com/sahilm/fuzzy"
	"github.com/tacogips/embedscript/internal/template/model"
	"github.com/tacogips/embedscript/internal/template/parser"
	"github.com/tacogips/embedscript/internal/template/placeholder"
)

// WarningType identifies a non-fatal template problem.
type WarningType string

const (
	// WarningUnknownDirective is a directive name the compiler does not render.
	WarningUnknownDirective WarningType = "unknown_directive"
	// WarningColorFallback is a color that could not be parsed.
	WarningColorFallback WarningType = "color_fallback"
	// WarningShortCircuit is a directive without ':' that discarded the rest of the template.
	WarningShortCircuit WarningType = "short_circuit"
)

// Warning is a non-fatal template problem.
type Warning struct {
	Type        WarningType `json:"type"`
	Directive   string      `json:"directive,omitempty"`
	Message     string      `json:"message"`
	Suggestions []string    `json:"suggestions,omitempty"`
}

// CheckReport is the outcome of checking a template.
type CheckReport struct {
	Valid     bool      `json:"valid"`
	ErrorKind string    `json:"error_kind,omitempty"`
	Error     string    `json:"error,omitempty"`
	Warnings  []Warning `json:"warnings,omitempty"`
	Result    *Result   `json:"result,omitempty"`
}

// Check compiles template with the default options and reports problems.
func Check(template string, values placeholder.Values) *CheckReport {
	return defaultCompiler.Check(template, values)
}

// Check compiles template and reports problems. A compile error makes the
// report invalid; everything else is a warning.
func (c *Compiler) Check(template string, values placeholder.Values) *CheckReport {
	result, parsed, err := c.compile(template, values, false)
	if err != nil {
		report := &CheckReport{Error: err.Error()}
		var pe *parser.ParseError
		if errors.As(err, &pe) {
			report.ErrorKind = pe.Kind.String()
		}
		return report
	}

	report := &CheckReport{Valid: true, Result: result}
	if parsed.ShortCircuit != nil {
		report.Warnings = append(report.Warnings, Warning{
			Type:      WarningShortCircuit,
			Directive: *parsed.ShortCircuit,
			Message:   fmt.Sprintf("directive %q has no ':'; the template is sent as plain content", *parsed.ShortCircuit),
		})
		return report
	}

	for _, name := range parsed.Document.Unknown {
		report.Warnings = append(report.Warnings, Warning{
			Type:        WarningUnknownDirective,
			Directive:   name,
			Message:     fmt.Sprintf("unknown directive %q is ignored", name),
			Suggestions: SuggestDirectives(name),
		})
	}
	if result.Error != "" {
		report.Warnings = append(report.Warnings, Warning{
			Type:      WarningColorFallback,
			Directive: model.DirectiveColor,
			Message:   result.Error,
		})
	}
	return report
}

// SuggestDirectives returns known directive names close to name, best first.
func SuggestDirectives(name string) []string {
	var suggestions []string
	for _, m := range fuzzy.Find(name, model.KnownDirectives) {
		suggestions = append(suggestions, m.Str)
	}
	if len(suggestions) > 0 {
		return suggestions
	}

	// A known name hidden inside a longer one, e.g. "footertext".
	for _, known := range model.KnownDirectives {
		if len(fuzzy.Find(known, []string{name})) > 0 {
			suggestions = append(suggestions, known)
		}
	}
	return suggestions
}
