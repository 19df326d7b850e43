// Package placeholder substitutes context variables such as {user.mention}
// into template text before it is compiled.
package placeholder

import (
	"sort"
	"strings"

	"github.com/tacogips/embedscript/internal/debug"
)

// Values maps full placeholder tokens (e.g. "{user.mention}") to their values.
type Values map[string]string

// Tokens returns the tokens in sorted order.
func (v Values) Tokens() []string {
	tokens := make([]string, 0, len(v))
	for token := range v {
		tokens = append(tokens, token)
	}
	sort.Strings(tokens)
	return tokens
}

// Merge returns a copy of v overlaid with other.
func (v Values) Merge(other Values) Values {
	merged := make(Values, len(v)+len(other))
	for token, value := range v {
		merged[token] = value
	}
	for token, value := range other {
		merged[token] = value
	}
	return merged
}

// Substitute replaces every occurrence of every token in values with its value.
//
// Replacement is literal and single-pass: a substituted value is never
// scanned again for tokens. Unknown tokens are left untouched. Any literal
// occurrence of a token is rewritten, wherever it appears in the template.
func Substitute(template string, values Values) string {
	if len(values) == 0 {
		return template
	}

	tokens := values.Tokens()
	oldnew := make([]string, 0, len(tokens)*2)
	for _, token := range tokens {
		if token == "" {
			continue
		}
		oldnew = append(oldnew, token, values[token])
	}

	debug.Debug("[placeholder] Substitute: %d token(s)", len(tokens))
	return strings.NewReplacer(oldnew...).Replace(template)
}
