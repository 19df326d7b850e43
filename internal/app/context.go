package app

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/tacogips/embedscript/internal/debug"
	"github.com/tacogips/embedscript/internal/template/placeholder"
	"gopkg.in/yaml.v3"
)

// ContextFile is the on-disk form of placeholder context.
//
// User, Member and Guild use Discord's JSON field names. Values holds extra
// tokens, written with or without braces ("user.name" or "{user.name}"),
// and overrides anything derived from the objects.
type ContextFile struct {
	User   *discordgo.User    `json:"user,omitempty"`
	Member *discordgo.Member  `json:"member,omitempty"`
	Guild  *discordgo.Guild   `json:"guild,omitempty"`
	Track  *placeholder.Track `json:"track,omitempty"`
	Values map[string]string  `json:"values,omitempty"`
}

// Placeholders derives placeholder values from the file.
func (f *ContextFile) Placeholders() placeholder.Values {
	values := placeholder.Values{}
	if f.User != nil || f.Member != nil || f.Guild != nil || f.Track != nil {
		ctx := placeholder.Context{User: f.User, Member: f.Member, Guild: f.Guild, Track: f.Track}
		values = ctx.Values()
	}
	extra := make(placeholder.Values, len(f.Values))
	for key, value := range f.Values {
		extra[Token(key)] = value
	}
	return values.Merge(extra)
}

// Token wraps key in braces unless it already is a token.
func Token(key string) string {
	key = strings.TrimSpace(key)
	if strings.HasPrefix(key, "{") && strings.HasSuffix(key, "}") {
		return key
	}
	return "{" + key + "}"
}

// LoadContextValues loads placeholder values from a YAML or JSON file.
// An empty path yields no values.
func LoadContextValues(path string) (placeholder.Values, error) {
	if path == "" {
		return placeholder.Values{}, nil
	}

	debug.Debug("[app] LoadContextValues: reading %s", path)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, NewContextLoadError(fmt.Sprintf("failed to read context file %s", path), err)
	}

	file, err := ParseContextFile(data, isYAMLPath(path))
	if err != nil {
		return nil, NewContextLoadError(fmt.Sprintf("invalid context file %s", path), err)
	}

	values := file.Placeholders()
	debug.DebugValue("[app] context values", len(values))
	return values, nil
}

// ParseContextFile decodes a context file. YAML input is normalized to JSON
// first so the Discord objects decode through their JSON tags.
func ParseContextFile(data []byte, isYAML bool) (*ContextFile, error) {
	if isYAML {
		var raw map[string]interface{}
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("invalid YAML: %w", err)
		}
		converted, err := json.Marshal(raw)
		if err != nil {
			return nil, fmt.Errorf("failed to normalize YAML: %w", err)
		}
		data = converted
	}

	var file ContextFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}
	return &file, nil
}

// ParseSetValues parses "key=value" pairs given on the command line.
func ParseSetValues(pairs []string) (placeholder.Values, error) {
	values := make(placeholder.Values, len(pairs))
	for _, pair := range pairs {
		key, value, found := strings.Cut(pair, "=")
		if !found || strings.TrimSpace(key) == "" {
			return nil, NewValidationError(fmt.Sprintf("invalid value %q (expected key=value)", pair), nil)
		}
		values[Token(key)] = value
	}
	return values, nil
}

func isYAMLPath(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}
