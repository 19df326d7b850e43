package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/tacogips/embedscript/internal/app"
	"github.com/tacogips/embedscript/internal/template/placeholder"
)

// Common flag names and descriptions
const (
	// Flag names
	FlagConfig      = "config"
	FlagContext     = "context"
	FlagSet         = "set"
	FlagMaterialize = "materialize"
	FlagFormat      = "format"
	FlagRecursive   = "recursive"
	FlagAddr        = "addr"
	FlagNoColor     = "no-color"
	FlagQuiet       = "quiet"
	FlagDebug       = "debug"

	// Flag descriptions
	DescConfig      = "Path to config file (default $EMBEDSCRIPT_CONFIG or ~/.config/embedscript/config.json)"
	DescContext     = "YAML or JSON file with placeholder context"
	DescSet         = "Placeholder value as key=value (repeatable)"
	DescMaterialize = "Include the Discord message payload"
	DescFormat      = "Output format: text or json"
	DescRecursive   = "Recursively check subdirectories"
	DescAddr        = "Listen address (overrides config)"
	DescNoColor     = "Disable colored output"
	DescQuiet       = "Suppress output"
	DescDebug       = "Enable debug logging"
)

// Output formats
const (
	FormatText = "text"
	FormatJSON = "json"
)

// stdin is the reader used for "-" and missing file arguments.
var stdin io.Reader = os.Stdin

// readInput reads the file named by args[0], or stdin when there is no
// argument or it is "-".
func readInput(args []string) ([]byte, string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return data, "", nil
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return nil, "", fmt.Errorf("failed to read %s: %w", args[0], err)
	}
	return data, args[0], nil
}

// ValidateFormat checks an output format flag.
func ValidateFormat(format string) error {
	switch strings.ToLower(format) {
	case FormatText, FormatJSON:
		return nil
	}
	return fmt.Errorf("invalid format %q (expected %s or %s)", format, FormatText, FormatJSON)
}

// contextValues loads the --context file and overlays --set values.
func contextValues(contextPath string, sets []string) (placeholder.Values, error) {
	values, err := app.LoadContextValues(contextPath)
	if err != nil {
		return nil, err
	}
	overrides, err := app.ParseSetValues(sets)
	if err != nil {
		return nil, err
	}
	return values.Merge(overrides), nil
}

// resolveFormat returns the flag value or the configured default.
func resolveFormat(flag string) string {
	if flag != "" {
		return strings.ToLower(flag)
	}
	return globalConfig.Output.Format
}
