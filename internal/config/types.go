package config

import "github.com/tacogips/embedscript/internal/template/compiler"

// Config represents the global embedscript configuration.
type Config struct {
	// Compiler configuration for template compilation.
	Compiler CompilerConfig `json:"compiler" yaml:"compiler"`
	// Output configuration for display and logging.
	Output OutputConfig `json:"output" yaml:"output"`
	// Server configuration for the preview server.
	Server ServerConfig `json:"server" yaml:"server"`
}

// CompilerConfig represents compiler settings.
type CompilerConfig struct {
	// Limits are the card size constraints.
	Limits compiler.Limits `json:"limits" yaml:"limits"`
	// FallbackColor replaces unparsable colors, as "#RRGGBB".
	FallbackColor string `json:"fallback_color" yaml:"fallback_color" validate:"hexcolor"`
	// Materialize includes the Discord message in compile output.
	Materialize bool `json:"materialize" yaml:"materialize"`
}

// OutputConfig represents output and display settings.
type OutputConfig struct {
	// Color enables colored terminal output.
	Color bool `json:"color" yaml:"color"`
	// Format is the result format of the CLI: "text" or "json".
	Format string `json:"format" yaml:"format" validate:"oneof=text json"`
	// Verbose enables verbose logging output.
	Verbose bool `json:"verbose" yaml:"verbose"`
	// Quiet suppresses non-error output.
	Quiet bool `json:"quiet" yaml:"quiet"`
}

// ServerConfig represents preview server settings.
type ServerConfig struct {
	// Host is the listen address.
	Host string `json:"host" yaml:"host"`
	// Port is the listen port.
	Port int `json:"port" yaml:"port" validate:"gte=0,lte=65535"`
	// LogFormat is the request log format: "text" or "json".
	LogFormat string `json:"log_format" yaml:"log_format" validate:"oneof=text json"`
	// BodyLimitKB is the maximum request body size in kilobytes.
	BodyLimitKB int `json:"body_limit_kb" yaml:"body_limit_kb" validate:"gte=0"`
}
