package config

import (
	"os"
	"path/filepath"

	"github.com/tacogips/embedscript/internal/template/compiler"
)

// EnvConfigPath names the environment variable overriding the config path.
const EnvConfigPath = "EMBEDSCRIPT_CONFIG"

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Compiler: CompilerConfig{
			Limits:        compiler.DefaultLimits(),
			FallbackColor: compiler.FormatColor(compiler.DefaultFallbackColor),
			Materialize:   false,
		},
		Output: OutputConfig{
			Color:   true,
			Format:  "text",
			Verbose: false,
			Quiet:   false,
		},
		Server: ServerConfig{
			Host:        "127.0.0.1",
			Port:        8080,
			LogFormat:   "json",
			BodyLimitKB: 64,
		},
	}
}

// DefaultConfigPath returns the default configuration file path.
func DefaultConfigPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".config", "embedscript", "config.json")
}

// ResolvePath picks the configuration file: an explicit path first, then
// EnvConfigPath, then DefaultConfigPath.
func ResolvePath(explicit string) string {
	if explicit != "" {
		return explicit
	}
	if env := os.Getenv(EnvConfigPath); env != "" {
		return env
	}
	return DefaultConfigPath()
}
