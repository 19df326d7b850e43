package config

import (
	"errors"
	"strings"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		modify    func(*Config)
		wantErr   bool
		wantField string
	}{
		{
			name:   "defaults",
			modify: func(c *Config) {},
		},
		{
			name:      "negative port",
			modify:    func(c *Config) { c.Server.Port = -1 },
			wantErr:   true,
			wantField: "server.port",
		},
		{
			name:      "port out of range",
			modify:    func(c *Config) { c.Server.Port = 70000 },
			wantErr:   true,
			wantField: "server.port",
		},
		{
			name:      "unknown log format",
			modify:    func(c *Config) { c.Server.LogFormat = "xml" },
			wantErr:   true,
			wantField: "server.log_format",
		},
		{
			name:      "unknown output format",
			modify:    func(c *Config) { c.Output.Format = "yaml" },
			wantErr:   true,
			wantField: "output.format",
		},
		{
			name:      "zero limit",
			modify:    func(c *Config) { c.Compiler.Limits.Total = 0 },
			wantErr:   true,
			wantField: "compiler.limits.total",
		},
		{
			name:      "bad fallback color",
			modify:    func(c *Config) { c.Compiler.FallbackColor = "gray" },
			wantErr:   true,
			wantField: "compiler.fallback_color",
		},
		{
			name:      "negative body limit",
			modify:    func(c *Config) { c.Server.BodyLimitKB = -5 },
			wantErr:   true,
			wantField: "server.body_limit_kb",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(cfg)

			err := Validate(cfg)
			if !tt.wantErr {
				if err != nil {
					t.Errorf("expected no error, got %v", err)
				}
				return
			}

			var cfgErr *ConfigError
			if !errors.As(err, &cfgErr) {
				t.Fatalf("expected ConfigError, got %v", err)
			}
			if cfgErr.Type != ConfigValidationFailed {
				t.Errorf("expected ConfigValidationFailed, got %v", cfgErr.Type)
			}
			if cfgErr.Field != tt.wantField {
				t.Errorf("expected field %q, got %q", tt.wantField, cfgErr.Field)
			}
		})
	}
}

func TestValidateNil(t *testing.T) {
	if err := Validate(nil); err == nil {
		t.Error("expected error for nil config")
	}
}

func TestConfigError(t *testing.T) {
	tests := []struct {
		name     string
		err      *ConfigError
		contains []string
	}{
		{
			name:     "basic",
			err:      NewConfigError(ConfigInvalid, "config.json", "bad"),
			contains: []string{"config.json", "bad"},
		},
		{
			name:     "with field",
			err:      NewConfigErrorWithField(ConfigValidationFailed, "config.yaml", "server.port", "must be at least 0"),
			contains: []string{"config.yaml", "[field: server.port]", "must be at least 0"},
		},
		{
			name:     "with cause",
			err:      NewConfigErrorWithCause(ConfigNotFound, "x.json", "missing", errors.New("no such file")),
			contains: []string{"x.json", "missing", "no such file"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, want := range tt.contains {
				if !strings.Contains(msg, want) {
					t.Errorf("expected %q in %q", want, msg)
				}
			}
		})
	}

	cause := errors.New("root")
	if !errors.Is(NewConfigErrorWithCause(ConfigInvalid, "", "m", cause), cause) {
		t.Error("expected Unwrap to expose the cause")
	}
}
