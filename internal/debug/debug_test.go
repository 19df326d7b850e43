package debug

import (
	"bytes"
	"strings"
	"testing"
)

func capture(t *testing.T, fn func()) string {
	t.Helper()
	var buf bytes.Buffer
	SetOutput(&buf)
	t.Cleanup(func() {
		SetOutput(nil)
		SetDebug(false)
		SetNoColor(false)
	})
	fn()
	return buf.String()
}

func TestSetDebug(t *testing.T) {
	// Initially disabled
	SetDebug(false)
	if IsEnabled() {
		t.Error("Debug should be disabled initially")
	}

	// Enable
	SetDebug(true)
	if !IsEnabled() {
		t.Error("Debug should be enabled")
	}

	// Disable again
	SetDebug(false)
	if IsEnabled() {
		t.Error("Debug should be disabled again")
	}
}

func TestDebugOutput(t *testing.T) {
	output := capture(t, func() {
		SetDebug(true)
		SetNoColor(true)
		Debug("test message %s", "arg")
	})

	if !strings.HasPrefix(output, "[DEBUG] ") {
		t.Errorf("Output should start with [DEBUG] prefix, got: %s", output)
	}

	if !strings.Contains(output, "test message arg") {
		t.Errorf("Output should contain message, got: %s", output)
	}

	// Should contain timestamp
	if !strings.Contains(output, ":") {
		t.Errorf("Output should contain timestamp, got: %s", output)
	}
}

func TestDebugColor(t *testing.T) {
	output := capture(t, func() {
		SetDebug(true)
		SetNoColor(false)
		Debug("colored")
	})

	if !strings.Contains(output, colorCyan) {
		t.Errorf("Output should contain color codes, got: %q", output)
	}
}

func TestDebugDisabled(t *testing.T) {
	output := capture(t, func() {
		SetDebug(false)
		Debug("this should not appear")
		DebugSection("nor this")
		DebugJSON("nor", map[string]int{"this": 1})
	})

	if output != "" {
		t.Errorf("Debug output should be empty when disabled, got: %s", output)
	}
}

func TestDebugSection(t *testing.T) {
	output := capture(t, func() {
		SetDebug(true)
		SetNoColor(true)
		DebugSection("Test Section")
	})

	if !strings.Contains(output, "[DEBUG]") {
		t.Errorf("Output should contain [DEBUG] prefix, got: %s", output)
	}

	if !strings.Contains(output, "=== Test Section ===") {
		t.Errorf("Output should contain section header, got: %s", output)
	}
}

func TestDebugValue(t *testing.T) {
	output := capture(t, func() {
		SetDebug(true)
		SetNoColor(true)
		DebugValue("key", "value")
	})

	if !strings.Contains(output, "key = value") {
		t.Errorf("Output should contain key=value, got: %s", output)
	}
}

func TestDebugJSON(t *testing.T) {
	output := capture(t, func() {
		SetDebug(true)
		SetNoColor(true)
		DebugJSON("testData", map[string]interface{}{
			"foo": "bar",
			"num": 42,
		})
	})

	if !strings.Contains(output, "testData:") {
		t.Errorf("Output should contain key, got: %s", output)
	}

	if !strings.Contains(output, "\"foo\"") {
		t.Errorf("Output should contain JSON data, got: %s", output)
	}
}
