package debug

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// ANSI color codes
const (
	colorReset = "\033[0m"
	colorCyan  = "\033[36m"
	colorGray  = "\033[90m"
)

// timestampLayout is the time prefix of every debug line.
const timestampLayout = "15:04:05.000"

// fieldHighlight marks the part of a message rendered in color.
const fieldHighlight = "highlight"

var logger = newLogger()

func newLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stderr)
	l.SetLevel(logrus.InfoLevel)
	l.SetFormatter(&formatter{})
	return l
}

// formatter renders entries as "[DEBUG] 15:04:05.000 message".
type formatter struct {
	noColor bool
}

func (f *formatter) Format(e *logrus.Entry) ([]byte, error) {
	var b bytes.Buffer
	ts := e.Time.Format(timestampLayout)
	highlight, _ := e.Data[fieldHighlight].(string)

	if f.noColor {
		fmt.Fprintf(&b, "[DEBUG] %s %s%s\n", ts, highlight, e.Message)
		return b.Bytes(), nil
	}

	fmt.Fprintf(&b, "%s[DEBUG]%s %s%s%s ", colorCyan, colorReset, colorGray, ts, colorReset)
	if highlight != "" {
		fmt.Fprintf(&b, "%s%s%s", colorCyan, highlight, colorReset)
	}
	fmt.Fprintf(&b, "%s\n", e.Message)
	return b.Bytes(), nil
}

// SetDebug enables or disables debug mode
func SetDebug(enable bool) {
	if enable {
		logger.SetLevel(logrus.DebugLevel)
		return
	}
	logger.SetLevel(logrus.InfoLevel)
}

// IsEnabled returns whether debug mode is enabled
func IsEnabled() bool {
	return logger.IsLevelEnabled(logrus.DebugLevel)
}

// SetNoColor enables or disables colored output
func SetNoColor(disable bool) {
	logger.SetFormatter(&formatter{noColor: disable})
}

// SetOutput redirects debug output; nil restores stderr.
func SetOutput(w io.Writer) {
	if w == nil {
		w = os.Stderr
	}
	logger.SetOutput(w)
}

// Logger returns the underlying logger.
func Logger() *logrus.Logger {
	return logger
}

// Debug prints a debug message with timestamp
func Debug(format string, args ...interface{}) {
	if !IsEnabled() {
		return
	}
	logger.Debugf(format, args...)
}

// Debugf is an alias for Debug
func Debugf(format string, args ...interface{}) {
	Debug(format, args...)
}

// DebugSection prints a section header for debug output
func DebugSection(section string) {
	if !IsEnabled() {
		return
	}
	logger.WithField(fieldHighlight, "=== "+section+" ===").Debug("")
}

// DebugValue prints key=value style debug info
func DebugValue(key string, value interface{}) {
	if !IsEnabled() {
		return
	}
	logger.WithField(fieldHighlight, key).Debugf(" = %v", value)
}

// DebugJSON prints structured data as JSON for debugging
func DebugJSON(key string, v interface{}) {
	if !IsEnabled() {
		return
	}

	jsonBytes, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		Debug("Failed to marshal %s to JSON: %v", key, err)
		return
	}
	logger.WithField(fieldHighlight, key).Debugf(":\n%s", jsonBytes)
}
