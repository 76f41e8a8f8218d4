package logger

import (
	"bytes"
	"strings"
	"testing"
)

// TestConsoleLoggerLevels verifies level filtering
func TestConsoleLoggerLevels(t *testing.T) {
	var buf bytes.Buffer
	cl := NewConsoleLogger(&buf, "warn")

	cl.LogTrace("trace message")
	cl.LogDebug("debug message")
	cl.LogInfo("info message")
	cl.LogWarn("warn message")
	cl.LogError("error message")

	output := buf.String()
	if strings.Contains(output, "trace message") || strings.Contains(output, "debug message") || strings.Contains(output, "info message") {
		t.Errorf("below-threshold messages leaked: %q", output)
	}
	if !strings.Contains(output, "warn message") {
		t.Errorf("warn message missing: %q", output)
	}
	if !strings.Contains(output, "error message") {
		t.Errorf("error message missing: %q", output)
	}
}

// TestConsoleLoggerFormat verifies the "[HH:MM:SS] [LEVEL] msg" layout
func TestConsoleLoggerFormat(t *testing.T) {
	var buf bytes.Buffer
	cl := NewConsoleLogger(&buf, "info")

	cl.LogInfo("validating tasks.csv")

	line := buf.String()
	if !strings.Contains(line, "] [INFO] validating tasks.csv\n") {
		t.Errorf("unexpected format: %q", line)
	}
	if !strings.HasPrefix(line, "[") {
		t.Errorf("missing timestamp prefix: %q", line)
	}
}

// TestConsoleLoggerInvalidLevelDefaults verifies fallback to info
func TestConsoleLoggerInvalidLevelDefaults(t *testing.T) {
	var buf bytes.Buffer
	cl := NewConsoleLogger(&buf, "shout")

	cl.LogDebug("hidden")
	cl.LogInfo("visible")

	if strings.Contains(buf.String(), "hidden") {
		t.Error("debug message logged despite info default")
	}
	if !strings.Contains(buf.String(), "visible") {
		t.Error("info message missing with defaulted level")
	}
}

// TestConsoleLoggerNilWriter verifies a nil writer never panics
func TestConsoleLoggerNilWriter(t *testing.T) {
	cl := NewConsoleLogger(nil, "info")
	cl.LogInfo("dropped")
	cl.LogError("also dropped")
}

// TestConsoleLoggerNoColorForBuffer verifies non-terminal writers get
// plain output
func TestConsoleLoggerNoColorForBuffer(t *testing.T) {
	var buf bytes.Buffer
	cl := NewConsoleLogger(&buf, "info")

	cl.LogInfo("plain")

	if strings.Contains(buf.String(), "\x1b[") {
		t.Errorf("ANSI codes written to non-terminal writer: %q", buf.String())
	}
}
