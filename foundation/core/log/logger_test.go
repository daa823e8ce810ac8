// File: logger_test.go
// Title: Logger Tests
// Description: Tests for level filtering, context fields, error logging
//              and the default logger.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-19
// Modified: 2026-10-19

package log

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	mdwerror "github.com/msto63/pinkmath/foundation/core/error"
)

func newTestLogger(buf *bytes.Buffer, level Level) *Logger {
	return NewWithConfig(Config{Level: level, Format: FormatJSON, Output: buf})
}

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]interface{} {
	t.Helper()
	var out []map[string]interface{}
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var m map[string]interface{}
		if err := json.Unmarshal([]byte(line), &m); err != nil {
			t.Fatalf("invalid JSON line %q: %v", line, err)
		}
		out = append(out, m)
	}
	return out
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := newTestLogger(&buf, LevelWarn)

	logger.Trace("trace")
	logger.Debug("debug")
	logger.Info("info")
	logger.Warn("warn")
	logger.Error("error")

	lines := decodeLines(t, &buf)
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2:\n%s", len(lines), buf.String())
	}
	if lines[0]["level"] != "warn" || lines[1]["level"] != "error" {
		t.Errorf("unexpected levels %v, %v", lines[0]["level"], lines[1]["level"])
	}
}

func TestContextFields(t *testing.T) {
	var buf bytes.Buffer
	base := newTestLogger(&buf, LevelInfo)
	logger := base.
		WithName("calc").
		WithCorrelationID("6f1c2d3e-0000-4000-8000-000000000000").
		WithField("mode", "chain")

	logger.Info("step", Fields{"op": "div", "result": 32.0})

	lines := decodeLines(t, &buf)
	if len(lines) != 1 {
		t.Fatalf("got %d lines, want 1", len(lines))
	}
	line := lines[0]
	checks := map[string]interface{}{
		"logger":         "calc",
		"correlation_id": "6f1c2d3e-0000-4000-8000-000000000000",
		"mode":           "chain",
		"op":             "div",
		"result":         32.0,
		"message":        "step",
	}
	for k, want := range checks {
		if line[k] != want {
			t.Errorf("%s = %v, want %v", k, line[k], want)
		}
	}

	if base.name != "" || len(base.contextFields) != 0 {
		t.Error("With* methods must not modify the receiver")
	}
}

func TestLogErrorUsesSeverity(t *testing.T) {
	tests := []struct {
		name  string
		err   error
		level string
	}{
		{"low severity", mdwerror.New("bad operand").WithCode(mdwerror.CodeInvalidNumber), "info"},
		{"medium severity", mdwerror.New("odd"), "warn"},
		{"high severity", mdwerror.New("config unreadable").WithCode(mdwerror.CodeConfigError), "error"},
		{"plain error", errors.New("boom"), "error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			newTestLogger(&buf, LevelTrace).LogError(tt.err)

			lines := decodeLines(t, &buf)
			if len(lines) != 1 {
				t.Fatalf("got %d lines, want 1", len(lines))
			}
			if lines[0]["level"] != tt.level {
				t.Errorf("level = %v, want %s", lines[0]["level"], tt.level)
			}
		})
	}
}

func TestLogErrorFields(t *testing.T) {
	var buf bytes.Buffer
	err := mdwerror.New("months out of range").
		WithCode(mdwerror.CodeValueOutOfRange).
		WithOperation("loan").
		WithDetail("months", -1)

	newTestLogger(&buf, LevelTrace).LogError(err)
	line := decodeLines(t, &buf)[0]

	if line["error_code"] != "VALUE_OUT_OF_RANGE" {
		t.Errorf("error_code = %v", line["error_code"])
	}
	if line["error_operation"] != "loan" {
		t.Errorf("error_operation = %v", line["error_operation"])
	}
	if line["error_months"] != -1.0 {
		t.Errorf("error_months = %v", line["error_months"])
	}
	if _, ok := line["error_details"].(map[string]interface{}); !ok {
		t.Errorf("error_details missing: %v", line["error_details"])
	}
}

func TestLogErrorNil(t *testing.T) {
	var buf bytes.Buffer
	newTestLogger(&buf, LevelTrace).LogError(nil)
	if buf.Len() != 0 {
		t.Errorf("nil error should not be logged, got %q", buf.String())
	}
}

func TestSetLevelIsShared(t *testing.T) {
	var buf bytes.Buffer
	logger := newTestLogger(&buf, LevelInfo)

	logger.Debug("hidden")
	logger.SetLevel(LevelDebug)
	logger.Debug("shown")

	if !logger.IsLevelEnabled(LevelDebug) {
		t.Error("debug should be enabled after SetLevel")
	}
	if got := len(decodeLines(t, &buf)); got != 1 {
		t.Errorf("got %d lines, want 1", got)
	}
}

func TestWithCaller(t *testing.T) {
	var buf bytes.Buffer
	newTestLogger(&buf, LevelInfo).WithCaller(0).Info("where")

	line := decodeLines(t, &buf)[0]
	caller, _ := line["caller"].(string)
	if !strings.HasPrefix(caller, "logger_test.go:") {
		t.Errorf("caller = %q, want logger_test.go:<line>", caller)
	}
}

func TestDefaultLogger(t *testing.T) {
	previous := GetDefault()
	defer SetDefault(previous)

	var buf bytes.Buffer
	SetDefault(newTestLogger(&buf, LevelDebug))

	Debug("d")
	Info("i")
	Warn("w")
	Error("e")

	if got := len(decodeLines(t, &buf)); got != 4 {
		t.Errorf("got %d lines, want 4", got)
	}
}
