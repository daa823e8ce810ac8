// File: error_test.go
// Title: Error Module Tests
// Description: Tests for error creation, wrapping, codes, severity and
//              JSON serialization.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial test implementation

package error

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	msg := "test error message"
	err := New(msg)

	if err == nil {
		t.Fatal("New() returned nil")
	}

	if err.Error() != msg {
		t.Errorf("Error() = %q, want %q", err.Error(), msg)
	}

	if err.Code() != CodeUnknown {
		t.Errorf("Code() = %v, want %v", err.Code(), CodeUnknown)
	}

	if err.Severity() != SeverityMedium {
		t.Errorf("Severity() = %v, want %v", err.Severity(), SeverityMedium)
	}

	if err.Timestamp().IsZero() {
		t.Error("Timestamp() should not be zero")
	}

	if len(err.StackTrace()) == 0 {
		t.Error("StackTrace() should not be empty")
	}
}

func TestWrap(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		message string
		wantNil bool
		wantMsg string
	}{
		{
			name:    "wrap nil error",
			err:     nil,
			message: "wrapper message",
			wantNil: true,
		},
		{
			name:    "wrap standard error",
			err:     errors.New("original error"),
			message: "wrapper message",
			wantMsg: "wrapper message: original error",
		},
		{
			name:    "wrap mdw error",
			err:     New("bad operand").WithCode(CodeInvalidNumber),
			message: "wrapper message",
			wantMsg: "wrapper message: bad operand",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Wrap(tt.err, tt.message)

			if tt.wantNil {
				if got != nil {
					t.Errorf("Wrap() = %v, want nil", got)
				}
				return
			}

			if got.Error() != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", got.Error(), tt.wantMsg)
			}

			if !errors.Is(got, tt.err) {
				t.Error("wrapped error should match its cause with errors.Is")
			}
		})
	}
}

func TestWrapPreservesMetadata(t *testing.T) {
	inner := New("months must be positive").
		WithCode(CodeValueOutOfRange).
		WithOperation("mathx.Loan").
		WithDetail("months", -1)

	wrapped := Wrap(inner, "loan schedule failed")

	if wrapped.Code() != CodeValueOutOfRange {
		t.Errorf("Code() = %v, want %v", wrapped.Code(), CodeValueOutOfRange)
	}
	if wrapped.Severity() != SeverityLow {
		t.Errorf("Severity() = %v, want %v", wrapped.Severity(), SeverityLow)
	}
	if wrapped.Operation() != "mathx.Loan" {
		t.Errorf("Operation() = %q, want mathx.Loan", wrapped.Operation())
	}
	if wrapped.Details()["months"] != -1 {
		t.Errorf("Details()[months] = %v, want -1", wrapped.Details()["months"])
	}
	if wrapped.RootCause() != inner {
		t.Error("RootCause() should return the innermost error")
	}
}

func TestWrapTruncatesDeepChains(t *testing.T) {
	var err error = errors.New("root")
	for i := 0; i < MaxErrorChainDepth+2; i++ {
		err = Wrap(err, "layer")
	}

	mdwErr, ok := err.(*Error)
	if !ok {
		t.Fatalf("Wrap() returned %T", err)
	}
	if mdwErr.Details()["truncated"] != true {
		t.Error("deep chains should be truncated")
	}
	if !strings.Contains(mdwErr.Error(), "root") {
		t.Errorf("truncated error should mention the root cause: %q", mdwErr.Error())
	}
}

func TestWithCodeAdjustsSeverity(t *testing.T) {
	tests := []struct {
		code Code
		want Severity
	}{
		{CodeInvalidInput, SeverityLow},
		{CodeMissingRate, SeverityLow},
		{CodeConfigError, SeverityHigh},
		{CodeInternal, SeverityCritical},
		{CodeUnknown, SeverityMedium},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			err := New("x").WithCode(tt.code)
			if err.Severity() != tt.want {
				t.Errorf("Severity() = %v, want %v", err.Severity(), tt.want)
			}
		})
	}

	explicit := New("x").WithSeverity(SeverityCritical).WithCode(CodeInvalidInput)
	if explicit.Severity() != SeverityCritical {
		t.Errorf("explicit severity should win, got %v", explicit.Severity())
	}
}

func TestWithDetails(t *testing.T) {
	err := New("x").
		WithDetail("op", "div").
		WithDetails(map[string]interface{}{"a": 1.5, "b": 0})

	details := err.Details()
	if len(details) != 3 {
		t.Fatalf("Details() has %d entries, want 3", len(details))
	}

	details["op"] = "mutated"
	if err.Details()["op"] != "div" {
		t.Error("Details() should return a copy")
	}
}

func TestHasCodeAndGetCode(t *testing.T) {
	err := New("x").WithCode(CodeInvalidOperation)

	if !HasCode(err, CodeInvalidOperation) {
		t.Error("HasCode() = false, want true")
	}
	if HasCode(errors.New("plain"), CodeInvalidOperation) {
		t.Error("HasCode() on plain error = true, want false")
	}
	if GetCode(errors.New("plain")) != CodeUnknown {
		t.Error("GetCode() on plain error should be CodeUnknown")
	}
	if GetSeverity(errors.New("plain")) != SeverityMedium {
		t.Error("GetSeverity() on plain error should be SeverityMedium")
	}
}

func TestString(t *testing.T) {
	err := New("bad config").
		WithCode(CodeConfigError).
		WithOperation("config.Load").
		WithDetail("path", "pink.toml")

	s := err.String()
	for _, want := range []string{"Error: bad config", "Code: CONFIG_ERROR", "Severity: high", "Operation: config.Load", "path=pink.toml"} {
		if !strings.Contains(s, want) {
			t.Errorf("String() missing %q:\n%s", want, s)
		}
	}
}

func TestMarshalJSON(t *testing.T) {
	err := Wrap(errors.New("eof"), "read failed").
		WithCode(CodeConfigError).
		WithOperation("config.Load")

	data, marshalErr := json.Marshal(err)
	if marshalErr != nil {
		t.Fatalf("MarshalJSON() error = %v", marshalErr)
	}

	var decoded map[string]interface{}
	if jsonErr := json.Unmarshal(data, &decoded); jsonErr != nil {
		t.Fatalf("invalid JSON: %v", jsonErr)
	}

	if decoded["code"] != "CONFIG_ERROR" {
		t.Errorf("code = %v, want CONFIG_ERROR", decoded["code"])
	}
	if decoded["cause"] != "eof" {
		t.Errorf("cause = %v, want eof", decoded["cause"])
	}
	if decoded["operation"] != "config.Load" {
		t.Errorf("operation = %v, want config.Load", decoded["operation"])
	}
	if _, ok := decoded["stack_trace"]; !ok {
		t.Error("stack_trace missing")
	}
}

func BenchmarkNew(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = New("benchmark error")
	}
}

func BenchmarkWrapStandardError(b *testing.B) {
	base := errors.New("base")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Wrap(base, "wrapped")
	}
}
