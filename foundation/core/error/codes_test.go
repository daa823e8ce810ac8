// File: codes_test.go
// Title: Error Code and Severity Tests
// Description: Tests for code validity, categories, exit codes and the
//              severity helpers.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial test implementation

package error

import "testing"

var allCodes = []Code{
	CodeUnknown, CodeInternal, CodeNotFound, CodeInvalidInput,
	CodeInvalidOperation, CodeInvalidNumber, CodeMissingRate,
	CodeConfigError, CodeInvalidConfig, CodeEnvironmentError,
	CodeValidationFailed, CodeInvalidFormat, CodeValueOutOfRange,
}

func TestAllDefinedCodesAreValid(t *testing.T) {
	for _, code := range allCodes {
		if !code.IsValid() {
			t.Errorf("%s.IsValid() = false", code)
		}
	}

	if Code("NOPE").IsValid() {
		t.Error("unknown code reported as valid")
	}
}

func TestCodeCategory(t *testing.T) {
	tests := []struct {
		code Code
		want string
	}{
		{CodeInvalidOperation, "calculation"},
		{CodeMissingRate, "calculation"},
		{CodeInvalidConfig, "configuration"},
		{CodeValueOutOfRange, "validation"},
		{CodeNotFound, "generic"},
	}

	for _, tt := range tests {
		t.Run(tt.code.String(), func(t *testing.T) {
			if got := tt.code.Category(); got != tt.want {
				t.Errorf("Category() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCodeExitCode(t *testing.T) {
	tests := []struct {
		code Code
		want int
	}{
		{CodeInvalidNumber, 2},
		{CodeValueOutOfRange, 2},
		{CodeInvalidInput, 2},
		{CodeConfigError, 3},
		{CodeInternal, 1},
		{CodeUnknown, 1},
	}

	for _, tt := range tests {
		t.Run(tt.code.String(), func(t *testing.T) {
			if got := tt.code.ExitCode(); got != tt.want {
				t.Errorf("ExitCode() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestSeverityString(t *testing.T) {
	tests := []struct {
		severity Severity
		want     string
	}{
		{SeverityLow, "low"},
		{SeverityMedium, "medium"},
		{SeverityHigh, "high"},
		{SeverityCritical, "critical"},
		{Severity(42), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.severity.String(); got != tt.want {
			t.Errorf("Severity(%d).String() = %q, want %q", tt.severity, got, tt.want)
		}
	}
}

func TestSeverityShouldAlert(t *testing.T) {
	if SeverityMedium.ShouldAlert() {
		t.Error("SeverityMedium should not alert")
	}
	if !SeverityHigh.ShouldAlert() || !SeverityCritical.ShouldAlert() {
		t.Error("SeverityHigh and SeverityCritical should alert")
	}
	if SeverityCritical.Level() != 3 {
		t.Errorf("SeverityCritical.Level() = %d, want 3", SeverityCritical.Level())
	}
}
