// ============================================================================
// pinkmath - Decimal-Safe Arithmetic
// ============================================================================
//
// Package:     version
// Description: Central version management for the CLI and its components
// Author:      msto63
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package version

import (
	"fmt"
	"runtime"
)

// Version constants for pinkmath components
const (
	// Release version
	Platform = "0.3.0"

	// Component versions
	Mathx = "0.3.0"
	Calc  = "0.2.0"
	TUI   = "0.1.0"
)

// Set at build time with -ldflags "-X .../version.Commit=..."
var (
	Commit = "dev"
	Date   = "unknown"
)

// ComponentVersion returns the version for a given component name
func ComponentVersion(name string) string {
	switch name {
	case "mathx":
		return Mathx
	case "calc":
		return Calc
	case "tui":
		return TUI
	default:
		return Platform
	}
}

// Info returns the one-line version banner printed by the CLI
func Info() string {
	return fmt.Sprintf("pink %s (commit %s, built %s, %s/%s)",
		Platform, Commit, Date, runtime.GOOS, runtime.GOARCH)
}
