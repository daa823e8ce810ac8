// Package log provides structured logging for pinkmath.
//
// Package: log
// Title: Structured Logging
// Description: Leveled logger with persistent fields, correlation IDs,
//              JSON/text/console/logfmt output and operation timers.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation with structured logging and error integration
// - 2026-10-19 v0.2.0: Reduced to synchronous output for CLI use
//
// Usage:
//
//	logger := log.NewWithConfig(log.Config{Level: log.LevelDebug, Format: log.FormatText}).
//		WithName("pink").
//		WithCorrelationID(uuid.NewString())
//
//	logger.Info("chain step", log.Fields{"op": "div", "result": 32})
//
//	timer := logger.StartTimer("loan_schedule")
//	// ... build the plan
//	timer.Stop()
//
// Errors from the core error package are logged with their code, severity
// and details through LogError.
package log
