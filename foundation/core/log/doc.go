// Package log provides structured logging for ffparse.
//
// Package: log
// Title: ffparse Structured Logging
// Description: Leveled, structured logging with pluggable formatters (JSON,
//              text, console), persistent context fields, a per-run
//              correlation id and phase timers. Loggers are immutable: the
//              With* methods return a configured copy.
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation
//
// Usage:
//
//	logger := mdwlog.GetDefault().
//		WithField("component", "analysis").
//		WithRunID(runID)
//
//	timer := logger.StartTimer("follow")
//	passes := ctx.ComputeFollow()
//	timer.WithField("passes", passes).Stop()
package log
