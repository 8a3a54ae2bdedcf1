// File: timer.go
// Title: Phase Timer
// Description: Measures the duration of a pipeline phase (scan, FIRST,
//              FOLLOW, parse, report) and logs it on completion.
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation

package log

import (
	"time"
)

// Timer measures the duration of an operation
type Timer struct {
	logger    *Logger
	operation string
	startTime time.Time
	fields    Fields
	level     Level
	stopped   bool
}

// NewTimer creates a new timer for the given operation
func NewTimer(logger *Logger, operation string) *Timer {
	return &Timer{
		logger:    logger,
		operation: operation,
		startTime: time.Now(),
		fields:    make(Fields),
		level:     LevelDebug,
	}
}

// WithLevel sets the log level for the completion message
func (t *Timer) WithLevel(level Level) *Timer {
	t.level = level
	return t
}

// WithField adds a field to be logged when the timer completes
func (t *Timer) WithField(key string, value interface{}) *Timer {
	t.fields[key] = value
	return t
}

// Elapsed returns the elapsed time since the timer was started
func (t *Timer) Elapsed() time.Duration {
	return time.Since(t.startTime)
}

// Stop stops the timer and logs the elapsed time.
// A stopped timer returns 0 and logs nothing.
func (t *Timer) Stop() time.Duration {
	return t.finish(t.operation+" completed", t.level, nil)
}

// StopWithError stops the timer and logs a failure with the elapsed time
func (t *Timer) StopWithError(err error) time.Duration {
	return t.finish(t.operation+" failed", LevelWarn, err)
}

func (t *Timer) finish(message string, level Level, err error) time.Duration {
	if t.stopped {
		return 0
	}

	elapsed := t.Elapsed()
	t.stopped = true

	if t.logger == nil {
		return elapsed
	}

	fields := t.fields.Merge(Fields{
		"operation":   t.operation,
		"duration_ms": float64(elapsed.Nanoseconds()) / 1e6,
	})
	t.logger.log(level, message, err, fields)

	return elapsed
}
