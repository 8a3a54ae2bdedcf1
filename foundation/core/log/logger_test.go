// File: logger_test.go
// Title: Logger Tests
// Description: Tests for leveled output, formatters, context propagation
//              and structured error logging.
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial test suite

package log

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	mdwerror "github.com/msto63/ffparse/foundation/core/error"
)

func newBufferLogger(level Level, format Format) (*Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	return NewWithConfig(Config{Level: level, Format: format, Output: buf, Name: "test"}), buf
}

func TestLogger_LevelFiltering(t *testing.T) {
	logger, buf := newBufferLogger(LevelWarn, FormatText)

	logger.Debug("hidden")
	logger.Info("hidden too")
	logger.Warn("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("output contains filtered messages: %q", out)
	}
	if !strings.Contains(out, "shown") {
		t.Errorf("output missing warn message: %q", out)
	}
}

func TestLogger_JSONContext(t *testing.T) {
	logger, buf := newBufferLogger(LevelDebug, FormatJSON)

	logger.WithField("component", "analysis").
		WithRunID("run-42").
		Info("first sets computed", Fields{"nonterminals": 8})

	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("json.Unmarshal() error = %v, output %q", err, buf.String())
	}

	want := map[string]interface{}{
		"component":    "analysis",
		"run_id":       "run-42",
		"message":      "first sets computed",
		"level":        "info",
		"logger":       "test",
		"nonterminals": float64(8),
	}
	for k, v := range want {
		if entry[k] != v {
			t.Errorf("entry[%q] = %v, want %v", k, entry[k], v)
		}
	}
}

func TestLogger_WithFieldDoesNotMutateParent(t *testing.T) {
	parent, buf := newBufferLogger(LevelInfo, FormatText)
	_ = parent.WithField("child", true)

	parent.Info("parent")
	if strings.Contains(buf.String(), "child") {
		t.Errorf("parent logger picked up child field: %q", buf.String())
	}
}

func TestLogger_TextFieldsSorted(t *testing.T) {
	logger, buf := newBufferLogger(LevelInfo, FormatText)
	logger.Info("msg", Fields{"b": 2, "a": 1, "c": 3})

	if !strings.Contains(buf.String(), "[a=1 b=2 c=3]") {
		t.Errorf("fields not sorted: %q", buf.String())
	}
}

func TestLogger_LogError(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		wantLevel string
		wantCode  string
	}{
		{
			name:      "low severity logs as warning",
			err:       mdwerror.New("expected KEYWORD").WithCode(mdwerror.CodeSyntaxMismatch),
			wantLevel: "warn",
			wantCode:  "SYNTAX_MISMATCH",
		},
		{
			name:      "high severity logs as error",
			err:       mdwerror.New("undefined symbol").WithCode(mdwerror.CodeGrammarUndefinedSymbol),
			wantLevel: "error",
			wantCode:  "GRAMMAR_UNDEFINED_SYMBOL",
		},
		{
			name:      "plain error logs as error",
			err:       errors.New("boom"),
			wantLevel: "error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, buf := newBufferLogger(LevelDebug, FormatJSON)
			logger.LogError(tt.err)

			var entry map[string]interface{}
			if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
				t.Fatalf("json.Unmarshal() error = %v", err)
			}
			if entry["level"] != tt.wantLevel {
				t.Errorf("level = %v, want %v", entry["level"], tt.wantLevel)
			}
			if tt.wantCode != "" && entry["error_code"] != tt.wantCode {
				t.Errorf("error_code = %v, want %v", entry["error_code"], tt.wantCode)
			}
		})
	}
}

func TestLogger_LogErrorNil(t *testing.T) {
	logger, buf := newBufferLogger(LevelTrace, FormatText)
	logger.LogError(nil)
	if buf.Len() != 0 {
		t.Errorf("LogError(nil) wrote %q", buf.String())
	}
}

func TestTimer_StopOnce(t *testing.T) {
	logger, buf := newBufferLogger(LevelDebug, FormatText)

	timer := logger.StartTimer("follow").WithField("passes", 3)
	timer.Stop()
	if second := timer.Stop(); second != 0 {
		t.Errorf("second Stop() = %v, want 0", second)
	}

	out := buf.String()
	if strings.Count(out, "follow completed") != 1 {
		t.Errorf("expected exactly one completion line, got %q", out)
	}
	if !strings.Contains(out, "passes=3") {
		t.Errorf("completion line missing field: %q", out)
	}
}

func TestTimer_StopWithError(t *testing.T) {
	logger, buf := newBufferLogger(LevelDebug, FormatText)
	logger.StartTimer("parse").StopWithError(errors.New("expected KEYWORD"))

	if !strings.Contains(buf.String(), "parse failed") {
		t.Errorf("output = %q, want failure line", buf.String())
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    Level
		wantErr bool
	}{
		{"trace", LevelTrace, false},
		{"DEBUG", LevelDebug, false},
		{" info ", LevelInfo, false},
		{"warning", LevelWarn, false},
		{"err", LevelError, false},
		{"fatal", LevelFatal, false},
		{"loud", LevelInfo, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseLevel(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLevel() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseLevel() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseFormat(t *testing.T) {
	if f, err := ParseFormat("console"); err != nil || f != FormatConsole {
		t.Errorf("ParseFormat(console) = %v, %v", f, err)
	}
	if _, err := ParseFormat("xml"); err == nil {
		t.Error("ParseFormat(xml) should fail")
	}
}

func TestDiscard(t *testing.T) {
	logger := Discard()
	if logger.IsLevelEnabled(LevelFatal) {
		t.Error("Discard() logger should not enable any level")
	}
}
