// File: codes.go
// Title: Error Code Definitions
// Description: Defines the error codes used to classify failures of grammar
//              construction, scanning, parsing, configuration and storage.
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial code set

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeNotFound     Code = "NOT_FOUND"
	CodeInvalidInput Code = "INVALID_INPUT"

	// Grammar model
	CodeGrammarInvalid         Code = "GRAMMAR_INVALID"
	CodeGrammarUndefinedSymbol Code = "GRAMMAR_UNDEFINED_SYMBOL"

	// Scanning and parsing
	CodeScanError      Code = "SCAN_ERROR"
	CodeSyntaxMismatch Code = "SYNTAX_MISMATCH"

	// Configuration and environment
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeInvalidConfig Code = "INVALID_CONFIG"

	// Output and storage
	CodeReportError   Code = "REPORT_ERROR"
	CodeDatabaseError Code = "DATABASE_ERROR"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known valid code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeNotFound, CodeInvalidInput,
		CodeGrammarInvalid, CodeGrammarUndefinedSymbol,
		CodeScanError, CodeSyntaxMismatch,
		CodeConfigError, CodeInvalidConfig,
		CodeReportError, CodeDatabaseError:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeGrammarInvalid, CodeGrammarUndefinedSymbol:
		return "grammar"
	case CodeScanError, CodeSyntaxMismatch:
		return "input"
	case CodeConfigError, CodeInvalidConfig:
		return "configuration"
	case CodeReportError, CodeDatabaseError:
		return "output"
	default:
		return "generic"
	}
}
