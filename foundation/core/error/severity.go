// File: severity.go
// Title: Error Severity Levels
// Description: Severity levels attached to errors. The logger maps them to
//              log levels when an error is logged through LogError.
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow marks errors caused by user input, e.g. a token stream
	// that does not match the sentence template
	SeverityLow Severity = iota

	// SeverityMedium is the default for errors without a more specific code
	SeverityMedium

	// SeverityHigh marks errors that stop a command from producing any
	// output, e.g. a malformed grammar or an unreadable config
	SeverityHigh

	// SeverityCritical marks internal invariant violations
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// GetSeverityFromCode determines appropriate severity level based on error code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	case CodeInternal:
		return SeverityCritical
	case CodeGrammarInvalid, CodeGrammarUndefinedSymbol,
		CodeConfigError, CodeInvalidConfig, CodeDatabaseError:
		return SeverityHigh
	case CodeSyntaxMismatch, CodeScanError, CodeInvalidInput, CodeNotFound:
		return SeverityLow
	default:
		return SeverityMedium
	}
}
