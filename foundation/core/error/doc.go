// Package error provides the structured error type used across ffparse.
//
// Package: error
// Title: ffparse Error Handling
// Description: Structured errors carrying a code, a severity, the failing
//              operation and free-form details. Grammar construction,
//              configuration loading, report writing and the run history
//              all report failures through this type so the logger can
//              render them uniformly.
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation
//
// Usage:
//
//	err := mdwerror.New("production references undefined symbol").
//		WithCode(mdwerror.CodeGrammarUndefinedSymbol).
//		WithOperation("grammar.New").
//		WithDetail("symbol", "STMT")
//
//	if mdwerror.HasCode(err, mdwerror.CodeGrammarUndefinedSymbol) {
//		// reject the grammar
//	}
package error
