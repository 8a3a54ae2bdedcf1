// ============================================================================
// ffparse - FIRST/FOLLOW analysis and descent parsing
// ============================================================================
//
// Package:     version
// Description: Central version management for the tool and its formats
// License:     MIT
// ============================================================================

package version

// Version constants
const (
	// Tool version
	Tool = "1.0.0"

	// Report layout version; bumped when a report file changes shape
	Reports = "1.0.0"

	// Grammar file schema version
	GrammarSchema = "1.0.0"

	// History database schema version
	HistorySchema = "1.0.0"
)

// ComponentVersion returns the version for a given component name
func ComponentVersion(name string) string {
	switch name {
	case "reports":
		return Reports
	case "grammar":
		return GrammarSchema
	case "history":
		return HistorySchema
	default:
		return Tool
	}
}
