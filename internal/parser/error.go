package parser

import (
	"fmt"
	"strings"
)

// SyntaxError reports the first template mismatch
type SyntaxError struct {
	Expected []string // acceptable kinds at Position
	Position int      // 0-based index into the token stream
	Found    string   // kind at Position; empty when EOF
	EOF      bool     // the stream ended before Position
}

func (e *SyntaxError) Error() string {
	expected := strings.Join(e.Expected, ", ")
	if len(e.Expected) > 1 {
		expected = "one of " + expected
	}

	found := e.Found
	if e.EOF {
		found = "EOF"
	}
	return fmt.Sprintf("expected %s at position %d, got %s", expected, e.Position, found)
}
