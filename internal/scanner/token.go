// File: token.go
// Title: Token Kinds
// Description: Token kinds produced by the scanner and their display
//              categories used in the token table.
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation

package scanner

import (
	"fmt"
	"strings"
)

// Kind is the token kind; it doubles as the terminal name in grammars
type Kind string

const (
	Keyword     Kind = "KEYWORD"
	Relop       Kind = "RELOP"
	Expr        Kind = "EXPR"
	Identifier  Kind = "IDENTIFIER"
	Operator    Kind = "OPERATOR"
	Literal     Kind = "LITERAL"
	Punctuation Kind = "PUNCTUATION"
)

// Kinds lists every kind in pattern priority order
var Kinds = []Kind{Keyword, Relop, Expr, Identifier, Operator, Literal, Punctuation}

// DefaultStreamKinds are the kinds handed to the parser
var DefaultStreamKinds = []Kind{Keyword, Expr, Relop, Identifier, Punctuation}

// Category returns the human-readable category shown in the token table
func (k Kind) Category() string {
	switch k {
	case Keyword:
		return "Keyword"
	case Identifier:
		return "Identifier"
	case Literal:
		return "Number"
	case Operator:
		return "Operator"
	case Punctuation:
		return "Punctuation"
	case Expr:
		return "Expression"
	case Relop:
		return "Relational Operator"
	}
	return string(k)
}

// Title returns the kind name with only its first letter upper-cased
func (k Kind) Title() string {
	s := strings.ToLower(string(k))
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// ParseKind validates a kind name
func ParseKind(name string) (Kind, error) {
	k := Kind(strings.ToUpper(strings.TrimSpace(name)))
	for _, known := range Kinds {
		if k == known {
			return k, nil
		}
	}
	return "", fmt.Errorf("unknown token kind %q", name)
}

// Token is one lexeme found in the source
type Token struct {
	Kind   Kind
	Lexeme string
	Line   int // 1-based
	Column int // 1-based byte column
}

// String returns a string representation of the token
func (t Token) String() string {
	return fmt.Sprintf("%s(%q) at %d:%d", t.Kind, t.Lexeme, t.Line, t.Column)
}
