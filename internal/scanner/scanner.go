// File: scanner.go
// Title: Regex Scanner
// Description: Tokenizes source text with an ordered alternation of named
//              patterns. Earlier patterns win; characters no pattern
//              matches are skipped.
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation

package scanner

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	mdwlog "github.com/msto63/ffparse/foundation/core/log"
)

// Pattern binds a kind to its regular expression
type Pattern struct {
	Kind  Kind
	Regex string
}

// DefaultPatterns is the pattern table in priority order
var DefaultPatterns = []Pattern{
	{Keyword, `\b(int|main|if|begin|end|printf)\b`},
	{Relop, `\brelop\b`},
	{Expr, `\bexpr\b`},
	{Identifier, `\b[a-zA-Z_][a-zA-Z0-9_]*\b`},
	{Operator, `(==|!=|<=|>=|<|>|=)`},
	{Literal, `\b\d+\b`},
	{Punctuation, `[\(\);,]`},
}

// CompilePatterns joins the table into one alternation of named groups
func CompilePatterns(patterns []Pattern) (*regexp.Regexp, error) {
	var builder strings.Builder
	for i, p := range patterns {
		if i > 0 {
			builder.WriteRune('|')
		}
		fmt.Fprintf(&builder, "(?P<%s>%s)", p.Kind, p.Regex)
	}
	return regexp.Compile(builder.String())
}

// Options configures a Scanner
type Options struct {
	Patterns []Pattern
	Logger   *mdwlog.Logger
}

type group struct {
	index int
	kind  Kind
}

// Scanner tokenizes text line by line
type Scanner struct {
	re     *regexp.Regexp
	groups []group
	logger *mdwlog.Logger
}

// New compiles the pattern table; DefaultPatterns is used when none is given
func New(opts Options) (*Scanner, error) {
	patterns := opts.Patterns
	if len(patterns) == 0 {
		patterns = DefaultPatterns
	}

	re, err := CompilePatterns(patterns)
	if err != nil {
		return nil, fmt.Errorf("compile scanner patterns: %w", err)
	}

	logger := opts.Logger
	if logger == nil {
		logger = mdwlog.GetDefault()
	}

	// inner capture groups shift indices, so resolve the named ones
	var groups []group
	for i, name := range re.SubexpNames() {
		if name != "" {
			groups = append(groups, group{index: i, kind: Kind(name)})
		}
	}

	return &Scanner{
		re:     re,
		groups: groups,
		logger: logger.WithField("component", "scanner"),
	}, nil
}

// Scan returns the tokens of text in source order
func (s *Scanner) Scan(text string) []Token {
	var tokens []Token
	skipped := 0

	for i, line := range strings.Split(text, "\n") {
		last := 0
		for _, m := range s.re.FindAllStringSubmatchIndex(line, -1) {
			skipped += countVisible(line[last:m[0]])
			last = m[1]

			for _, g := range s.groups {
				if m[2*g.index] >= 0 {
					tokens = append(tokens, Token{
						Kind:   g.kind,
						Lexeme: line[m[0]:m[1]],
						Line:   i + 1,
						Column: m[0] + 1,
					})
					break
				}
			}
		}
		skipped += countVisible(line[last:])
	}

	s.logger.Debug("Scan completed", mdwlog.Fields{
		"tokens":  len(tokens),
		"skipped": skipped,
	})
	return tokens
}

func countVisible(s string) int {
	n := 0
	for _, r := range s {
		if !unicode.IsSpace(r) {
			n++
		}
	}
	return n
}

// Scan tokenizes text with the default pattern table
func Scan(text string) []Token {
	s, err := New(Options{Logger: mdwlog.Discard()})
	if err != nil {
		panic(err)
	}
	return s.Scan(text)
}
