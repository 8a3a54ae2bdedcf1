package report

import (
	"fmt"
	"strings"

	"github.com/msto63/ffparse/internal/analysis"
	"github.com/msto63/ffparse/internal/scanner"
)

// FormatTokens renders the token table
func FormatTokens(tokens []scanner.Token) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%-20s %-20s %-20s\n", "Token", "Lexeme", "Type")
	b.WriteString(strings.Repeat("-", 60) + "\n")
	for _, tok := range tokens {
		fmt.Fprintf(&b, "%-20s %-20s %-20s\n", tok.Kind, tok.Lexeme, tok.Kind.Category())
	}
	return b.String()
}

// FormatSummary renders per-kind counts and distinct lexemes
func FormatSummary(entries []scanner.SummaryEntry) string {
	rule := strings.Repeat("-", 60) + "\n"

	var b strings.Builder
	b.WriteString("Summary of Analysis:\n")
	b.WriteString(rule)
	fmt.Fprintf(&b, "%-22s %-12s %s\n", "Category", "Count", "Elements")
	b.WriteString(rule)
	for _, e := range entries {
		fmt.Fprintf(&b, "%-22s %-12d %s\n", e.Kind.Title(), e.Count, strings.Join(e.Elements, "\t"))
	}
	return b.String()
}

// FormatStream renders one token kind per line
func FormatStream(stream []string) string {
	var b strings.Builder
	for _, kind := range stream {
		b.WriteString(kind)
		b.WriteByte('\n')
	}
	return b.String()
}

// FormatSets renders a FIRST or FOLLOW table under title
func FormatSets(title string, entries []analysis.Entry) string {
	var b strings.Builder
	b.WriteString(title + "\n")
	b.WriteString(strings.Repeat("-", 40) + "\n")
	for _, e := range entries {
		fmt.Fprintf(&b, "%s: %s\n", e.NonTerminal, strings.Join(e.Members, ", "))
	}
	return b.String()
}

// FormatRules renders the numbered grammar rules of the parse template
func FormatRules(rules []string) string {
	var b strings.Builder
	b.WriteString("Grammar Rules Used:\n")
	for i, r := range rules {
		fmt.Fprintf(&b, "%d. %s\n", i+1, r)
	}
	return b.String()
}

// FormatSyntaxError renders the diagnostic report
func FormatSyntaxError(err error) string {
	return "Syntax Error:\n" + err.Error() + "\n"
}
