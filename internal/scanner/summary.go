package scanner

import (
	"bufio"
	"io"
	"strings"
)

// SummaryEntry aggregates the tokens of one kind
type SummaryEntry struct {
	Kind     Kind
	Count    int
	Elements []string // distinct lexemes in first-seen order
}

// Summarize groups tokens by kind in order of first appearance
func Summarize(tokens []Token) []SummaryEntry {
	var entries []SummaryEntry
	index := make(map[Kind]int)
	seen := make(map[Kind]map[string]bool)

	for _, tok := range tokens {
		i, ok := index[tok.Kind]
		if !ok {
			i = len(entries)
			index[tok.Kind] = i
			seen[tok.Kind] = make(map[string]bool)
			entries = append(entries, SummaryEntry{Kind: tok.Kind})
		}

		entries[i].Count++
		if !seen[tok.Kind][tok.Lexeme] {
			seen[tok.Kind][tok.Lexeme] = true
			entries[i].Elements = append(entries[i].Elements, tok.Lexeme)
		}
	}
	return entries
}

// Stream returns the kinds of the tokens whose kind is in keep, in order
func Stream(tokens []Token, keep []Kind) []string {
	allowed := make(map[Kind]bool, len(keep))
	for _, k := range keep {
		allowed[k] = true
	}

	stream := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if allowed[tok.Kind] {
			stream = append(stream, string(tok.Kind))
		}
	}
	return stream
}

// ReadStream reads a token-kind stream, one kind per line; blank lines
// are ignored.
func ReadStream(r io.Reader) ([]string, error) {
	var stream []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if kind := strings.TrimSpace(sc.Text()); kind != "" {
			stream = append(stream, kind)
		}
	}
	return stream, sc.Err()
}
