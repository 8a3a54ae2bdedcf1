// ============================================================================
// ffparse - FIRST/FOLLOW analysis and descent parsing
// ============================================================================
//
// Package:     grammar
// Description: Immutable grammar model with construction-time validation
// License:     MIT
// ============================================================================

package grammar

import (
	"fmt"
	"strings"

	mdwerror "github.com/msto63/ffparse/foundation/core/error"
)

const (
	// Epsilon marks the empty derivation inside FIRST sets
	Epsilon = "ε"

	// EndMarker marks end of input inside FOLLOW sets
	EndMarker = "$"
)

// Production is one alternative right-hand side; empty means epsilon
type Production []string

// IsEpsilon reports whether the production derives the empty string directly
func (p Production) IsEpsilon() bool {
	return len(p) == 0
}

// String returns the symbols joined by spaces, or ε for an empty production
func (p Production) String() string {
	if p.IsEpsilon() {
		return Epsilon
	}
	return strings.Join(p, " ")
}

// Rule lists the alternatives of one non-terminal
type Rule struct {
	Head         string     `yaml:"head" toml:"head"`
	Alternatives [][]string `yaml:"alternatives" toml:"alternatives"`
}

// Definition is the raw, unvalidated form of a grammar
type Definition struct {
	Start     string   `yaml:"start" toml:"start"`
	Terminals []string `yaml:"terminals" toml:"terminals"`
	Rules     []Rule   `yaml:"rules" toml:"rules"`
}

// Grammar is a validated, immutable grammar.
// Every symbol used in a production is either a declared terminal or a
// non-terminal with its own rule.
type Grammar struct {
	start       string
	terminals   []string
	isTerminal  map[string]bool
	order       []string
	productions map[string][]Production
}

// New validates def and builds a Grammar from it
func New(def Definition) (*Grammar, error) {
	g := &Grammar{
		start:       def.Start,
		isTerminal:  make(map[string]bool, len(def.Terminals)),
		productions: make(map[string][]Production, len(def.Rules)),
	}

	for _, t := range def.Terminals {
		if err := checkName(t, "terminal"); err != nil {
			return nil, err
		}
		if g.isTerminal[t] {
			continue
		}
		g.isTerminal[t] = true
		g.terminals = append(g.terminals, t)
	}

	for _, rule := range def.Rules {
		if err := checkName(rule.Head, "non-terminal"); err != nil {
			return nil, err
		}
		if g.isTerminal[rule.Head] {
			return nil, invalid("symbol declared as terminal and non-terminal").
				WithDetail("symbol", rule.Head)
		}
		if _, dup := g.productions[rule.Head]; dup {
			return nil, invalid("duplicate rule").WithDetail("head", rule.Head)
		}
		if len(rule.Alternatives) == 0 {
			return nil, invalid("rule has no alternatives").WithDetail("head", rule.Head)
		}

		alts := make([]Production, 0, len(rule.Alternatives))
		for _, alt := range rule.Alternatives {
			prod := make(Production, len(alt))
			copy(prod, alt)
			alts = append(alts, prod)
		}

		g.order = append(g.order, rule.Head)
		g.productions[rule.Head] = alts
	}

	if _, ok := g.productions[g.start]; !ok {
		return nil, invalid("start symbol has no rule").WithDetail("symbol", g.start)
	}

	for _, head := range g.order {
		for _, prod := range g.productions[head] {
			for _, sym := range prod {
				if g.isTerminal[sym] {
					continue
				}
				if _, ok := g.productions[sym]; ok {
					continue
				}
				return nil, mdwerror.New(fmt.Sprintf("production %s → %s references undefined symbol %q", head, prod, sym)).
					WithCode(mdwerror.CodeGrammarUndefinedSymbol).
					WithOperation("grammar.New").
					WithDetail("head", head).
					WithDetail("symbol", sym)
			}
		}
	}

	return g, nil
}

// MustNew is New for compiled-in grammars; it panics on an invalid definition
func MustNew(def Definition) *Grammar {
	g, err := New(def)
	if err != nil {
		panic(err)
	}
	return g
}

func checkName(name, kind string) *mdwerror.Error {
	switch {
	case strings.TrimSpace(name) == "":
		return invalid("empty " + kind + " name")
	case name == Epsilon || name == EndMarker:
		return invalid("reserved symbol used as " + kind).WithDetail("symbol", name)
	}
	return nil
}

func invalid(message string) *mdwerror.Error {
	return mdwerror.New(message).
		WithCode(mdwerror.CodeGrammarInvalid).
		WithOperation("grammar.New")
}

// Start returns the start symbol
func (g *Grammar) Start() string {
	return g.start
}

// NonTerminals returns the non-terminals in declaration order
func (g *Grammar) NonTerminals() []string {
	out := make([]string, len(g.order))
	copy(out, g.order)
	return out
}

// Terminals returns the declared terminal alphabet in declaration order
func (g *Grammar) Terminals() []string {
	out := make([]string, len(g.terminals))
	copy(out, g.terminals)
	return out
}

// Productions returns the alternatives of nt, nil if nt is not a non-terminal
func (g *Grammar) Productions(nt string) []Production {
	alts, ok := g.productions[nt]
	if !ok {
		return nil
	}
	out := make([]Production, len(alts))
	for i, p := range alts {
		out[i] = append(Production(nil), p...)
	}
	return out
}

// IsTerminal reports whether sym is in the terminal alphabet
func (g *Grammar) IsTerminal(sym string) bool {
	return g.isTerminal[sym]
}

// IsNonTerminal reports whether sym has a rule
func (g *Grammar) IsNonTerminal(sym string) bool {
	_, ok := g.productions[sym]
	return ok
}

// Definition returns an independent copy of the grammar's raw form
func (g *Grammar) Definition() Definition {
	def := Definition{
		Start:     g.start,
		Terminals: g.Terminals(),
	}
	for _, head := range g.order {
		rule := Rule{Head: head}
		for _, p := range g.productions[head] {
			rule.Alternatives = append(rule.Alternatives, append([]string{}, p...))
		}
		def.Rules = append(def.Rules, rule)
	}
	return def
}

// String renders the rules, one non-terminal per line
func (g *Grammar) String() string {
	var b strings.Builder
	for _, head := range g.order {
		alts := make([]string, 0, len(g.productions[head]))
		for _, p := range g.productions[head] {
			alts = append(alts, p.String())
		}
		fmt.Fprintf(&b, "%s → %s\n", head, strings.Join(alts, " | "))
	}
	return b.String()
}
