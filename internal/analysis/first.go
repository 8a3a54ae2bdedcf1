package analysis

import (
	mdwlog "github.com/msto63/ffparse/foundation/core/log"
	"github.com/msto63/ffparse/internal/grammar"
)

// FirstOf returns FIRST(symbol). Terminals and unknown names map to
// themselves; non-terminal results come from the context cache, which is
// filled and settled on first use.
func (c *Context) FirstOf(symbol string) Set {
	if !c.grammar.IsNonTerminal(symbol) {
		return NewSet(symbol)
	}
	c.ComputeFirstSets()
	return c.first[symbol].Clone()
}

// FirstOfSequence returns FIRST of a symbol string; the empty sequence
// yields {ε}.
func (c *Context) FirstOfSequence(symbols []string) Set {
	c.ComputeFirstSets()
	out := NewSet()
	c.addSequence(out, symbols)
	return out
}

// ComputeFirstSets evaluates FIRST for every non-terminal and settles
// results that were cut short by the recursion guard. Repeated calls are
// no-ops.
func (c *Context) ComputeFirstSets() {
	if c.firstDone {
		return
	}

	for _, nt := range c.grammar.NonTerminals() {
		c.firstOf(nt)
	}

	passes := 0
	for c.settlePass() {
		passes++
	}
	c.firstDone = true

	c.logger.Debug("FIRST sets computed", mdwlog.Fields{
		"non_terminals": len(c.first),
		"guard_hits":    c.guardHits,
		"settle_passes": passes,
	})
}

// firstOf is the memoized lookup. A non-terminal that is already being
// evaluated yields its partial set instead of recursing again.
func (c *Context) firstOf(symbol string) Set {
	if !c.grammar.IsNonTerminal(symbol) {
		return NewSet(symbol)
	}
	if set, ok := c.first[symbol]; ok {
		return set
	}
	if partial, ok := c.inProgress[symbol]; ok {
		c.guardHits++
		return partial
	}

	set := NewSet()
	c.inProgress[symbol] = set
	for _, prod := range c.grammar.Productions(symbol) {
		c.addSequence(set, prod)
	}
	delete(c.inProgress, symbol)

	c.first[symbol] = set
	return set
}

// addSequence unions FIRST(symbols)∖{ε} into dst, stopping at the first
// non-nullable symbol, and adds ε when every symbol is nullable.
func (c *Context) addSequence(dst Set, symbols []string) bool {
	changed := false
	for _, sym := range symbols {
		f := c.firstOf(sym)
		if dst.UnionWithout(f, grammar.Epsilon) {
			changed = true
		}
		if !f.Has(grammar.Epsilon) {
			return changed
		}
	}
	return dst.Add(grammar.Epsilon) || changed
}

func (c *Context) settlePass() bool {
	changed := false
	for _, nt := range c.grammar.NonTerminals() {
		set := c.first[nt]
		for _, prod := range c.grammar.Productions(nt) {
			if c.addSequence(set, prod) {
				changed = true
			}
		}
	}
	return changed
}
