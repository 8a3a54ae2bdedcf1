package analysis

import (
	mdwlog "github.com/msto63/ffparse/foundation/core/log"
	"github.com/msto63/ffparse/internal/grammar"
)

// ComputeFollow runs FOLLOW passes until one makes no change. FIRST sets
// are computed first when missing.
func (c *Context) ComputeFollow() {
	if c.followDone {
		return
	}
	for c.FollowPass() {
	}
	c.followDone = true

	c.logger.Debug("FOLLOW sets computed", mdwlog.Fields{
		"passes": c.followPasses,
	})
}

// FollowPass performs one full pass over all productions and reports
// whether any FOLLOW set grew. The first call seeds FOLLOW(start) with $.
func (c *Context) FollowPass() bool {
	c.ComputeFirstSets()
	if c.follow == nil {
		c.follow = make(map[string]Set, len(c.first))
		for _, nt := range c.grammar.NonTerminals() {
			c.follow[nt] = NewSet()
		}
		c.follow[c.grammar.Start()].Add(grammar.EndMarker)
	}

	c.followPasses++
	changed := false
	for _, head := range c.grammar.NonTerminals() {
		for _, prod := range c.grammar.Productions(head) {
			for i, sym := range prod {
				if !c.grammar.IsNonTerminal(sym) {
					continue
				}

				rest := NewSet()
				c.addSequence(rest, prod[i+1:])

				target := c.follow[sym]
				if target.UnionWithout(rest, grammar.Epsilon) {
					changed = true
				}
				if rest.Has(grammar.Epsilon) && target.Union(c.follow[head]) {
					changed = true
				}
			}
		}
	}
	return changed
}

// FollowOf returns FOLLOW(nt) after the fixed point has been reached
func (c *Context) FollowOf(nt string) Set {
	c.ComputeFollow()
	if set, ok := c.follow[nt]; ok {
		return set.Clone()
	}
	return NewSet()
}
