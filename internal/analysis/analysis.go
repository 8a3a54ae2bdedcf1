// ============================================================================
// ffparse - FIRST/FOLLOW analysis and descent parsing
// ============================================================================
//
// Package:     analysis
// Description: FIRST/FOLLOW computation over a validated grammar
// License:     MIT
// ============================================================================

// Package analysis computes FIRST and FOLLOW sets. All caches live in a
// Context owned by one run; nothing is kept at package level.
package analysis

import (
	"time"

	"github.com/google/uuid"

	mdwlog "github.com/msto63/ffparse/foundation/core/log"
	"github.com/msto63/ffparse/internal/grammar"
)

// Options configures a Context
type Options struct {
	Logger *mdwlog.Logger
	RunID  string
}

// Context holds the FIRST cache and FOLLOW table of one analysis run
type Context struct {
	grammar *grammar.Grammar
	logger  *mdwlog.Logger
	runID   string

	first      map[string]Set
	inProgress map[string]Set
	firstDone  bool
	guardHits  int

	follow       map[string]Set
	followDone   bool
	followPasses int
}

// NewContext creates an empty analysis context for g
func NewContext(g *grammar.Grammar, opts Options) *Context {
	runID := opts.RunID
	if runID == "" {
		runID = uuid.NewString()
	}

	logger := opts.Logger
	if logger == nil {
		logger = mdwlog.GetDefault()
	}

	return &Context{
		grammar:    g,
		logger:     logger.WithField("component", "analysis").WithRunID(runID),
		runID:      runID,
		first:      make(map[string]Set),
		inProgress: make(map[string]Set),
	}
}

// RunID identifies the run in logs and history
func (c *Context) RunID() string {
	return c.runID
}

// Grammar returns the analysed grammar
func (c *Context) Grammar() *grammar.Grammar {
	return c.grammar
}

// Entry is one line of a FIRST or FOLLOW table
type Entry struct {
	NonTerminal string
	Members     []string
}

// Result is the immutable outcome of a completed run
type Result struct {
	RunID        string
	Start        string
	First        []Entry
	Follow       []Entry
	FollowPasses int
	Duration     time.Duration
}

// Run computes FIRST and FOLLOW for every non-terminal of g in a fresh context
func Run(g *grammar.Grammar, opts Options) *Result {
	ctx := NewContext(g, opts)
	return ctx.Result()
}

// Result completes any missing computation and snapshots the tables in
// grammar declaration order.
func (c *Context) Result() *Result {
	timer := c.logger.StartTimer("analysis")

	c.ComputeFirstSets()
	c.ComputeFollow()

	res := &Result{
		RunID:        c.runID,
		Start:        c.grammar.Start(),
		FollowPasses: c.followPasses,
	}
	for _, nt := range c.grammar.NonTerminals() {
		res.First = append(res.First, Entry{NonTerminal: nt, Members: c.first[nt].Sorted()})
		res.Follow = append(res.Follow, Entry{NonTerminal: nt, Members: c.follow[nt].Sorted()})
	}

	res.Duration = timer.Stop()
	return res
}

// FirstOf returns the FIRST members of nt, nil if nt is unknown
func (r *Result) FirstOf(nt string) []string {
	return lookup(r.First, nt)
}

// FollowOf returns the FOLLOW members of nt, nil if nt is unknown
func (r *Result) FollowOf(nt string) []string {
	return lookup(r.Follow, nt)
}

func lookup(entries []Entry, nt string) []string {
	for _, e := range entries {
		if e.NonTerminal == nt {
			return append([]string(nil), e.Members...)
		}
	}
	return nil
}
