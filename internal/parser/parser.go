// ============================================================================
// ffparse - FIRST/FOLLOW analysis and descent parsing
// ============================================================================
//
// Package:     parser
// Description: Non-backtracking descent parser for the fixed sentence template
// License:     MIT
// ============================================================================

// Package parser recognizes one sentence template over a stream of token
// kinds and builds its parse tree. The template is a step program, so the
// expected kind at every point is known in advance and no lookahead is
// needed. The first mismatch aborts the parse.
package parser

import (
	mdwlog "github.com/msto63/ffparse/foundation/core/log"
)

// EndOfInput is the expected kind reported for trailing tokens
const EndOfInput = "EOF"

// Options configures a Parser
type Options struct {
	Logger   *mdwlog.Logger
	Template Template
}

// Parser holds the cursor and node stack of one parse
type Parser struct {
	program Program
	logger  *mdwlog.Logger

	tokens []string
	pos    int
	stack  []*Node
}

// New creates a parser; a zero Template selects DefaultTemplate
func New(opts Options) (*Parser, error) {
	if opts.Logger == nil {
		opts.Logger = mdwlog.GetDefault()
	}
	if opts.Template == (Template{}) {
		opts.Template = DefaultTemplate()
	}
	if err := opts.Template.Validate(); err != nil {
		return nil, err
	}

	return &Parser{
		program: opts.Template.Program(),
		logger:  opts.Logger.WithField("component", "parser"),
	}, nil
}

// Program returns the step program the parser runs
func (p *Parser) Program() Program {
	return p.program
}

// Rules returns the grammar rules the template encodes
func (p *Parser) Rules() []string {
	return append([]string(nil), p.program.Rules...)
}

// Consumed returns how many tokens the last Parse accepted
func (p *Parser) Consumed() int {
	return p.pos
}

// Parse runs the template over tokens. On failure it returns a
// *SyntaxError and no tree; Consumed then equals the failing position.
func (p *Parser) Parse(tokens []string) (*Node, error) {
	root := NewNode(p.program.Root)
	p.tokens = tokens
	p.pos = 0
	p.stack = []*Node{root}

	p.logger.Debug("Starting parse", mdwlog.Fields{
		"tokens":   len(tokens),
		"expected": p.program.Len(),
	})

	if err := p.run(p.program.Steps); err != nil {
		p.logger.Warn("Parse failed", mdwlog.Fields{
			"position": p.pos,
			"error":    err.Error(),
		})
		return nil, err
	}

	if p.pos < len(p.tokens) {
		err := p.mismatch(EndOfInput)
		p.logger.Warn("Parse failed", mdwlog.Fields{
			"position": p.pos,
			"error":    err.Error(),
		})
		return nil, err
	}

	p.logger.Debug("Parse completed successfully", mdwlog.Fields{
		"consumed": p.pos,
		"nodes":    root.Size(),
	})
	return root, nil
}

func (p *Parser) run(steps []Step) error {
	for _, st := range steps {
		switch st.Kind {
		case StepExpect:
			if err := p.expect(st.Kinds[0]); err != nil {
				return err
			}
			p.attach(st.Labels[0])

		case StepExpectOneOf:
			i, err := p.expectOneOf(st.Kinds)
			if err != nil {
				return err
			}
			p.attach(st.Labels[i])

		case StepOpen:
			node := NewNode(st.Labels[0])
			p.top().add(node)
			p.stack = append(p.stack, node)

		case StepClose:
			p.stack = p.stack[:len(p.stack)-1]

		case StepRepeat:
			for i := 0; i < st.Count; i++ {
				if err := p.run(st.Body); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func (p *Parser) top() *Node {
	return p.stack[len(p.stack)-1]
}

func (p *Parser) attach(label string) {
	if label != "" {
		p.top().add(Leaf(label))
	}
}

// expect consumes the token at the cursor if it has the given kind
func (p *Parser) expect(kind string) error {
	if p.pos < len(p.tokens) && p.tokens[p.pos] == kind {
		p.pos++
		return nil
	}
	return p.mismatch(kind)
}

func (p *Parser) expectOneOf(kinds []string) (int, error) {
	if p.pos < len(p.tokens) {
		for i, kind := range kinds {
			if p.tokens[p.pos] == kind {
				p.pos++
				return i, nil
			}
		}
	}
	return -1, p.mismatch(kinds...)
}

func (p *Parser) mismatch(expected ...string) *SyntaxError {
	err := &SyntaxError{
		Expected: expected,
		Position: p.pos,
		EOF:      p.pos >= len(p.tokens),
	}
	if !err.EOF {
		err.Found = p.tokens[p.pos]
	}
	return err
}
