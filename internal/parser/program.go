package parser

import (
	"fmt"
	"strings"

	mdwerror "github.com/msto63/ffparse/foundation/core/error"
)

// Token kinds the template consumes
const (
	Keyword     = "KEYWORD"
	Identifier  = "IDENTIFIER"
	Punctuation = "PUNCTUATION"
	Expr        = "EXPR"
	Relop       = "RELOP"
	Literal     = "LITERAL"
)

// StepKind tags a step of the template program
type StepKind int

const (
	StepExpect StepKind = iota
	StepExpectOneOf
	StepOpen
	StepClose
	StepRepeat
)

func (k StepKind) String() string {
	switch k {
	case StepExpect:
		return "expect"
	case StepExpectOneOf:
		return "expect-one-of"
	case StepOpen:
		return "open"
	case StepClose:
		return "close"
	case StepRepeat:
		return "repeat"
	}
	return fmt.Sprintf("StepKind(%d)", int(k))
}

// Step is one instruction of a template program.
//
// Expect consumes Kinds[0] and attaches a leaf named Labels[0] unless the
// label is empty. ExpectOneOf consumes any of Kinds and attaches the label
// at the matching index. Open attaches an interior node and makes it the
// current parent; Close returns to the previous parent. Repeat runs Body
// Count times.
type Step struct {
	Kind   StepKind
	Kinds  []string
	Labels []string
	Count  int
	Body   []Step
}

// Expect matches kind and attaches a leaf labelled label
func Expect(kind, label string) Step {
	return Step{Kind: StepExpect, Kinds: []string{kind}, Labels: []string{label}}
}

// Skip matches kind without attaching a node
func Skip(kind string) Step {
	return Expect(kind, "")
}

// ExpectOneOf matches any of kinds; labels[i] names the leaf for kinds[i]
func ExpectOneOf(kinds, labels []string) Step {
	return Step{Kind: StepExpectOneOf, Kinds: kinds, Labels: labels}
}

// Open starts an interior node
func Open(label string) Step {
	return Step{Kind: StepOpen, Labels: []string{label}}
}

// Close ends the current interior node
func Close() Step {
	return Step{Kind: StepClose}
}

// Repeat runs body count times
func Repeat(count int, body ...Step) Step {
	return Step{Kind: StepRepeat, Count: count, Body: body}
}

// Program is a root label plus the steps that build its children
type Program struct {
	Root  string
	Steps []Step
	Rules []string
}

// Template parameterizes the accepted sentence shape
type Template struct {
	Identifiers  int // identifiers in the declaration list
	Conditionals int // conditional-output blocks
}

// DefaultTemplate accepts three declared identifiers and three conditionals
func DefaultTemplate() Template {
	return Template{Identifiers: 3, Conditionals: 3}
}

// Validate checks the template counts
func (t Template) Validate() error {
	if t.Identifiers < 1 {
		return mdwerror.New("template needs at least one identifier").
			WithCode(mdwerror.CodeInvalidConfig).
			WithOperation("parser.Template.Validate").
			WithDetail("identifiers", t.Identifiers)
	}
	if t.Conditionals < 0 {
		return mdwerror.New("conditional count must not be negative").
			WithCode(mdwerror.CodeInvalidConfig).
			WithOperation("parser.Template.Validate").
			WithDetail("conditionals", t.Conditionals)
	}
	return nil
}

var (
	operandKinds  = []string{Expr, Identifier, Literal}
	operandLabels = []string{"EXPR", "ID", "LITERAL"}
)

// Program builds the step program for t
//
//	S          → TYPE MAIN ( ) begin CODE END
//	CODE       → DECLARE STATEMENTS
//	DECLARE    → TYPE ID_LIST SC
//	ID_LIST    → ID (CM ID)*
//	STATEMENTS → IF_STMT*
//	IF_STMT    → if ( CONDITION ) begin PRINTF end
//	CONDITION  → operand RELOP operand
//	PRINTF     → printf ( operand ) ;
func (t Template) Program() Program {
	idList := []Step{Open("ID_LIST"), Expect(Identifier, "ID")}
	idList = append(idList, Repeat(t.Identifiers-1,
		Expect(Punctuation, "CM"),
		Expect(Identifier, "ID"),
	))
	idList = append(idList, Close())

	steps := []Step{
		Expect(Keyword, "TYPE"),
		Expect(Keyword, "MAIN"),
		Skip(Punctuation), // (
		Skip(Punctuation), // )
		Skip(Keyword),     // begin
		Open("CODE"),
		Open("DECLARE"),
		Expect(Keyword, "TYPE"),
	}
	steps = append(steps, idList...)
	steps = append(steps,
		Expect(Punctuation, "SC"),
		Close(), // DECLARE
		Open("STATEMENTS"),
		Repeat(t.Conditionals,
			Open("IF_STMT"),
			Skip(Keyword),     // if
			Skip(Punctuation), // (
			Open("CONDITION"),
			ExpectOneOf(operandKinds, operandLabels),
			Expect(Relop, "RELOP"),
			ExpectOneOf(operandKinds, operandLabels),
			Close(),
			Skip(Punctuation), // )
			Skip(Keyword),     // begin
			Open("PRINTF"),
			Skip(Keyword),     // printf
			Skip(Punctuation), // (
			ExpectOneOf(operandKinds, operandLabels),
			Skip(Punctuation), // )
			Skip(Punctuation), // ;
			Close(),
			Skip(Keyword), // end
			Close(),       // IF_STMT
		),
		Close(), // STATEMENTS
		Close(), // CODE
		Expect(Keyword, "END"),
	)

	return Program{Root: "S", Steps: steps, Rules: t.rules()}
}

func (t Template) rules() []string {
	ids := []string{"ID"}
	for i := 1; i < t.Identifiers; i++ {
		ids = append(ids, "CM", "ID")
	}

	stmts := make([]string, t.Conditionals)
	for i := range stmts {
		stmts[i] = "IF_STMT"
	}
	body := strings.Join(stmts, " ")
	if body == "" {
		body = "ε"
	}

	return []string{
		"S → TYPE MAIN CODE END",
		"CODE → DECLARE STATEMENTS",
		"DECLARE → TYPE ID_LIST SC",
		"ID_LIST → " + strings.Join(ids, " "),
		"STATEMENTS → " + body,
		"IF_STMT → IF ( CONDITION ) BEGIN PRINTF END",
		"CONDITION → OPERAND RELOP OPERAND",
		"PRINTF → printf ( OPERAND ) ;",
	}
}

// Len returns the number of tokens a program consumes on success
func (p Program) Len() int {
	return stepsLen(p.Steps)
}

func stepsLen(steps []Step) int {
	n := 0
	for _, st := range steps {
		switch st.Kind {
		case StepExpect, StepExpectOneOf:
			n++
		case StepRepeat:
			n += st.Count * stepsLen(st.Body)
		}
	}
	return n
}
