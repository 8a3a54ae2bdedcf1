package grammar

// Terminal kinds produced by the scanner
const (
	Keyword     = "KEYWORD"
	Relop       = "RELOP"
	Expr        = "EXPR"
	Identifier  = "IDENTIFIER"
	Operator    = "OPERATOR"
	Literal     = "LITERAL"
	Punctuation = "PUNCTUATION"
)

// ReferenceDefinition describes the language accepted by the descent
// parser: a main block with one declaration and a list of conditional
// statements. The parser template is written independently of this table.
func ReferenceDefinition() Definition {
	return Definition{
		Start:     "PROGRAM",
		Terminals: []string{Keyword, Relop, Expr, Identifier, Operator, Literal, Punctuation},
		Rules: []Rule{
			{Head: "PROGRAM", Alternatives: [][]string{{"main_block"}}},
			{Head: "main_block", Alternatives: [][]string{{Keyword, Keyword, "DECLS", "STMTS", Keyword}}},
			{Head: "DECLS", Alternatives: [][]string{{Keyword, "ID_LIST", Punctuation}}},
			{Head: "ID_LIST", Alternatives: [][]string{{Identifier, "ID_TAIL"}}},
			{Head: "ID_TAIL", Alternatives: [][]string{{Punctuation, "ID_LIST"}, {}}},
			{Head: "STMTS", Alternatives: [][]string{{"STMT", "STMTS"}, {}}},
			{Head: "STMT", Alternatives: [][]string{{Keyword, Punctuation, Expr, Relop, Expr, Punctuation, Keyword, "ACTION", Keyword}}},
			{Head: "ACTION", Alternatives: [][]string{{Keyword, Punctuation, Identifier, Punctuation}}},
		},
	}
}

// Reference returns the compiled-in grammar
func Reference() *Grammar {
	return MustNew(ReferenceDefinition())
}
