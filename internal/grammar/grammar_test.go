package grammar

import (
	"errors"
	"testing"

	mdwerror "github.com/msto63/ffparse/foundation/core/error"
)

func TestNew_Reference(t *testing.T) {
	g := Reference()

	if g.Start() != "PROGRAM" {
		t.Errorf("Start() = %q, want PROGRAM", g.Start())
	}

	want := []string{"PROGRAM", "main_block", "DECLS", "ID_LIST", "ID_TAIL", "STMTS", "STMT", "ACTION"}
	got := g.NonTerminals()
	if len(got) != len(want) {
		t.Fatalf("NonTerminals() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("NonTerminals()[%d] = %q, want %q", i, got[i], want[i])
		}
	}

	alts := g.Productions("ID_TAIL")
	if len(alts) != 2 {
		t.Fatalf("Productions(ID_TAIL) has %d alternatives, want 2", len(alts))
	}
	if !alts[1].IsEpsilon() {
		t.Errorf("second ID_TAIL alternative = %v, want epsilon", alts[1])
	}
	if alts[1].String() != Epsilon {
		t.Errorf("epsilon production String() = %q, want %q", alts[1].String(), Epsilon)
	}

	if !g.IsTerminal(Keyword) || g.IsNonTerminal(Keyword) {
		t.Error("KEYWORD should be a terminal")
	}
	if !g.IsNonTerminal("STMT") || g.IsTerminal("STMT") {
		t.Error("STMT should be a non-terminal")
	}
}

func TestNew_Errors(t *testing.T) {
	tests := []struct {
		name string
		def  Definition
		code mdwerror.Code
	}{
		{
			name: "undefined symbol",
			def: Definition{
				Start:     "S",
				Terminals: []string{"a"},
				Rules:     []Rule{{Head: "S", Alternatives: [][]string{{"a", "B"}}}},
			},
			code: mdwerror.CodeGrammarUndefinedSymbol,
		},
		{
			name: "missing start rule",
			def: Definition{
				Start:     "S",
				Terminals: []string{"a"},
				Rules:     []Rule{{Head: "A", Alternatives: [][]string{{"a"}}}},
			},
			code: mdwerror.CodeGrammarInvalid,
		},
		{
			name: "terminal used as head",
			def: Definition{
				Start:     "a",
				Terminals: []string{"a"},
				Rules:     []Rule{{Head: "a", Alternatives: [][]string{{}}}},
			},
			code: mdwerror.CodeGrammarInvalid,
		},
		{
			name: "duplicate rule",
			def: Definition{
				Start:     "S",
				Terminals: []string{"a"},
				Rules: []Rule{
					{Head: "S", Alternatives: [][]string{{"a"}}},
					{Head: "S", Alternatives: [][]string{{}}},
				},
			},
			code: mdwerror.CodeGrammarInvalid,
		},
		{
			name: "rule without alternatives",
			def: Definition{
				Start: "S",
				Rules: []Rule{{Head: "S"}},
			},
			code: mdwerror.CodeGrammarInvalid,
		},
		{
			name: "reserved terminal name",
			def: Definition{
				Start:     "S",
				Terminals: []string{EndMarker},
				Rules:     []Rule{{Head: "S", Alternatives: [][]string{{}}}},
			},
			code: mdwerror.CodeGrammarInvalid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := New(tt.def)
			if err == nil {
				t.Fatalf("New() = %v, want error", g)
			}
			if !mdwerror.HasCode(err, tt.code) {
				t.Errorf("New() error code = %v, want %v (%v)", mdwerror.GetCode(err), tt.code, err)
			}
		})
	}
}

func TestNew_UndefinedSymbolDetails(t *testing.T) {
	_, err := New(Definition{
		Start:     "S",
		Terminals: []string{"a"},
		Rules:     []Rule{{Head: "S", Alternatives: [][]string{{"a"}, {"Missing"}}}},
	})

	var mdwErr *mdwerror.Error
	if !errors.As(err, &mdwErr) {
		t.Fatalf("error type = %T, want *mdwerror.Error", err)
	}
	if mdwErr.Details()["symbol"] != "Missing" {
		t.Errorf("symbol detail = %v, want Missing", mdwErr.Details()["symbol"])
	}
	if mdwErr.Details()["head"] != "S" {
		t.Errorf("head detail = %v, want S", mdwErr.Details()["head"])
	}
}

func TestGrammar_Immutable(t *testing.T) {
	def := Definition{
		Start:     "S",
		Terminals: []string{"a"},
		Rules:     []Rule{{Head: "S", Alternatives: [][]string{{"a"}}}},
	}
	g, err := New(def)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	def.Rules[0].Alternatives[0][0] = "changed"
	g.Productions("S")[0][0] = "changed"
	g.NonTerminals()[0] = "changed"

	if got := g.Productions("S")[0][0]; got != "a" {
		t.Errorf("Productions(S)[0][0] = %q after external mutation, want a", got)
	}
	if got := g.NonTerminals()[0]; got != "S" {
		t.Errorf("NonTerminals()[0] = %q after external mutation, want S", got)
	}
}

func TestGrammar_DefinitionRoundTrip(t *testing.T) {
	g := Reference()

	again, err := New(g.Definition())
	if err != nil {
		t.Fatalf("New(Definition()) error = %v", err)
	}
	if again.String() != g.String() {
		t.Errorf("round trip changed grammar:\n%s\nwant:\n%s", again.String(), g.String())
	}
}

func TestGrammar_String(t *testing.T) {
	g := MustNew(Definition{
		Start:     "E",
		Terminals: []string{"id", "+"},
		Rules: []Rule{
			{Head: "E", Alternatives: [][]string{{"id", "T"}}},
			{Head: "T", Alternatives: [][]string{{"+", "id", "T"}, {}}},
		},
	})

	want := "E → id T\nT → + id T | ε\n"
	if got := g.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestMustNew_Panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustNew() did not panic on invalid grammar")
		}
	}()
	MustNew(Definition{Start: "S"})
}
