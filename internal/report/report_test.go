package report

import (
	"errors"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mdwerror "github.com/msto63/ffparse/foundation/core/error"
	mdwlog "github.com/msto63/ffparse/foundation/core/log"
	"github.com/msto63/ffparse/internal/analysis"
	"github.com/msto63/ffparse/internal/grammar"
	"github.com/msto63/ffparse/internal/parser"
	"github.com/msto63/ffparse/internal/scanner"
)

func readFile(t *testing.T, fs afero.Fs, path string) string {
	t.Helper()
	data, err := afero.ReadFile(fs, path)
	require.NoError(t, err)
	return string(data)
}

func TestFormatTokens(t *testing.T) {
	got := FormatTokens(scanner.Scan("int x1 relop"))

	lines := strings.Split(strings.TrimSuffix(got, "\n"), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, "Token                Lexeme               Type                ", lines[0])
	assert.Equal(t, strings.Repeat("-", 60), lines[1])
	assert.Equal(t, "KEYWORD              int                  Keyword             ", lines[2])
	assert.Equal(t, "IDENTIFIER           x1                   Identifier          ", lines[3])
	assert.Equal(t, "RELOP                relop                Relational Operator ", lines[4])
}

func TestFormatSummary(t *testing.T) {
	got := FormatSummary(scanner.Summarize(scanner.Scan("int a, b; int")))

	want := "Summary of Analysis:\n" +
		strings.Repeat("-", 60) + "\n" +
		"Category               Count        Elements\n" +
		strings.Repeat("-", 60) + "\n" +
		"Keyword                2            int\n" +
		"Identifier             2            a\tb\n" +
		"Punctuation            2            ,\t;\n"
	assert.Equal(t, want, got)
}

func TestFormatSets(t *testing.T) {
	res := analysis.Run(grammar.Reference(), analysis.Options{Logger: mdwlog.Discard()})

	first := FormatSets("FIRST Sets:", res.First)
	assert.True(t, strings.HasPrefix(first, "FIRST Sets:\n"+strings.Repeat("-", 40)+"\n"))
	assert.Contains(t, first, "PROGRAM: KEYWORD\n")
	assert.Contains(t, first, "ID_TAIL: PUNCTUATION, ε\n")
	assert.Contains(t, first, "STMTS: KEYWORD, ε\n")

	follow := FormatSets("FOLLOW Sets:", res.Follow)
	assert.Contains(t, follow, "PROGRAM: $\n")
	assert.Contains(t, follow, "ID_LIST: PUNCTUATION\n")

	lines := strings.Split(strings.TrimSuffix(follow, "\n"), "\n")
	require.Len(t, lines, 10)
	assert.True(t, strings.HasPrefix(lines[2], "PROGRAM:"))
	assert.True(t, strings.HasPrefix(lines[9], "ACTION:"))
}

func TestFormatRules(t *testing.T) {
	got := FormatRules([]string{"S → A", "A → b"})
	assert.Equal(t, "Grammar Rules Used:\n1. S → A\n2. A → b\n", got)
}

func TestWriter_Success(t *testing.T) {
	fs := afero.NewMemMapFs()
	w := NewWriter(fs, "out", mdwlog.Discard())

	tokens := scanner.Scan("int main ( ) begin")
	require.NoError(t, w.Tokens(tokens))
	require.NoError(t, w.Stream(scanner.Stream(tokens, scanner.DefaultStreamKinds)))
	require.NoError(t, w.Analysis(analysis.Run(grammar.Reference(), analysis.Options{Logger: mdwlog.Discard()})))

	root := parser.NewNode("S")
	require.NoError(t, w.ParseTree(root, []string{"S → ε"}))

	assert.Equal(t, "KEYWORD\nKEYWORD\nPUNCTUATION\nPUNCTUATION\nKEYWORD\n", readFile(t, fs, "out/token_stream.txt"))
	assert.Equal(t, "└── S\n", readFile(t, fs, "out/parse_tree.txt"))
	assert.Equal(t, "Grammar Rules Used:\n1. S → ε\n", readFile(t, fs, "out/parser_table.txt"))

	assert.Equal(t, []string{
		TokensFile, SummaryFile, StreamFile, FirstFile, FollowFile, ParseTreeFile, ParserTableFile,
	}, w.Existing())
}

func TestWriter_SyntaxErrorReplacesTree(t *testing.T) {
	fs := afero.NewMemMapFs()
	w := NewWriter(fs, "out", mdwlog.Discard())

	require.NoError(t, w.ParseTree(parser.NewNode("S"), nil))

	p, err := parser.New(parser.Options{Logger: mdwlog.Discard()})
	require.NoError(t, err)
	_, synErr := p.Parse([]string{"KEYWORD"})
	require.Error(t, synErr)

	require.NoError(t, w.SyntaxError(synErr))

	assert.Equal(t, "Syntax Error:\nexpected KEYWORD at position 1, got EOF\n", readFile(t, fs, "out/error.txt"))
	assert.Equal(t, []string{ErrorFile}, w.Existing())

	require.NoError(t, w.ParseTree(parser.NewNode("S"), nil))
	assert.Equal(t, []string{ParseTreeFile, ParserTableFile}, w.Existing())
}

func TestWriter_ReadOnlyFs(t *testing.T) {
	w := NewWriter(afero.NewReadOnlyFs(afero.NewMemMapFs()), "out", mdwlog.Discard())

	err := w.Stream([]string{"KEYWORD"})
	require.Error(t, err)
	assert.True(t, mdwerror.HasCode(err, mdwerror.CodeReportError))

	var mdwErr *mdwerror.Error
	require.True(t, errors.As(err, &mdwErr))
	assert.Equal(t, "out", mdwErr.Details()["path"])
}
