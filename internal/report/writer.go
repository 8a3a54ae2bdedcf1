// ============================================================================
// ffparse - FIRST/FOLLOW analysis and descent parsing
// ============================================================================
//
// Package:     report
// Description: Text reports written through an afero filesystem
// License:     MIT
// ============================================================================

package report

import (
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	mdwerror "github.com/msto63/ffparse/foundation/core/error"
	mdwlog "github.com/msto63/ffparse/foundation/core/log"
	"github.com/msto63/ffparse/internal/analysis"
	"github.com/msto63/ffparse/internal/parser"
	"github.com/msto63/ffparse/internal/scanner"
)

// Report file names
const (
	TokensFile      = "tokens.txt"
	SummaryFile     = "token_summary.txt"
	StreamFile      = "token_stream.txt"
	FirstFile       = "first.txt"
	FollowFile      = "follow.txt"
	ParseTreeFile   = "parse_tree.txt"
	ParserTableFile = "parser_table.txt"
	ErrorFile       = "error.txt"
)

// Files lists every report in pipeline order
var Files = []string{
	TokensFile,
	SummaryFile,
	StreamFile,
	FirstFile,
	FollowFile,
	ParseTreeFile,
	ParserTableFile,
	ErrorFile,
}

// Writer writes reports into one output directory
type Writer struct {
	fs     afero.Fs
	dir    string
	logger *mdwlog.Logger
}

// NewWriter returns a writer for dir on fs
func NewWriter(fs afero.Fs, dir string, logger *mdwlog.Logger) *Writer {
	if logger == nil {
		logger = mdwlog.GetDefault()
	}
	return &Writer{
		fs:     fs,
		dir:    dir,
		logger: logger.WithField("component", "report"),
	}
}

// Dir returns the output directory
func (w *Writer) Dir() string {
	return w.dir
}

// Path returns the full path of a report file
func (w *Writer) Path(name string) string {
	return filepath.Join(w.dir, name)
}

// Tokens writes the token table and the token summary
func (w *Writer) Tokens(tokens []scanner.Token) error {
	if err := w.write(TokensFile, FormatTokens(tokens)); err != nil {
		return err
	}
	return w.write(SummaryFile, FormatSummary(scanner.Summarize(tokens)))
}

// Stream writes the token-kind stream
func (w *Writer) Stream(stream []string) error {
	return w.write(StreamFile, FormatStream(stream))
}

// Analysis writes the FIRST and FOLLOW tables
func (w *Writer) Analysis(res *analysis.Result) error {
	if err := w.write(FirstFile, FormatSets("FIRST Sets:", res.First)); err != nil {
		return err
	}
	return w.write(FollowFile, FormatSets("FOLLOW Sets:", res.Follow))
}

// ParseTree writes the tree and the rules table and drops a stale
// diagnostic from an earlier run.
func (w *Writer) ParseTree(root *parser.Node, rules []string) error {
	if err := w.write(ParseTreeFile, root.String()); err != nil {
		return err
	}
	if err := w.write(ParserTableFile, FormatRules(rules)); err != nil {
		return err
	}
	return w.remove(ErrorFile)
}

// SyntaxError writes the diagnostic as the only parse output; tree and
// rules from an earlier run are removed.
func (w *Writer) SyntaxError(synErr error) error {
	if err := w.remove(ParseTreeFile); err != nil {
		return err
	}
	if err := w.remove(ParserTableFile); err != nil {
		return err
	}
	return w.write(ErrorFile, FormatSyntaxError(synErr))
}

// Existing returns the report files present in the directory, in Files order
func (w *Writer) Existing() []string {
	var out []string
	for _, name := range Files {
		if ok, _ := afero.Exists(w.fs, w.Path(name)); ok {
			out = append(out, name)
		}
	}
	return out
}

func (w *Writer) write(name, content string) error {
	if err := w.fs.MkdirAll(w.dir, 0o755); err != nil {
		return w.fail(err, "failed to create output directory", w.dir)
	}

	path := w.Path(name)
	if err := afero.WriteFile(w.fs, path, []byte(content), 0o644); err != nil {
		return w.fail(err, "failed to write report", path)
	}

	w.logger.Debug("Report written", mdwlog.Fields{
		"path":  path,
		"bytes": len(content),
	})
	return nil
}

func (w *Writer) remove(name string) error {
	path := w.Path(name)
	if err := w.fs.Remove(path); err != nil && !os.IsNotExist(err) {
		return w.fail(err, "failed to remove stale report", path)
	}
	return nil
}

func (w *Writer) fail(err error, message, path string) error {
	return mdwerror.Wrap(err, message).
		WithCode(mdwerror.CodeReportError).
		WithOperation("report.Writer").
		WithDetail("path", path)
}
