// ============================================================================
// ffparse - FIRST/FOLLOW analysis and descent parsing
// ============================================================================
//
// Package:     cmd
// Description: Pipeline stages shared by the scan, analyze, parse and run
//              commands
// License:     MIT
// ============================================================================

package cmd

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/afero"

	mdwerror "github.com/msto63/ffparse/foundation/core/error"
	mdwlog "github.com/msto63/ffparse/foundation/core/log"
	"github.com/msto63/ffparse/internal/analysis"
	"github.com/msto63/ffparse/internal/grammar"
	"github.com/msto63/ffparse/internal/parser"
	"github.com/msto63/ffparse/internal/report"
	"github.com/msto63/ffparse/internal/scanner"
	"github.com/msto63/ffparse/internal/store"
	"github.com/msto63/ffparse/pkg/core/config"
)

// pipeline runs the stages of one CLI invocation under a shared run ID
type pipeline struct {
	cfg     *config.Config
	fs      afero.Fs
	logger  *mdwlog.Logger
	writer  *report.Writer
	runID   string
	started time.Time
}

func newPipeline(cfg *config.Config, fs afero.Fs, logger *mdwlog.Logger) *pipeline {
	runID := uuid.NewString()
	logger = logger.WithRunID(runID)

	return &pipeline{
		cfg:     cfg,
		fs:      fs,
		logger:  logger,
		writer:  report.NewWriter(fs, cfg.General.OutputDir, logger),
		runID:   runID,
		started: time.Now(),
	}
}

// scan tokenizes the source file and writes the token reports. The
// returned stream keeps only the configured kinds.
func (p *pipeline) scan(path string) ([]scanner.Token, []string, error) {
	data, err := afero.ReadFile(p.fs, path)
	if err != nil {
		return nil, nil, mdwerror.Wrap(err, "failed to read source").
			WithCode(mdwerror.CodeNotFound).
			WithOperation("cmd.scan").
			WithDetail("path", path)
	}

	keep, err := p.streamKinds()
	if err != nil {
		return nil, nil, err
	}

	sc, err := scanner.New(scanner.Options{Logger: p.logger})
	if err != nil {
		return nil, nil, mdwerror.Wrap(err, "failed to build scanner").
			WithCode(mdwerror.CodeScanError).
			WithOperation("cmd.scan")
	}

	tokens := sc.Scan(string(data))
	stream := scanner.Stream(tokens, keep)

	if err := p.writer.Tokens(tokens); err != nil {
		return nil, nil, err
	}
	if err := p.writer.Stream(stream); err != nil {
		return nil, nil, err
	}
	return tokens, stream, nil
}

func (p *pipeline) streamKinds() ([]scanner.Kind, error) {
	kinds := make([]scanner.Kind, 0, len(p.cfg.Scanner.StreamKinds))
	for _, name := range p.cfg.Scanner.StreamKinds {
		k, err := scanner.ParseKind(name)
		if err != nil {
			return nil, mdwerror.Wrap(err, "invalid stream kind").
				WithCode(mdwerror.CodeInvalidConfig).
				WithOperation("cmd.scan").
				WithDetail("key", "scanner.stream_kinds").
				WithDetail("value", name)
		}
		kinds = append(kinds, k)
	}
	return kinds, nil
}

// grammar returns the grammar named by path, or the built-in one
func (p *pipeline) grammar(path string) (*grammar.Grammar, error) {
	if path == "" {
		return grammar.Reference(), nil
	}
	return grammar.LoadFile(p.fs, path)
}

// analyze computes FIRST and FOLLOW and writes both reports
func (p *pipeline) analyze(grammarFile string) (*analysis.Result, error) {
	g, err := p.grammar(grammarFile)
	if err != nil {
		return nil, err
	}

	res := analysis.Run(g, analysis.Options{Logger: p.logger, RunID: p.runID})
	if err := p.writer.Analysis(res); err != nil {
		return nil, err
	}
	return res, nil
}

// parse checks the stream against the sentence template. A syntax
// mismatch still produces the diagnostic report and is returned wrapped
// as SYNTAX_MISMATCH.
func (p *pipeline) parse(stream []string) (*parser.Node, error) {
	ps, err := parser.New(parser.Options{
		Logger: p.logger,
		Template: parser.Template{
			Identifiers:  p.cfg.Parser.Identifiers,
			Conditionals: p.cfg.Parser.Conditionals,
		},
	})
	if err != nil {
		return nil, err
	}

	root, err := ps.Parse(stream)
	if err != nil {
		var synErr *parser.SyntaxError
		if !errors.As(err, &synErr) {
			return nil, err
		}
		if werr := p.writer.SyntaxError(synErr); werr != nil {
			return nil, werr
		}
		return nil, mdwerror.Wrap(synErr, "token stream rejected").
			WithCode(mdwerror.CodeSyntaxMismatch).
			WithOperation("parser.Parse").
			WithRunID(p.runID).
			WithDetail("position", synErr.Position).
			WithDetail("expected", synErr.Expected)
	}

	if err := p.writer.ParseTree(root, ps.Rules()); err != nil {
		return nil, err
	}
	return root, nil
}

// record stores the outcome in the run history. History problems are
// logged and never fail the command.
func (p *pipeline) record(command, input string, tokenCount int, runErr error) {
	if !p.cfg.History.Enabled {
		return
	}

	// SQLite always lives on the OS filesystem
	if err := os.MkdirAll(filepath.Dir(p.cfg.History.Path), 0o755); err != nil {
		p.logger.Warn("Cannot create history directory", mdwlog.Err(err))
		return
	}

	st, err := store.NewSQLiteRunStore(store.SQLiteConfig{Path: p.cfg.History.Path})
	if err != nil {
		p.logger.Warn("Run history unavailable", mdwlog.Err(err))
		return
	}
	defer st.Close()

	run := &store.Run{
		ID:         p.runID,
		StartedAt:  p.started,
		Command:    command,
		Input:      input,
		TokenCount: tokenCount,
		Success:    runErr == nil,
		Duration:   time.Since(p.started),
	}
	if runErr != nil {
		run.Diagnostic = runErr.Error()
		var synErr *parser.SyntaxError
		if errors.As(runErr, &synErr) {
			run.Diagnostic = synErr.Error()
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := st.Record(ctx, run); err != nil {
		p.logger.LogError(err)
		return
	}

	pruned, err := st.Prune(ctx, p.cfg.History.Retention.Duration)
	if err != nil {
		p.logger.LogError(err)
		return
	}
	if pruned > 0 {
		p.logger.Debug("Pruned old runs", mdwlog.Fields{"count": pruned})
	}
}
