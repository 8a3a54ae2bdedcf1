package cmd

import (
	"github.com/spf13/cobra"

	"github.com/msto63/ffparse/internal/report"
)

var analyzeGrammar string

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Compute FIRST and FOLLOW sets",
	Long: `Computes the FIRST and FOLLOW sets of every non-terminal and writes
first.txt and follow.txt.

Without --grammar the grammar file from analysis.grammar_file is used,
and without that the built-in grammar.`,
	Args: cobra.NoArgs,
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().StringVarP(&analyzeGrammar, "grammar", "g", "",
		"grammar file (.yaml, .yml or .toml)")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	p := newPipeline(cfg, appFs, logger)

	grammarFile := analyzeGrammar
	if grammarFile == "" {
		grammarFile = cfg.Analysis.GrammarFile
	}

	res, err := p.analyze(grammarFile)
	p.record("analyze", grammarFile, 0, err)
	if err != nil {
		printError("analysis failed", err)
		return err
	}

	printSuccess("%d non-terminals analysed from %s", len(res.First), res.Start)
	printField("first", p.writer.Path(report.FirstFile))
	printField("follow", p.writer.Path(report.FollowFile))
	printField("passes", res.FollowPasses)
	return nil
}
