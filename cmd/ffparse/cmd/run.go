package cmd

import (
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run <input>",
	Short: "Scan, analyse and parse in one go",
	Long: `Runs the whole pipeline on a source file: the token reports, the
FIRST and FOLLOW reports for the configured grammar and finally the parse
tree or the syntax error report for the token stream.`,
	Args: cobra.ExactArgs(1),
	RunE: runPipeline,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runPipeline(cmd *cobra.Command, args []string) error {
	p := newPipeline(cfg, appFs, logger)
	timer := p.logger.StartTimer("pipeline")

	tokens, stream, err := p.scan(args[0])
	if err != nil {
		p.record("run", args[0], 0, err)
		printError("scan failed", err)
		return err
	}
	printSuccess("%d tokens scanned", len(tokens))

	res, err := p.analyze(cfg.Analysis.GrammarFile)
	if err != nil {
		p.record("run", args[0], len(tokens), err)
		printError("analysis failed", err)
		return err
	}
	printSuccess("FIRST and FOLLOW sets for %d non-terminals", len(res.First))

	_, err = p.parse(stream)
	timer.Stop()
	p.record("run", args[0], len(tokens), err)
	return reportParse(p, err)
}
