package cmd

import (
	"github.com/spf13/cobra"

	"github.com/msto63/ffparse/internal/report"
)

var scanCmd = &cobra.Command{
	Use:   "scan <input>",
	Short: "Tokenize a source file",
	Long: `Tokenizes a source file and writes tokens.txt, token_summary.txt
and token_stream.txt into the output directory.

The stream keeps only the kinds listed in scanner.stream_kinds.`,
	Args: cobra.ExactArgs(1),
	RunE: runScan,
}

func init() {
	rootCmd.AddCommand(scanCmd)
}

func runScan(cmd *cobra.Command, args []string) error {
	p := newPipeline(cfg, appFs, logger)

	tokens, stream, err := p.scan(args[0])
	p.record("scan", args[0], len(tokens), err)
	if err != nil {
		printError("scan failed", err)
		return err
	}

	printSuccess("%d tokens, stream of %d kinds", len(tokens), len(stream))
	printField("tokens", p.writer.Path(report.TokensFile))
	printField("summary", p.writer.Path(report.SummaryFile))
	printField("stream", p.writer.Path(report.StreamFile))
	return nil
}
