package cmd

import (
	"github.com/spf13/cobra"

	mdwerror "github.com/msto63/ffparse/foundation/core/error"
	"github.com/msto63/ffparse/internal/report"
	"github.com/msto63/ffparse/internal/scanner"
)

var parseCmd = &cobra.Command{
	Use:   "parse <token_stream>",
	Short: "Parse a token stream",
	Long: `Parses a token stream file (one token kind per line) against the
sentence template.

On success parse_tree.txt and parser_table.txt are written; on the
first mismatch only error.txt is written and the command fails.`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	p := newPipeline(cfg, appFs, logger)

	stream, err := readStream(args[0])
	if err != nil {
		p.record("parse", args[0], 0, err)
		printError("cannot read token stream", err)
		return err
	}

	_, err = p.parse(stream)
	p.record("parse", args[0], len(stream), err)
	return reportParse(p, err)
}

func readStream(path string) ([]string, error) {
	f, err := appFs.Open(path)
	if err != nil {
		return nil, mdwerror.Wrap(err, "failed to open token stream").
			WithCode(mdwerror.CodeNotFound).
			WithOperation("cmd.parse").
			WithDetail("path", path)
	}
	defer f.Close()

	stream, err := scanner.ReadStream(f)
	if err != nil {
		return nil, mdwerror.Wrap(err, "failed to read token stream").
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("cmd.parse").
			WithDetail("path", path)
	}
	return stream, nil
}

// reportParse prints the parse outcome; a syntax mismatch is logged with
// its code and printed as the diagnostic.
func reportParse(p *pipeline, err error) error {
	if mdwerror.HasCode(err, mdwerror.CodeSyntaxMismatch) {
		p.logger.LogError(err)
		printFailure("syntax error, see %s", p.writer.Path(report.ErrorFile))
		return err
	}
	if err != nil {
		printError("parse failed", err)
		return err
	}

	printSuccess("parsing successful")
	printField("tree", p.writer.Path(report.ParseTreeFile))
	printField("rules", p.writer.Path(report.ParserTableFile))
	return nil
}
