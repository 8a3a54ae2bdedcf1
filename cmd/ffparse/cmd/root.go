package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	mdwlog "github.com/msto63/ffparse/foundation/core/log"
	"github.com/msto63/ffparse/pkg/core/config"
	"github.com/msto63/ffparse/pkg/core/logging"
)

var (
	cfgFile   string
	verbose   bool
	outputDir string

	// appFs backs every file the commands read or write
	appFs afero.Fs = afero.NewOsFs()

	cfg    *config.Config
	logger *mdwlog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "ffparse",
	Short: "FIRST/FOLLOW analysis and descent parsing",
	Long: `ffparse scans a small C-like source file into tokens, computes the
FIRST and FOLLOW sets of its grammar and checks the token stream
against the fixed sentence template, writing one text report per stage.

Commands:
  scan     - token table, summary and token stream
  analyze  - FIRST and FOLLOW sets
  parse    - parse tree and rules, or a syntax error report
  run      - all of the above in one go
  history  - recorded runs
  view     - browse the reports interactively`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $FFPARSE_CONFIG or ./configs/ffparse.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVarP(&outputDir, "output", "o", "", "report directory (overrides general.output_dir)")
}

// setup loads the configuration and installs the logger
func setup(cmd *cobra.Command, args []string) error {
	var err error
	if cfgFile != "" {
		cfg, err = config.Load(cfgFile)
	} else {
		cfg, err = config.LoadFromEnv()
	}
	if err != nil {
		return err
	}

	if outputDir != "" {
		cfg.General.OutputDir = outputDir
	}

	logger = logging.FromConfig(cfg.General, verbose)
	mdwlog.SetDefault(logger)

	logger.Debug("Configuration loaded", mdwlog.Fields{
		"path":       cfg.Path,
		"output_dir": cfg.General.OutputDir,
		"command":    cmd.Name(),
	})
	return nil
}

func printError(msg string, err error) {
	fmt.Fprintln(os.Stderr, errorStyle.Render("Error: "+msg+": ")+err.Error())
}
