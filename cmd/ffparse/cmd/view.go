package cmd

import (
	"github.com/spf13/cobra"

	"github.com/msto63/ffparse/internal/tui/viewer"
)

var viewCmd = &cobra.Command{
	Use:   "view [dir]",
	Short: "Browse the reports interactively",
	Long: `Opens a terminal viewer with one tab per report file found in the
directory (default: the output directory).

Keys:
  tab / shift+tab   next / previous report
  1-9               jump to report
  up/down, PgUp/PgDn scroll
  g / G             top / bottom
  r                 reload
  q, Ctrl+C         quit`,
	Args: cobra.MaximumNArgs(1),
	RunE: runView,
}

func init() {
	rootCmd.AddCommand(viewCmd)
}

func runView(cmd *cobra.Command, args []string) error {
	dir := cfg.General.OutputDir
	if len(args) == 1 {
		dir = args[0]
	}

	return viewer.Run(viewer.Config{Fs: appFs, Dir: dir})
}
