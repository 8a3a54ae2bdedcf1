package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/msto63/ffparse/internal/store"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history [run-id]",
	Short: "Show recorded runs",
	Long: `Lists the most recent runs from the history database, newest first.

With a run ID the details of that single run are shown.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runHistory,
}

func init() {
	rootCmd.AddCommand(historyCmd)

	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "number of runs to show (0 = all)")
}

func runHistory(cmd *cobra.Command, args []string) error {
	st, err := store.NewSQLiteRunStore(store.SQLiteConfig{Path: cfg.History.Path})
	if err != nil {
		printError("cannot open history", err)
		return err
	}
	defer st.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if len(args) == 1 {
		run, err := st.Get(ctx, args[0])
		if err != nil {
			printError("run not found", err)
			return err
		}
		printRun(run)
		return nil
	}

	runs, err := st.List(ctx, historyLimit)
	if err != nil {
		printError("cannot list runs", err)
		return err
	}

	if len(runs) == 0 {
		fmt.Println(labelStyle.Render("No runs recorded"))
		return nil
	}

	fmt.Println(headerStyle.Render(fmt.Sprintf("%-8s  %-19s  %-8s  %-6s  %6s  %8s  %s",
		"ID", "Started", "Command", "Result", "Tokens", "Time", "Input")))
	fmt.Println(strings.Repeat("-", 80))
	for _, r := range runs {
		fmt.Printf("%-8s  %-19s  %-8s  %-6s  %6d  %8s  %s\n",
			shortID(r.ID),
			r.StartedAt.Local().Format("2006-01-02 15:04:05"),
			r.Command,
			resultLabel(r.Success),
			r.TokenCount,
			r.Duration.Round(time.Millisecond),
			r.Input)
	}
	return nil
}

func printRun(r *store.Run) {
	fmt.Println(headerStyle.Render("Run " + r.ID))
	printField("started", r.StartedAt.Local().Format(time.RFC3339))
	printField("command", r.Command)
	printField("input", r.Input)
	printField("tokens", r.TokenCount)
	printField("duration", r.Duration)
	printField("result", resultLabel(r.Success))
	if r.Diagnostic != "" {
		printField("diagnostic", r.Diagnostic)
	}
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func resultLabel(ok bool) string {
	if ok {
		return "ok"
	}
	return "failed"
}
