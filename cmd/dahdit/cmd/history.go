package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"github.com/JangHwanPark/DahDit/internal/history/store"
)

var (
	historyFile   string
	historyFailed bool
	historyLimit  int
	historySince  time.Duration

	historyJSON bool

	historyOlderThan time.Duration
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Inspect recorded runs",
	Long: `Inspects the run history database. Runs are recorded by
'dahdit run --history' or when [history] enabled = true in the config.`,
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recorded runs, newest first",
	Args:  cobra.NoArgs,
	RunE:  runHistoryList,
}

var historyShowCmd = &cobra.Command{
	Use:   "show <run-id>",
	Short: "Show a run and its diagnostics",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryShow,
}

var historyPruneCmd = &cobra.Command{
	Use:   "prune",
	Short: "Delete runs older than the retention window",
	Args:  cobra.NoArgs,
	RunE:  runHistoryPrune,
}

var historyStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show run and diagnostic counts",
	Args:  cobra.NoArgs,
	RunE:  runHistoryStats,
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.AddCommand(historyListCmd, historyShowCmd, historyPruneCmd, historyStatsCmd)

	historyListCmd.Flags().StringVar(&historyFile, "file", "", "only runs of this file")
	historyListCmd.Flags().BoolVar(&historyFailed, "failed", false, "only runs with diagnostics")
	historyListCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "maximum number of runs")
	historyListCmd.Flags().DurationVar(&historySince, "since", 0, "only runs started within this duration (e.g. 24h)")

	historyShowCmd.Flags().BoolVar(&historyJSON, "json", false, "print the run as JSON")

	historyPruneCmd.Flags().DurationVar(&historyOlderThan, "older-than", 0, "retention window (default: [history] retention)")
}

func openHistory() (*store.SQLiteRunStore, error) {
	return store.NewSQLiteRunStore(store.SQLiteConfig{Path: appConfig.History.Path})
}

func runHistoryList(cmd *cobra.Command, args []string) error {
	runs, err := openHistory()
	if err != nil {
		return err
	}
	defer runs.Close()

	filter := store.RunFilter{
		File:       historyFile,
		FailedOnly: historyFailed,
		Limit:      historyLimit,
	}
	if historySince > 0 {
		filter.Since = time.Now().Add(-historySince)
	}

	records, err := runs.List(cmd.Context(), filter)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(records) == 0 {
		fmt.Fprintln(out, "No runs recorded.")
		return nil
	}

	fmt.Fprintf(out, "%-36s  %-19s  %5s  %5s  %5s  %s\n", "RUN", "STARTED", "STMTS", "OK", "DIAG", "FILE")
	for _, r := range records {
		fmt.Fprintf(out, "%-36s  %-19s  %5d  %5d  %5d  %s\n",
			r.ID, r.StartedAt.Local().Format("2006-01-02 15:04:05"),
			r.Statements, r.Executed, r.DiagnosticCount, r.File)
	}
	return nil
}

func runHistoryShow(cmd *cobra.Command, args []string) error {
	runs, err := openHistory()
	if err != nil {
		return err
	}
	defer runs.Close()

	record, err := runs.Get(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if historyJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(record)
	}
	printRecord(out, record)
	return nil
}

func printRecord(w io.Writer, r *store.RunRecord) {
	fmt.Fprintf(w, "Run:         %s\n", r.ID)
	fmt.Fprintf(w, "File:        %s\n", r.File)
	fmt.Fprintf(w, "Started:     %s\n", r.StartedAt.Local().Format(time.RFC3339))
	fmt.Fprintf(w, "Duration:    %s\n", r.Duration)
	fmt.Fprintf(w, "Statements:  %d (%d executed)\n", r.Statements, r.Executed)
	fmt.Fprintf(w, "Diagnostics: %d\n", r.DiagnosticCount)
	for _, d := range r.Diagnostics {
		fmt.Fprintf(w, "  %s\n", d)
	}
}

func runHistoryPrune(cmd *cobra.Command, args []string) error {
	olderThan := historyOlderThan
	if olderThan <= 0 {
		olderThan = appConfig.History.Retention.Duration
	}
	if olderThan <= 0 {
		return fmt.Errorf("no retention window: pass --older-than or set [history] retention")
	}

	runs, err := openHistory()
	if err != nil {
		return err
	}
	defer runs.Close()

	deleted, err := runs.Prune(cmd.Context(), olderThan)
	if err != nil {
		return err
	}
	if err := runs.Vacuum(cmd.Context()); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Deleted %d runs older than %s.\n", deleted, olderThan)
	return nil
}

func runHistoryStats(cmd *cobra.Command, args []string) error {
	runs, err := openHistory()
	if err != nil {
		return err
	}
	defer runs.Close()

	stats, err := runs.Stats(cmd.Context())
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Runs:        %d\n", stats["total_runs"])
	fmt.Fprintf(out, "Failed runs: %d\n", stats["failed_runs"])

	byKind, _ := stats["diagnostics_by_kind"].(map[string]int64)
	kinds := make([]string, 0, len(byKind))
	for k := range byKind {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)
	for _, k := range kinds {
		fmt.Fprintf(out, "  %-6s %d\n", k, byKind[k])
	}
	return nil
}
