package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	ddlog "github.com/JangHwanPark/DahDit/foundation/core/log"
	"github.com/JangHwanPark/DahDit/foundation/dahdit"
	"github.com/JangHwanPark/DahDit/foundation/dahdit/diag"
	"github.com/JangHwanPark/DahDit/internal/history/store"
	"github.com/JangHwanPark/DahDit/pkg/core/config"
)

var (
	runStrict  bool
	runHistory bool
	runColor   string
	runSummary bool
)

var runCmd = &cobra.Command{
	Use:   "run [file...]",
	Short: "Run DahDit programs",
	Long: `Runs one or more DahDit programs. Without arguments, or with "-",
the program is read from standard input.

Diagnostics are printed to stderr as file:line:column: error: message.
A failing statement never stops the run. The command fails only when a
source cannot be opened, or with --strict when any diagnostic was reported.`,
	RunE: runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().BoolVar(&runStrict, "strict", false, "exit with status 1 when any diagnostic is reported")
	runCmd.Flags().BoolVar(&runHistory, "history", false, "record the run in the history database (overrides config)")
	runCmd.Flags().StringVar(&runColor, "color", "", "color diagnostics: auto, always or never (overrides config)")
	runCmd.Flags().BoolVar(&runSummary, "summary", false, "print a run summary to stderr")
}

func runRun(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		args = []string{"-"}
	}

	diagnostics := appConfig.Diagnostics
	switch runColor {
	case "":
	case config.ColorAuto, config.ColorAlways, config.ColorNever:
		diagnostics.Color = runColor
	default:
		return fmt.Errorf("invalid --color %q (expected auto, always or never)", runColor)
	}

	stderr := cmd.ErrOrStderr()
	opts := interpreterOptions()
	opts.Output = cmd.OutOrStdout()
	opts.Sink = diag.NewWriterSink(stderr, diagnostics.UseColor(writerIsTerminal(stderr)))

	interp, err := dahdit.New(opts)
	if err != nil {
		return err
	}

	recordHistory := appConfig.History.Enabled
	if cmd.Flags().Changed("history") {
		recordHistory = runHistory
	}
	var runs store.RunStore
	if recordHistory {
		sqlite, err := store.NewSQLiteRunStore(store.SQLiteConfig{Path: appConfig.History.Path})
		if err != nil {
			// History is best effort.
			appLogger.LogError(err)
		} else {
			runs = sqlite
			defer runs.Close()
		}
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	failed := 0
	for _, path := range args {
		var result *dahdit.Result
		if path == "-" {
			result, err = interp.Run(diag.StdinName, cmd.InOrStdin())
		} else {
			result, err = interp.RunFile(path)
		}
		if err != nil {
			return err
		}

		if runSummary {
			printSummary(stderr, result)
		}
		if runs != nil {
			recordRun(ctx, runs, result, appConfig.History.Retention.Duration)
		}
		if result.Failed() {
			failed++
		}
	}

	if runStrict && failed > 0 {
		return fmt.Errorf("%d of %d programs reported diagnostics", failed, len(args))
	}
	return nil
}

// recordRun stores the result and applies the retention window
func recordRun(ctx context.Context, runs store.RunStore, result *dahdit.Result, retention time.Duration) {
	if err := runs.Record(ctx, result); err != nil {
		appLogger.LogError(err)
		return
	}
	if retention <= 0 {
		return
	}
	pruned, err := runs.Prune(ctx, retention)
	if err != nil {
		appLogger.LogError(err)
		return
	}
	if pruned > 0 {
		appLogger.Debug("pruned run history", ddlog.Fields{"runs": pruned, "retention": retention.String()})
	}
}

func printSummary(w io.Writer, result *dahdit.Result) {
	fmt.Fprintf(w, "%s: %d statements, %d executed, %d diagnostics in %s (run %s)\n",
		result.File, result.Statements, result.Executed, len(result.Diagnostics),
		result.Duration.Round(time.Microsecond), result.RunID)
}

func writerIsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && isTerminal(f)
}
