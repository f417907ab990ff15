package cmd

import (
	"github.com/spf13/cobra"

	ddlog "github.com/JangHwanPark/DahDit/foundation/core/log"
	"github.com/JangHwanPark/DahDit/internal/tui/repl"
)

var (
	replMorse      bool
	replMaxHistory int
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive DahDit session",
	Long: `Starts an interactive session. Variables persist between lines.

In plain mode (the default) lines are written with ordinary letters and
encoded to Morse before they run; the encoding is shown below each line.
In morse mode lines are evaluated as typed.

Commands:
  :vars    list variables
  :reset   forget all variables
  :mode    switch input mode (also Tab)
  :clear   clear the transcript
  :quit    leave (also Esc, Ctrl+C)`,
	Args: cobra.NoArgs,
	RunE: runRepl,
}

func init() {
	rootCmd.AddCommand(replCmd)

	replCmd.Flags().BoolVar(&replMorse, "morse", false, "start in morse input mode")
	replCmd.Flags().IntVar(&replMaxHistory, "max-history", 100, "number of input lines kept for recall")
}

func runRepl(cmd *cobra.Command, args []string) error {
	cfg := repl.DefaultConfig()
	cfg.Interpreter = interpreterOptions()
	cfg.MaxHistory = replMaxHistory
	if replMorse {
		cfg.Mode = repl.ModeMorse
	}
	// Log lines would corrupt the alternate screen.
	if !verbose {
		cfg.Interpreter.Logger = ddlog.NewNop()
	}

	return repl.Run(cfg)
}
