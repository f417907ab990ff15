package cmd

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	ddlog "github.com/JangHwanPark/DahDit/foundation/core/log"
	"github.com/JangHwanPark/DahDit/foundation/dahdit"
	"github.com/JangHwanPark/DahDit/pkg/core/config"
	"github.com/JangHwanPark/DahDit/pkg/core/logging"
)

var (
	cfgFile string
	verbose bool

	appConfig *config.Config
	appLogger *ddlog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "dahdit",
	Short: "DahDit - a language written in Morse code",
	Long: `DahDit runs programs written in Morse code.

Keywords, identifiers and numbers are Morse sequences separated by spaces,
words are separated by '/', and statements end with ';'.

  .--. .-. .. -. - / ..--- .-.-. ...-- ;     PRINT 2 + 3;

Commands:
  run      - run DahDit programs
  encode   - convert plain text programs to Morse
  tokens   - show the token stream of a program
  repl     - interactive session
  history  - inspect recorded runs`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $DAHDIT_CONFIG, ./dahdit.toml, ~/.config/dahdit/config.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose logging")
}

// setup loads the configuration and builds the application logger
func setup(cmd *cobra.Command, args []string) error {
	var err error
	if cfgFile != "" {
		appConfig, err = config.Load(cfgFile)
	} else {
		appConfig, err = config.LoadFromEnv()
	}
	if err != nil {
		return fmt.Errorf("cannot load configuration: %w", err)
	}

	logCfg := logging.FromConfig("dahdit", appConfig.General)
	if verbose {
		logCfg.Level = "debug"
	}
	logCfg.Output = cmd.ErrOrStderr()
	appLogger = logging.NewLogger(logCfg)
	ddlog.SetDefault(appLogger)
	return nil
}

// interpreterOptions maps the configured limits onto interpreter options
func interpreterOptions() dahdit.Options {
	return dahdit.Options{
		Logger:             appLogger,
		ExpressionCapacity: appConfig.Interpreter.ExpressionCapacity,
		SymbolCapacity:     appConfig.Interpreter.SymbolCapacity,
		MaxNameLength:      appConfig.Interpreter.MaxNameLength,
		MaxStringLength:    appConfig.Interpreter.MaxStringLength,
	}
}

// isTerminal reports whether f is attached to a terminal
func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
