package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/JangHwanPark/DahDit/foundation/dahdit/diag"
	"github.com/JangHwanPark/DahDit/foundation/dahdit/parser"
)

var tokensCmd = &cobra.Command{
	Use:   "tokens [file]",
	Short: "Show the token stream of a program",
	Long: `Prints every token the lexer produces, one per line, with its
position. Lexical diagnostics are printed to stderr as they occur.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTokens,
}

func init() {
	rootCmd.AddCommand(tokensCmd)
}

func runTokens(cmd *cobra.Command, args []string) error {
	stderr := cmd.ErrOrStderr()
	opts := parser.LexerOptions{
		Logger:          appLogger,
		Sink:            diag.NewWriterSink(stderr, appConfig.Diagnostics.UseColor(writerIsTerminal(stderr))),
		MaxStringLength: appConfig.Interpreter.MaxStringLength,
	}

	var lexer *parser.Lexer
	if len(args) == 0 || args[0] == "-" {
		lexer = parser.NewLexer(diag.StdinName, cmd.InOrStdin(), opts)
	} else {
		l, closer, err := parser.Open(args[0], opts)
		if err != nil {
			return err
		}
		defer closer.Close()
		lexer = l
	}

	printTokens(cmd.OutOrStdout(), lexer.Tokenize())
	return nil
}

func printTokens(w io.Writer, tokens []parser.Token) {
	for _, tok := range tokens {
		fmt.Fprintf(w, "%4d:%-4d %s\n", tok.Line, tok.Column, tok)
	}
}
