package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	dderror "github.com/JangHwanPark/DahDit/foundation/core/error"
	"github.com/JangHwanPark/DahDit/foundation/dahdit/morse"
)

var encodeOutput string

var encodeCmd = &cobra.Command{
	Use:   "encode [file]",
	Short: "Convert a plain text program to Morse",
	Long: `Converts a program written with ordinary letters and digits into
DahDit source. Spaces between words become '/', operators use their Morse
codes, and ';', '=', string literals and comments are copied unchanged.

  echo 'PRINT 2 + 3;' | dahdit encode
  .--. .-. .. -. - / ..--- .-.-. ...-- ;`,
	Args: cobra.MaximumNArgs(1),
	RunE: runEncode,
}

func init() {
	rootCmd.AddCommand(encodeCmd)

	encodeCmd.Flags().StringVarP(&encodeOutput, "output", "o", "", "write the encoded program to a file instead of stdout")
}

func runEncode(cmd *cobra.Command, args []string) error {
	path := "-"
	if len(args) == 1 {
		path = args[0]
	}

	text, err := readSource(cmd, path)
	if err != nil {
		return err
	}

	encoded, err := morse.EncodeText(text)
	if err != nil {
		return fmt.Errorf("%s:%w", displayName(path), err)
	}
	if !strings.HasSuffix(encoded, "\n") {
		encoded += "\n"
	}

	if encodeOutput == "" {
		_, err = io.WriteString(cmd.OutOrStdout(), encoded)
		return err
	}
	if err := os.WriteFile(encodeOutput, []byte(encoded), 0644); err != nil {
		return dderror.Wrap(err, "cannot write encoded program").
			WithCode(dderror.CodeIO).
			WithDetail("file", encodeOutput)
	}
	return nil
}

// readSource reads a whole program from path, or from stdin for "-"
func readSource(cmd *cobra.Command, path string) (string, error) {
	var data []byte
	var err error
	if path == "-" {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return "", dderror.Wrap(err, "cannot read source").
			WithCode(dderror.CodeIO).
			WithOperation("read").
			WithDetail("file", displayName(path))
	}
	return string(data), nil
}

func displayName(path string) string {
	if path == "-" {
		return "<stdin>"
	}
	return path
}
