package cmd

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/JangHwanPark/DahDit/pkg/core/version"
)

var versionShort bool

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		if versionShort {
			fmt.Fprintln(out, version.String())
			return
		}
		fmt.Fprintf(out, "DahDit v%s\n", version.Interpreter)
		fmt.Fprintf(out, "  Language:   %s\n", version.Language)
		fmt.Fprintf(out, "  History DB: schema %s\n", version.HistorySchema)
		fmt.Fprintf(out, "  Git Commit: %s\n", version.Commit)
		fmt.Fprintf(out, "  Build Date: %s\n", version.BuildDate)
		fmt.Fprintf(out, "  Go Version: %s\n", runtime.Version())
		fmt.Fprintf(out, "  OS/Arch:    %s/%s\n", runtime.GOOS, runtime.GOARCH)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)

	versionCmd.Flags().BoolVar(&versionShort, "short", false, "print a single line")
}
