package cmd

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/msto63/pinkmath/pkg/core/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Zeigt die Version an",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, version.Info())
		if verbose {
			fmt.Fprintf(out, "  mathx:      %s\n", version.Mathx)
			fmt.Fprintf(out, "  calc:       %s\n", version.Calc)
			fmt.Fprintf(out, "  tui:        %s\n", version.TUI)
			fmt.Fprintf(out, "  Go Version: %s\n", runtime.Version())
		}
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
