package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/msto63/pinkmath/internal/calc"
)

var calcCmd = &cobra.Command{
	Use:   "calc <operation> [zahlen...]",
	Short: "Führt eine einzelne Operation aus",
	Long: `Führt eine Operation auf beliebig vielen Zahlen aus, von links nach rechts.

Operationen: add (+), sub (-), mul (*), div (/), pow (^)

Beispiele:
  pink calc add 0.1 0.2        # 0.3
  pink calc sub 10 2 3         # 5
  pink calc pow 2 3.9          # 8, der Exponent wird abgerundet
  pink calc div 1 3 -o json`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCalc,
}

func init() {
	rootCmd.AddCommand(calcCmd)

	// Negative operands must not be parsed as flags
	calcCmd.Flags().SetInterspersed(false)
}

func runCalc(cmd *cobra.Command, args []string) error {
	return run("calc", func() error {
		value, err := calc.Apply(args[0], args[1:])
		if err != nil {
			return err
		}

		r, err := newRenderer(cmd.OutOrStdout())
		if err != nil {
			return err
		}
		return r.Number(strings.Join(args, " "), value, calc.Format(value, appConfig.Engine.Precision))
	})
}
