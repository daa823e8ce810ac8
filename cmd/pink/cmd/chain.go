package cmd

import (
	"bufio"
	"strings"

	"github.com/spf13/cobra"

	"github.com/msto63/pinkmath/internal/calc"
)

var chainPlain bool

var chainCmd = &cobra.Command{
	Use:   "chain [ausdruck...]",
	Short: "Wertet einen verketteten Ausdruck aus",
	Long: `Wertet einen Ausdruck auf einer Kette aus: jedes Ergebnis ist der erste
Operand der nächsten Operation. Ohne Argumente wird jede Zeile der
Standardeingabe auf derselben Kette ausgewertet.

Beispiele:
  pink chain 64 div 2 add 2              # 34
  pink chain base 10 mul 0.1 sub 0.3     # 0.7
  printf "base 2\npow 10\n" | pink chain  # 1024`,
	RunE: runChain,
}

func init() {
	rootCmd.AddCommand(chainCmd)

	chainCmd.Flags().BoolVar(&chainPlain, "plain", false, "Ohne Kette rechnen, nur das letzte Ergebnis zählt")
	chainCmd.Flags().SetInterspersed(false)
}

func runChain(cmd *cobra.Command, args []string) error {
	return run("chain", func() error {
		session := calc.NewSession(calc.Options{
			Chain:     !chainPlain,
			Precision: appConfig.Engine.Precision,
			Logger:    calcLogger(),
		})

		var (
			input string
			res   calc.Result
			err   error
		)
		if len(args) > 0 {
			input = strings.Join(args, " ")
			res, err = session.Eval(input)
		} else {
			var lines []string
			scanner := bufio.NewScanner(cmd.InOrStdin())
			for scanner.Scan() {
				line := strings.TrimSpace(scanner.Text())
				if line == "" || strings.HasPrefix(line, "#") {
					continue
				}
				lines = append(lines, line)
				if res, err = session.Eval(line); err != nil {
					break
				}
			}
			if err == nil {
				err = scanner.Err()
			}
			input = strings.Join(lines, "; ")
		}
		if err != nil {
			return err
		}

		value := res.Value
		session.Engine().Done()

		r, err := newRenderer(cmd.OutOrStdout())
		if err != nil {
			return err
		}
		return r.Number(input, value, session.Format(value))
	})
}
