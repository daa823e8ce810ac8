package cmd

import (
	"github.com/spf13/cobra"

	mdwlog "github.com/msto63/pinkmath/foundation/core/log"
	"github.com/msto63/pinkmath/foundation/utils/mathx"
)

var (
	loanMethod   string
	loanAmount   float64
	loanYearRate float64
	loanDayRate  float64
	loanMonths   int
)

var loanCmd = &cobra.Command{
	Use:   "loan",
	Short: "Berechnet einen Tilgungsplan",
	Long: `Berechnet einen monatlichen Tilgungsplan.

Methoden:
  xxhb  interest-first                   Zinsen monatlich, Tilgung am Ende
  dbdx  equal-principal-equal-interest   gleiche Tilgung, Zins auf den Kreditbetrag
  debj  equal-principal                  gleiche Tilgung, Zins auf die Restschuld
  debx  equal-instalment                 Annuität

Beispiele:
  pink loan --amount 12000 --year-rate 12 --months 12
  pink loan --method xxhb --amount 10000 --day-rate 0.05
  pink loan --method debj --amount 300000 --year-rate 4.9 --months 360 -o json`,
	Args: cobra.NoArgs,
	RunE: runLoan,
}

func init() {
	rootCmd.AddCommand(loanCmd)

	loanCmd.Flags().StringVarP(&loanMethod, "method", "m", "", "Tilgungsmethode (default aus der Konfiguration)")
	loanCmd.Flags().Float64VarP(&loanAmount, "amount", "a", 0, "Kreditbetrag")
	loanCmd.Flags().Float64VarP(&loanYearRate, "year-rate", "r", 0, "Jahreszins in Prozent")
	loanCmd.Flags().Float64Var(&loanDayRate, "day-rate", 0, "Tageszins in Prozent, ergibt mal 365 den Jahreszins")
	loanCmd.Flags().IntVarP(&loanMonths, "months", "n", 0, "Laufzeit in Monaten (default aus der Konfiguration)")
	loanCmd.MarkFlagRequired("amount")
}

func runLoan(cmd *cobra.Command, args []string) error {
	return run("loan", func() error {
		method := appConfig.LoanMethod()
		if loanMethod != "" {
			m, err := mathx.ParseLoanMethod(loanMethod)
			if err != nil {
				return err
			}
			method = m
		}

		months := appConfig.Loan.Months
		if cmd.Flags().Changed("months") {
			months = loanMonths
		}

		opts := mathx.LoanOptions{
			Amount:   loanAmount,
			YearRate: loanYearRate,
			DayRate:  loanDayRate,
			Months:   months,
		}

		res, err := mathx.Loan(method, opts)
		if err != nil {
			return err
		}
		logger.Debug("loan computed", mdwlog.Fields{
			"method": method.String(),
			"months": len(res.Plan),
		})

		r, err := newRenderer(cmd.OutOrStdout())
		if err != nil {
			return err
		}
		return r.Loan(res, opts)
	})
}
