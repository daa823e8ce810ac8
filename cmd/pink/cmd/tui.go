package cmd

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/msto63/pinkmath/internal/calc"
	"github.com/msto63/pinkmath/internal/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Startet den interaktiven Rechner",
	Long: `Startet die Terminal User Interface (TUI) von pink.

Rechner (eine Eingabe pro Zeile):
  64 div 2 add 2   Ausdruck auf der Kette
  base 10          Kette mit 10 beginnen
  mul 0.1          Operation, in der Kette mit dem letzten Ergebnis
  done             Ergebnis ausgeben und Kette beenden
  reset            Kette verwerfen
  mode chain       Kettenmodus (mode plain: ohne Kette)

Kredit:
  12000 12 12 debx Betrag, Jahreszins, Monate, Methode

Navigation:
  Tab       - Zwischen Ansichten wechseln
  Enter     - Eingabe auswerten
  Ctrl+L    - Ansicht leeren
  Ctrl+C    - Beenden`,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, args []string) error {
	session := calc.NewSession(calc.Options{
		Chain:     appConfig.Engine.Chain,
		Precision: appConfig.Engine.Precision,
		Shared:    true,
		Logger:    calcLogger(),
	})

	p := tea.NewProgram(
		tui.NewModel(session, tui.LoanDefaults{
			Method: appConfig.LoanMethod(),
			Months: appConfig.Loan.Months,
		}),
		tea.WithAltScreen(),
	)

	return run("tui", func() error {
		_, err := p.Run()
		return err
	})
}
