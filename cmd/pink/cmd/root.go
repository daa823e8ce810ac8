package cmd

import (
	"io"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	mdwlog "github.com/msto63/pinkmath/foundation/core/log"
	"github.com/msto63/pinkmath/internal/render"
	"github.com/msto63/pinkmath/pkg/core/config"
	"github.com/msto63/pinkmath/pkg/core/logging"
)

var (
	cfgFile string
	verbose bool
	output  string
	noColor bool

	appConfig *config.Config
	logger    *mdwlog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "pink",
	Short: "pink - dezimalsichere Arithmetik",
	Long: `pink rechnet mit Dezimalzahlen ohne die Rundungsfehler der
Gleitkommaarithmetik: 0.1 + 0.2 ergibt 0.3.

Befehle:
  calc     - einzelne Operation (add, sub, mul, div, pow)
  chain    - verkettete Ausdrücke wie "64 div 2 add 2"
  loan     - Tilgungspläne (xxhb, dbdx, debj, debx)
  tui      - interaktiver Rechner`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config-Datei (default: ./pink.toml oder $PINK_CONFIG)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose Output")
	rootCmd.PersistentFlags().StringVarP(&output, "output", "o", "", "Ausgabeformat: table oder json")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Farben abschalten")
}

// setup loads the configuration and builds the per-run logger
func setup(cmd *cobra.Command, args []string) error {
	var (
		cfg *config.Config
		err error
	)
	if cfgFile != "" {
		cfg, err = config.Load(cfgFile)
	} else {
		cfg, err = config.LoadFromEnv()
	}
	if err != nil {
		return err
	}

	if output != "" {
		cfg.Output.Format = output
	}
	if noColor {
		cfg.Output.NoColor = true
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	lc := logging.FromConfig(cfg.General.Name, cfg)
	if verbose {
		lc.Level = "debug"
	}
	lc.Output = cmd.ErrOrStderr()

	appConfig = cfg
	logger = logging.NewLogger(lc).
		WithCorrelationID(uuid.NewString()).
		WithField("command", cmd.Name())

	logger.Debug("configuration loaded", mdwlog.Fields{
		"output":    cfg.Output.Format,
		"chain":     cfg.Engine.Chain,
		"precision": cfg.Engine.Precision,
	})
	return nil
}

// run times fn. Failures are logged only when debug output is enabled,
// since main reports them to the user anyway.
func run(operation string, fn func() error) error {
	timer := logger.StartTimer(operation)
	if err := fn(); err != nil {
		if logger.IsLevelEnabled(mdwlog.LevelDebug) {
			timer.StopWithError(err)
		} else {
			timer.Cancel()
		}
		return err
	}
	timer.Stop()
	return nil
}

func newRenderer(w io.Writer) (*render.Renderer, error) {
	return render.New(w, appConfig.Output.Format, !appConfig.Output.NoColor)
}

func calcLogger() *logging.Logger {
	return logging.Wrap(logger.WithName("calc"), "calc")
}
