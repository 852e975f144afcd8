package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/bookstore-sim/bookstore-sim/sim"
)

var (
	// CLI flags shared by run and serve
	seed             int64  // Seed for all agent and scheduler randomness
	steps            int    // Number of ticks to simulate
	logLevel         string // Log verbosity level
	restockThreshold int    // Quantity below which restocking triggers
	maxStockLevel    int    // Hard ceiling on any book's quantity
	scenarioPath     string // Optional YAML scenario file (default: built-in catalog)

	// serve-only flags
	addr      string // Dashboard listen address
	tickDelay int    // Milliseconds between ticks while serving
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "bookstore-sim",
	Short: "Discrete-step simulator for a small bookstore",
}

// buildSimulator assembles a simulator from the CLI flags.
func buildSimulator() (*sim.Simulator, error) {
	scenario := sim.DefaultScenario()
	if scenarioPath != "" {
		loaded, err := sim.LoadScenario(scenarioPath)
		if err != nil {
			return nil, err
		}
		scenario = loaded
	}
	store, err := scenario.Store()
	if err != nil {
		return nil, err
	}

	cfg := sim.DefaultConfig()
	cfg.Seed = seed
	cfg.Stock.RestockThreshold = restockThreshold
	cfg.Stock.MaxStockLevel = maxStockLevel

	view := sim.NewLowStockView(store, cfg.Stock.RestockThreshold)
	return sim.NewSimulator(cfg, store, view)
}

// runCmd executes one full simulation and prints the report.
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the bookstore simulation",
	Run: func(cmd *cobra.Command, args []string) {
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		s, err := buildSimulator()
		if err != nil {
			logrus.Fatalf("Cannot start simulation: %v", err)
		}

		logrus.Infof("Starting simulation: seed=%d steps=%d threshold=%d max-stock=%d",
			seed, steps, restockThreshold, maxStockLevel)
		s.Run(steps)

		s.Metrics.Print(s.CurrentStep())
		printCatalogReport(s)
	},
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	for _, c := range []*cobra.Command{runCmd, serveCmd} {
		c.Flags().Int64Var(&seed, "seed", 42, "Seed for agent and scheduler randomness")
		c.Flags().IntVar(&steps, "steps", 30, "Number of ticks to simulate")
		c.Flags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")
		c.Flags().IntVar(&restockThreshold, "restock-threshold", 3, "Quantity below which restocking triggers")
		c.Flags().IntVar(&maxStockLevel, "max-stock", 10, "Maximum stock level per book")
		c.Flags().StringVar(&scenarioPath, "scenario", "", "YAML scenario file (default: built-in catalog)")
	}

	serveCmd.Flags().StringVar(&addr, "addr", ":8080", "Dashboard listen address")
	serveCmd.Flags().IntVar(&tickDelay, "tick-delay", 500, "Milliseconds between ticks while serving")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(serveCmd)
}
