package cmd

import (
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/bookstore-sim/bookstore-sim/dashboard"
)

// serveCmd runs the simulation paced by a tick delay, with the read-only
// dashboard served alongside. Ticks are driven through the dashboard's lock
// so HTTP snapshots never observe a half-applied tick.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the simulation with a live HTTP dashboard",
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
		dash := dashboard.New(s)

		go func() {
			logrus.Infof("Dashboard listening on %s", addr)
			if err := http.ListenAndServe(addr, dash.Handler()); err != nil {
				logrus.Fatalf("Dashboard server: %v", err)
			}
		}()

		delay := time.Duration(tickDelay) * time.Millisecond
		for i := 0; i < steps; i++ {
			dash.Sync(s.Step)
			if s.CurrentStep()%5 == 0 {
				dash.Sync(s.Materialize)
			}
			time.Sleep(delay)
		}
		dash.Sync(s.Materialize)

		s.Metrics.Print(s.CurrentStep())
		printCatalogReport(s)
	},
}
