package sim

import (
	"fmt"

	"github.com/google/uuid"
)

// Metrics aggregates run-wide counters for final reporting.
type Metrics struct {
	RunID uuid.UUID // identity of this run, for report correlation

	TotalTransactions int64   // successful purchases
	OutOfStockMisses  int64   // purchase attempts that found an empty shelf
	RestockEvents     int64   // restock.done events (including zero-unit ones)
	RestockUnits      int64   // units actually added across all restocks
	RestockCost       float64 // accumulated restock spend
	Revenue           float64 // accumulated sale prices
}

// NewMetrics creates zeroed metrics with a fresh run identity.
func NewMetrics() *Metrics {
	return &Metrics{RunID: uuid.New()}
}

// Print displays aggregated counters at the end of the simulation.
func (m *Metrics) Print(step int64) {
	fmt.Println("=== Simulation Metrics ===")
	fmt.Printf("Run                 : %s\n", m.RunID)
	fmt.Printf("Steps               : %d\n", step)
	fmt.Printf("Transactions        : %d\n", m.TotalTransactions)
	fmt.Printf("Out-of-stock misses : %d\n", m.OutOfStockMisses)
	fmt.Printf("Restock events      : %d\n", m.RestockEvents)
	fmt.Printf("Restock units       : %d\n", m.RestockUnits)
	fmt.Printf("Restock cost        : %.2f\n", m.RestockCost)
	fmt.Printf("Revenue             : %.2f\n", m.Revenue)
	if step > 0 {
		fmt.Printf("Sales per step      : %.2f\n", float64(m.TotalTransactions)/float64(step))
	}
}
