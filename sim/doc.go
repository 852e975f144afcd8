// Package sim implements the bookstore simulation engine: a single-threaded,
// seeded, step-driven loop in which customer and employee agents publish
// purchase and restock requests on a synchronous bus and the orchestrator's
// handlers apply them to the entity store.
//
// # Reading Guide
//
// Start with these three files to understand the engine:
//   - bus.go: topic-keyed synchronous pub/sub and the typed event payloads
//   - simulator.go: the tick loop, purchase/restock state machine, round-robin fulfillment
//   - restock.go: the pure sales-velocity sizing policy
//
// # Determinism
//
// A run is fully determined by its Config.Seed and its Scenario. All agents
// and the orchestrator share one RNG, consumed in a fixed order per tick
// (roster shuffle first, then each agent's draws in shuffled order); tests
// rely on this rather than on wall-clock behavior.
//
// # Ownership
//
// The Simulator exclusively owns the Store, the SalesLedger, Metrics and the
// round-robin index; all mutation happens inside its bus handlers. External
// observers (the dashboard, loggers) subscribe read-only to purchase.result
// and restock.done.
package sim
