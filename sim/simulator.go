// sim/simulator.go
package sim

import (
	"fmt"
	"math/rand"

	"github.com/sirupsen/logrus"
)

// Simulator is the core object that holds simulation time, the entity store,
// the sales ledger and the agent roster, and drives the tick loop.
//
// Ownership: the Simulator exclusively owns Store, Ledger, Metrics and the
// round-robin index; every mutation of shared state happens inside its bus
// handlers. Agents only publish requests. Execution is single-threaded: one
// tick runs to completion, including all bus cascades, before the next.
type Simulator struct {
	Config  Config
	Bus     *Bus
	Store   *Store
	Ledger  *SalesLedger
	Metrics *Metrics
	RNG     *rand.Rand

	// Materializer is the external knowledge-base hook, invoked every 5th
	// tick and once after the final tick. Failures are logged and dropped.
	Materializer Materializer

	// StepCount is the current tick, starting at 0 before the first tick.
	StepCount int64

	agents       []Agent
	nextEmployee int // round-robin fulfiller index, wrapped at selection time
}

// NewSimulator wires a simulator over seeded entities: it builds the bus,
// subscribes the purchase/restock handlers, and creates one agent per seeded
// customer and employee (profile draws consume the shared RNG in roster
// order, customers first).
func NewSimulator(cfg Config, store *Store, mat Materializer) (*Simulator, error) {
	if cfg.Stock.RestockThreshold <= 0 {
		return nil, fmt.Errorf("sim: restock threshold must be positive, got %d", cfg.Stock.RestockThreshold)
	}
	if cfg.Stock.MaxStockLevel <= 0 {
		return nil, fmt.Errorf("sim: max stock level must be positive, got %d", cfg.Stock.MaxStockLevel)
	}
	if mat == nil {
		mat = NopMaterializer{}
	}
	s := &Simulator{
		Config:       cfg,
		Bus:          NewBus(),
		Store:        store,
		Ledger:       NewSalesLedger(),
		Metrics:      NewMetrics(),
		RNG:          NewRNG(NewSimulationKey(cfg.Seed)),
		Materializer: mat,
	}

	s.Bus.Subscribe(TopicPurchaseRequest, s.handlePurchase)
	// Restock requests are fulfilled centrally so exactly one employee is
	// credited per request.
	s.Bus.Subscribe(TopicRestockRequest, s.performRestock)
	s.Bus.Subscribe(TopicRestockDone, s.countRestock)

	for _, c := range store.Customers {
		s.agents = append(s.agents, NewCustomerAgent(s, c))
	}
	for _, e := range store.Employees {
		s.agents = append(s.agents, NewEmployeeAgent(s, e))
	}
	return s, nil
}

// Step advances the simulation by one tick: the step counter increments,
// the roster is shuffled with the shared RNG, and every agent acts exactly
// once in shuffled order. Bus cascades triggered by an agent complete before
// the next agent acts.
func (s *Simulator) Step() {
	s.StepCount++
	logrus.Infof("[step %04d] %d agents acting", s.StepCount, len(s.agents))

	roster := make([]Agent, len(s.agents))
	copy(roster, s.agents)
	s.RNG.Shuffle(len(roster), func(i, j int) {
		roster[i], roster[j] = roster[j], roster[i]
	})
	for _, a := range roster {
		a.Step(s)
	}
}

// Run performs steps ticks sequentially, refreshing the materialized view
// every 5th tick and once more after the final tick.
func (s *Simulator) Run(steps int) {
	for i := 0; i < steps; i++ {
		s.Step()
		if s.StepCount%5 == 0 {
			s.Materialize()
		}
	}
	s.Materialize()
	logrus.Infof("[step %04d] simulation ended, %d transactions, %d restock events",
		s.StepCount, s.Metrics.TotalTransactions, s.Metrics.RestockEvents)
}

// Materialize invokes the knowledge-base hook. Best effort: a failure leaves
// derived views stale but never touches core state or stops the run. Callers
// pacing ticks themselves (the serve loop) use this directly.
func (s *Simulator) Materialize() {
	if err := s.Materializer.Materialize(); err != nil {
		logrus.Debugf("[step %04d] materialize failed, continuing: %v", s.StepCount, err)
	}
}

// handlePurchase processes one purchase.request. On stock it decrements
// quantity, records the sale in the ledger, appends a transaction and
// publishes purchase.result{ok}; an empty shelf publishes
// purchase.result{out_of_stock} with no state change. A post-sale quantity
// under the restock threshold triggers a restock.request.
func (s *Simulator) handlePurchase(payload any) {
	req := payload.(PurchaseRequest)
	book, cust := req.Book, req.Customer
	if book.Quantity < 0 {
		panic(fmt.Sprintf("sim: book %s has negative quantity %d", book.ID, book.Quantity))
	}

	if book.Quantity == 0 {
		s.Metrics.OutOfStockMisses++
		logrus.Debugf("[step %04d] %s wanted %q: out of stock", s.StepCount, cust.ID, book.Title)
		s.Bus.Publish(TopicPurchaseResult, PurchaseResult{Status: StatusOutOfStock, Customer: cust, Book: book})
		return
	}

	book.Quantity--
	s.Ledger.RecordSale(book.ID, s.StepCount)

	t := &Transaction{
		ID:       TransactionID(cust.ID, book.ID, s.Metrics.TotalTransactions),
		Customer: cust,
		Book:     book,
		Step:     s.StepCount,
	}
	s.Store.AppendTransaction(t)
	cust.Purchases = append(cust.Purchases, book)
	s.Metrics.TotalTransactions++
	s.Metrics.Revenue += book.Price

	logrus.Infof("[step %04d] %s bought %q for %.2f (%d left)",
		s.StepCount, cust.ID, book.Title, book.Price, book.Quantity)
	s.Bus.Publish(TopicPurchaseResult, PurchaseResult{Status: StatusOK, Customer: cust, Book: book})

	if book.Quantity < s.Config.Stock.RestockThreshold {
		s.Bus.Publish(TopicRestockRequest, RestockRequest{Book: book})
	}
}

// performRestock fulfills one restock.request: it picks the fulfilling
// employee round-robin over the current roster (nil when empty), sizes the
// restock from sales velocity, applies it, and publishes restock.done
// unconditionally — listeners count restock events, not restocked units.
func (s *Simulator) performRestock(payload any) {
	req := payload.(RestockRequest)
	book := req.Book

	var chosen *Employee
	if emps := s.Store.Employees; len(emps) > 0 {
		chosen = emps[s.nextEmployee%len(emps)]
		s.nextEmployee = (s.nextEmployee + 1) % len(emps)
	}

	plan := PlanRestock(
		book.Quantity,
		s.Ledger.TotalSales(book.ID),
		s.Ledger.RecentSales(book.ID),
		s.StepCount,
		s.Config.Stock.MaxStockLevel,
		book.Price,
	)
	if plan.Quantity > 0 {
		book.Quantity += plan.Quantity
		s.Metrics.RestockUnits += int64(plan.Quantity)
		s.Metrics.RestockCost += plan.Cost
	}

	who := "unassigned"
	if chosen != nil {
		who = chosen.ID
	}
	logrus.Infof("[step %04d] restock %q by %s: +%d to %d (target %d, recent velocity %.2f, cost %.2f)",
		s.StepCount, book.Title, who, plan.Quantity, book.Quantity, plan.TargetStock, plan.RecentVelocity, plan.Cost)

	s.Bus.Publish(TopicRestockDone, RestockDone{Book: book, Employee: chosen, Cost: plan.Cost})
}

// countRestock tallies restock.done events.
func (s *Simulator) countRestock(any) {
	s.Metrics.RestockEvents++
}

// AddCustomer registers a customer record at runtime and creates its agent
// with a fresh profile draw.
func (s *Simulator) AddCustomer(c *Customer) {
	s.Store.AddCustomer(c)
	s.agents = append(s.agents, NewCustomerAgent(s, c))
}

// AddEmployee registers an employee record at runtime and creates its agent
// with a fresh profile draw.
func (s *Simulator) AddEmployee(e *Employee) {
	s.Store.AddEmployee(e)
	s.agents = append(s.agents, NewEmployeeAgent(s, e))
}

// RemoveCustomer detaches the customer's agent and drops its record.
// In-flight events holding the record still complete.
func (s *Simulator) RemoveCustomer(c *Customer) {
	s.Store.RemoveCustomer(c)
	for i, a := range s.agents {
		if ca, ok := a.(*CustomerAgent); ok && ca.Customer == c {
			s.agents = append(s.agents[:i], s.agents[i+1:]...)
			return
		}
	}
}

// RemoveEmployee detaches the employee's agent and drops its record. The
// round-robin index is wrapped at selection time, so a shrinking roster
// stays valid.
func (s *Simulator) RemoveEmployee(e *Employee) {
	s.Store.RemoveEmployee(e)
	for i, a := range s.agents {
		if ea, ok := a.(*EmployeeAgent); ok && ea.Employee == e {
			s.agents = append(s.agents[:i], s.agents[i+1:]...)
			return
		}
	}
}

// CurrentStep returns the current tick number.
func (s *Simulator) CurrentStep() int64 { return s.StepCount }

// TransactionCount returns the number of successful purchases so far.
func (s *Simulator) TransactionCount() int64 { return s.Metrics.TotalTransactions }

// RestockEventCount returns the number of restock.done events so far.
func (s *Simulator) RestockEventCount() int64 { return s.Metrics.RestockEvents }

// SalesByBook returns a copy of the all-time per-book sales counters.
func (s *Simulator) SalesByBook() map[string]int { return s.Ledger.Totals() }
