// Package dashboard exposes a read-only HTTP view over a running bookstore
// simulation. It subscribes to the engine's result events and serves JSON
// snapshots, the live transaction feed and human-readable log lines. It is
// an observer only: nothing here mutates engine state.
package dashboard

import (
	"fmt"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"

	"github.com/bookstore-sim/bookstore-sim/sim"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// TransactionView is one purchase as shown in the feed.
type TransactionView struct {
	Step     int64   `json:"step"`
	Customer string  `json:"customer"`
	Book     string  `json:"book"`
	Price    float64 `json:"price"`
	Status   string  `json:"status"`
}

// RestockView is one restock event as shown in the feed.
type RestockView struct {
	Step     int64   `json:"step"`
	Book     string  `json:"book"`
	Employee string  `json:"employee"`
	Cost     float64 `json:"cost"`
}

// BookView is one catalog row in the snapshot.
type BookView struct {
	ID       string  `json:"id"`
	Title    string  `json:"title"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
	Sold     int     `json:"sold"`
}

// Snapshot is the full dashboard state at a point in time.
type Snapshot struct {
	RunID         string     `json:"run_id"`
	Step          int64      `json:"step"`
	Transactions  int64      `json:"transactions"`
	RestockEvents int64      `json:"restock_events"`
	RestockCost   float64    `json:"restock_cost"`
	Revenue       float64    `json:"revenue"`
	Books         []BookView `json:"books"`
	LowStock      []string   `json:"low_stock"`
}

// Dashboard records engine events and serves them over HTTP.
//
// The engine itself is single-threaded; when it runs next to an HTTP server,
// ticks must be driven through Sync so snapshot reads never observe a
// half-applied tick.
type Dashboard struct {
	mu  sync.Mutex
	sim *sim.Simulator

	transactions []TransactionView
	restocks     []RestockView
	logs         []string
}

// New attaches a dashboard to s, subscribing to purchase.result and
// restock.done.
func New(s *sim.Simulator) *Dashboard {
	d := &Dashboard{sim: s}
	s.Bus.Subscribe(sim.TopicPurchaseResult, d.onPurchaseResult)
	s.Bus.Subscribe(sim.TopicRestockDone, d.onRestockDone)
	return d
}

// Sync runs fn while holding the lock that guards HTTP reads. Engine ticks
// go through here when a server is attached.
func (d *Dashboard) Sync(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	fn()
}

func (d *Dashboard) onPurchaseResult(payload any) {
	res := payload.(sim.PurchaseResult)
	tv := TransactionView{
		Step:     d.sim.CurrentStep(),
		Customer: res.Customer.Name,
		Book:     res.Book.Title,
		Price:    res.Book.Price,
		Status:   res.Status,
	}
	d.transactions = append(d.transactions, tv)
	if res.Status == sim.StatusOK {
		d.logf("%s purchased %q for LKR %.2f", res.Customer.Name, res.Book.Title, res.Book.Price)
	} else {
		d.logf("%s found %q out of stock", res.Customer.Name, res.Book.Title)
	}
}

func (d *Dashboard) onRestockDone(payload any) {
	done := payload.(sim.RestockDone)
	who := "unassigned"
	if done.Employee != nil {
		who = done.Employee.Name
	}
	d.restocks = append(d.restocks, RestockView{
		Step:     d.sim.CurrentStep(),
		Book:     done.Book.Title,
		Employee: who,
		Cost:     done.Cost,
	})
	d.logf("%s restocked %q (cost LKR %.2f)", who, done.Book.Title, done.Cost)
}

func (d *Dashboard) logf(format string, args ...any) {
	line := fmt.Sprintf(format, args...)
	d.logs = append(d.logs, line)
	logrus.Debugf("dashboard: %s", line)
}

// snapshot builds the current view. Callers hold d.mu.
func (d *Dashboard) snapshot() Snapshot {
	s := d.sim
	sales := s.SalesByBook()
	snap := Snapshot{
		RunID:         s.Metrics.RunID.String(),
		Step:          s.CurrentStep(),
		Transactions:  s.TransactionCount(),
		RestockEvents: s.RestockEventCount(),
		RestockCost:   s.Metrics.RestockCost,
		Revenue:       s.Metrics.Revenue,
	}
	for _, b := range s.Store.Books {
		snap.Books = append(snap.Books, BookView{
			ID:       b.ID,
			Title:    b.Title,
			Price:    b.Price,
			Quantity: b.Quantity,
			Sold:     sales[b.ID],
		})
		if b.Quantity < s.Config.Stock.RestockThreshold {
			snap.LowStock = append(snap.LowStock, b.ID)
		}
	}
	return snap
}

// Handler returns the dashboard's HTTP routes.
func (d *Dashboard) Handler() http.Handler {
	r := chi.NewRouter()
	r.Get("/api/snapshot", d.getSnapshot)
	r.Get("/api/transactions", d.getTransactions)
	r.Get("/api/restocks", d.getRestocks)
	r.Get("/api/logs", d.getLogs)
	return r
}

func (d *Dashboard) getSnapshot(w http.ResponseWriter, _ *http.Request) {
	d.mu.Lock()
	snap := d.snapshot()
	d.mu.Unlock()
	writeJSON(w, snap)
}

func (d *Dashboard) getTransactions(w http.ResponseWriter, _ *http.Request) {
	d.mu.Lock()
	out := make([]TransactionView, len(d.transactions))
	copy(out, d.transactions)
	d.mu.Unlock()
	writeJSON(w, out)
}

func (d *Dashboard) getRestocks(w http.ResponseWriter, _ *http.Request) {
	d.mu.Lock()
	out := make([]RestockView, len(d.restocks))
	copy(out, d.restocks)
	d.mu.Unlock()
	writeJSON(w, out)
}

func (d *Dashboard) getLogs(w http.ResponseWriter, _ *http.Request) {
	d.mu.Lock()
	out := make([]string, len(d.logs))
	copy(out, d.logs)
	d.mu.Unlock()
	writeJSON(w, out)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logrus.Debugf("dashboard: encode response: %v", err)
	}
}
