package sim

// RecentWindowSteps is the sliding horizon, in ticks, over which recent
// sales are counted for velocity estimation.
const RecentWindowSteps = 5

// ledgerEntry tracks sales of a single book.
type ledgerEntry struct {
	total  int
	recent []int64 // step numbers of sales inside the window, oldest first
}

// SalesLedger keeps per-book sales counters: an all-time total and a sliding
// window of recent sale steps. Entries are created lazily on first sale.
// Owned by the Simulator; mutated only inside its purchase handler.
type SalesLedger struct {
	entries map[string]*ledgerEntry
}

// NewSalesLedger creates an empty ledger.
func NewSalesLedger() *SalesLedger {
	return &SalesLedger{entries: make(map[string]*ledgerEntry)}
}

// RecordSale counts one sale of bookID at step and prunes window entries
// older than step-RecentWindowSteps.
func (l *SalesLedger) RecordSale(bookID string, step int64) {
	e := l.entries[bookID]
	if e == nil {
		e = &ledgerEntry{}
		l.entries[bookID] = e
	}
	e.total++
	e.recent = append(e.recent, step)

	cutoff := step - RecentWindowSteps
	if cutoff < 0 {
		cutoff = 0
	}
	kept := e.recent[:0]
	for _, s := range e.recent {
		if s > cutoff {
			kept = append(kept, s)
		}
	}
	e.recent = kept
}

// TotalSales returns the all-time sales count for bookID.
func (l *SalesLedger) TotalSales(bookID string) int {
	if e := l.entries[bookID]; e != nil {
		return e.total
	}
	return 0
}

// RecentSales returns how many sales of bookID fall inside the current
// window. The window is pruned on write, so this is a plain length.
func (l *SalesLedger) RecentSales(bookID string) int {
	if e := l.entries[bookID]; e != nil {
		return len(e.recent)
	}
	return 0
}

// Totals returns a copy of the all-time sales counters, keyed by book ID.
func (l *SalesLedger) Totals() map[string]int {
	out := make(map[string]int, len(l.entries))
	for id, e := range l.entries {
		out[id] = e.total
	}
	return out
}
