package sim

// Materializer derives secondary facts from current state, the way the
// original knowledge base recomputed inferred views. The orchestrator calls
// it every 5th tick and once after the final tick; a returned error is
// logged and dropped, never fatal — derived views may go stale, core stock
// and ledger state cannot.
type Materializer interface {
	Materialize() error
}

// NopMaterializer does nothing. Used when no external knowledge base is wired.
type NopMaterializer struct{}

// Materialize is a no-op.
func (NopMaterializer) Materialize() error { return nil }

// LowStockView materializes the set of books currently under the restock
// threshold. It is the in-process stand-in for the reasoner's low-stock
// classification and feeds read-only observers like the dashboard.
type LowStockView struct {
	store     *Store
	threshold int

	// BookIDs is the last materialized view, sorted by catalog order.
	BookIDs []string
}

// NewLowStockView builds a view over store with the given threshold.
func NewLowStockView(store *Store, threshold int) *LowStockView {
	return &LowStockView{store: store, threshold: threshold}
}

// Materialize recomputes the low-stock set from scratch, mirroring the
// clear-and-reclassify pass of the original rule engine.
func (v *LowStockView) Materialize() error {
	ids := v.BookIDs[:0]
	for _, b := range v.store.Books {
		if b.Quantity < v.threshold {
			ids = append(ids, b.ID)
		}
	}
	v.BookIDs = ids
	return nil
}
