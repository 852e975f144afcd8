package sim

import "testing"

func TestSalesLedger_LazyEntries(t *testing.T) {
	// GIVEN an empty ledger
	l := NewSalesLedger()

	// THEN unknown books read as zero without creating entries
	if got := l.TotalSales("nope"); got != 0 {
		t.Errorf("TotalSales on unknown book: got %d, want 0", got)
	}
	if got := l.RecentSales("nope"); got != 0 {
		t.Errorf("RecentSales on unknown book: got %d, want 0", got)
	}
}

func TestSalesLedger_TotalNeverPruned(t *testing.T) {
	// GIVEN sales spread over many steps
	l := NewSalesLedger()
	for step := int64(1); step <= 20; step++ {
		l.RecordSale("b", step)
	}

	// THEN the total keeps all of them while the window holds at most 5 steps' worth
	if got := l.TotalSales("b"); got != 20 {
		t.Errorf("TotalSales: got %d, want 20", got)
	}
	if got := l.RecentSales("b"); got != 5 {
		t.Errorf("RecentSales: got %d, want 5", got)
	}
}

func TestSalesLedger_WindowPruning(t *testing.T) {
	// GIVEN sales at steps 1, 2 and 3
	l := NewSalesLedger()
	l.RecordSale("b", 1)
	l.RecordSale("b", 2)
	l.RecordSale("b", 3)

	// WHEN another sale lands at step 7 (cutoff 2: steps <= 2 age out)
	l.RecordSale("b", 7)

	// THEN only the step-3 and step-7 sales remain in the window
	if got := l.RecentSales("b"); got != 2 {
		t.Errorf("RecentSales after pruning: got %d, want 2", got)
	}
	if got := l.TotalSales("b"); got != 4 {
		t.Errorf("TotalSales after pruning: got %d, want 4", got)
	}
}

func TestSalesLedger_Totals_IsACopy(t *testing.T) {
	// GIVEN a ledger with one sale
	l := NewSalesLedger()
	l.RecordSale("b", 1)

	// WHEN the caller mutates the returned map
	totals := l.Totals()
	totals["b"] = 99

	// THEN the ledger is unaffected
	if got := l.TotalSales("b"); got != 1 {
		t.Errorf("TotalSales after caller mutation: got %d, want 1", got)
	}
}
