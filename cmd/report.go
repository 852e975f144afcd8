package cmd

import (
	"os"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/bookstore-sim/bookstore-sim/sim"
)

// printCatalogReport renders the per-book end-of-run table: remaining stock,
// units sold and whether the book ended the run under the restock threshold.
func printCatalogReport(s *sim.Simulator) {
	sales := s.SalesByBook()

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"Book", "Author", "Price", "Stock", "Sold", "Low?"})
	for _, b := range s.Store.Books {
		low := ""
		if b.Quantity < s.Config.Stock.RestockThreshold {
			low = "low"
		}
		t.AppendRow(table.Row{b.Title, b.Author, b.Price, b.Quantity, sales[b.ID], low})
	}
	t.AppendFooter(table.Row{"", "", "", "", s.TransactionCount(), ""})
	t.Render()
}
