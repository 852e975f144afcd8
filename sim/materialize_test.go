package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLowStockView_Materialize(t *testing.T) {
	// GIVEN a catalog with two books under the threshold of 3
	books := []*Book{
		{ID: "a", Quantity: 0},
		{ID: "b", Quantity: 2},
		{ID: "c", Quantity: 3},
		{ID: "d", Quantity: 9},
	}
	store, err := NewStore(&Inventory{ID: "inv"}, books, nil, nil)
	require.NoError(t, err)
	view := NewLowStockView(store, 3)

	// WHEN materialized
	require.NoError(t, view.Materialize())

	// THEN exactly the under-threshold books are listed, in catalog order
	assert.Equal(t, []string{"a", "b"}, view.BookIDs)
}

func TestLowStockView_RecomputesFromScratch(t *testing.T) {
	// GIVEN a materialized view
	book := &Book{ID: "a", Quantity: 0}
	store, err := NewStore(&Inventory{ID: "inv"}, []*Book{book}, nil, nil)
	require.NoError(t, err)
	view := NewLowStockView(store, 3)
	require.NoError(t, view.Materialize())
	require.Equal(t, []string{"a"}, view.BookIDs)

	// WHEN the book recovers and the view refreshes
	book.Quantity = 8
	require.NoError(t, view.Materialize())

	// THEN the stale classification is gone
	assert.Empty(t, view.BookIDs)
}
