package checkout

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/potterstore/storefront/internal/catalog"
)

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	p := potions
	p.IsAvailable = true
	h := herbs
	q := quill
	q.Category, q.IsAvailable = "Stationery", true
	c, err := catalog.New([]catalog.Book{p, h}, []catalog.Product{q})
	require.NoError(t, err)
	return c
}

func TestResolve(t *testing.T) {
	c := testCatalog(t)

	books, products, err := Resolve(c,
		[]BookSelection{{BookID: "b1", PurchaseType: PurchaseRent, RentDuration: 14, Quantity: 3}},
		[]ProductSelection{{ProductID: "p1", Quantity: 2}},
	)
	require.NoError(t, err)
	require.Len(t, books, 1)
	require.Len(t, products, 1)
	require.Equal(t, "Potions 101", books[0].Book.Title)
	require.Equal(t, 80.0, ItemPrice(books[0]))
	require.Equal(t, 150.0, products[0].Product.Price)
}

func TestResolve_Errors(t *testing.T) {
	c := testCatalog(t)

	_, _, err := Resolve(c, []BookSelection{{BookID: "missing", PurchaseType: PurchaseBuy, Quantity: 1}}, nil)
	require.ErrorIs(t, err, ErrUnknownBook)

	_, _, err = Resolve(c, nil, []ProductSelection{{ProductID: "missing", Quantity: 1}})
	require.ErrorIs(t, err, ErrUnknownProduct)

	// herbs is not marked available
	_, _, err = Resolve(c, []BookSelection{{BookID: "b2", PurchaseType: PurchaseBuy, Quantity: 1}}, nil)
	require.ErrorIs(t, err, ErrUnavailable)
}
