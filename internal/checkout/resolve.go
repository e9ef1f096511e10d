package checkout

import (
	"errors"
	"fmt"

	"github.com/potterstore/storefront/internal/catalog"
)

var (
	ErrUnknownBook    = errors.New("unknown book")
	ErrUnknownProduct = errors.New("unknown product")
	ErrUnavailable    = errors.New("item unavailable")
)

// BookSelection references a catalog book from a cart request.
type BookSelection struct {
	BookID       string       `json:"book_id" validate:"required"`
	PurchaseType PurchaseMode `json:"purchase_type" validate:"required,oneof=buy rent"`
	RentDuration int          `json:"rent_duration,omitempty" validate:"required_if=PurchaseType rent,omitempty,oneof=7 14 30"`
	Quantity     int          `json:"quantity" validate:"required,min=1,max=99"`
}

// ProductSelection references a catalog product from a cart request.
type ProductSelection struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,min=1,max=99"`
}

// Resolve turns selections into priced cart items using the catalog, so
// prices always come from the server side. Unknown ids and unavailable
// items are rejected.
func Resolve(c *catalog.Catalog, books []BookSelection, products []ProductSelection) ([]CartItem, []ProductCartItem, error) {
	bookItems := make([]CartItem, 0, len(books))
	for _, sel := range books {
		b, ok := c.Book(sel.BookID)
		if !ok {
			return nil, nil, fmt.Errorf("%w: %s", ErrUnknownBook, sel.BookID)
		}
		if !b.IsAvailable {
			return nil, nil, fmt.Errorf("%w: book %s", ErrUnavailable, sel.BookID)
		}
		bookItems = append(bookItems, CartItem{
			Book:         b,
			PurchaseType: sel.PurchaseType,
			RentDuration: sel.RentDuration,
			Quantity:     sel.Quantity,
		})
	}

	productItems := make([]ProductCartItem, 0, len(products))
	for _, sel := range products {
		p, ok := c.Product(sel.ProductID)
		if !ok {
			return nil, nil, fmt.Errorf("%w: %s", ErrUnknownProduct, sel.ProductID)
		}
		if !p.IsAvailable {
			return nil, nil, fmt.Errorf("%w: product %s", ErrUnavailable, sel.ProductID)
		}
		productItems = append(productItems, ProductCartItem{Product: p, Quantity: sel.Quantity})
	}
	return bookItems, productItems, nil
}
