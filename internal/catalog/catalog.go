package catalog

import (
	"errors"
	"fmt"
)

var (
	ErrDuplicateID     = errors.New("duplicate catalog id")
	ErrUnknownCategory = errors.New("unknown product category")
	ErrNegativePrice   = errors.New("negative price")
)

// Catalog is the read-only set of books and products offered by the store.
// It is safe for concurrent use.
type Catalog struct {
	books       []Book
	products    []Product
	bookByID    map[string]int
	productByID map[string]int
}

// New validates books and products and indexes them by id.
func New(books []Book, products []Product) (*Catalog, error) {
	c := &Catalog{
		books:       append([]Book(nil), books...),
		products:    append([]Product(nil), products...),
		bookByID:    make(map[string]int, len(books)),
		productByID: make(map[string]int, len(products)),
	}

	for i, b := range c.books {
		if b.ID == "" {
			return nil, fmt.Errorf("book %q: missing id", b.Title)
		}
		if _, dup := c.bookByID[b.ID]; dup {
			return nil, fmt.Errorf("book %s: %w", b.ID, ErrDuplicateID)
		}
		if b.BuyPrice < 0 || b.RentPrice7Days < 0 || b.RentPrice14Days < 0 || b.RentPrice30Days < 0 {
			return nil, fmt.Errorf("book %s: %w", b.ID, ErrNegativePrice)
		}
		c.bookByID[b.ID] = i
	}

	for i, p := range c.products {
		if p.ID == "" {
			return nil, fmt.Errorf("product %q: missing id", p.Name)
		}
		if _, dup := c.productByID[p.ID]; dup {
			return nil, fmt.Errorf("product %s: %w", p.ID, ErrDuplicateID)
		}
		if !IsCategory(p.Category) {
			return nil, fmt.Errorf("product %s category %q: %w", p.ID, p.Category, ErrUnknownCategory)
		}
		if p.Price < 0 {
			return nil, fmt.Errorf("product %s: %w", p.ID, ErrNegativePrice)
		}
		c.productByID[p.ID] = i
	}
	return c, nil
}

// Books returns a copy of all books in catalog order.
func (c *Catalog) Books() []Book {
	return append([]Book(nil), c.books...)
}

// Products returns a copy of all products in catalog order.
func (c *Catalog) Products() []Product {
	return append([]Product(nil), c.products...)
}

// Book looks a book up by id.
func (c *Catalog) Book(id string) (Book, bool) {
	i, ok := c.bookByID[id]
	if !ok {
		return Book{}, false
	}
	return c.books[i], true
}

// Product looks a product up by id.
func (c *Catalog) Product(id string) (Product, bool) {
	i, ok := c.productByID[id]
	if !ok {
		return Product{}, false
	}
	return c.products[i], true
}

// SearchProducts applies Filter to the catalog's products.
func (c *Catalog) SearchProducts(q Query) []Product {
	return Filter(c.products, q)
}
