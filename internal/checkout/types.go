package checkout

import "github.com/potterstore/storefront/internal/catalog"

// PurchaseMode says whether a book is bought outright or rented.
type PurchaseMode string

const (
	PurchaseBuy  PurchaseMode = "buy"
	PurchaseRent PurchaseMode = "rent"
)

// Supported rental durations, in days.
const (
	Rent7Days  = 7
	Rent14Days = 14
	Rent30Days = 30
)

// CartItem is a book line in the cart. RentDuration only matters for PurchaseRent.
type CartItem struct {
	Book         catalog.Book
	PurchaseType PurchaseMode
	RentDuration int
	Quantity     int
}

// ProductCartItem is a merchandise line in the cart.
type ProductCartItem struct {
	Product  catalog.Product
	Quantity int
}

// Customer types.
const (
	CustomerCollege  = "college"
	CustomerOutsider = "outsider"
)

// CustomerInfo is optional buyer metadata. Blank fields are omitted from the order message.
type CustomerInfo struct {
	Type       string `json:"type,omitempty" dynamodbav:"type,omitempty" validate:"omitempty,oneof=college outsider"`
	Semester   string `json:"semester,omitempty" dynamodbav:"semester,omitempty" validate:"max=32"`
	Department string `json:"department,omitempty" dynamodbav:"department,omitempty" validate:"max=128"`
	Name       string `json:"name,omitempty" dynamodbav:"name,omitempty" validate:"max=128"`
	Phone      string `json:"phone,omitempty" dynamodbav:"phone,omitempty" validate:"max=32"`
}

// Line kinds.
const (
	KindBook    = "book"
	KindProduct = "product"
)

// Line is one numbered, priced row of an order summary.
type Line struct {
	Number       int          `json:"number" dynamodbav:"number"`
	Kind         string       `json:"kind" dynamodbav:"kind"`
	RefID        string       `json:"ref_id,omitempty" dynamodbav:"ref_id,omitempty"`
	Name         string       `json:"name" dynamodbav:"name"`
	PurchaseType PurchaseMode `json:"purchase_type,omitempty" dynamodbav:"purchase_type,omitempty"`
	RentDuration int          `json:"rent_duration,omitempty" dynamodbav:"rent_duration,omitempty"`
	Quantity     int          `json:"quantity" dynamodbav:"quantity"`
	UnitPrice    float64      `json:"unit_price" dynamodbav:"unit_price"`
	Amount       float64      `json:"amount" dynamodbav:"amount"`
}

// Summary is the priced view of a cart: books first, then products.
type Summary struct {
	Books    []Line
	Products []Line
	Total    float64
}

// Lines returns book lines followed by product lines.
func (s Summary) Lines() []Line {
	out := make([]Line, 0, len(s.Books)+len(s.Products))
	out = append(out, s.Books...)
	return append(out, s.Products...)
}

// ItemCount is the total quantity across all lines.
func (s Summary) ItemCount() int {
	n := 0
	for _, l := range s.Lines() {
		n += l.Quantity
	}
	return n
}
