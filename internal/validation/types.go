package validation

import "github.com/potterstore/storefront/internal/checkout"

// CheckoutRequest is the payload for POST /checkout. At least one book or product is required.
type CheckoutRequest struct {
	Books    []checkout.BookSelection    `json:"books" validate:"max=50,dive"`
	Products []checkout.ProductSelection `json:"products" validate:"max=50,dive"`
	Customer *checkout.CustomerInfo      `json:"customer_info,omitempty"`
}

// UpdateStatusRequest is the payload for PATCH /orders/:id/status.
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending confirmed completed cancelled"`
}

// ProductQuery is bound from the query string of GET /products.
type ProductQuery struct {
	Category string `form:"category" validate:"omitempty,product_category"`
	Search   string `form:"q" validate:"max=100"`
}
