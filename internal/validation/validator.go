package validation

import (
	validatorv10 "github.com/go-playground/validator/v10"

	"github.com/potterstore/storefront/internal/catalog"
)

// New returns a configured validator with the storefront's custom rules registered.
func New() *validatorv10.Validate {
	v := validatorv10.New()

	_ = v.RegisterValidation("product_category", func(fl validatorv10.FieldLevel) bool {
		return catalog.IsCategory(fl.Field().String())
	})

	// a checkout must contain something to order
	v.RegisterStructValidation(checkoutStructValidation, CheckoutRequest{})

	return v
}

func checkoutStructValidation(sl validatorv10.StructLevel) {
	req := sl.Current().Interface().(CheckoutRequest)
	if len(req.Books)+len(req.Products) == 0 {
		sl.ReportError(req.Books, "books", "Books", "cart_not_empty", "")
	}
}
