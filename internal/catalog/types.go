package catalog

import "time"

// Categories is the fixed set of merchandise categories, in display order.
var Categories = []string{
	"Stationery",
	"Lab Equipment",
	"Uniforms",
	"Calculators",
	"Electronics",
	"Art Supplies",
	"Sports",
	"Accessories",
}

// IsCategory reports whether c is one of Categories.
func IsCategory(c string) bool {
	for _, known := range Categories {
		if known == c {
			return true
		}
	}
	return false
}

// Product is a merchandise item. Products are immutable once loaded.
type Product struct {
	ID          string    `json:"id" yaml:"id"`
	Name        string    `json:"name" yaml:"name"`
	Description string    `json:"description" yaml:"description"`
	Category    string    `json:"category" yaml:"category"`
	Price       float64   `json:"price" yaml:"price"`
	ImageURL    string    `json:"image_url" yaml:"image_url"`
	IsAvailable bool      `json:"is_available" yaml:"is_available"`
	CreatedAt   time.Time `json:"created_at" yaml:"created_at"`
}

// Book can be bought outright or rented for 7, 14 or 30 days.
type Book struct {
	ID              string  `json:"id" yaml:"id"`
	Title           string  `json:"title" yaml:"title"`
	Author          string  `json:"author" yaml:"author"`
	Category        string  `json:"category" yaml:"category"`
	CoverURL        string  `json:"cover_url" yaml:"cover_url"`
	RentPrice7Days  float64 `json:"rent_price_7_days" yaml:"rent_price_7_days"`
	RentPrice14Days float64 `json:"rent_price_14_days" yaml:"rent_price_14_days"`
	RentPrice30Days float64 `json:"rent_price_30_days" yaml:"rent_price_30_days"`
	BuyPrice        float64 `json:"buy_price" yaml:"buy_price"`
	IsAvailable     bool    `json:"is_available" yaml:"is_available"`
}
