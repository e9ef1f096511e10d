package catalog

import "strings"

// Query narrows a product listing. Empty fields match everything.
type Query struct {
	Category string
	Search   string
}

// Filter returns the products matching q in their original order.
// Category must match exactly; Search is a case-insensitive substring of
// the name, description or category. Both predicates must hold.
// The result is always a new slice.
func Filter(products []Product, q Query) []Product {
	needle := strings.ToLower(q.Search)
	out := make([]Product, 0, len(products))
	for _, p := range products {
		if q.Category != "" && p.Category != q.Category {
			continue
		}
		if needle != "" && !matchesText(p, needle) {
			continue
		}
		out = append(out, p)
	}
	return out
}

func matchesText(p Product, needle string) bool {
	return strings.Contains(strings.ToLower(p.Name), needle) ||
		strings.Contains(strings.ToLower(p.Description), needle) ||
		strings.Contains(strings.ToLower(p.Category), needle)
}
