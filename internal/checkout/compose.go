package checkout

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

const (
	greeting      = "Greetings! I would like to acquire the following from Potter:"
	booksHeader   = "📚 BOOKS:"
	productHeader = "📦 PRODUCTS:"
	totalLabel    = "Total Tribute: Rs "
	detailsHeader = "📋 Customer Details:"
	closing       = "Please confirm my order. 🦉"
)

// Summarize prices every cart line. Numbering starts at 1 and runs through
// the books and then the products.
func Summarize(books []CartItem, products []ProductCartItem) Summary {
	s := Summary{
		Books:    make([]Line, 0, len(books)),
		Products: make([]Line, 0, len(products)),
	}
	n := 1
	for _, it := range books {
		unit := ItemPrice(it)
		l := Line{
			Number:       n,
			Kind:         KindBook,
			RefID:        it.Book.ID,
			Name:         clean(it.Book.Title),
			PurchaseType: it.PurchaseType,
			Quantity:     it.Quantity,
			UnitPrice:    unit,
			Amount:       unit * float64(it.Quantity),
		}
		if it.PurchaseType != PurchaseBuy {
			l.RentDuration = it.RentDuration
		}
		s.Books = append(s.Books, l)
		s.Total += l.Amount
		n++
	}
	for _, it := range products {
		l := Line{
			Number:    n,
			Kind:      KindProduct,
			RefID:     it.Product.ID,
			Name:      clean(it.Product.Name),
			Quantity:  it.Quantity,
			UnitPrice: it.Product.Price,
			Amount:    it.Product.Price * float64(it.Quantity),
		}
		s.Products = append(s.Products, l)
		s.Total += l.Amount
		n++
	}
	return s
}

// Tag is the bracketed purchase label of a book line, empty for products.
func (l Line) Tag() string {
	if l.Kind != KindBook {
		return ""
	}
	if l.PurchaseType == PurchaseBuy {
		return "[Buy]"
	}
	return fmt.Sprintf("[Rent-%d Days]", l.RentDuration)
}

// String renders the line as it appears in the order message.
func (l Line) String() string {
	var b strings.Builder
	b.WriteString(strconv.Itoa(l.Number))
	b.WriteString(". ")
	if tag := l.Tag(); tag != "" {
		b.WriteString(tag)
		b.WriteByte(' ')
	}
	b.WriteString(l.Name)
	if l.Quantity > 1 {
		b.WriteString(" x")
		b.WriteString(strconv.Itoa(l.Quantity))
	}
	b.WriteString(" – Rs ")
	b.WriteString(FormatAmount(l.Amount))
	return b.String()
}

// ComposeMessage renders the plain-text order summary sent to the shop.
func ComposeMessage(books []CartItem, products []ProductCartItem, info *CustomerInfo) string {
	return RenderMessage(Summarize(books, products), info)
}

// RenderMessage renders an already computed summary.
func RenderMessage(s Summary, info *CustomerInfo) string {
	var items []string
	if len(s.Books) > 0 {
		items = append(items, booksHeader)
		for _, l := range s.Books {
			items = append(items, l.String())
		}
	}
	if len(s.Products) > 0 {
		if len(s.Books) > 0 {
			items = append(items, "")
		}
		items = append(items, productHeader)
		for _, l := range s.Products {
			items = append(items, l.String())
		}
	}

	msg := []string{
		greeting,
		"",
		strings.Join(items, "\n"),
		"",
		totalLabel + FormatAmount(s.Total),
	}
	if details := customerLines(info); len(details) > 0 {
		msg = append(msg, "", detailsHeader)
		msg = append(msg, details...)
	}
	msg = append(msg, "", closing)
	return strings.Join(msg, "\n")
}

func customerLines(info *CustomerInfo) []string {
	if info == nil {
		return nil
	}
	var out []string
	add := func(label, v string) {
		if v = clean(v); v != "" {
			out = append(out, "• "+label+": "+v)
		}
	}
	if t := clean(info.Type); t != "" {
		if t == CustomerCollege {
			add("Type", "College Student")
		} else {
			add("Type", "Outsider")
		}
	}
	add("Semester", info.Semester)
	add("Department", info.Department)
	add("Name", info.Name)
	add("Phone", info.Phone)
	return out
}

// HasCustomerInfo reports whether any customer field would be rendered.
func HasCustomerInfo(info *CustomerInfo) bool {
	return len(customerLines(info)) > 0
}

// FormatAmount renders a rupee amount with the fewest digits that round-trip: 500, 12.5.
func FormatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// clean replaces control characters with spaces and trims the result so free
// text can never break the line structure of the message.
func clean(s string) string {
	return strings.TrimSpace(strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return ' '
		}
		return r
	}, s))
}
