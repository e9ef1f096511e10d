package checkout

// ItemPrice is the unit price of a book line. A rental with a duration other
// than 7, 14 or 30 days prices at zero rather than failing.
func ItemPrice(item CartItem) float64 {
	if item.PurchaseType == PurchaseBuy {
		return item.Book.BuyPrice
	}
	switch item.RentDuration {
	case Rent7Days:
		return item.Book.RentPrice7Days
	case Rent14Days:
		return item.Book.RentPrice14Days
	case Rent30Days:
		return item.Book.RentPrice30Days
	default:
		return 0
	}
}

// ValidRentDuration reports whether days is a supported rental period.
func ValidRentDuration(days int) bool {
	return days == Rent7Days || days == Rent14Days || days == Rent30Days
}
