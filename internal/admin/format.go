package admin

import (
	"strconv"
	"time"
)

const (
	displayDateLayout = "01/02/2006"
	InvalidDate       = "Invalid Date"
)

var bookingDateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// FormatDate renders a booking date as MM/DD/YYYY in UTC. Values that cannot be
// parsed render as "Invalid Date" instead of failing the row.
func FormatDate(raw string) string {
	for _, layout := range bookingDateLayouts {
		parsed, err := time.Parse(layout, raw)
		if err == nil {
			// the server has no viewer zone, dates near midnight may differ from the browser
			return parsed.UTC().Format(displayDateLayout)
		}
	}

	return InvalidDate
}

// FormatCost prefixes the amount with the currency symbol, no grouping.
func FormatCost(currencySymbol string, amount float64) string {
	return currencySymbol + " " + strconv.FormatFloat(amount, 'f', -1, 64)
}
