package checkout

import (
	"strconv"

	"github.com/oapi-codegen/runtime/types"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

const dateLayout = "01/02/2006"

type Summary struct {
	To             string
	From           string
	Date           string
	Price          string
	NumberOfPeople string
	TotalPrice     string
}

var printer = message.NewPrinter(language.English)

// Summary of the booking under review. The unit price is grouped by thousands, the
// total is printed as is.
func (m *Modal) Summary(currencySymbol string) Summary {
	return Summary{
		To:             m.details.Name,
		From:           m.fromValue,
		Date:           formatDate(m.details.Date),
		Price:          currencySymbol + printer.Sprint(number.Decimal(m.details.Price)),
		NumberOfPeople: strconv.Itoa(m.passenger),
		TotalPrice:     currencySymbol + strconv.FormatFloat(m.details.TotalPrice, 'f', -1, 64),
	}
}

func formatDate(date types.Date) string {
	if date.Time.IsZero() {
		return ""
	}
	return date.Time.Format(dateLayout)
}
