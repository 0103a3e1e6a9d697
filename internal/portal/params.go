package portal

import (
	"time"

	"github.com/oapi-codegen/runtime/types"
	"github.com/travel-tour/portal/internal/checkout"
)

// ConfirmationParams are posted by the booking form and echoed back by the
// confirmation modal.
type ConfirmationParams struct {
	Name           string  `form:"name" binding:"required"`
	Price          float64 `form:"price" binding:"gte=0"`
	Date           string  `form:"date" binding:"required"`
	NumberOfPeople int     `form:"numberOfPeople" binding:"gte=0"`
	TotalPrice     float64 `form:"totalPrice" binding:"gte=0"`
	Passenger      int     `form:"passenger" binding:"gte=1"`
	FromValue      string  `form:"fromValue"`
}

func (p *ConfirmationParams) details(bookingID string) (checkout.BookingDetails, error) {
	date, err := parseBookingDate(p.Date)
	if err != nil {
		return checkout.BookingDetails{}, err
	}

	return checkout.BookingDetails{
		Name:           p.Name,
		Price:          p.Price,
		Date:           date,
		NumberOfPeople: p.NumberOfPeople,
		TotalPrice:     p.TotalPrice,
		BookingID:      bookingID,
	}, nil
}

// parseBookingDate accepts a calendar date or a full timestamp.
func parseBookingDate(raw string) (types.Date, error) {
	if t, err := time.Parse(types.DateFormat, raw); err == nil {
		return types.Date{Time: t}, nil
	}

	t, err := time.Parse(time.RFC3339Nano, raw)
	if err != nil {
		return types.Date{}, err
	}

	return types.Date{Time: t.UTC()}, nil
}
