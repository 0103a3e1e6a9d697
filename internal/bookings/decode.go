package bookings

import (
	jsonEncoding "encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/travel-tour/portal/internal/anomaly"
	"github.com/travel-tour/portal/internal/bookings/json"
	"github.com/travel-tour/portal/internal/tools/converting"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// report json names, they are what the API owners know
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return v
}

// Decode turns raw booking records into bookings. Records that cannot be decoded or
// miss required fields are skipped and returned as anomalies.
func Decode(records []jsonEncoding.RawMessage) ([]Booking, []anomaly.Anomaly) {
	bookings := make([]Booking, 0, len(records))
	anomalies := []anomaly.Anomaly{}

	for position, record := range records {
		var rs json.BookingRS

		err := jsonEncoding.Unmarshal(record, &rs)
		if err == nil {
			err = validate.Struct(rs)
		}

		if err != nil {
			anomalies = append(anomalies, anomaly.New(
				anomaly.MalformedBookingRecord,
				rs.Id,
				fmt.Sprintf("booking record %d skipped: %s", position, describe(err)),
			))
			continue
		}

		bookings = append(bookings, toBooking(rs))
	}

	return bookings, anomalies
}

func describe(err error) string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err.Error()
	}

	messages := make([]string, 0, len(validationErrors))
	for _, fieldError := range validationErrors {
		field := strings.TrimPrefix(fieldError.Namespace(), "BookingRS.")
		messages = append(messages, fmt.Sprintf("%s failed on %s", field, fieldError.Tag()))
	}

	return strings.Join(messages, ", ")
}

func toBooking(rs json.BookingRS) Booking {
	booking := Booking{
		ID: rs.Id,
		Customer: Customer{
			ID:        rs.User.Id,
			FirstName: rs.User.FirstName,
			LastName:  rs.User.LastName,
		},
		Date:           rs.BookingDate,
		NumberOfPeople: rs.NumberOfPeople,
		TotalPrice:     rs.TotalPrice,
		Status:         converting.Unwrap(rs.Status),
	}

	if rs.Destination != nil {
		booking.Destination = Destination{
			ID:     converting.Unwrap(rs.Destination.Id),
			Name:   rs.Destination.Name,
			Price:  converting.Unwrap(rs.Destination.Price),
			Days:   converting.Unwrap(rs.Destination.Days),
			People: converting.Unwrap(rs.Destination.People),
		}
	}

	return booking
}
