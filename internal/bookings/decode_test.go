package bookings

import (
	jsonEncoding "encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/travel-tour/portal/internal/anomaly"
)

func raw(records ...string) []jsonEncoding.RawMessage {
	messages := []jsonEncoding.RawMessage{}
	for _, record := range records {
		messages = append(messages, jsonEncoding.RawMessage(record))
	}
	return messages
}

func TestDecode(t *testing.T) {
	t.Run("should convert a complete record", func(t *testing.T) {
		bookings, anomalies := Decode(raw(`{
			"_id": "b1",
			"user": {"_id": "u1", "firstName": "Ann", "lastName": "Lee"},
			"destination": {"_id": "673111df060482f9314dc420", "name": "Agra", "price": 7790, "days": 4, "people": 25},
			"bookingDate": "2024-11-10T00:00:00.000Z",
			"numberOfPeople": 2,
			"totalPrice": 15580,
			"status": "Pending"
		}`))

		assert.Empty(t, anomalies)
		assert.Equal(t, []Booking{
			{
				ID:       "b1",
				Customer: Customer{ID: "u1", FirstName: "Ann", LastName: "Lee"},
				Destination: Destination{
					ID:     "673111df060482f9314dc420",
					Name:   "Agra",
					Price:  7790,
					Days:   4,
					People: 25,
				},
				Date:           "2024-11-10T00:00:00.000Z",
				NumberOfPeople: 2,
				TotalPrice:     15580,
				Status:         "Pending",
			},
		}, bookings)
	})

	t.Run("should skip malformed records and report them", func(t *testing.T) {
		tests := []struct {
			name            string
			record          string
			expectedID      string
			expectedMessage string
		}{
			{
				name:            "missing user",
				record:          `{"_id": "b2", "destination": {"name": "Goa"}}`,
				expectedID:      "b2",
				expectedMessage: "booking record 1 skipped: user failed on required",
			},
			{
				name:            "null user",
				record:          `{"_id": "b2", "user": null}`,
				expectedID:      "b2",
				expectedMessage: "booking record 1 skipped: user failed on required",
			},
			{
				name:            "missing user id",
				record:          `{"_id": "b2", "user": {"firstName": "Bo"}}`,
				expectedID:      "b2",
				expectedMessage: "booking record 1 skipped: user._id failed on required",
			},
			{
				name:       "user not populated",
				record:     `{"_id": "b2", "user": "u2"}`,
				expectedID: "b2",
			},
			{
				name:            "missing booking id",
				record:          `{"user": {"_id": "u2"}}`,
				expectedID:      "",
				expectedMessage: "booking record 1 skipped: _id failed on required",
			},
			{
				name:            "negative price",
				record:          `{"_id": "b2", "user": {"_id": "u2"}, "totalPrice": -1}`,
				expectedID:      "b2",
				expectedMessage: "booking record 1 skipped: totalPrice failed on gte",
			},
			{
				name:   "not an object",
				record: `42`,
			},
		}

		for _, test := range tests {
			t.Run(test.name, func(t *testing.T) {
				bookings, anomalies := Decode(raw(
					`{"_id": "b1", "user": {"_id": "u1"}}`,
					test.record,
					`{"_id": "b3", "user": {"_id": "u1"}}`,
				))

				assert.Equal(t, []string{"b1", "b3"}, bookingIDs(bookings))
				assert.Len(t, anomalies, 1)
				assert.Equal(t, anomaly.MalformedBookingRecord, anomalies[0].Kind)
				assert.Equal(t, test.expectedID, anomalies[0].BookingID)
				if test.expectedMessage != "" {
					assert.Equal(t, test.expectedMessage, anomalies[0].Message)
				}
			})
		}
	})

	t.Run("should tolerate a missing destination", func(t *testing.T) {
		bookings, anomalies := Decode(raw(`{"_id": "b1", "user": {"_id": "u1"}}`))

		assert.Empty(t, anomalies)
		assert.Equal(t, Destination{}, bookings[0].Destination)
	})
}
