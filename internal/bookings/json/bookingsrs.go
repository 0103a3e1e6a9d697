package json

import jsonEncoding "encoding/json"

// BookingsRS is the envelope of GET /api/admin/bookings. Records are kept raw so
// one malformed record does not fail the whole list.
type BookingsRS struct {
	Bookings *[]jsonEncoding.RawMessage `json:"bookings"`
}

type BookingRS struct {
	Id             string         `json:"_id" validate:"required"`
	User           *UserRS        `json:"user" validate:"required"`
	Destination    *DestinationRS `json:"destination"`
	BookingDate    string         `json:"bookingDate"`
	NumberOfPeople int            `json:"numberOfPeople" validate:"gte=0"`
	TotalPrice     float64        `json:"totalPrice" validate:"gte=0"`
	Status         *string        `json:"status,omitempty"`
}

type UserRS struct {
	Id        string `json:"_id" validate:"required"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

type DestinationRS struct {
	Id     *string  `json:"_id,omitempty"`
	Name   string   `json:"name"`
	Price  *float64 `json:"price,omitempty"`
	Days   *int     `json:"days,omitempty"`
	People *int     `json:"people,omitempty"`
}
