package bookings

import "strings"

type Customer struct {
	ID        string
	FirstName string
	LastName  string
}

func (c Customer) FullName() string {
	return strings.TrimSpace(c.FirstName + " " + c.LastName)
}

type Destination struct {
	ID     string
	Name   string
	Price  float64
	Days   int
	People int
}

type Booking struct {
	ID             string
	Customer       Customer
	Destination    Destination
	Date           string
	NumberOfPeople int
	TotalPrice     float64
	// As sent by the API, empty when missing. Not used for display.
	Status string
}

type CustomerBookings struct {
	Customer Customer
	Bookings []Booking
}

// GroupedBookingView holds bookings grouped by customer. Groups are ordered by the
// first appearance of the customer in the source list, bookings keep source order.
type GroupedBookingView struct {
	groups []CustomerBookings
	index  map[string]int
}

func NewGroupedBookingView(bookings []Booking) GroupedBookingView {
	view := GroupedBookingView{
		groups: []CustomerBookings{},
		index:  make(map[string]int),
	}

	for _, booking := range bookings {
		position, ok := view.index[booking.Customer.ID]
		if !ok {
			position = len(view.groups)
			view.index[booking.Customer.ID] = position
			view.groups = append(view.groups, CustomerBookings{
				Customer: booking.Customer,
			})
		}

		view.groups[position].Bookings = append(view.groups[position].Bookings, booking)
	}

	return view
}

func (v GroupedBookingView) Groups() []CustomerBookings {
	return v.groups
}

func (v GroupedBookingView) Get(customerID string) (CustomerBookings, bool) {
	position, ok := v.index[customerID]
	if !ok {
		return CustomerBookings{}, false
	}
	return v.groups[position], true
}

func (v GroupedBookingView) Len() int {
	return len(v.groups)
}

func (v GroupedBookingView) IsEmpty() bool {
	return len(v.groups) == 0
}

func (v GroupedBookingView) BookingCount() int {
	count := 0
	for _, group := range v.groups {
		count += len(group.Bookings)
	}
	return count
}
