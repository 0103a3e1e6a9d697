package admin

import "github.com/travel-tour/portal/internal/bookings"

const (
	ColumnCount    = 7
	NoBookingsText = "No Bookings Found"
)

var Columns = [ColumnCount]string{"Customer", "Booking ID", "Destination", "Date", "Peoples", "Cost", "Status"}

type RowKind string

const (
	RowCustomer RowKind = "customer"
	RowBooking  RowKind = "booking"
	RowEmpty    RowKind = "empty"
)

type Row struct {
	Kind RowKind
	// Number of columns the first cell spans, customer and empty rows only
	ColSpan int
	// Customer full name or the empty text
	Text string

	BookingID   string
	Destination string
	Date        string
	People      int
	Cost        string
	Status      Status
	Badge       BadgeStyle
}

type Table struct {
	Columns [ColumnCount]string
	Loading bool
	Rows    []Row
}

type Renderer struct {
	currencySymbol string
}

func NewRenderer(currencySymbol string) *Renderer {
	return &Renderer{currencySymbol: currencySymbol}
}

// BuildTable lays out one header row per customer followed by their bookings.
// A loading table has no rows.
func (r *Renderer) BuildTable(view bookings.GroupedBookingView, loading bool) Table {
	table := Table{
		Columns: Columns,
		Loading: loading,
	}

	if loading {
		return table
	}

	if view.IsEmpty() {
		table.Rows = []Row{{Kind: RowEmpty, ColSpan: ColumnCount, Text: NoBookingsText}}
		return table
	}

	table.Rows = make([]Row, 0, view.Len()+view.BookingCount())

	for _, group := range view.Groups() {
		table.Rows = append(table.Rows, Row{
			Kind:    RowCustomer,
			ColSpan: ColumnCount,
			Text:    group.Customer.FullName(),
		})

		for _, booking := range group.Bookings {
			table.Rows = append(table.Rows, r.bookingRow(booking))
		}
	}

	return table
}

func (r *Renderer) bookingRow(booking bookings.Booking) Row {
	return Row{
		Kind:        RowBooking,
		BookingID:   booking.ID,
		Destination: booking.Destination.Name,
		Date:        FormatDate(booking.Date),
		People:      booking.NumberOfPeople,
		Cost:        FormatCost(r.currencySymbol, booking.TotalPrice),
		Status:      DisplayedStatus,
		Badge:       StatusBadge(DisplayedStatus),
	}
}
