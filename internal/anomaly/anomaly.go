package anomaly

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

type Kind string

const (
	MalformedBookingRecord Kind = "malformed_booking_record"
	MissingPaymentLink     Kind = "missing_payment_link"
)

// Anomaly is a condition that did not fail the request but should be looked at.
type Anomaly struct {
	Kind       Kind      `json:"kind"`
	BookingID  string    `json:"bookingId,omitempty"`
	Message    string    `json:"message"`
	OccurredAt time.Time `json:"occurredAt"`
}

type Reporter interface {
	Report(ctx context.Context, a Anomaly)
}

// CurrentTimeFunc Current time. Can be mocked for testing.
var CurrentTimeFunc = time.Now

func New(kind Kind, bookingID string, message string) Anomaly {
	return Anomaly{
		Kind:       kind,
		BookingID:  bookingID,
		Message:    message,
		OccurredAt: CurrentTimeFunc(),
	}
}

type logReporter struct {
	log *zerolog.Logger
}

func NewLogReporter(log *zerolog.Logger) Reporter {
	return &logReporter{log: log}
}

func (r *logReporter) Report(ctx context.Context, a Anomaly) {
	r.log.Warn().
		Str("label", "anomaly").
		Str("kind", string(a.Kind)).
		Str("bookingId", a.BookingID).
		Msg(a.Message)
}

type multiReporter []Reporter

// Multi reports to every reporter in order.
func Multi(reporters ...Reporter) Reporter {
	return multiReporter(reporters)
}

func (m multiReporter) Report(ctx context.Context, a Anomaly) {
	for _, reporter := range m {
		reporter.Report(ctx, a)
	}
}

type nopReporter struct{}

func Nop() Reporter {
	return nopReporter{}
}

func (nopReporter) Report(context.Context, Anomaly) {}
