package bookings

import (
	"context"
	jsonEncoding "encoding/json"
	"errors"

	"github.com/rs/zerolog"
	"github.com/travel-tour/portal/internal/anomaly"
	"github.com/travel-tour/portal/internal/schema"
	"github.com/travel-tour/portal/internal/tools/slowlog"
)

type Fetcher interface {
	FetchBookings(ctx context.Context, credentials schema.Credentials, logger *zerolog.Logger) ([]jsonEncoding.RawMessage, error)
}

type Result struct {
	View GroupedBookingView
	// Failed is set when the bookings could not be fetched, View is empty then
	Failed bool
	// Discarded is set when the caller went away before the fetch finished
	Discarded bool
	Anomalies []anomaly.Anomaly
}

type Loader struct {
	fetcher  Fetcher
	reporter anomaly.Reporter
}

func NewLoader(fetcher Fetcher, reporter anomaly.Reporter) *Loader {
	if reporter == nil {
		reporter = anomaly.Nop()
	}

	return &Loader{
		fetcher:  fetcher,
		reporter: reporter,
	}
}

// LoadGroupedBookings fetches all bookings and groups them by customer. It never
// fails: fetch errors are logged and produce an empty, failed result.
func (l *Loader) LoadGroupedBookings(ctx context.Context, credentials schema.Credentials, logger *zerolog.Logger) Result {
	slowLog := slowlog.CreateLogger(logger)
	slowLog.Start("bookings:load")
	defer slowLog.Stop("bookings:load")

	records, err := l.fetcher.FetchBookings(ctx, credentials, logger)

	if errors.Is(ctx.Err(), context.Canceled) {
		logger.Debug().Msg("Request cancelled, discarding bookings")
		return Result{View: NewGroupedBookingView(nil), Discarded: true}
	}

	if err != nil {
		logger.Err(err).Str("label", "bookings").Msg("Error fetching bookings")
		return Result{View: NewGroupedBookingView(nil), Failed: true}
	}

	bookings, anomalies := Decode(records)
	for _, a := range anomalies {
		l.reporter.Report(ctx, a)
	}

	view := NewGroupedBookingView(bookings)

	logger.Debug().
		Int("bookings", view.BookingCount()).
		Int("customers", view.Len()).
		Int("skipped", len(anomalies)).
		Msg("Grouped bookings")

	return Result{
		View:      view,
		Anomalies: anomalies,
	}
}
