package bookings

import (
	"bytes"
	"context"
	jsonEncoding "encoding/json"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/travel-tour/portal/internal/anomaly"
	"github.com/travel-tour/portal/internal/schema"
)

type fetcherMock struct {
	credentials schema.Credentials
	fetchMock   func(ctx context.Context) ([]jsonEncoding.RawMessage, error)
}

func (f *fetcherMock) FetchBookings(
	ctx context.Context,
	credentials schema.Credentials,
	logger *zerolog.Logger,
) ([]jsonEncoding.RawMessage, error) {
	f.credentials = credentials
	return f.fetchMock(ctx)
}

type reporterMock struct {
	reported []anomaly.Anomaly
}

func (r *reporterMock) Report(ctx context.Context, a anomaly.Anomaly) {
	r.reported = append(r.reported, a)
}

func TestLoadGroupedBookings(t *testing.T) {
	out := &bytes.Buffer{}
	log := zerolog.New(out)

	t.Run("should fetch on behalf of the caller", func(t *testing.T) {
		fetcher := &fetcherMock{
			fetchMock: func(ctx context.Context) ([]jsonEncoding.RawMessage, error) {
				return raw(), nil
			},
		}

		NewLoader(fetcher, nil).LoadGroupedBookings(context.TODO(), schema.Credentials{Token: "caller-token"}, &log)

		assert.Equal(t, schema.Credentials{Token: "caller-token"}, fetcher.credentials)
	})

	t.Run("should group fetched bookings", func(t *testing.T) {
		reporter := &reporterMock{}
		loader := NewLoader(&fetcherMock{
			fetchMock: func(ctx context.Context) ([]jsonEncoding.RawMessage, error) {
				return raw(
					`{"_id": "b1", "user": {"_id": "u1", "firstName": "Ann", "lastName": "Lee"}}`,
					`{"_id": "b2", "user": {"_id": "u1", "firstName": "Ann", "lastName": "Lee"}}`,
					`{"_id": "b3", "user": {"_id": "u2", "firstName": "Bo", "lastName": "Ray"}}`,
				), nil
			},
		}, reporter)

		result := loader.LoadGroupedBookings(context.TODO(), schema.Credentials{Token: "admin-token"}, &log)

		assert.False(t, result.Failed)
		assert.False(t, result.Discarded)
		assert.Equal(t, 2, result.View.Len())
		assert.Equal(t, 3, result.View.BookingCount())
		assert.Empty(t, reporter.reported)
	})

	t.Run("should report malformed records", func(t *testing.T) {
		reporter := &reporterMock{}
		loader := NewLoader(&fetcherMock{
			fetchMock: func(ctx context.Context) ([]jsonEncoding.RawMessage, error) {
				return raw(
					`{"_id": "b1", "user": {"_id": "u1"}}`,
					`{"_id": "b2"}`,
				), nil
			},
		}, reporter)

		result := loader.LoadGroupedBookings(context.TODO(), schema.Credentials{Token: "admin-token"}, &log)

		assert.Equal(t, 1, result.View.BookingCount())
		assert.Len(t, result.Anomalies, 1)
		assert.Equal(t, result.Anomalies, reporter.reported)
		assert.Equal(t, "b2", reporter.reported[0].BookingID)
	})

	t.Run("should fall back to an empty view on fetch failure", func(t *testing.T) {
		out := &bytes.Buffer{}
		log := zerolog.New(out)

		loader := NewLoader(&fetcherMock{
			fetchMock: func(ctx context.Context) ([]jsonEncoding.RawMessage, error) {
				return nil, errors.New("connection refused")
			},
		}, nil)

		result := loader.LoadGroupedBookings(context.TODO(), schema.Credentials{Token: "admin-token"}, &log)

		assert.True(t, result.Failed)
		assert.True(t, result.View.IsEmpty())
		assert.Contains(t, out.String(), "Error fetching bookings")
		assert.Contains(t, out.String(), "connection refused")
	})

	t.Run("should discard the result of a cancelled request", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())

		loader := NewLoader(&fetcherMock{
			fetchMock: func(ctx context.Context) ([]jsonEncoding.RawMessage, error) {
				cancel()
				return raw(`{"_id": "b1", "user": {"_id": "u1"}}`), nil
			},
		}, nil)

		result := loader.LoadGroupedBookings(ctx, schema.Credentials{Token: "admin-token"}, &log)

		assert.True(t, result.Discarded)
		assert.True(t, result.View.IsEmpty())
	})
}
