package checkout

import (
	"context"
	"errors"
	"time"

	"github.com/travel-tour/portal/internal/tools/caching"
)

const pendingStateKeyPrefix = "bookingState:"

var ErrMissingOwner = errors.New("pending booking state needs an owner")

type pendingStore struct {
	cacher *caching.Cacher
	ttl    time.Duration
}

func NewPendingStore(cacher *caching.Cacher, ttl time.Duration) PendingStore {
	return &pendingStore{
		cacher: cacher,
		ttl:    ttl,
	}
}

func pendingStateKey(owner string) string {
	return pendingStateKeyPrefix + owner
}

func (s *pendingStore) Save(ctx context.Context, owner string, state PendingBookingState) error {
	if owner == "" {
		return ErrMissingOwner
	}

	return s.cacher.Store(ctx, pendingStateKey(owner), state, s.ttl)
}

// Take returns the pending state of the owner and clears it.
func (s *pendingStore) Take(ctx context.Context, owner string) (PendingBookingState, bool, error) {
	if owner == "" {
		return PendingBookingState{}, false, ErrMissingOwner
	}

	state := PendingBookingState{}
	found, err := s.cacher.Take(ctx, pendingStateKey(owner), &state)
	if err != nil || !found {
		return PendingBookingState{}, false, err
	}

	return state, true, nil
}
