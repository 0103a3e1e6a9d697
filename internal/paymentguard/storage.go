package paymentguard

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/travel-tour/portal/internal/tools/slowlog"
)

const lockDuration = 1 * time.Minute

type CachedValue struct {
	PaymentLinkURL string `json:"paymentLinkUrl"`
}

type storage struct {
	redis   *redis.Client
	log     *zerolog.Logger
	slowLog slowlog.Logger
}

func (s *storage) AcquireLock(ctx context.Context, lockKey string) (bool, error) {
	response := s.redis.SetNX(ctx, lockKey, "", lockDuration)
	lockAcquired, err := response.Result()
	return lockAcquired, err
}

func (s *storage) ReleaseLock(ctx context.Context, lockKey string) {
	s.redis.Del(context.Background(), lockKey)
}

func (s *storage) StoreResult(ctx context.Context, resultKey string, result *Result, duration time.Duration) {
	bytes, err := json.Marshal(CachedValue{
		PaymentLinkURL: result.PaymentLinkURL,
	})
	if err != nil {
		s.log.Err(err).Msg("Unable to encode the payment result")
		return
	}

	err = s.redis.Set(context.Background(), resultKey, bytes, duration).Err()
	if err != nil {
		s.log.Err(err).Msg("Unable to store the payment result")
	}
}

func (s *storage) FetchResult(ctx context.Context, resultKey string) (*CachedValue, error) {
	s.slowLog.Start("paymentguard:fetch")
	defer s.slowLog.Stop("paymentguard:fetch")

	response, err := s.redis.Get(ctx, resultKey).Bytes()

	// no cache hit
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}

	// actual error
	if err != nil {
		return nil, err
	}

	value := CachedValue{}
	err = json.Unmarshal(response, &value)
	if err != nil {
		return nil, err
	}

	return &value, nil
}
