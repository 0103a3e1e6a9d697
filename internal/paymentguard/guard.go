package paymentguard

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

type Guard struct {
	redis         *redis.Client
	resultTtl     time.Duration
	createManager func(redis *redis.Client, log *zerolog.Logger, cacheKey string, resultTtl time.Duration) RequestManager
}

func New(redisClient *redis.Client, resultTtl time.Duration) *Guard {
	return &Guard{
		redis:         redisClient,
		resultTtl:     resultTtl,
		createManager: NewRequestManager,
	}
}

// Do runs requester at most once per key while its result is kept. Concurrent
// callers with the same key wait for the first one and get its result.
func (g *Guard) Do(ctx context.Context, log *zerolog.Logger, key string, requester func() (*Result, error)) (*Result, error) {
	return g.createManager(g.redis, log, key, g.resultTtl).HandleRequest(ctx, requester)
}
