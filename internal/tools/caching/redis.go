package caching

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

type redisCache struct {
	redis *redis.Client
}

func (c *redisCache) Store(ctx context.Context, key string, value any, ttl time.Duration) error {
	_, err := c.redis.SetEx(ctx, key, value, ttl).Result()
	if err != nil {
		return err
	}

	return nil
}

func (c *redisCache) Take(ctx context.Context, key string) ([]byte, error) {
	value, err := c.redis.GetDel(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}

	return value, nil
}
