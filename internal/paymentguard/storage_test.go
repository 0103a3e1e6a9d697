package paymentguard

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/travel-tour/portal/internal/tools/slowlog"
)

func TestStorage(t *testing.T) {
	out := &bytes.Buffer{}
	log := zerolog.New(out)
	slowLog := slowlog.CreateLogger(&log)

	newStorage := func() (*storage, redismock.ClientMock) {
		redisClient, redisMock := redismock.NewClientMock()
		return &storage{redis: redisClient, log: &log, slowLog: slowLog}, redisMock
	}

	t.Run("should acquire lock successfully", func(t *testing.T) {
		s, redisMock := newStorage()
		redisMock.ExpectSetNX("cacheKey", "", 1*time.Minute).SetVal(true)

		lock, err := s.AcquireLock(context.TODO(), "cacheKey")
		assert.Nil(t, err)
		assert.True(t, lock)
	})

	t.Run("should handle refused locking", func(t *testing.T) {
		s, redisMock := newStorage()
		redisMock.ExpectSetNX("cacheKey", "", 1*time.Minute).SetVal(false)

		lock, err := s.AcquireLock(context.TODO(), "cacheKey")
		assert.Nil(t, err)
		assert.False(t, lock)
	})

	t.Run("should handle context timeout", func(t *testing.T) {
		s, _ := newStorage()
		ctx, cancel := context.WithTimeout(context.Background(), 0)
		cancel()

		lock, err := s.AcquireLock(ctx, "cacheKey")
		assert.NotNil(t, err)
		assert.False(t, lock)
	})

	t.Run("should release the lock", func(t *testing.T) {
		s, redisMock := newStorage()
		redisMock.ExpectDel("cacheKey").SetVal(1)

		s.ReleaseLock(context.TODO(), "cacheKey")
		assert.NoError(t, redisMock.ExpectationsWereMet())
	})

	t.Run("should store the result", func(t *testing.T) {
		s, redisMock := newStorage()
		redisMock.ExpectSet("res:cacheKey", []byte(`{"paymentLinkUrl":"https://pay.example.com/pl_1"}`), 2*time.Minute).SetVal("OK")

		s.StoreResult(context.TODO(), "res:cacheKey", &Result{PaymentLinkURL: "https://pay.example.com/pl_1"}, 2*time.Minute)
		assert.NoError(t, redisMock.ExpectationsWereMet())
	})

	t.Run("should fetch the result", func(t *testing.T) {
		tests := []struct {
			name          string
			prepare       func(mock redismock.ClientMock)
			expectedValue *CachedValue
			expectError   bool
		}{
			{
				name: "hit",
				prepare: func(mock redismock.ClientMock) {
					mock.ExpectGet("res:cacheKey").SetVal(`{"paymentLinkUrl":"https://pay.example.com/pl_1"}`)
				},
				expectedValue: &CachedValue{PaymentLinkURL: "https://pay.example.com/pl_1"},
			},
			{
				name: "miss",
				prepare: func(mock redismock.ClientMock) {
					mock.ExpectGet("res:cacheKey").RedisNil()
				},
				expectedValue: nil,
			},
			{
				name: "redis error",
				prepare: func(mock redismock.ClientMock) {
					mock.ExpectGet("res:cacheKey").SetErr(errors.New("connection refused"))
				},
				expectError: true,
			},
			{
				name: "broken value",
				prepare: func(mock redismock.ClientMock) {
					mock.ExpectGet("res:cacheKey").SetVal(`{`)
				},
				expectError: true,
			},
		}

		for _, test := range tests {
			t.Run(test.name, func(t *testing.T) {
				s, redisMock := newStorage()
				test.prepare(redisMock)

				value, err := s.FetchResult(context.TODO(), "res:cacheKey")

				if test.expectError {
					assert.Error(t, err)
					assert.Nil(t, value)
					return
				}

				assert.NoError(t, err)
				assert.Equal(t, test.expectedValue, value)
			})
		}
	})
}
