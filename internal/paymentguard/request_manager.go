package paymentguard

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/travel-tour/portal/internal/tools/slowlog"
)

// PollInterval between checks while another request holds the lock. Can be changed for testing.
var PollInterval = 400 * time.Millisecond

type Result struct {
	PaymentLinkURL string
}

type Storage interface {
	AcquireLock(ctx context.Context, lockKey string) (bool, error)
	ReleaseLock(ctx context.Context, lockKey string)
	StoreResult(ctx context.Context, resultKey string, result *Result, duration time.Duration)
	FetchResult(ctx context.Context, resultKey string) (*CachedValue, error)
}

type RequestManager interface {
	HandleRequest(context.Context, func() (*Result, error)) (*Result, error)
}

type requestManager struct {
	guardId   string
	cache     Storage
	log       *zerolog.Logger
	slowLog   slowlog.Logger
	cacheKey  string
	resultTtl time.Duration
}

// Key identifies one payment initiation. Repeated submits of the same booking and
// amount by the same caller share it, other callers never see its result.
func Key(caller string, bookingID string, passenger int, totalPrice float64) string {
	return fmt.Sprintf(
		"payment-lock:%s:%d:%s:%s",
		bookingID,
		passenger,
		strconv.FormatFloat(totalPrice, 'f', -1, 64),
		caller,
	)
}

func (m *requestManager) requestAndStore(
	resultKey string,
	requester func() (*Result, error),
) (*Result, error) {
	m.slowLog.Start("paymentguard:requestAndStore")
	defer m.slowLog.Stop("paymentguard:requestAndStore")

	result, err := requester()

	if err != nil {
		// failures are not kept, the user may retry right away
		m.cache.ReleaseLock(context.Background(), m.cacheKey)
		return nil, err
	}

	m.cache.StoreResult(context.Background(), resultKey, result, m.resultTtl)
	m.cache.ReleaseLock(context.Background(), m.cacheKey)

	return result, nil
}

func (m *requestManager) requestOrWait(ctx context.Context, requester func() (*Result, error)) (*Result, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	resultKey := "res:" + m.cacheKey

	cached, err := m.cache.FetchResult(ctx, resultKey)

	if err != nil {
		m.log.Err(err).
			Str("label", "paymentguard").
			Bool("hit", false).
			Str("key", resultKey).
			Msg("Error fetching from cache")

		return requester()
	}

	if cached != nil {
		m.log.Info().
			Str("label", "paymentguard").
			Bool("hit", true).
			Str("key", m.cacheKey).
			Msg("Used stored payment result")

		return &Result{PaymentLinkURL: cached.PaymentLinkURL}, nil
	}

	canMakeTheRequest, err := m.cache.AcquireLock(ctx, m.cacheKey)

	if err != nil || canMakeTheRequest {
		return m.requestAndStore(resultKey, requester)
	}

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-time.After(PollInterval):
	}

	return m.requestOrWait(ctx, requester)
}

func (m *requestManager) HandleRequest(ctx context.Context, requester func() (*Result, error)) (*Result, error) {
	m.slowLog.Start("paymentguard:HandleRequest")
	defer m.slowLog.Stop("paymentguard:HandleRequest")
	return m.requestOrWait(ctx, requester)
}

func NewRequestManager(
	redis *redis.Client,
	log *zerolog.Logger,
	cacheKey string,
	resultTtl time.Duration,
) RequestManager {
	guardId := uuid.New().String()
	logWithGuardId := log.With().Str("guardId", guardId).Logger()
	slowLog := slowlog.CreateLogger(&logWithGuardId)

	return &requestManager{
		guardId:  guardId,
		cacheKey: cacheKey,
		cache: &storage{
			redis:   redis,
			log:     &logWithGuardId,
			slowLog: slowLog,
		},
		log:       &logWithGuardId,
		slowLog:   slowLog,
		resultTtl: resultTtl,
	}
}
