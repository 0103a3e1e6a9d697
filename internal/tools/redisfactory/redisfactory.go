package redisfactory

import (
	"time"

	"github.com/redis/go-redis/v9"
)

// If one connection needs to be broken up new function should be introduced
// example: PendingStateClient()

type Factory struct {
	stateStore   *redis.Client
	paymentGuard *redis.Client
}

func newClient(uri string) (*redis.Client, error) {
	opt, err := redis.ParseURL(uri)
	if err != nil {
		return nil, err
	}

	opt.DialTimeout = 4 * time.Second
	opt.ReadTimeout = 3 * time.Second
	opt.WriteTimeout = 3 * time.Second

	return redis.NewClient(opt), nil
}

func New(stateStoreUri string, paymentGuardUri string) (*Factory, error) {
	stateStore, err := newClient(stateStoreUri)
	if err != nil {
		return nil, err
	}

	paymentGuard := stateStore
	if paymentGuardUri != "" && paymentGuardUri != stateStoreUri {
		paymentGuard, err = newClient(paymentGuardUri)
		if err != nil {
			return nil, err
		}
	}

	return &Factory{
		stateStore:   stateStore,
		paymentGuard: paymentGuard,
	}, nil
}

func (f *Factory) StateStoreClient() *redis.Client {
	return f.stateStore
}

func (f *Factory) PaymentGuardClient() *redis.Client {
	return f.paymentGuard
}

func (f *Factory) Close() error {
	if f.paymentGuard != f.stateStore {
		if err := f.paymentGuard.Close(); err != nil {
			return err
		}
	}

	return f.stateStore.Close()
}
