package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	t.Run("should apply defaults", func(t *testing.T) {
		for _, key := range []string{
			EnvPort, EnvBookingApiUrl, EnvBookingApiTimeout, EnvStateRedisUri, EnvGuardRedisUri,
			EnvPendingStateTtl, EnvPaymentGuardTtl, EnvCurrencySymbol, EnvKafkaBrokers, EnvKafkaTopic,
		} {
			t.Setenv(key, "")
		}

		cfg, err := Load()

		assert.NoError(t, err)
		assert.Equal(t, DefaultPort, cfg.Port)
		assert.Equal(t, DefaultBookingApiUrl, cfg.BookingApiUrl)
		assert.Equal(t, DefaultBookingApiTimeout, cfg.BookingApiTimeout)
		assert.Equal(t, DefaultStateRedisUri, cfg.GuardRedisUri)
		assert.Equal(t, DefaultPendingStateTtl, cfg.PendingStateTtl)
		assert.Equal(t, "₹", cfg.CurrencySymbol)
		assert.Empty(t, cfg.KafkaBrokers)
	})

	t.Run("should read the environment", func(t *testing.T) {
		t.Setenv(EnvPort, "9090")
		t.Setenv(EnvBookingApiUrl, "http://localhost:5000")
		t.Setenv(EnvBookingApiTimeout, "500ms")
		t.Setenv(EnvGuardRedisUri, "redis://guard:6379/1")
		t.Setenv(EnvKafkaBrokers, "kafka-1:9092, kafka-2:9092,")
		t.Setenv(EnvEnvironment, "production")
		t.Setenv(EnvTokenSecret, "secret")

		cfg, err := Load()

		assert.NoError(t, err)
		assert.Equal(t, "9090", cfg.Port)
		assert.Equal(t, 500*time.Millisecond, cfg.BookingApiTimeout)
		assert.Equal(t, "redis://guard:6379/1", cfg.GuardRedisUri)
		assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, cfg.KafkaBrokers)
		assert.True(t, cfg.IsProduction())
		assert.Equal(t, "secret", cfg.TokenSecret)
	})

	t.Run("should reject invalid values", func(t *testing.T) {
		tests := []struct {
			name  string
			key   string
			value string
		}{
			{"port", EnvPort, "http"},
			{"api url", EnvBookingApiUrl, "travel-tour"},
			{"timeout", EnvBookingApiTimeout, "-1s"},
		}

		for _, test := range tests {
			t.Run(test.name, func(t *testing.T) {
				t.Setenv(test.key, test.value)

				cfg, err := Load()

				assert.Nil(t, cfg)
				assert.Error(t, err)
			})
		}
	})
}
