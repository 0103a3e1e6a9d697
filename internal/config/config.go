package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	EnvPort              = "PORT"
	EnvEnvironment       = "ENV"
	EnvLogLevel          = "LOG_LEVEL"
	EnvTest              = "TEST"
	EnvBookingApiUrl     = "BOOKING_API_URL"
	EnvBookingApiTimeout = "BOOKING_API_TIMEOUT"
	EnvTokenSecret       = "TOKEN_SECRET"
	EnvStateRedisUri     = "STATE_REDIS_URI"
	EnvGuardRedisUri     = "GUARD_REDIS_URI"
	EnvPendingStateTtl   = "PENDING_STATE_TTL"
	EnvPaymentGuardTtl   = "PAYMENT_GUARD_TTL"
	EnvCurrencySymbol    = "CURRENCY_SYMBOL"
	EnvKafkaBrokers      = "ANOMALY_KAFKA_BROKERS"
	EnvKafkaTopic        = "ANOMALY_KAFKA_TOPIC"
	EnvOpenApiLocation   = "OPENAPI_LOCATION"
)

const (
	DefaultPort              = "8080"
	DefaultLogLevel          = "info"
	DefaultBookingApiUrl     = "https://travel-tour-mlya.onrender.com"
	DefaultBookingApiTimeout = 3 * time.Second
	DefaultStateRedisUri     = "redis://localhost:6379/0"
	DefaultPendingStateTtl   = 24 * time.Hour
	DefaultPaymentGuardTtl   = 2 * time.Minute
	DefaultCurrencySymbol    = "₹"
	DefaultKafkaTopic        = "booking-anomalies"
)

type Config struct {
	Port        string
	Environment string
	LogLevel    string
	Test        bool

	BookingApiUrl     string
	BookingApiTimeout time.Duration
	// Secret the booking api signs bearer tokens with. Tokens are only checked for
	// presence when empty
	TokenSecret string

	StateRedisUri string
	// Falls back to StateRedisUri when empty
	GuardRedisUri string

	PendingStateTtl time.Duration
	PaymentGuardTtl time.Duration

	CurrencySymbol string

	KafkaBrokers []string
	KafkaTopic   string

	OpenApiLocation string
}

// Load reads the configuration from the environment. Call godotenv before it
// when a .env file should be honored.
func Load() (*Config, error) {
	cfg := &Config{
		Port:        getEnvStr(EnvPort, DefaultPort),
		Environment: getEnvStr(EnvEnvironment, ""),
		LogLevel:    getEnvStr(EnvLogLevel, DefaultLogLevel),
		Test:        os.Getenv(EnvTest) == "true",

		BookingApiUrl:     getEnvStr(EnvBookingApiUrl, DefaultBookingApiUrl),
		BookingApiTimeout: getEnvDuration(EnvBookingApiTimeout, DefaultBookingApiTimeout),
		TokenSecret:       os.Getenv(EnvTokenSecret),

		StateRedisUri: getEnvStr(EnvStateRedisUri, DefaultStateRedisUri),
		GuardRedisUri: os.Getenv(EnvGuardRedisUri),

		PendingStateTtl: getEnvDuration(EnvPendingStateTtl, DefaultPendingStateTtl),
		PaymentGuardTtl: getEnvDuration(EnvPaymentGuardTtl, DefaultPaymentGuardTtl),

		CurrencySymbol: getEnvStr(EnvCurrencySymbol, DefaultCurrencySymbol),

		KafkaBrokers: getEnvList(EnvKafkaBrokers),
		KafkaTopic:   getEnvStr(EnvKafkaTopic, DefaultKafkaTopic),

		OpenApiLocation: os.Getenv(EnvOpenApiLocation),
	}

	if cfg.GuardRedisUri == "" {
		cfg.GuardRedisUri = cfg.StateRedisUri
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (cfg *Config) Validate() error {
	var errors []string

	if port, err := strconv.Atoi(cfg.Port); err != nil || port < 1 || port > 65535 {
		errors = append(errors, fmt.Sprintf("PORT must be between 1 and 65535, got: %s", cfg.Port))
	}

	if u, err := url.ParseRequestURI(cfg.BookingApiUrl); err != nil || u.Host == "" {
		errors = append(errors, fmt.Sprintf("BOOKING_API_URL must be an absolute url, got: %s", cfg.BookingApiUrl))
	}

	if cfg.BookingApiTimeout <= 0 {
		errors = append(errors, "BOOKING_API_TIMEOUT must be positive")
	}

	if cfg.StateRedisUri == "" {
		errors = append(errors, "STATE_REDIS_URI is required")
	}

	if cfg.PendingStateTtl <= 0 {
		errors = append(errors, "PENDING_STATE_TTL must be positive")
	}

	if cfg.PaymentGuardTtl <= 0 {
		errors = append(errors, "PAYMENT_GUARD_TTL must be positive")
	}

	if len(cfg.KafkaBrokers) > 0 && cfg.KafkaTopic == "" {
		errors = append(errors, "ANOMALY_KAFKA_TOPIC is required when brokers are set")
	}

	if len(errors) > 0 {
		return fmt.Errorf("invalid configuration: %s", strings.Join(errors, "; "))
	}

	return nil
}

func (cfg *Config) IsProduction() bool {
	return cfg.Environment == "production"
}

func getEnvStr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}

	duration, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}

	return duration
}

func getEnvList(key string) []string {
	var list []string
	for _, item := range strings.Split(os.Getenv(key), ",") {
		if item = strings.TrimSpace(item); item != "" {
			list = append(list, item)
		}
	}
	return list
}
