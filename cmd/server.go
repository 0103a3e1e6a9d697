//go:build !integration

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/travel-tour/portal/internal/admin"
	"github.com/travel-tour/portal/internal/anomaly"
	"github.com/travel-tour/portal/internal/bookings"
	"github.com/travel-tour/portal/internal/checkout"
	"github.com/travel-tour/portal/internal/config"
	"github.com/travel-tour/portal/internal/identity"
	"github.com/travel-tour/portal/internal/payment"
	"github.com/travel-tour/portal/internal/paymentguard"
	"github.com/travel-tour/portal/internal/portal"
	"github.com/travel-tour/portal/internal/tools/caching"
	"github.com/travel-tour/portal/internal/tools/client"
	"github.com/travel-tour/portal/internal/tools/logger"
	"github.com/travel-tour/portal/internal/tools/redisfactory"
	"github.com/travel-tour/portal/internal/web"
)

const shutdownTimeout = 10 * time.Second

func serverApp(httpServer *http.Server, logger *zerolog.Logger, stop <-chan os.Signal) int {
	var shutdown atomic.Bool
	done := make(chan error, 1)
	go func() {
		logger.
			Info().
			Msg("Listening on address " + httpServer.Addr)
		done <- httpServer.ListenAndServe()
	}()
	go func() {
		// Wait for stop
		<-stop
		shutdown.Store(true)
		logger.Info().Msg("Shutting down server...")

		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		_ = httpServer.Shutdown(ctx)
	}()

	err := <-done
	if err != nil && !shutdown.Load() && !errors.Is(err, http.ErrServerClosed) {
		logger.
			Error().
			Err(err).
			Msg("Server failed")
		return 1
	}
	return 0
}

func anomalyReporter(cfg *config.Config, log *zerolog.Logger) (anomaly.Reporter, func()) {
	logReporter := anomaly.NewLogReporter(log)

	if len(cfg.KafkaBrokers) == 0 {
		return logReporter, func() {}
	}

	kafkaReporter, err := anomaly.NewKafkaReporter(cfg.KafkaBrokers, cfg.KafkaTopic, log)
	if err != nil {
		log.Warn().Err(err).Msg("Anomalies are only logged")
		return logReporter, func() {}
	}

	return anomaly.Multi(logReporter, kafkaReporter), func() {
		if err := kafkaReporter.Close(); err != nil {
			log.Err(err).Msg("Unable to close the anomaly writer")
		}
	}
}

func run() int {
	_ = godotenv.Load(".env")

	cfg, err := config.Load()
	if err != nil {
		log := logger.New(os.Getenv(config.EnvLogLevel))
		log.Error().Err(err).Msg("Invalid configuration")
		return 1
	}

	log := logger.New(cfg.LogLevel)

	redisFactory, err := redisfactory.New(cfg.StateRedisUri, cfg.GuardRedisUri)
	if err != nil {
		log.Error().Err(err).Msg("Invalid redis configuration")
		return 1
	}
	defer redisFactory.Close()

	reporter, closeReporter := anomalyReporter(cfg, log)
	defer closeReporter()

	clientOptions := []client.OptionFunc{
		client.WithBaseURL(cfg.BookingApiUrl),
		client.WithTimeout(cfg.BookingApiTimeout),
	}

	bookingsClient, err := bookings.NewClient(clientOptions...)
	if err != nil {
		log.Error().Err(err).Msg("Unable to create the bookings client")
		return 1
	}

	paymentClient, err := payment.NewClient(clientOptions...)
	if err != nil {
		log.Error().Err(err).Msg("Unable to create the payment client")
		return 1
	}

	appRouter := web.SetupRouter(cfg, log, portal.Dependencies{
		Loader:   bookings.NewLoader(bookingsClient, reporter),
		Renderer: admin.NewRenderer(cfg.CurrencySymbol),

		Payments: paymentClient,
		Store: checkout.NewPendingStore(
			caching.NewRedisCache(redisFactory.StateStoreClient()),
			cfg.PendingStateTtl,
		),
		Guard:    paymentguard.New(redisFactory.PaymentGuardClient(), cfg.PaymentGuardTtl),
		Reporter: reporter,
		Verifier: identity.NewVerifier(cfg.TokenSecret),

		CurrencySymbol: cfg.CurrencySymbol,
		SessionTtl:     cfg.PendingStateTtl,
		SecureCookies:  cfg.IsProduction(),
	})

	var host string
	if cfg.Test {
		host = "localhost"
	}

	httpServer := &http.Server{
		Addr:              fmt.Sprintf("%s:%s", host, cfg.Port),
		Handler:           appRouter,
		ReadHeaderTimeout: 5 * time.Second,
	}

	// Notify stop channel if SIGINT or SIGTERM is received
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	return serverApp(httpServer, log, stop)
}

func main() {
	os.Exit(run())
}
