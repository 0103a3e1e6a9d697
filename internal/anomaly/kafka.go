package anomaly

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"github.com/segmentio/kafka-go"
)

var ErrMissingBrokers = errors.New("at least one broker is required")

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type KafkaReporter struct {
	writer  messageWriter
	log     *zerolog.Logger
	timeout time.Duration
}

func NewKafkaReporter(brokers []string, topic string, log *zerolog.Logger) (*KafkaReporter, error) {
	if len(brokers) == 0 {
		return nil, ErrMissingBrokers
	}

	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
		BatchTimeout: 10 * time.Millisecond,
		Async:        true,
		Logger:       kafka.LoggerFunc(func(msg string, args ...any) {}),
		ErrorLogger: kafka.LoggerFunc(func(msg string, args ...any) {
			log.Error().Str("label", "anomaly-kafka").Msgf(msg, args...)
		}),
	}

	return newKafkaReporter(writer, log), nil
}

func newKafkaReporter(writer messageWriter, log *zerolog.Logger) *KafkaReporter {
	return &KafkaReporter{
		writer:  writer,
		log:     log,
		timeout: 2 * time.Second,
	}
}

// Report never blocks the caller longer than the reporter timeout. Failures are logged.
func (r *KafkaReporter) Report(ctx context.Context, a Anomaly) {
	value, err := json.Marshal(a)
	if err != nil {
		r.log.Err(err).Str("label", "anomaly-kafka").Msg("Unable to encode anomaly")
		return
	}

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), r.timeout)
	defer cancel()

	err = r.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(a.BookingID),
		Value: value,
		Headers: []kafka.Header{
			{Key: "kind", Value: []byte(a.Kind)},
		},
	})
	if err != nil {
		r.log.Err(err).Str("label", "anomaly-kafka").Msg("Unable to publish anomaly")
	}
}

func (r *KafkaReporter) Close() error {
	return r.writer.Close()
}
