package network

import (
	"context"
	"encoding/json"
	"time"

	"github.com/muhammadchandra19/exchange/pkg/errors"
	"github.com/muhammadchandra19/exchange/pkg/grpclib/health"
	"github.com/muhammadchandra19/exchange/pkg/logger"
	networkv1 "github.com/muhammadchandra19/exchange/services/matching-engine/internal/domain/network/v1"
	"github.com/muhammadchandra19/exchange/services/matching-engine/pkg/config"
	"github.com/segmentio/kafka-go"
)

const (
	// ModeKafka is reported by Authenticate.
	ModeKafka = "kafka"

	defaultWriteBatchTimeout = 10 * time.Millisecond
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaAdapter writes every envelope to one topic, keyed by channel so that
// a channel's messages stay on one partition and in order.
type KafkaAdapter struct {
	healthReporter
	writer messageWriter
}

var (
	_ networkv1.Adapter   = (*KafkaAdapter)(nil)
	_ networkv1.Publisher = (*KafkaAdapter)(nil)
)

// NewKafkaAdapter creates an adapter writing to cfg.EventTopic. hs may be nil.
func NewKafkaAdapter(cfg config.KafkaConfig, hs *health.Server, log *logger.Logger) *KafkaAdapter {
	return newKafkaAdapter(newEventWriter(cfg), hs, log)
}

// newEventWriter builds the writer used for envelopes. Every publish is a
// single synchronous write, so BatchTimeout is the per-publish latency floor;
// kafka-go would otherwise wait a full second for each batch.
func newEventWriter(cfg config.KafkaConfig) *kafka.Writer {
	batchTimeout := cfg.WriteBatchTimeout
	if batchTimeout <= 0 {
		batchTimeout = defaultWriteBatchTimeout
	}

	return &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.EventTopic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
		BatchTimeout: batchTimeout,
	}
}

func newKafkaAdapter(writer messageWriter, hs *health.Server, log *logger.Logger) *KafkaAdapter {
	return &KafkaAdapter{
		healthReporter: healthReporter{server: hs, logger: log},
		writer:         writer,
	}
}

// Authenticate implements networkv1.Adapter.
func (a *KafkaAdapter) Authenticate(context.Context) (networkv1.SessionStatus, error) {
	return networkv1.SessionStatus{Mode: ModeKafka}, nil
}

// PublishPublicEvent implements networkv1.Adapter.
func (a *KafkaAdapter) PublishPublicEvent(ctx context.Context, channel string, payload any) error {
	return a.write(ctx, channel, payload)
}

// PublishPrivateEvent implements networkv1.Adapter.
func (a *KafkaAdapter) PublishPrivateEvent(ctx context.Context, channel string, payload any) error {
	return a.write(ctx, channel, payload)
}

// Publish implements networkv1.Publisher.
func (a *KafkaAdapter) Publish(ctx context.Context, topic string, payload any) error {
	return a.write(ctx, topic, payload)
}

// Close flushes pending writes.
func (a *KafkaAdapter) Close() error {
	return a.writer.Close()
}

func (a *KafkaAdapter) write(ctx context.Context, channel string, payload any) error {
	envelope := NewEnvelope(ctx, channel, payload)
	value, err := json.Marshal(envelope)
	if err != nil {
		return errors.NewTracer("envelope_marshal_error").Wrap(err)
	}

	msg := kafka.Message{
		Key:   []byte(channel),
		Value: value,
	}
	if err := a.writer.WriteMessages(ctx, msg); err != nil {
		a.logger.ErrorContext(ctx, err,
			logger.NewField("channel", channel),
			logger.NewField("envelope", envelope.ID),
		)
		return errors.NewTracer(string(errors.KafkaWriteError)).Wrap(err)
	}
	return nil
}
