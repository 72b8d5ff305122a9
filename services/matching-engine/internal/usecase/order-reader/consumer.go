package orderreader

import (
	"context"
	"encoding/json"

	"github.com/muhammadchandra19/exchange/pkg/errors"
	"github.com/muhammadchandra19/exchange/pkg/logger"
	orderreaderv1 "github.com/muhammadchandra19/exchange/services/matching-engine/internal/domain/order-reader/v1"
	"github.com/muhammadchandra19/exchange/services/matching-engine/pkg/config"
	"github.com/segmentio/kafka-go"
)

type messageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Reader represents a Kafka Reader for consuming commands from the command topic.
type Reader struct {
	kafkaReader messageReader
	logger      *logger.Logger
}

var _ orderreaderv1.OrderReader = Reader{}

// NewReader creates a consumer-group reader. Offsets are committed
// explicitly through CommitMessages once a command has been handled.
func NewReader(config config.KafkaConfig, log *logger.Logger) Reader {
	kafkaReader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:     config.Brokers,
		Topic:       config.CommandTopic,
		GroupID:     config.GroupID,
		MinBytes:    1,
		MaxBytes:    10e6,
		StartOffset: kafka.FirstOffset,
	})

	return newReader(kafkaReader, log)
}

func newReader(r messageReader, log *logger.Logger) Reader {
	return Reader{
		kafkaReader: r,
		logger:      log,
	}
}

// logError is a helper method to log errors consistently
func (r Reader) logError(err error, operation string) {
	r.logger.Error(err,
		logger.NewField("error", err.Error()),
		logger.NewField("operation", operation),
	)
}

// ReadMessage fetches the next message and decodes it as a Command. A message
// that cannot be decoded is returned with a bad-request error so the caller
// can commit past it.
func (r Reader) ReadMessage(ctx context.Context) (kafka.Message, *orderreaderv1.Command, error) {
	msg, err := r.kafkaReader.FetchMessage(ctx)
	if err != nil {
		if ctx.Err() == nil {
			r.logError(err, "ReadMessage")
		}
		return kafka.Message{}, nil, errors.NewTracer(string(errors.KafkaReadError)).Wrap(err)
	}

	var cmd orderreaderv1.Command
	if err := json.Unmarshal(msg.Value, &cmd); err != nil {
		r.logError(err, "UnmarshalCommand")
		return msg, nil, errors.New(errors.GeneralBadRequestError, "malformed command: "+err.Error(), "value")
	}
	if err := cmd.Validate(); err != nil {
		r.logError(err, "ValidateCommand")
		return msg, nil, err
	}

	r.logger.Debug("ReadMessage",
		logger.NewField("pair", cmd.Pair),
		logger.NewField("action", cmd.Action),
		logger.NewField("offset", msg.Offset),
		logger.NewField("partition", msg.Partition),
	)
	return msg, &cmd, nil
}

// Close properly closes the Kafka reader.
func (r Reader) Close() error {
	if err := r.kafkaReader.Close(); err != nil {
		r.logError(err, "Close")
		return err
	}
	return nil
}

// CommitMessages commits the messages to Kafka after processing.
func (r Reader) CommitMessages(ctx context.Context, msgs ...kafka.Message) error {
	if err := r.kafkaReader.CommitMessages(ctx, msgs...); err != nil {
		r.logError(err, "CommitMessages")
		return err
	}
	return nil
}
