package network

import (
	"context"
	"encoding/json"

	"github.com/muhammadchandra19/exchange/pkg/errors"
	"github.com/muhammadchandra19/exchange/pkg/grpclib/health"
	"github.com/muhammadchandra19/exchange/pkg/logger"
	"github.com/muhammadchandra19/exchange/pkg/redis"
	networkv1 "github.com/muhammadchandra19/exchange/services/matching-engine/internal/domain/network/v1"
)

// ModeRedis is reported by Authenticate.
const ModeRedis = "redis"

// RedisAdapter publishes envelopes on Redis pub/sub channels named
// <prefix><channel>. Having no subscribers is not an error.
type RedisAdapter struct {
	healthReporter
	client redis.Client
	config *redis.Config
}

var (
	_ networkv1.Adapter   = (*RedisAdapter)(nil)
	_ networkv1.Publisher = (*RedisAdapter)(nil)
)

// NewRedisAdapter creates an adapter on a connected client. hs may be nil.
func NewRedisAdapter(client redis.Client, cfg *redis.Config, hs *health.Server, log *logger.Logger) *RedisAdapter {
	return &RedisAdapter{
		healthReporter: healthReporter{server: hs, logger: log},
		client:         client,
		config:         cfg,
	}
}

// Authenticate checks the connection and reports the transport.
func (a *RedisAdapter) Authenticate(ctx context.Context) (networkv1.SessionStatus, error) {
	if err := a.client.Ping(ctx); err != nil {
		return networkv1.SessionStatus{}, err
	}
	return networkv1.SessionStatus{Mode: ModeRedis}, nil
}

// PublishPublicEvent implements networkv1.Adapter.
func (a *RedisAdapter) PublishPublicEvent(ctx context.Context, channel string, payload any) error {
	return a.publish(ctx, channel, payload)
}

// PublishPrivateEvent implements networkv1.Adapter.
func (a *RedisAdapter) PublishPrivateEvent(ctx context.Context, channel string, payload any) error {
	return a.publish(ctx, channel, payload)
}

// Publish implements networkv1.Publisher.
func (a *RedisAdapter) Publish(ctx context.Context, topic string, payload any) error {
	return a.publish(ctx, topic, payload)
}

func (a *RedisAdapter) publish(ctx context.Context, channel string, payload any) error {
	buf, err := json.Marshal(NewEnvelope(ctx, channel, payload))
	if err != nil {
		return errors.NewTracer("envelope_marshal_error").Wrap(err)
	}

	receivers, err := a.client.Publish(ctx, a.config.Key(channel), buf)
	if err != nil {
		a.logger.ErrorContext(ctx, err, logger.NewField("channel", channel))
		return err
	}

	a.logger.DebugContext(ctx, "published", logger.NewField("channel", channel), logger.NewField("receivers", receivers))
	return nil
}
