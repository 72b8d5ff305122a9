package snapshot

import (
	"context"

	"github.com/muhammadchandra19/exchange/pkg/errors"
	"github.com/muhammadchandra19/exchange/pkg/logger"
	"github.com/muhammadchandra19/exchange/pkg/redis"
	snapshotv1 "github.com/muhammadchandra19/exchange/services/matching-engine/internal/domain/snapshot/v1"
)

// RedisStore keeps one snapshot per pair under <prefix>snapshot:<pair>.
type RedisStore struct {
	client redis.Client
	config *redis.Config
	logger *logger.Logger
}

var _ snapshotv1.Store = (*RedisStore)(nil)

// NewRedisStore creates a snapshot store backed by a connected Redis client.
func NewRedisStore(client redis.Client, config *redis.Config, log *logger.Logger) *RedisStore {
	return &RedisStore{
		client: client,
		config: config,
		logger: log,
	}
}

// Key returns the Redis key of pair's snapshot.
func (s *RedisStore) Key(pair string) string {
	return s.config.Key("snapshot:" + pair)
}

// Save stores the snapshot in Redis, replacing the previous one.
func (s *RedisStore) Save(ctx context.Context, pair string, snapshot *snapshotv1.Snapshot) error {
	buf, err := snapshot.Marshal()
	if err != nil {
		s.logger.ErrorContext(ctx, err, logger.NewField("pair", pair), logger.NewField("action", "marshal snapshot"))
		return errors.NewTracer("snapshot_marshal_error").Wrap(err)
	}

	if err := s.client.Set(ctx, s.Key(pair), buf, 0); err != nil {
		s.logger.ErrorContext(ctx, err, logger.NewField("pair", pair), logger.NewField("action", "store snapshot"))
		return errors.NewTracer("snapshot_store_error").Wrap(err)
	}

	s.logger.DebugContext(ctx, "snapshot stored",
		logger.NewField("pair", pair),
		logger.NewField("orders", len(snapshot.Orders)),
		logger.NewField("bytes", len(buf)),
	)
	return nil
}

// Load reads pair's snapshot from Redis. A missing key yields nil, nil.
func (s *RedisStore) Load(ctx context.Context, pair string) (*snapshotv1.Snapshot, error) {
	data, err := s.client.Get(ctx, s.Key(pair))
	if err != nil {
		s.logger.ErrorContext(ctx, err, logger.NewField("pair", pair), logger.NewField("action", "load snapshot"))
		return nil, errors.NewTracer("snapshot_load_error").Wrap(err)
	}

	if data == "" {
		s.logger.WarnContext(ctx, "no snapshot found", logger.NewField("pair", pair))
		return nil, nil
	}

	snapshot, err := snapshotv1.Unmarshal([]byte(data))
	if err != nil {
		s.logger.ErrorContext(ctx, err, logger.NewField("pair", pair), logger.NewField("action", "unmarshal snapshot"))
		return nil, err
	}
	return snapshot, nil
}
