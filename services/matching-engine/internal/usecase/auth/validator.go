package auth

import (
	"context"
	"strings"

	"github.com/muhammadchandra19/exchange/pkg/logger"
	"github.com/muhammadchandra19/exchange/pkg/redis"
	authv1 "github.com/muhammadchandra19/exchange/services/matching-engine/internal/domain/auth/v1"
)

const privateChannelPrefix = "order:"

// RateLimitFunc decides whether session may perform action. A non-nil error
// aborts the action before the book is touched.
type RateLimitFunc func(ctx context.Context, session authv1.Session, action string) error

// RedisValidator accepts a session when <prefix>session:<token> holds the
// session's user id. Private order channels are only open to their owner.
type RedisValidator struct {
	client    redis.Client
	config    *redis.Config
	rateLimit RateLimitFunc
	logger    *logger.Logger
}

var _ authv1.Adapter = (*RedisValidator)(nil)

// NewRedisValidator creates a validator. rateLimit may be nil.
func NewRedisValidator(client redis.Client, cfg *redis.Config, rateLimit RateLimitFunc, log *logger.Logger) *RedisValidator {
	return &RedisValidator{
		client:    client,
		config:    cfg,
		rateLimit: rateLimit,
		logger:    log,
	}
}

// SessionKey returns the Redis key holding the user id of token.
func (v *RedisValidator) SessionKey(token string) string {
	return v.config.Key("session:" + token)
}

// ValidateSession implements authv1.Adapter.
func (v *RedisValidator) ValidateSession(ctx context.Context, session authv1.Session) bool {
	if session.Token == "" || session.UserID == "" {
		return false
	}

	userID, err := v.client.Get(ctx, v.SessionKey(session.Token))
	if err != nil {
		v.logger.ErrorContext(ctx, err, logger.NewField("action", "validate session"))
		return false
	}
	return userID == session.UserID
}

// ValidateSubscription implements authv1.Adapter. The session must already
// have passed ValidateSession; only channel ownership is checked here. Public
// channels are open to every session.
func (v *RedisValidator) ValidateSubscription(_ context.Context, session authv1.Session, topic string) bool {
	if owner, private := strings.CutPrefix(topic, privateChannelPrefix); private {
		return owner == session.UserID
	}
	return true
}

// RateLimit implements authv1.Adapter.
func (v *RedisValidator) RateLimit(ctx context.Context, session authv1.Session, action string) error {
	if v.rateLimit == nil {
		return nil
	}
	return v.rateLimit(ctx, session, action)
}
