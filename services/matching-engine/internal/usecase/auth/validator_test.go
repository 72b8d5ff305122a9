package auth

import (
	"context"
	stderrors "errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/muhammadchandra19/exchange/pkg/errors"
	"github.com/muhammadchandra19/exchange/pkg/logger"
	"github.com/muhammadchandra19/exchange/pkg/redis"
	redis_mock "github.com/muhammadchandra19/exchange/pkg/redis/mock"
	authv1 "github.com/muhammadchandra19/exchange/services/matching-engine/internal/domain/auth/v1"
	"github.com/stretchr/testify/assert"
)

func TestRedisValidator_ValidateSession(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name     string
		session  authv1.Session
		mockFn   func(client *redis_mock.MockClient)
		expected bool
	}{
		{
			name:    "matching user",
			session: authv1.Session{Token: "tok", UserID: "alice"},
			mockFn: func(client *redis_mock.MockClient) {
				client.EXPECT().Get(ctx, "exchange:session:tok").Return("alice", nil)
			},
			expected: true,
		},
		{
			name:    "token of another user",
			session: authv1.Session{Token: "tok", UserID: "mallory"},
			mockFn: func(client *redis_mock.MockClient) {
				client.EXPECT().Get(ctx, "exchange:session:tok").Return("alice", nil)
			},
		},
		{
			name:    "unknown token",
			session: authv1.Session{Token: "gone", UserID: "alice"},
			mockFn: func(client *redis_mock.MockClient) {
				client.EXPECT().Get(ctx, "exchange:session:gone").Return("", nil)
			},
		},
		{
			name:    "redis failure",
			session: authv1.Session{Token: "tok", UserID: "alice"},
			mockFn: func(client *redis_mock.MockClient) {
				client.EXPECT().Get(ctx, "exchange:session:tok").Return("", stderrors.New("timeout"))
			},
		},
		{
			name:    "empty session",
			session: authv1.Session{},
			mockFn:  func(client *redis_mock.MockClient) {},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			client := redis_mock.NewMockClient(gomock.NewController(t))
			tc.mockFn(client)

			v := NewRedisValidator(client, redis.DefaultConfig(), nil, logger.NewNop())
			assert.Equal(t, tc.expected, v.ValidateSession(ctx, tc.session))
		})
	}
}

func TestRedisValidator_ValidateSubscription(t *testing.T) {
	ctx := context.Background()
	session := authv1.Session{Token: "tok", UserID: "alice"}

	testCases := []struct {
		topic    string
		expected bool
	}{
		{topic: "orderbook", expected: true},
		{topic: "trade", expected: true},
		{topic: "order:alice", expected: true},
		{topic: "order:bob", expected: false},
	}

	for _, tc := range testCases {
		t.Run(tc.topic, func(t *testing.T) {
			// No expectations: the subscription check must not hit Redis.
			client := redis_mock.NewMockClient(gomock.NewController(t))

			v := NewRedisValidator(client, redis.DefaultConfig(), nil, logger.NewNop())
			assert.Equal(t, tc.expected, v.ValidateSubscription(ctx, session, tc.topic))
		})
	}
}

func TestRedisValidator_RateLimit(t *testing.T) {
	ctx := context.Background()
	session := authv1.Session{Token: "tok", UserID: "alice"}

	open := NewRedisValidator(nil, redis.DefaultConfig(), nil, logger.NewNop())
	assert.NoError(t, open.RateLimit(ctx, session, "submit"))

	var seen []string
	limited := NewRedisValidator(nil, redis.DefaultConfig(), func(_ context.Context, s authv1.Session, action string) error {
		seen = append(seen, s.UserID+":"+action)
		if action == "cancel" {
			return errors.New(errors.RateLimited, "too many cancels", "session")
		}
		return nil
	}, logger.NewNop())

	assert.NoError(t, limited.RateLimit(ctx, session, "submit"))
	err := limited.RateLimit(ctx, session, "cancel")
	assert.True(t, errors.ErrorCodeEquals(err, string(errors.RateLimited)))
	assert.Equal(t, []string{"alice:submit", "alice:cancel"}, seen)
}
