package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/golang/mock/gomock"
	pkgerrors "github.com/muhammadchandra19/exchange/pkg/errors"
	"github.com/muhammadchandra19/exchange/pkg/logger"
	authv1 "github.com/muhammadchandra19/exchange/services/matching-engine/internal/domain/auth/v1"
	authv1_mock "github.com/muhammadchandra19/exchange/services/matching-engine/internal/domain/auth/v1/mock"
	networkv1 "github.com/muhammadchandra19/exchange/services/matching-engine/internal/domain/network/v1"
	networkv1_mock "github.com/muhammadchandra19/exchange/services/matching-engine/internal/domain/network/v1/mock"
	orderbookv1 "github.com/muhammadchandra19/exchange/services/matching-engine/internal/domain/orderbook/v1"
	persistencev1 "github.com/muhammadchandra19/exchange/services/matching-engine/internal/domain/persistence/v1"
	persistencev1_mock "github.com/muhammadchandra19/exchange/services/matching-engine/internal/domain/persistence/v1/mock"
	snapshotv1 "github.com/muhammadchandra19/exchange/services/matching-engine/internal/domain/snapshot/v1"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testPair = "BTC-USD"

var testSession = authv1.Session{Token: "token-1", UserID: "user-1"}

type testFixture struct {
	persistence *persistencev1_mock.MockAdapter
	network     *networkv1_mock.MockAdapter
	auth        *authv1_mock.MockAdapter

	mu    sync.Mutex
	calls []string
}

func setupTestFixture(t *testing.T) *testFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	return &testFixture{
		persistence: persistencev1_mock.NewMockAdapter(ctrl),
		network:     networkv1_mock.NewMockAdapter(ctrl),
		auth:        authv1_mock.NewMockAdapter(ctrl),
	}
}

func (f *testFixture) newOrchestrator(flags *FeatureFlags) *Orchestrator {
	return New(testPair, Dependencies{
		Persistence: f.persistence,
		Network:     f.network,
		Auth:        f.auth,
	}, flags, logger.NewNop())
}

func (f *testFixture) record(format string, args ...any) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, fmt.Sprintf(format, args...))
}

func (f *testFixture) recorded() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, len(f.calls))
	copy(out, f.calls)
	return out
}

func (f *testFixture) reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = nil
}

// recordSideEffects turns every adapter call into a line of f.calls.
func (f *testFixture) recordSideEffects() {
	f.auth.EXPECT().ValidateSession(gomock.Any(), gomock.Any()).Return(true).AnyTimes()
	f.auth.EXPECT().RateLimit(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	f.persistence.EXPECT().SaveSnapshot(gomock.Any(), testPair, gomock.Any()).DoAndReturn(
		func(context.Context, string, *snapshotv1.Snapshot) error {
			f.record("saveSnapshot")
			return nil
		}).AnyTimes()
	f.persistence.EXPECT().PersistOrder(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, order orderbookv1.Order, meta persistencev1.Meta) error {
			f.record("persistOrder:%s:%s:%s", order.OUID, meta.Action, meta.Session.UserID)
			return nil
		}).AnyTimes()
	f.persistence.EXPECT().PersistOrderCancel(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, order orderbookv1.Order, meta persistencev1.Meta) error {
			f.record("persistCancel:%s:%s", order.OUID, meta.Action)
			return nil
		}).AnyTimes()
	f.persistence.EXPECT().PersistTrade(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, trade orderbookv1.Trade) error {
			f.record("persistTrade:%d", trade.TradeID)
			return nil
		}).AnyTimes()
	f.persistence.EXPECT().PersistOrderReject(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, input orderbookv1.OrderInput, reason orderbookv1.RejectReason, _ persistencev1.Meta) error {
			f.record("persistReject:%s:%s", input.OUID, reason)
			return nil
		}).AnyTimes()

	f.network.EXPECT().PublishPublicEvent(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, channel string, _ any) error {
			f.record("public:%s", channel)
			return nil
		}).AnyTimes()
	f.network.EXPECT().PublishPrivateEvent(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, channel string, _ any) error {
			f.record("private:%s", channel)
			return nil
		}).AnyTimes()
	f.network.EXPECT().PublishHealth(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, health networkv1.Health) error {
			f.record("health:%s:%s", health.Pair, health.Status)
			return nil
		}).AnyTimes()
}

func gtc(ouid string, direction orderbookv1.Direction, price, quantity int64) orderbookv1.OrderInput {
	return orderbookv1.OrderInput{
		OUID:            ouid,
		UUID:            "user-" + ouid,
		Price:           price,
		Quantity:        quantity,
		MatchConstraint: orderbookv1.MatchConstraintGTC,
		OrderType:       orderbookv1.OrderTypeLimit,
		Direction:       direction,
	}
}

func TestOrchestrator_Init(t *testing.T) {
	resting := []orderbookv1.Order{
		orderbookv1.NewOrder(4, gtc("b1", orderbookv1.DirectionBid, 100, 5)),
		orderbookv1.NewOrder(9, gtc("a1", orderbookv1.DirectionAsk, 110, 3)),
	}

	testCases := []struct {
		name       string
		setup      func(f *testFixture)
		expectErr  bool
		expectLen  int
		expectMode string
	}{
		{
			name: "restores from snapshot",
			setup: func(f *testFixture) {
				f.persistence.EXPECT().LoadSnapshot(gomock.Any(), testPair).Return(&snapshotv1.Snapshot{
					Pair:         testPair,
					TradeCounter: 12,
					Orders:       resting,
				}, nil)
				f.network.EXPECT().Authenticate(gomock.Any()).Return(networkv1.SessionStatus{Mode: "kafka"}, nil)
			},
			expectLen:  2,
			expectMode: "kafka",
		},
		{
			name: "replays journal when no snapshot exists",
			setup: func(f *testFixture) {
				f.persistence.EXPECT().LoadSnapshot(gomock.Any(), testPair).Return(nil, nil)
				f.persistence.EXPECT().LoadOpenOrders(gomock.Any(), testPair).Return(resting, nil)
				f.network.EXPECT().Authenticate(gomock.Any()).Return(networkv1.SessionStatus{Mode: networkv1.ModeLocalOnly}, nil)
			},
			expectLen:  2,
			expectMode: networkv1.ModeLocalOnly,
		},
		{
			name: "empty journal leaves the book empty",
			setup: func(f *testFixture) {
				f.persistence.EXPECT().LoadSnapshot(gomock.Any(), testPair).Return(nil, nil)
				f.persistence.EXPECT().LoadOpenOrders(gomock.Any(), testPair).Return(nil, nil)
				f.network.EXPECT().Authenticate(gomock.Any()).Return(networkv1.SessionStatus{Mode: "redis"}, nil)
			},
			expectMode: "redis",
		},
		{
			name: "snapshot load failure",
			setup: func(f *testFixture) {
				f.persistence.EXPECT().LoadSnapshot(gomock.Any(), testPair).Return(nil, errors.New("redis down"))
			},
			expectErr: true,
		},
		{
			name: "journal failure",
			setup: func(f *testFixture) {
				f.persistence.EXPECT().LoadSnapshot(gomock.Any(), testPair).Return(nil, nil)
				f.persistence.EXPECT().LoadOpenOrders(gomock.Any(), testPair).Return(nil, errors.New("postgres down"))
			},
			expectErr: true,
		},
		{
			name: "authentication failure",
			setup: func(f *testFixture) {
				f.persistence.EXPECT().LoadSnapshot(gomock.Any(), testPair).Return(nil, nil)
				f.persistence.EXPECT().LoadOpenOrders(gomock.Any(), testPair).Return(nil, nil)
				f.network.EXPECT().Authenticate(gomock.Any()).Return(networkv1.SessionStatus{}, errors.New("no brokers"))
			},
			expectErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f := setupTestFixture(t)
			f.recordSideEffects()
			tc.setup(f)
			o := f.newOrchestrator(nil)

			err := o.Init(context.Background())
			require.NoError(t, o.Flush(context.Background()))
			if tc.expectErr {
				assert.Error(t, err)
				assert.NotContains(t, f.recorded(), "health:BTC-USD:ready")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expectLen, o.Book().Len())
			assert.Equal(t, tc.expectMode, o.NetworkStatus().Mode)
			assert.Contains(t, f.recorded(), "health:BTC-USD:ready")
		})
	}
}

func TestOrchestrator_InitRebuildKeepsIDs(t *testing.T) {
	f := setupTestFixture(t)
	f.recordSideEffects()
	f.persistence.EXPECT().LoadSnapshot(gomock.Any(), testPair).Return(nil, nil)
	f.persistence.EXPECT().LoadOpenOrders(gomock.Any(), testPair).Return([]orderbookv1.Order{
		orderbookv1.NewOrder(41, gtc("b1", orderbookv1.DirectionBid, 100, 5)),
	}, nil)
	f.network.EXPECT().Authenticate(gomock.Any()).Return(networkv1.SessionStatus{Mode: "kafka"}, nil)

	o := f.newOrchestrator(nil)
	require.NoError(t, o.Init(context.Background()))

	order, err := o.SubmitOrder(context.Background(), testSession, gtc("b2", orderbookv1.DirectionBid, 99, 1))
	require.NoError(t, err)
	assert.Equal(t, int64(42), order.ID)
	assert.Equal(t, int64(0), o.Snapshot().TradeCounter)
	require.NoError(t, o.Close(context.Background()))
}

func TestOrchestrator_SideEffectOrder(t *testing.T) {
	f := setupTestFixture(t)
	f.recordSideEffects()
	o := f.newOrchestrator(nil)
	ctx := context.Background()

	_, err := o.SubmitOrder(ctx, testSession, gtc("a1", orderbookv1.DirectionAsk, 100, 2))
	require.NoError(t, err)
	_, err = o.SubmitOrder(ctx, testSession, gtc("b1", orderbookv1.DirectionBid, 100, 5))
	require.NoError(t, err)
	require.NoError(t, o.Flush(ctx))

	assert.Equal(t, []string{
		"persistOrder:a1:update:",
		"saveSnapshot",
		"public:orderbook",
		"persistOrder:a1:submit:user-1",
		"persistOrder:b1:update:",
		"persistTrade:1",
		"public:trade",
		"private:order:user-b1",
		"private:order:user-a1",
		"saveSnapshot",
		"public:orderbook",
		"persistOrder:b1:submit:user-1",
	}, f.recorded())

	f.reset()
	price := int64(99)
	_, err = o.EditOrder(ctx, testSession, "b1", orderbookv1.OrderUpdates{Price: &price})
	require.NoError(t, err)
	_, err = o.CancelOrder(ctx, testSession, "b1")
	require.NoError(t, err)
	require.NoError(t, o.Flush(ctx))

	assert.Equal(t, []string{
		"persistOrder:b1:update:",
		"saveSnapshot",
		"public:orderbook",
		"persistOrder:b1:edit:user-1",
		"persistCancel:b1:cancel",
		"private:order:user-b1",
		"saveSnapshot",
		"public:orderbook",
		"persistCancel:b1:cancel",
	}, f.recorded())

	f.reset()
	order, err := o.CancelOrder(ctx, testSession, "missing")
	require.NoError(t, err)
	assert.Nil(t, order)
	require.NoError(t, o.Flush(ctx))
	assert.Equal(t, []string{
		"persistReject:missing:" + string(orderbookv1.RejectOrderNotFound),
	}, f.recorded())

	f.reset()
	require.NoError(t, o.Close(ctx))
	assert.Equal(t, []string{"health:BTC-USD:stopped"}, f.recorded())
}

func TestOrchestrator_FeatureFlags(t *testing.T) {
	f := setupTestFixture(t)
	f.recordSideEffects()
	o := f.newOrchestrator(&FeatureFlags{})
	ctx := context.Background()

	_, err := o.SubmitOrder(ctx, testSession, gtc("a1", orderbookv1.DirectionAsk, 100, 2))
	require.NoError(t, err)
	_, err = o.SubmitOrder(ctx, testSession, gtc("b1", orderbookv1.DirectionBid, 100, 2))
	require.NoError(t, err)
	require.NoError(t, o.Flush(ctx))

	assert.Equal(t, []string{
		"persistOrder:a1:update:",
		"persistOrder:a1:submit:user-1",
		"persistOrder:b1:update:",
		"persistTrade:1",
		"persistOrder:b1:submit:user-1",
	}, f.recorded())
}

func TestOrchestrator_Authorization(t *testing.T) {
	testCases := []struct {
		name       string
		setup      func(f *testFixture)
		call       func(o *Orchestrator) error
		expectCode pkgerrors.ErrorCode
	}{
		{
			name: "invalid session on submit",
			setup: func(f *testFixture) {
				f.auth.EXPECT().ValidateSession(gomock.Any(), testSession).Return(false)
			},
			call: func(o *Orchestrator) error {
				_, err := o.SubmitOrder(context.Background(), testSession, gtc("b1", orderbookv1.DirectionBid, 100, 1))
				return err
			},
			expectCode: pkgerrors.Unauthenticated,
		},
		{
			name: "invalid session on cancel",
			setup: func(f *testFixture) {
				f.auth.EXPECT().ValidateSession(gomock.Any(), testSession).Return(false)
			},
			call: func(o *Orchestrator) error {
				_, err := o.CancelOrder(context.Background(), testSession, "b1")
				return err
			},
			expectCode: pkgerrors.Unauthenticated,
		},
		{
			name: "plain rate limit error",
			setup: func(f *testFixture) {
				f.auth.EXPECT().ValidateSession(gomock.Any(), testSession).Return(true)
				f.auth.EXPECT().RateLimit(gomock.Any(), testSession, ActionEditOrder).Return(errors.New("too many edits"))
			},
			call: func(o *Orchestrator) error {
				price := int64(1)
				_, err := o.EditOrder(context.Background(), testSession, "b1", orderbookv1.OrderUpdates{Price: &price})
				return err
			},
			expectCode: pkgerrors.RateLimited,
		},
		{
			name: "coded rate limit error is kept",
			setup: func(f *testFixture) {
				f.auth.EXPECT().ValidateSession(gomock.Any(), testSession).Return(true)
				f.auth.EXPECT().RateLimit(gomock.Any(), testSession, ActionSubmitOrder).
					Return(pkgerrors.New(pkgerrors.GeneralBadRequestError, "quota", "session"))
			},
			call: func(o *Orchestrator) error {
				_, err := o.SubmitOrder(context.Background(), testSession, gtc("b1", orderbookv1.DirectionBid, 100, 1))
				return err
			},
			expectCode: pkgerrors.GeneralBadRequestError,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f := setupTestFixture(t)
			tc.setup(f)
			o := f.newOrchestrator(nil)

			err := tc.call(o)
			assert.True(t, pkgerrors.ErrorCodeEquals(err, string(tc.expectCode)), "got %v", err)
			assert.Equal(t, 0, o.Book().Len())
			require.NoError(t, o.Flush(context.Background()))
		})
	}
}

func TestOrchestrator_InvalidInputPersistsNothing(t *testing.T) {
	f := setupTestFixture(t)
	f.recordSideEffects()
	o := f.newOrchestrator(nil)

	_, err := o.SubmitOrder(context.Background(), testSession, gtc("b1", orderbookv1.DirectionBid, 100, 0))
	assert.True(t, pkgerrors.ErrorCodeEquals(err, string(pkgerrors.InvalidOrder)))
	require.NoError(t, o.Flush(context.Background()))
	assert.Empty(t, f.recorded())
}

func TestOrchestrator_ValidateSubscription(t *testing.T) {
	f := setupTestFixture(t)
	o := f.newOrchestrator(nil)

	f.auth.EXPECT().ValidateSession(gomock.Any(), testSession).Return(true).Times(2)
	f.auth.EXPECT().ValidateSession(gomock.Any(), authv1.Session{}).Return(false)
	f.auth.EXPECT().ValidateSubscription(gomock.Any(), testSession, "order:user-1").Return(true)
	f.auth.EXPECT().ValidateSubscription(gomock.Any(), testSession, "order:user-2").Return(false)

	assert.NoError(t, o.ValidateSubscription(context.Background(), testSession, "order:user-1"))
	err := o.ValidateSubscription(context.Background(), testSession, "order:user-2")
	assert.True(t, pkgerrors.ErrorCodeEquals(err, string(pkgerrors.SubscriptionRejected)))

	err = o.ValidateSubscription(context.Background(), authv1.Session{}, "trade")
	assert.True(t, pkgerrors.ErrorCodeEquals(err, string(pkgerrors.Unauthenticated)))
}

func TestOrchestrator_NopDependencies(t *testing.T) {
	o := New(testPair, Dependencies{}, nil, logger.NewNop())
	ctx := context.Background()

	require.NoError(t, o.Init(ctx))
	assert.Equal(t, networkv1.ModeLocalOnly, o.NetworkStatus().Mode)

	order, err := o.SubmitOrder(ctx, authv1.Session{}, gtc("b1", orderbookv1.DirectionBid, 100, 1))
	require.NoError(t, err)
	assert.Equal(t, int64(1), order.ID)
	require.NoError(t, o.Close(ctx))
}
