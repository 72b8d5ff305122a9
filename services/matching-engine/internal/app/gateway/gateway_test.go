package gateway

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	pkgerrors "github.com/muhammadchandra19/exchange/pkg/errors"
	"github.com/muhammadchandra19/exchange/pkg/logger"
	eventv1 "github.com/muhammadchandra19/exchange/services/matching-engine/internal/domain/event/v1"
	networkv1_mock "github.com/muhammadchandra19/exchange/services/matching-engine/internal/domain/network/v1/mock"
	orderbookv1 "github.com/muhammadchandra19/exchange/services/matching-engine/internal/domain/orderbook/v1"
	persistencev1_mock "github.com/muhammadchandra19/exchange/services/matching-engine/internal/domain/persistence/v1/mock"
	snapshotv1 "github.com/muhammadchandra19/exchange/services/matching-engine/internal/domain/snapshot/v1"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testPair = "BTC-USD"

type testFixture struct {
	persistence *persistencev1_mock.MockSnapshotPersister
	network     *networkv1_mock.MockPublisher
	gateway     *Gateway
}

func setupTestFixture(t *testing.T) *testFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := &testFixture{
		persistence: persistencev1_mock.NewMockSnapshotPersister(ctrl),
		network:     networkv1_mock.NewMockPublisher(ctrl),
	}
	opts := DefaultOptions()
	opts.SnapshotInterval = time.Hour
	f.gateway = New(testPair, f.persistence, f.network, logger.NewNop(), opts)
	return f
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

func restingSnapshot() *snapshotv1.Snapshot {
	return &snapshotv1.Snapshot{
		Pair:         testPair,
		TradeCounter: 7,
		LastOrder:    &snapshotv1.LastOrder{ID: 2, OUID: "a1"},
		Orders: []orderbookv1.Order{
			orderbookv1.NewOrder(1, gtc("b1", orderbookv1.DirectionBid, 100, 5)),
			orderbookv1.NewOrder(2, gtc("a1", orderbookv1.DirectionAsk, 110, 3)),
		},
	}
}

func TestGateway_Restore(t *testing.T) {
	testCases := []struct {
		name      string
		setup     func(f *testFixture)
		expectErr bool
		expectLen int
	}{
		{
			name: "rebuilds from snapshot",
			setup: func(f *testFixture) {
				f.persistence.EXPECT().LoadSnapshot(gomock.Any(), testPair).Return(restingSnapshot(), nil)
			},
			expectLen: 2,
		},
		{
			name: "no snapshot keeps the book empty",
			setup: func(f *testFixture) {
				f.persistence.EXPECT().LoadSnapshot(gomock.Any(), testPair).Return(nil, nil)
			},
		},
		{
			name: "load failure",
			setup: func(f *testFixture) {
				f.persistence.EXPECT().LoadSnapshot(gomock.Any(), testPair).Return(nil, errors.New("redis down"))
			},
			expectErr: true,
		},
		{
			name: "invalid snapshot",
			setup: func(f *testFixture) {
				snap := restingSnapshot()
				snap.Pair = "ETH-USD"
				f.persistence.EXPECT().LoadSnapshot(gomock.Any(), testPair).Return(snap, nil)
			},
			expectErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f := setupTestFixture(t)
			tc.setup(f)

			err := f.gateway.Restore(context.Background())
			if tc.expectErr {
				assert.Error(t, err)
				assert.Nil(t, f.gateway.cancel)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expectLen, f.gateway.Book().Len())
			assert.NotNil(t, f.gateway.cancel)

			f.persistence.EXPECT().SaveSnapshot(gomock.Any(), testPair, gomock.Any()).Return(nil)
			require.NoError(t, f.gateway.Stop(context.Background()))
		})
	}
}

func TestGateway_RestoreWithoutPersistence(t *testing.T) {
	g := New(testPair, nil, nil, logger.NewNop(), nil)
	g.AttachNetworkObservers()

	require.NoError(t, g.Restore(context.Background()))
	_, err := g.Submit(gtc("b1", orderbookv1.DirectionBid, 100, 5))
	require.NoError(t, err)
	assert.Nil(t, g.cancel)
	assert.Equal(t, 1, g.Book().Len())
	assert.NoError(t, g.Stop(context.Background()))
}

func TestGateway_RestoreTwiceStartsOneTimer(t *testing.T) {
	f := setupTestFixture(t)
	f.persistence.EXPECT().LoadSnapshot(gomock.Any(), testPair).Return(nil, nil).Times(2)

	require.NoError(t, f.gateway.Restore(context.Background()))
	require.NoError(t, f.gateway.Restore(context.Background()))

	// An orphaned second timer would keep Stop waiting until the deadline.
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	f.persistence.EXPECT().SaveSnapshot(gomock.Any(), testPair, gomock.Any()).Return(nil).Times(1)
	require.NoError(t, f.gateway.Stop(ctx))
}

func TestGateway_StopThenRestore(t *testing.T) {
	f := setupTestFixture(t)
	ctx := context.Background()

	f.persistence.EXPECT().LoadSnapshot(gomock.Any(), testPair).Return(nil, nil).Times(2)
	// One final snapshot per running timer: the repeated Stop writes nothing.
	f.persistence.EXPECT().SaveSnapshot(gomock.Any(), testPair, gomock.Any()).Return(nil).Times(2)

	require.NoError(t, f.gateway.Restore(ctx))
	require.NoError(t, f.gateway.Stop(ctx))
	require.NoError(t, f.gateway.Stop(ctx))

	require.NoError(t, f.gateway.Restore(ctx))
	f.gateway.mu.Lock()
	restarted := f.gateway.cancel != nil
	f.gateway.mu.Unlock()
	assert.True(t, restarted)

	stopCtx, cancel := context.WithTimeout(ctx, time.Second)
	defer cancel()
	require.NoError(t, f.gateway.Stop(stopCtx))
}

func TestGateway_PeriodicSnapshot(t *testing.T) {
	ctrl := gomock.NewController(t)
	persistence := persistencev1_mock.NewMockSnapshotPersister(ctrl)

	opts := DefaultOptions()
	opts.SnapshotInterval = 10 * time.Millisecond
	g := New(testPair, persistence, nil, logger.NewNop(), opts)

	saved := make(chan *snapshotv1.Snapshot, 16)
	persistence.EXPECT().LoadSnapshot(gomock.Any(), testPair).Return(nil, nil)
	persistence.EXPECT().SaveSnapshot(gomock.Any(), testPair, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, snap *snapshotv1.Snapshot) error {
			select {
			case saved <- snap:
			default:
			}
			return nil
		},
	).MinTimes(1)

	require.NoError(t, g.Restore(context.Background()))
	_, err := g.Submit(gtc("b1", orderbookv1.DirectionBid, 100, 5))
	require.NoError(t, err)

	select {
	case snap := <-saved:
		assert.Equal(t, testPair, snap.Pair)
	case <-time.After(time.Second):
		t.Fatal("no snapshot saved")
	}
	require.NoError(t, g.Stop(context.Background()))
}

func TestGateway_Operations(t *testing.T) {
	f := setupTestFixture(t)

	order, err := f.gateway.Submit(gtc("b1", orderbookv1.DirectionBid, 100, 5))
	require.NoError(t, err)
	require.NotNil(t, order)
	assert.Equal(t, int64(1), order.ID)

	price := int64(101)
	order, err = f.gateway.Update("b1", orderbookv1.OrderUpdates{Price: &price})
	require.NoError(t, err)
	assert.Equal(t, int64(101), order.Price)

	_, err = f.gateway.Submit(gtc("b1", orderbookv1.DirectionBid, 100, 5))
	assert.True(t, pkgerrors.ErrorCodeEquals(err, string(pkgerrors.DuplicateOrder)))

	order, err = f.gateway.Cancel("b1")
	require.NoError(t, err)
	assert.Equal(t, "b1", order.OUID)

	_, err = f.gateway.Cancel("")
	assert.True(t, pkgerrors.ErrorCodeEquals(err, string(pkgerrors.InvalidOrder)))

	snap := f.gateway.Snapshot()
	assert.Empty(t, snap.Orders)
	assert.Equal(t, "b1", snap.LastOrder.OUID)
}

func TestGateway_NetworkObservers(t *testing.T) {
	f := setupTestFixture(t)
	f.gateway.AttachNetworkObservers()

	var (
		mu     sync.Mutex
		topics []string
		kinds  []eventv1.Kind
	)
	f.network.EXPECT().Publish(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, topic string, payload any) error {
			mu.Lock()
			defer mu.Unlock()
			topics = append(topics, topic)
			kinds = append(kinds, payload.(eventv1.Event).Kind())
			if topic == TopicReject {
				return errors.New("broker unavailable")
			}
			return nil
		},
	).AnyTimes()

	ctx := context.Background()
	_, err := f.gateway.Submit(gtc("a1", orderbookv1.DirectionAsk, 100, 2))
	require.NoError(t, err)
	_, err = f.gateway.Submit(gtc("b1", orderbookv1.DirectionBid, 100, 5))
	require.NoError(t, err)
	price := int64(99)
	_, err = f.gateway.Update("b1", orderbookv1.OrderUpdates{Price: &price})
	require.NoError(t, err)
	_, err = f.gateway.Cancel("b1")
	require.NoError(t, err)
	_, err = f.gateway.Cancel("missing")
	require.NoError(t, err)
	_, err = f.gateway.Submit(gtc("after-reject", orderbookv1.DirectionBid, 90, 1))
	require.NoError(t, err)

	require.NoError(t, f.gateway.Flush(ctx))

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{
		TopicOrderCreate,
		TopicOrderCreate,
		TopicTrade,
		TopicOrderUpdate,
		TopicOrderCancel,
		TopicReject,
		TopicOrderCreate,
	}, topics)
	assert.Equal(t, eventv1.KindTradeExecuted, kinds[2])
	assert.NotContains(t, kinds, eventv1.KindOrderBookPublished)

	require.NoError(t, f.gateway.Stop(ctx))
}
