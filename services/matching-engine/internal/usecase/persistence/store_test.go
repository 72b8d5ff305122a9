package persistence

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/muhammadchandra19/exchange/pkg/logger"
	authv1 "github.com/muhammadchandra19/exchange/services/matching-engine/internal/domain/auth/v1"
	orderbookv1 "github.com/muhammadchandra19/exchange/services/matching-engine/internal/domain/orderbook/v1"
	persistencev1 "github.com/muhammadchandra19/exchange/services/matching-engine/internal/domain/persistence/v1"
	snapshotv1 "github.com/muhammadchandra19/exchange/services/matching-engine/internal/domain/snapshot/v1"
	snapshotv1_mock "github.com/muhammadchandra19/exchange/services/matching-engine/internal/domain/snapshot/v1/mock"
	"github.com/muhammadchandra19/exchange/services/matching-engine/internal/infrastructure/postgresql/journal"
	journal_mock "github.com/muhammadchandra19/exchange/services/matching-engine/internal/infrastructure/postgresql/journal/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testFixture struct {
	snapshots *snapshotv1_mock.MockStore
	journal   *journal_mock.MockRepository
	store     *Store
}

func setupTestFixture(t *testing.T) *testFixture {
	ctrl := gomock.NewController(t)
	f := &testFixture{
		snapshots: snapshotv1_mock.NewMockStore(ctrl),
		journal:   journal_mock.NewMockRepository(ctrl),
	}
	f.store = NewStore(f.snapshots, f.journal, logger.NewNop())
	return f
}

var meta = persistencev1.Meta{
	Pair:    "BTC-USD",
	Session: authv1.Session{Token: "t", UserID: "user-1"},
	Action:  persistencev1.ActionSubmit,
}

func order(filled int64) orderbookv1.Order {
	return orderbookv1.Order{
		ID: 1, OUID: "o-1", UUID: "u-1", Price: 100, Quantity: 5, FilledQuantity: filled,
		MatchConstraint: orderbookv1.MatchConstraintGTC, OrderType: orderbookv1.OrderTypeLimit, Direction: orderbookv1.DirectionBid,
	}
}

func TestStore_Snapshots(t *testing.T) {
	f := setupTestFixture(t)
	ctx := context.Background()
	snap := &snapshotv1.Snapshot{Pair: "BTC-USD"}

	f.snapshots.EXPECT().Save(ctx, "BTC-USD", snap).Return(nil)
	f.snapshots.EXPECT().Load(ctx, "BTC-USD").Return(snap, nil)

	require.NoError(t, f.store.SaveSnapshot(ctx, "BTC-USD", snap))
	loaded, err := f.store.LoadSnapshot(ctx, "BTC-USD")
	require.NoError(t, err)
	assert.Same(t, snap, loaded)
}

func TestStore_PersistOrder(t *testing.T) {
	testCases := []struct {
		name   string
		order  orderbookv1.Order
		cancel bool
		status journal.Status
	}{
		{name: "open order", order: order(2), status: journal.StatusOpen},
		{name: "filled order", order: order(5), status: journal.StatusFilled},
		{name: "cancelled order", order: order(2), cancel: true, status: journal.StatusCancelled},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f := setupTestFixture(t)
			ctx := context.Background()

			f.journal.EXPECT().SaveOrder(ctx, journal.OrderRecord{
				Pair:   "BTC-USD",
				Order:  tc.order,
				UserID: "user-1",
				Status: tc.status,
				Action: "submit",
			}).Return(nil)

			var err error
			if tc.cancel {
				err = f.store.PersistOrderCancel(ctx, tc.order, meta)
			} else {
				err = f.store.PersistOrder(ctx, tc.order, meta)
			}
			assert.NoError(t, err)
		})
	}
}

func TestStore_PersistTradeAndReject(t *testing.T) {
	f := setupTestFixture(t)
	ctx := context.Background()
	trade := orderbookv1.Trade{TradeID: 1, Pair: "BTC-USD", Taker: order(5), Maker: order(5), Quantity: 5, Price: 100}
	input := orderbookv1.OrderInput{OUID: "o-2", Quantity: 1, MatchConstraint: orderbookv1.MatchConstraintFOK}

	f.journal.EXPECT().SaveTrade(ctx, trade).Return(nil)
	f.journal.EXPECT().SaveReject(ctx, journal.RejectRecord{
		Pair:   "BTC-USD",
		Input:  input,
		Reason: orderbookv1.RejectOperationNotMatched,
		Action: "update",
	}).Return(nil)

	require.NoError(t, f.store.PersistTrade(ctx, trade))
	require.NoError(t, f.store.PersistOrderReject(ctx, input, orderbookv1.RejectOperationNotMatched,
		persistencev1.Meta{Pair: "BTC-USD", Action: persistencev1.ActionUpdate}))
}

func TestStore_WithoutJournal(t *testing.T) {
	store := NewStore(snapshotv1_mock.NewMockStore(gomock.NewController(t)), nil, logger.NewNop())
	ctx := context.Background()

	orders, err := store.LoadOpenOrders(ctx, "BTC-USD")
	assert.NoError(t, err)
	assert.Nil(t, orders)
	assert.NoError(t, store.PersistOrder(ctx, order(0), meta))
	assert.NoError(t, store.PersistOrderCancel(ctx, order(0), meta))
	assert.NoError(t, store.PersistTrade(ctx, orderbookv1.Trade{}))
	assert.NoError(t, store.PersistOrderReject(ctx, orderbookv1.OrderInput{}, orderbookv1.RejectOrderNotFound, meta))
}
