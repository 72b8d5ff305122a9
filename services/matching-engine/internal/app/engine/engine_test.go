package engine

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	pkgerrors "github.com/muhammadchandra19/exchange/pkg/errors"
	"github.com/muhammadchandra19/exchange/pkg/logger"
	"github.com/muhammadchandra19/exchange/services/matching-engine/internal/app/gateway"
	"github.com/muhammadchandra19/exchange/services/matching-engine/internal/app/orchestrator"
	authv1 "github.com/muhammadchandra19/exchange/services/matching-engine/internal/domain/auth/v1"
	orderreaderv1 "github.com/muhammadchandra19/exchange/services/matching-engine/internal/domain/order-reader/v1"
	orderreaderv1_mock "github.com/muhammadchandra19/exchange/services/matching-engine/internal/domain/order-reader/v1/mock"
	orderbookv1 "github.com/muhammadchandra19/exchange/services/matching-engine/internal/domain/orderbook/v1"
	snapshotv1 "github.com/muhammadchandra19/exchange/services/matching-engine/internal/domain/snapshot/v1"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
)

const (
	btcUSD = "BTC-USD"
	ethUSD = "ETH-USD"
)

func newTestEngine(reader orderreaderv1.OrderReader) *Engine {
	opts := DefaultEngineOptions()
	opts.PricePrecision = 2
	opts.AmountPrecision = 4
	opts.ReadBackoff = time.Millisecond

	return NewEngine([]Market{
		NewOrchestratorMarket(orchestrator.New(btcUSD, orchestrator.Dependencies{}, nil, logger.NewNop())),
		NewGatewayMarket(gateway.New(ethUSD, nil, nil, logger.NewNop(), nil)),
	}, reader, logger.NewNop(), opts)
}

func submitCommand(pair, ouid, direction, price, quantity string) *orderreaderv1.Command {
	return &orderreaderv1.Command{
		Pair:    pair,
		Action:  orderreaderv1.ActionSubmit,
		Session: authv1.Session{Token: "t-1", UserID: "u-1"},
		Order: &orderreaderv1.OrderPayload{
			OUID:            ouid,
			UUID:            "u-1",
			Price:           price,
			Quantity:        quantity,
			MatchConstraint: orderbookv1.MatchConstraintGTC,
			OrderType:       orderbookv1.OrderTypeLimit,
			Direction:       orderbookv1.Direction(direction),
		},
	}
}

func TestEngine_Dispatch(t *testing.T) {
	newPrice := "101.25"

	testCases := []struct {
		name        string
		pair        string
		prepare     []*orderreaderv1.Command
		cmd         *orderreaderv1.Command
		expectCode  pkgerrors.ErrorCode
		expectOrder *orderbookv1.Order
	}{
		{
			name: "submit converts amounts",
			pair: btcUSD,
			cmd:  submitCommand(btcUSD, "b1", "BID", "100.5", "0.25"),
			expectOrder: &orderbookv1.Order{
				ID: 1, OUID: "b1", UUID: "u-1", Price: 10050, Quantity: 2500,
				MatchConstraint: orderbookv1.MatchConstraintGTC,
				OrderType:       orderbookv1.OrderTypeLimit,
				Direction:       orderbookv1.DirectionBid,
			},
		},
		{
			name:    "edit through gateway market",
			pair:    ethUSD,
			prepare: []*orderreaderv1.Command{submitCommand(ethUSD, "a1", "ASK", "20", "1")},
			cmd: &orderreaderv1.Command{
				Pair: ethUSD, Action: orderreaderv1.ActionEdit, OUID: "a1",
				Updates: &orderreaderv1.UpdatesPayload{Price: &newPrice},
			},
			expectOrder: &orderbookv1.Order{
				ID: 1, OUID: "a1", UUID: "u-1", Price: 10125, Quantity: 10000,
				MatchConstraint: orderbookv1.MatchConstraintGTC,
				OrderType:       orderbookv1.OrderTypeLimit,
				Direction:       orderbookv1.DirectionAsk,
			},
		},
		{
			name:    "cancel",
			pair:    btcUSD,
			prepare: []*orderreaderv1.Command{submitCommand(btcUSD, "b1", "BID", "1", "1")},
			cmd:     &orderreaderv1.Command{Pair: btcUSD, Action: orderreaderv1.ActionCancel, OUID: "b1"},
			expectOrder: &orderbookv1.Order{
				ID: 1, OUID: "b1", UUID: "u-1", Price: 100, Quantity: 10000,
				MatchConstraint: orderbookv1.MatchConstraintGTC,
				OrderType:       orderbookv1.OrderTypeLimit,
				Direction:       orderbookv1.DirectionBid,
			},
		},
		{
			name: "cancel of unknown order is a rejection",
			pair: btcUSD,
			cmd:  &orderreaderv1.Command{Pair: btcUSD, Action: orderreaderv1.ActionCancel, OUID: "missing"},
		},
		{
			name:       "unknown pair",
			cmd:        submitCommand("DOGE-USD", "d1", "BID", "1", "1"),
			expectCode: pkgerrors.UnknownPair,
		},
		{
			name:       "price beyond precision",
			cmd:        submitCommand(btcUSD, "b1", "BID", "1.001", "1"),
			expectCode: pkgerrors.InvalidAmount,
		},
		{
			name:       "invalid order",
			cmd:        submitCommand(btcUSD, "b1", "BID", "1", "0"),
			expectCode: pkgerrors.InvalidOrder,
		},
		{
			name:       "unknown action",
			cmd:        &orderreaderv1.Command{Pair: btcUSD, Action: "replace"},
			expectCode: pkgerrors.GeneralBadRequestError,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			e := newTestEngine(nil)
			ctx := context.Background()
			for _, cmd := range tc.prepare {
				_, err := e.Dispatch(ctx, cmd)
				require.NoError(t, err)
			}

			order, err := e.Dispatch(ctx, tc.cmd)
			if tc.expectCode != "" {
				assert.True(t, pkgerrors.ErrorCodeEquals(err, string(tc.expectCode)), "got %v", err)
				assert.Nil(t, order)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expectOrder, order)
		})
	}
}

func TestEngine_StartStop(t *testing.T) {
	e := newTestEngine(nil)
	assert.Equal(t, []string{btcUSD, ethUSD}, e.Pairs())
	assert.False(t, e.Ready())

	require.NoError(t, e.Start(context.Background()))
	assert.True(t, e.Ready())

	m, ok := e.Market(ethUSD)
	require.True(t, ok)
	assert.Equal(t, ethUSD, m.Pair())
	_, ok = e.Market("DOGE-USD")
	assert.False(t, ok)

	require.NoError(t, e.Stop(context.Background()))
	assert.False(t, e.Ready())
}

func TestEngine_OrderProcessor(t *testing.T) {
	ctrl := gomock.NewController(t)
	reader := orderreaderv1_mock.NewMockOrderReader(ctrl)

	gomock.InOrder(
		reader.EXPECT().ReadMessage(gomock.Any()).
			Return(kafka.Message{Offset: 1}, submitCommand(btcUSD, "b1", "BID", "100", "1"), nil),
		reader.EXPECT().ReadMessage(gomock.Any()).
			Return(kafka.Message{Offset: 2}, nil, pkgerrors.New(pkgerrors.GeneralBadRequestError, "malformed", "payload")),
		reader.EXPECT().ReadMessage(gomock.Any()).
			Return(kafka.Message{}, nil, errors.New("broker unavailable")),
		reader.EXPECT().ReadMessage(gomock.Any()).
			Return(kafka.Message{Offset: 3}, submitCommand("DOGE-USD", "d1", "BID", "1", "1"), nil),
		reader.EXPECT().ReadMessage(gomock.Any()).
			Return(kafka.Message{Offset: 4}, submitCommand(btcUSD, "b2", "BID", "1", "0"), nil),
		reader.EXPECT().ReadMessage(gomock.Any()).
			DoAndReturn(func(ctx context.Context) (kafka.Message, *orderreaderv1.Command, error) {
				<-ctx.Done()
				return kafka.Message{}, nil, ctx.Err()
			}),
	)

	var committed []int64
	reader.EXPECT().CommitMessages(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, msgs ...kafka.Message) error {
			for _, m := range msgs {
				committed = append(committed, m.Offset)
			}
			return nil
		}).Times(4)
	reader.EXPECT().Close().Return(nil)

	e := newTestEngine(reader)
	require.NoError(t, e.Start(context.Background()))

	require.Eventually(t, func() bool {
		s := e.Stats()
		return s.Processed+s.Skipped+s.Failed == 4
	}, time.Second, time.Millisecond)

	require.NoError(t, e.Stop(context.Background()))

	assert.Equal(t, Stats{Processed: 1, Failed: 1, Skipped: 2}, e.Stats())
	assert.Equal(t, []int64{1, 2, 3, 4}, committed)

	m, _ := e.Market(btcUSD)
	snap := m.Snapshot()
	require.Len(t, snap.Orders, 1)
	assert.Equal(t, "b1", snap.Orders[0].OUID)
}

type fakeMarket struct {
	pair     string
	initErr  error
	closeErr error
}

func (m *fakeMarket) Pair() string                   { return m.pair }
func (m *fakeMarket) Init(context.Context) error     { return m.initErr }
func (m *fakeMarket) Close(context.Context) error    { return m.closeErr }
func (m *fakeMarket) Snapshot() *snapshotv1.Snapshot { return &snapshotv1.Snapshot{Pair: m.pair} }

func (m *fakeMarket) Submit(context.Context, authv1.Session, orderbookv1.OrderInput) (*orderbookv1.Order, error) {
	return nil, nil
}

func (m *fakeMarket) Cancel(context.Context, authv1.Session, string) (*orderbookv1.Order, error) {
	return nil, nil
}

func (m *fakeMarket) Edit(context.Context, authv1.Session, string, orderbookv1.OrderUpdates) (*orderbookv1.Order, error) {
	return nil, nil
}

func (m *fakeMarket) Depth(int) (bids, asks []orderbookv1.PriceLevel) { return nil, nil }

func TestEngine_Lifecycle(t *testing.T) {
	t.Run("init failure aborts start", func(t *testing.T) {
		e := NewEngine([]Market{
			&fakeMarket{pair: btcUSD},
			&fakeMarket{pair: ethUSD, initErr: errors.New("snapshot unreadable")},
		}, nil, logger.NewNop(), nil)

		assert.EqualError(t, e.Start(context.Background()), "snapshot unreadable")
		assert.False(t, e.Ready())
	})

	t.Run("close errors are combined", func(t *testing.T) {
		e := NewEngine([]Market{
			&fakeMarket{pair: btcUSD, closeErr: errors.New("btc sink timeout")},
			&fakeMarket{pair: ethUSD, closeErr: errors.New("eth sink timeout")},
		}, nil, logger.NewNop(), nil)

		require.NoError(t, e.Start(context.Background()))
		err := e.Stop(context.Background())
		require.Error(t, err)
		assert.Len(t, multierr.Errors(err), 2)
	})
}
