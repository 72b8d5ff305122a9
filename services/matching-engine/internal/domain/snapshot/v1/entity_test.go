package snapshotv1

import (
	"testing"

	"github.com/muhammadchandra19/exchange/pkg/errors"
	orderbookv1 "github.com/muhammadchandra19/exchange/services/matching-engine/internal/domain/orderbook/v1"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func restingOrder(id int64, ouid string) orderbookv1.Order {
	return orderbookv1.Order{
		ID:              id,
		OUID:            ouid,
		UUID:            "u-1",
		Price:           100,
		Quantity:        10,
		FilledQuantity:  2,
		MatchConstraint: orderbookv1.MatchConstraintGTC,
		OrderType:       orderbookv1.OrderTypeLimit,
		Direction:       orderbookv1.DirectionBid,
	}
}

func TestSnapshot_WireFormat(t *testing.T) {
	snapshot := &Snapshot{
		Pair:         "BTC-USD",
		LastOrder:    &LastOrder{ID: 1, OUID: "a"},
		TradeCounter: 3,
		Orders:       []orderbookv1.Order{restingOrder(1, "a")},
	}

	raw, err := snapshot.Marshal()
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"pair": "BTC-USD",
		"lastOrder": {"id": 1, "ouid": "a"},
		"tradeCounter": 3,
		"orders": [{
			"id": 1, "ouid": "a", "uuid": "u-1", "price": 100, "quantity": 10,
			"matchConstraint": "GTC", "orderType": "LIMIT", "direction": "BID", "filledQuantity": 2
		}]
	}`, string(raw))

	decoded, err := Unmarshal(raw)
	require.NoError(t, err)
	assert.Equal(t, snapshot, decoded)
}

func TestSnapshot_MarshalEmpty(t *testing.T) {
	raw, err := (&Snapshot{Pair: "BTC-USD"}).Marshal()
	require.NoError(t, err)
	assert.JSONEq(t, `{"pair":"BTC-USD","lastOrder":null,"tradeCounter":0,"orders":[]}`, string(raw))

	_, err = Unmarshal([]byte("{"))
	assert.Error(t, err)
}

func TestSnapshot_Validate(t *testing.T) {
	testCases := []struct {
		name    string
		pair    string
		orders  []orderbookv1.Order
		wantErr bool
	}{
		{name: "valid", pair: "BTC-USD", orders: []orderbookv1.Order{restingOrder(1, "a"), restingOrder(2, "b")}},
		{name: "pair mismatch", pair: "ETH-USD", wantErr: true},
		{name: "duplicate id", pair: "BTC-USD", orders: []orderbookv1.Order{restingOrder(1, "a"), restingOrder(1, "b")}, wantErr: true},
		{name: "duplicate ouid", pair: "BTC-USD", orders: []orderbookv1.Order{restingOrder(1, "a"), restingOrder(2, "a")}, wantErr: true},
		{name: "missing id", pair: "BTC-USD", orders: []orderbookv1.Order{restingOrder(0, "a")}, wantErr: true},
		{
			name: "filled order",
			pair: "BTC-USD",
			orders: func() []orderbookv1.Order {
				o := restingOrder(1, "a")
				o.FilledQuantity = o.Quantity
				return []orderbookv1.Order{o}
			}(),
			wantErr: true,
		},
		{
			name: "invalid order",
			pair: "BTC-USD",
			orders: func() []orderbookv1.Order {
				o := restingOrder(1, "a")
				o.Price = 0
				return []orderbookv1.Order{o}
			}(),
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			snapshot := &Snapshot{Pair: "BTC-USD", Orders: tc.orders}
			err := snapshot.Validate(tc.pair)
			if !tc.wantErr {
				assert.NoError(t, err)
				return
			}
			assert.True(t, errors.ErrorCodeEquals(err, string(errors.InvalidSnapshot)))
		})
	}
}
