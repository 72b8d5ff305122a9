package snapshotv1

import (
	"encoding/json"
	"fmt"

	"github.com/muhammadchandra19/exchange/pkg/errors"
	orderbookv1 "github.com/muhammadchandra19/exchange/services/matching-engine/internal/domain/orderbook/v1"
)

// Snapshot is the persistent form of one pair's order book. It stores the open
// orders in priority order and no topology; replaying them rebuilds the book.
type Snapshot struct {
	Pair         string              `json:"pair"`
	LastOrder    *LastOrder          `json:"lastOrder"`
	TradeCounter int64               `json:"tradeCounter"`
	Orders       []orderbookv1.Order `json:"orders"`
}

// LastOrder references the last order touched by submit, cancel or edit.
type LastOrder struct {
	ID   int64  `json:"id"`
	OUID string `json:"ouid"`
}

// Marshal encodes the snapshot in its JSON wire format.
func (s *Snapshot) Marshal() ([]byte, error) {
	if s.Orders == nil {
		cp := *s
		cp.Orders = []orderbookv1.Order{}
		return json.Marshal(&cp)
	}
	return json.Marshal(s)
}

// Unmarshal decodes a snapshot from its JSON wire format.
func Unmarshal(data []byte) (*Snapshot, error) {
	var snapshot Snapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, errors.NewTracer("snapshot_unmarshal_error").Wrap(err)
	}
	return &snapshot, nil
}

// Validate checks that the snapshot belongs to pair and that every order can be replayed.
func (s *Snapshot) Validate(pair string) error {
	if s.Pair != pair {
		return errors.New(errors.InvalidSnapshot, fmt.Sprintf("snapshot pair %q does not match %q", s.Pair, pair), "pair")
	}
	if s.TradeCounter < 0 {
		return errors.New(errors.InvalidSnapshot, "trade counter cannot be negative", "tradeCounter")
	}

	ids := make(map[int64]struct{}, len(s.Orders))
	ouids := make(map[string]struct{}, len(s.Orders))
	for i, order := range s.Orders {
		if order.ID <= 0 {
			return errors.New(errors.InvalidSnapshot, fmt.Sprintf("order %d has no id", i), "orders")
		}
		if _, ok := ids[order.ID]; ok {
			return errors.New(errors.InvalidSnapshot, fmt.Sprintf("duplicate order id %d", order.ID), "orders")
		}
		if _, ok := ouids[order.OUID]; ok {
			return errors.New(errors.InvalidSnapshot, "duplicate ouid "+order.OUID, "orders")
		}
		if err := order.Validate(); err != nil {
			return errors.NewErrorDetailsWithObject(
				fmt.Sprintf("order %d: %s", order.ID, err.Error()), string(errors.InvalidSnapshot), "orders", order)
		}
		if order.OrderType != orderbookv1.OrderTypeLimit || order.IsFilled() {
			return errors.New(errors.InvalidSnapshot, fmt.Sprintf("order %d is not an open limit order", order.ID), "orders")
		}
		ids[order.ID] = struct{}{}
		ouids[order.OUID] = struct{}{}
	}
	return nil
}
