package orderbook

import (
	orderbookv1 "github.com/muhammadchandra19/exchange/services/matching-engine/internal/domain/orderbook/v1"
	snapshotv1 "github.com/muhammadchandra19/exchange/services/matching-engine/internal/domain/snapshot/v1"
)

// Snapshot returns the persistent form of the book. Orders are listed by
// walking the bid chain then the ask chain, so array order is priority order.
func (ob *Orderbook) Snapshot() *snapshotv1.Snapshot {
	ob.mu.Lock()
	defer ob.mu.Unlock()
	return ob.snapshot()
}

func (ob *Orderbook) snapshot() *snapshotv1.Snapshot {
	orders := make([]orderbookv1.Order, 0, len(ob.byID))
	for _, s := range []*side{&ob.bids, &ob.asks} {
		for slot := s.best; slot != orderbookv1.NoSlot; slot = ob.slots[slot].worse {
			orders = append(orders, ob.slots[slot].order)
		}
	}

	var last *snapshotv1.LastOrder
	if ob.lastOrder != nil {
		cp := *ob.lastOrder
		last = &cp
	}

	return &snapshotv1.Snapshot{
		Pair:         ob.pair,
		LastOrder:    last,
		TradeCounter: ob.tradeCounter,
		Orders:       orders,
	}
}

// Rebuild replaces the book with the state in snapshot by replaying its orders,
// in stored order, through the GTC match-then-queue path without emitting
// events. The snapshot is validated first; an invalid one leaves the book as it
// was. One book-published event is emitted at the end.
func (ob *Orderbook) Rebuild(snapshot *snapshotv1.Snapshot) error {
	if err := snapshot.Validate(ob.pair); err != nil {
		return err
	}

	ob.mu.Lock()
	defer ob.mu.Unlock()

	ob.replay(snapshot)
	ob.publish()
	return nil
}

func (ob *Orderbook) replay(snapshot *snapshotv1.Snapshot) {
	ob.reset()
	ob.tradeCounter = snapshot.TradeCounter

	for _, order := range snapshot.Orders {
		ob.orderCounter = max(ob.orderCounter, order.ID)
		ob.match(&order, true)
		if order.Remaining() > 0 {
			ob.enqueue(order)
		}
	}

	ob.lastOrder = nil
	if ref := snapshot.LastOrder; ref != nil {
		if slot, ok := ob.byID[ref.ID]; ok {
			ob.lastOrder = &snapshotv1.LastOrder{ID: ref.ID, OUID: ob.slots[slot].order.OUID}
		}
	}
}
