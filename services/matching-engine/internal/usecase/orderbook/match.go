package orderbook

import (
	eventv1 "github.com/muhammadchandra19/exchange/services/matching-engine/internal/domain/event/v1"
	orderbookv1 "github.com/muhammadchandra19/exchange/services/matching-engine/internal/domain/orderbook/v1"
)

// match walks the opposite chain from its head and fills taker while prices
// cross. Trades execute at the maker's price. A fully filled maker leaves the
// book and matching continues with its worse neighbour; a partially filled
// maker means the taker is exhausted.
func (ob *Orderbook) match(taker *orderbookv1.Order, quiet bool) {
	opposite := ob.side(taker.Direction.Opposite())

	slot := opposite.best
	for slot != orderbookv1.NoSlot && taker.Remaining() > 0 {
		maker := &ob.slots[slot]
		if !taker.Crosses(maker.order.Price) {
			return
		}

		quantity := min(taker.Remaining(), maker.order.Remaining())
		taker.FilledQuantity += quantity
		maker.order.FilledQuantity += quantity
		maker.bucket.TotalQuantity -= quantity

		ob.tradeCounter++
		ob.dispatch(quiet, eventv1.TradeExecuted{Trade: orderbookv1.Trade{
			TradeID:  ob.tradeCounter,
			Pair:     ob.pair,
			Taker:    *taker,
			Maker:    maker.order,
			Quantity: quantity,
			Price:    maker.order.Price,
		}})

		if !maker.order.IsFilled() {
			return
		}
		next := maker.worse
		ob.removeOrderFromBook(slot)
		slot = next
	}
}

// enqueue rests order in its side's bucket for its price.
func (ob *Orderbook) enqueue(order orderbookv1.Order) {
	s := ob.side(order.Direction)
	slot := ob.alloc(order)

	bucket, exists := s.buckets[order.Price]
	if !exists {
		bucket = orderbookv1.NewBucket(order.Direction, order.Price)
		s.buckets[order.Price] = bucket
		ob.linkBucket(s, slot, bucket)
	} else {
		ob.appendToBucket(slot, bucket)
	}

	ob.byID[order.ID] = slot
	ob.byOUID[order.OUID] = slot
}
