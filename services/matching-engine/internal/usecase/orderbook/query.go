package orderbook

import (
	"sort"

	orderbookv1 "github.com/muhammadchandra19/exchange/services/matching-engine/internal/domain/orderbook/v1"
)

// Order returns a copy of the resting order with ouid.
func (ob *Orderbook) Order(ouid string) (orderbookv1.Order, bool) {
	ob.mu.Lock()
	defer ob.mu.Unlock()

	slot, ok := ob.byOUID[ouid]
	if !ok {
		return orderbookv1.Order{}, false
	}
	return ob.slots[slot].order, true
}

// BestBid returns the highest bid price level.
func (ob *Orderbook) BestBid() (orderbookv1.PriceLevel, bool) {
	ob.mu.Lock()
	defer ob.mu.Unlock()
	return ob.bestLevel(&ob.bids)
}

// BestAsk returns the lowest ask price level.
func (ob *Orderbook) BestAsk() (orderbookv1.PriceLevel, bool) {
	ob.mu.Lock()
	defer ob.mu.Unlock()
	return ob.bestLevel(&ob.asks)
}

func (ob *Orderbook) bestLevel(s *side) (orderbookv1.PriceLevel, bool) {
	if s.best == orderbookv1.NoSlot {
		return orderbookv1.PriceLevel{}, false
	}
	return ob.slots[s.best].bucket.Level(), true
}

// Depth returns up to levels aggregated price levels per side, best first.
// levels <= 0 returns every level.
func (ob *Orderbook) Depth(levels int) (bids, asks []orderbookv1.PriceLevel) {
	ob.mu.Lock()
	defer ob.mu.Unlock()

	bidBuckets := collect(&ob.bids)
	sort.Sort(orderbookv1.ByBestBid{Buckets: bidBuckets})
	askBuckets := collect(&ob.asks)
	sort.Sort(orderbookv1.ByBestAsk{Buckets: askBuckets})

	return truncate(bidBuckets, levels).Levels(), truncate(askBuckets, levels).Levels()
}

func collect(s *side) orderbookv1.Buckets {
	buckets := make(orderbookv1.Buckets, 0, len(s.buckets))
	for _, b := range s.buckets {
		buckets = append(buckets, b)
	}
	return buckets
}

func truncate(buckets orderbookv1.Buckets, levels int) orderbookv1.Buckets {
	if levels > 0 && len(buckets) > levels {
		return buckets[:levels]
	}
	return buckets
}

// Len returns the number of resting orders.
func (ob *Orderbook) Len() int {
	ob.mu.Lock()
	defer ob.mu.Unlock()
	return len(ob.byID)
}

// TradeCounter returns the id of the last trade.
func (ob *Orderbook) TradeCounter() int64 {
	ob.mu.Lock()
	defer ob.mu.Unlock()
	return ob.tradeCounter
}
