package orderbook

import (
	orderbookv1 "github.com/muhammadchandra19/exchange/services/matching-engine/internal/domain/orderbook/v1"
)

// entry is an arena cell. better and worse are slots on the same side's chain.
type entry struct {
	order  orderbookv1.Order
	better int32
	worse  int32
	bucket *orderbookv1.Bucket
}

type side struct {
	buckets map[int64]*orderbookv1.Bucket
	best    int32
}

func newSide() side {
	return side{
		buckets: make(map[int64]*orderbookv1.Bucket),
		best:    orderbookv1.NoSlot,
	}
}

func (ob *Orderbook) side(direction orderbookv1.Direction) *side {
	if direction == orderbookv1.DirectionBid {
		return &ob.bids
	}
	return &ob.asks
}

func (ob *Orderbook) reset() {
	ob.slots = ob.slots[:0]
	ob.free = ob.free[:0]
	ob.bids = newSide()
	ob.asks = newSide()
	ob.byID = make(map[int64]int32)
	ob.byOUID = make(map[string]int32)
}

func (ob *Orderbook) alloc(order orderbookv1.Order) int32 {
	e := entry{order: order, better: orderbookv1.NoSlot, worse: orderbookv1.NoSlot}
	if n := len(ob.free); n > 0 {
		slot := ob.free[n-1]
		ob.free = ob.free[:n-1]
		ob.slots[slot] = e
		return slot
	}
	ob.slots = append(ob.slots, e)
	return int32(len(ob.slots) - 1)
}

func (ob *Orderbook) release(slot int32) {
	ob.slots[slot] = entry{better: orderbookv1.NoSlot, worse: orderbookv1.NoSlot}
	ob.free = append(ob.free, slot)
}

// linkBucket places the first order of a new price level after the tail of the
// nearest better bucket, or at the head of the chain when there is none.
func (ob *Orderbook) linkBucket(s *side, slot int32, bucket *orderbookv1.Bucket) {
	e := &ob.slots[slot]
	e.bucket = bucket
	bucket.OrderCount = 1
	bucket.TotalQuantity = e.order.Remaining()
	bucket.Tail = slot

	if better := findBetterBucket(s, bucket); better != nil && better.Tail != orderbookv1.NoSlot {
		tail := better.Tail
		worse := ob.slots[tail].worse
		e.better = tail
		e.worse = worse
		ob.slots[tail].worse = slot
		if worse != orderbookv1.NoSlot {
			ob.slots[worse].better = slot
		}
	} else {
		e.better = orderbookv1.NoSlot
		e.worse = s.best
		if s.best != orderbookv1.NoSlot {
			ob.slots[s.best].better = slot
		}
	}

	if s.best == orderbookv1.NoSlot || bucket.Better(ob.slots[s.best].order.Price) {
		s.best = slot
	}
}

// findBetterBucket scans the side for the closest bucket with better price than
// bucket. It is paid only when a new price level is created.
func findBetterBucket(s *side, bucket *orderbookv1.Bucket) *orderbookv1.Bucket {
	var candidate *orderbookv1.Bucket
	for _, b := range s.buckets {
		if !b.Better(bucket.Price) {
			continue
		}
		if candidate == nil || candidate.Better(b.Price) {
			candidate = b
		}
	}
	return candidate
}

// appendToBucket links slot right after the bucket's tail.
func (ob *Orderbook) appendToBucket(slot int32, bucket *orderbookv1.Bucket) {
	e := &ob.slots[slot]
	tail := bucket.Tail
	next := ob.slots[tail].worse

	e.bucket = bucket
	e.better = tail
	e.worse = next
	ob.slots[tail].worse = slot
	if next != orderbookv1.NoSlot {
		ob.slots[next].better = slot
	}

	bucket.Tail = slot
	bucket.OrderCount++
	bucket.TotalQuantity += e.order.Remaining()
}

// removeOrderFromBook unlinks slot from its bucket, chain and indexes, frees the
// slot and returns the order it held.
func (ob *Orderbook) removeOrderFromBook(slot int32) orderbookv1.Order {
	e := ob.slots[slot]
	delete(ob.byID, e.order.ID)
	delete(ob.byOUID, e.order.OUID)

	if bucket := e.bucket; bucket != nil {
		s := ob.side(e.order.Direction)
		bucket.OrderCount--
		bucket.TotalQuantity -= e.order.Remaining()

		if e.better != orderbookv1.NoSlot {
			ob.slots[e.better].worse = e.worse
		}
		if e.worse != orderbookv1.NoSlot {
			ob.slots[e.worse].better = e.better
		}

		if bucket.Tail == slot {
			if bucket.IsEmpty() {
				delete(s.buckets, bucket.Price)
			} else {
				bucket.Tail = e.better
			}
		}

		if s.best == slot {
			s.best = e.worse
			if s.best != orderbookv1.NoSlot {
				ob.slots[s.best].better = orderbookv1.NoSlot
			}
		}
	}

	ob.release(slot)
	return e.order
}
