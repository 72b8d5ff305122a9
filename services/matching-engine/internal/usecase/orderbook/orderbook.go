package orderbook

import (
	"sync"

	"github.com/muhammadchandra19/exchange/pkg/errors"
	eventv1 "github.com/muhammadchandra19/exchange/services/matching-engine/internal/domain/event/v1"
	orderbookv1 "github.com/muhammadchandra19/exchange/services/matching-engine/internal/domain/orderbook/v1"
	snapshotv1 "github.com/muhammadchandra19/exchange/services/matching-engine/internal/domain/snapshot/v1"
)

// Orderbook is the price-time priority book of one pair.
//
// Resting orders live in an arena addressed by int32 slots. Each side keeps one
// priority chain through all of its orders, linked by better/worse slots across
// price levels, and a bucket per price. Every public method holds mu for its
// whole duration, event dispatch included, so a book has a single writer.
// Listeners must not call back into the same book.
type Orderbook struct {
	mu         sync.Mutex
	pair       string
	dispatcher *eventv1.Dispatcher

	slots []entry
	free  []int32

	bids side
	asks side

	byID   map[int64]int32
	byOUID map[string]int32

	lastOrder    *snapshotv1.LastOrder
	orderCounter int64
	tradeCounter int64
}

// NewOrderbook creates an empty book for pair. A nil dispatcher gets a fresh one.
func NewOrderbook(pair string, dispatcher *eventv1.Dispatcher) *Orderbook {
	if dispatcher == nil {
		dispatcher = eventv1.NewDispatcher()
	}
	ob := &Orderbook{
		pair:       pair,
		dispatcher: dispatcher,
	}
	ob.reset()
	return ob
}

// Pair returns the instrument the book trades.
func (ob *Orderbook) Pair() string {
	return ob.pair
}

// Dispatcher returns the dispatcher events are delivered through.
func (ob *Orderbook) Dispatcher() *eventv1.Dispatcher {
	return ob.dispatcher
}

// SubmitOrder accepts a new order. The caller's ID is ignored and a fresh
// sequence id is allocated. Business rejections return a nil order and a nil
// error; malformed input returns an error and leaves the book untouched.
func (ob *Orderbook) SubmitOrder(input orderbookv1.OrderInput) (*orderbookv1.Order, error) {
	ob.mu.Lock()
	defer ob.mu.Unlock()

	order := orderbookv1.NewOrder(0, input)
	if err := order.Validate(); err != nil {
		return nil, err
	}
	// Unsupported constraints are rejected immediately, even for a resting ouid.
	if reason, rejected := rejection(order); rejected {
		ob.emit(eventv1.OrderRejected{Input: input, Reason: reason})
		return nil, nil
	}
	if _, exists := ob.byOUID[order.OUID]; exists {
		return nil, errors.New(errors.DuplicateOrder, "order with ouid "+order.OUID+" is already resting", "ouid")
	}

	ob.orderCounter++
	order.ID = ob.orderCounter
	ob.emit(eventv1.OrderCreated{Order: order})

	ob.execute(&order, false)

	ob.touch(order)
	ob.publish()
	return &order, nil
}

// CancelOrder removes the resting order with ouid.
func (ob *Orderbook) CancelOrder(ouid string) (*orderbookv1.Order, error) {
	if ouid == "" {
		return nil, errors.New(errors.InvalidOrder, "ouid cannot be empty", "ouid")
	}

	ob.mu.Lock()
	defer ob.mu.Unlock()

	slot, exists := ob.byOUID[ouid]
	if !exists {
		ob.emit(eventv1.OrderRejected{Input: orderbookv1.OrderInput{OUID: ouid}, Reason: orderbookv1.RejectOrderNotFound})
		return nil, nil
	}

	order := ob.removeOrderFromBook(slot)
	ob.emit(eventv1.OrderCancelled{Order: order})

	ob.touch(order)
	ob.publish()
	return &order, nil
}

// EditOrder replaces the resting order with ouid. The replacement keeps id,
// ouid, owner and filled quantity, loses time priority and is matched like a
// new submission. Updates are validated before the old order is detached.
//
// A replacement with an unsupported constraint or order type is rejected after
// the old order has left the book; the old order is not restored.
func (ob *Orderbook) EditOrder(ouid string, updates orderbookv1.OrderUpdates) (*orderbookv1.Order, error) {
	if ouid == "" {
		return nil, errors.New(errors.InvalidOrder, "ouid cannot be empty", "ouid")
	}

	ob.mu.Lock()
	defer ob.mu.Unlock()

	slot, exists := ob.byOUID[ouid]
	if !exists {
		ob.emit(eventv1.OrderRejected{Input: orderbookv1.OrderInput{OUID: ouid}, Reason: orderbookv1.RejectOrderNotFound})
		return nil, nil
	}

	replacement := ob.slots[slot].order.Apply(updates)
	if err := replacement.Validate(); err != nil {
		return nil, err
	}

	ob.removeOrderFromBook(slot)
	ob.emit(eventv1.OrderUpdated{Order: replacement})

	reason, rejected := rejection(replacement)
	if rejected {
		ob.emit(eventv1.OrderRejected{Input: replacement.Input(), Reason: reason})
	} else {
		ob.execute(&replacement, false)
	}

	ob.orderCounter = max(ob.orderCounter, replacement.ID)
	ob.touch(replacement)
	ob.publish()

	if rejected {
		return nil, nil
	}
	return &replacement, nil
}

// rejection reports why the book will not execute order, if it will not.
func rejection(order orderbookv1.Order) (orderbookv1.RejectReason, bool) {
	if !order.MatchConstraint.IsSupported() {
		return orderbookv1.RejectOperationNotMatched, true
	}
	if order.MatchConstraint == orderbookv1.MatchConstraintGTC && order.OrderType == orderbookv1.OrderTypeMarket {
		return orderbookv1.RejectOrderTypeNotMatched, true
	}
	return "", false
}

// execute runs the GTC or IOC path for an accepted order.
func (ob *Orderbook) execute(order *orderbookv1.Order, quiet bool) {
	ob.match(order, quiet)
	if order.Remaining() == 0 {
		return
	}

	switch order.MatchConstraint {
	case orderbookv1.MatchConstraintGTC:
		ob.enqueue(*order)
	case orderbookv1.MatchConstraintIOC:
		ob.dispatch(quiet, eventv1.OrderCancelled{Order: *order})
	}
}

func (ob *Orderbook) touch(order orderbookv1.Order) {
	ob.lastOrder = &snapshotv1.LastOrder{ID: order.ID, OUID: order.OUID}
}

func (ob *Orderbook) publish() {
	ob.emit(eventv1.OrderBookPublished{Snapshot: ob.snapshot()})
}

func (ob *Orderbook) emit(ev eventv1.Event) {
	ob.dispatch(false, ev)
}

func (ob *Orderbook) dispatch(quiet bool, ev eventv1.Event) {
	if quiet {
		return
	}
	ob.dispatcher.Dispatch(ev)
}
