package eventv1

import (
	orderbookv1 "github.com/muhammadchandra19/exchange/services/matching-engine/internal/domain/orderbook/v1"
	snapshotv1 "github.com/muhammadchandra19/exchange/services/matching-engine/internal/domain/snapshot/v1"
)

// Kind names a concrete event type.
type Kind string

const (
	// KindOrderCreated is emitted before an accepted order is matched.
	KindOrderCreated Kind = "order.created"
	// KindOrderUpdated is emitted for the replacement order of an edit.
	KindOrderUpdated Kind = "order.updated"
	// KindOrderCancelled is emitted on cancel and for unmatched IOC remainders.
	KindOrderCancelled Kind = "order.cancelled"
	// KindTradeExecuted is emitted once per fill.
	KindTradeExecuted Kind = "trade.executed"
	// KindOrderRejected is emitted for business rejections.
	KindOrderRejected Kind = "order.rejected"
	// KindOrderBookPublished is emitted once at the end of each public operation that changed the book.
	KindOrderBookPublished Kind = "orderbook.published"
)

// Event is an immutable payload produced by the order book.
type Event interface {
	Kind() Kind
}

// OrderCreated carries a newly accepted order.
type OrderCreated struct {
	Order orderbookv1.Order `json:"order"`
}

// Kind implements Event.
func (OrderCreated) Kind() Kind { return KindOrderCreated }

// OrderUpdated carries the replacement built by an edit.
type OrderUpdated struct {
	Order orderbookv1.Order `json:"order"`
}

// Kind implements Event.
func (OrderUpdated) Kind() Kind { return KindOrderUpdated }

// OrderCancelled carries the order as it was when it left the book.
type OrderCancelled struct {
	Order orderbookv1.Order `json:"order"`
}

// Kind implements Event.
func (OrderCancelled) Kind() Kind { return KindOrderCancelled }

// TradeExecuted carries one fill.
type TradeExecuted struct {
	orderbookv1.Trade
}

// Kind implements Event.
func (TradeExecuted) Kind() Kind { return KindTradeExecuted }

// OrderRejected carries the refused input and why.
type OrderRejected struct {
	Input  orderbookv1.OrderInput   `json:"payload"`
	Reason orderbookv1.RejectReason `json:"reason"`
}

// Kind implements Event.
func (OrderRejected) Kind() Kind { return KindOrderRejected }

// OrderBookPublished carries a consistent view of the book after an operation.
// Receivers must treat the snapshot as read-only.
type OrderBookPublished struct {
	Snapshot *snapshotv1.Snapshot `json:"orderBook"`
}

// Kind implements Event.
func (OrderBookPublished) Kind() Kind { return KindOrderBookPublished }
