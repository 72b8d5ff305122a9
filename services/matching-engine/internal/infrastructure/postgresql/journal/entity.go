package journal

import (
	orderbookv1 "github.com/muhammadchandra19/exchange/services/matching-engine/internal/domain/orderbook/v1"
)

// Status is the journaled lifecycle state of an order.
type Status string

const (
	// StatusOpen is an order that may still rest on the book.
	StatusOpen Status = "open"
	// StatusFilled is an order whose full quantity has traded.
	StatusFilled Status = "filled"
	// StatusCancelled is an order removed by its owner or by IOC expiry.
	StatusCancelled Status = "cancelled"
	// StatusRejected is an order that left the book through a rejected edit.
	StatusRejected Status = "rejected"
)

// IsTerminal reports whether the status can no longer change.
func (s Status) IsTerminal() bool {
	return s == StatusFilled || s == StatusCancelled || s == StatusRejected
}

// StatusOf derives the status of an order that has not been cancelled.
func StatusOf(order orderbookv1.Order) Status {
	if order.IsFilled() {
		return StatusFilled
	}
	return StatusOpen
}

// OrderRecord is one write to engine_orders.
type OrderRecord struct {
	Pair   string
	Order  orderbookv1.Order
	UserID string
	Status Status
	Action string
}

// RejectRecord is one write to engine_rejects.
type RejectRecord struct {
	Pair   string
	Input  orderbookv1.OrderInput
	Reason orderbookv1.RejectReason
	UserID string
	Action string
}
