package orderbookv1

import "github.com/muhammadchandra19/exchange/pkg/errors"

// Validate checks the structural integrity of an order before it touches the book.
func (o Order) Validate() error {
	switch {
	case o.OUID == "":
		return errors.New(errors.InvalidOrder, "ouid cannot be empty", "ouid")
	case o.Quantity <= 0:
		return errors.New(errors.InvalidOrder, "quantity must be positive", "quantity")
	case o.FilledQuantity < 0 || o.FilledQuantity > o.Quantity:
		return errors.New(errors.InvalidOrder, "filled quantity must be within [0, quantity]", "filledQuantity")
	case o.Direction != DirectionBid && o.Direction != DirectionAsk:
		return errors.New(errors.InvalidOrder, "unknown direction: "+string(o.Direction), "direction")
	case o.OrderType != OrderTypeLimit && o.OrderType != OrderTypeMarket:
		return errors.New(errors.InvalidOrder, "unknown order type: "+string(o.OrderType), "orderType")
	case !o.MatchConstraint.IsKnown():
		return errors.New(errors.InvalidOrder, "unknown match constraint: "+string(o.MatchConstraint), "matchConstraint")
	case o.OrderType == OrderTypeLimit && o.Price <= 0:
		return errors.New(errors.InvalidOrder, "limit price must be positive", "price")
	case o.Price < 0:
		return errors.New(errors.InvalidOrder, "price cannot be negative", "price")
	}
	return nil
}

// Validate checks the input as a new order.
func (in OrderInput) Validate() error {
	return NewOrder(in.ID, in).Validate()
}
