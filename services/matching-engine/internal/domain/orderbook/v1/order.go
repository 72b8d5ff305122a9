package orderbookv1

// MatchConstraint controls what happens to the part of an order that does not match immediately.
type MatchConstraint string

const (
	// MatchConstraintGTC rests the unmatched remainder in the book.
	MatchConstraintGTC MatchConstraint = "GTC"
	// MatchConstraintIOC cancels the unmatched remainder.
	MatchConstraintIOC MatchConstraint = "IOC"
	// MatchConstraintFOK is recognised but always rejected.
	MatchConstraintFOK MatchConstraint = "FOK"
	// MatchConstraintFOKBudget is recognised but always rejected.
	MatchConstraintFOKBudget MatchConstraint = "FOK_BUDGET"
	// MatchConstraintIOCBudget is recognised but always rejected.
	MatchConstraintIOCBudget MatchConstraint = "IOC_BUDGET"
)

// IsKnown reports whether c is one of the defined constraints.
func (c MatchConstraint) IsKnown() bool {
	switch c {
	case MatchConstraintGTC, MatchConstraintIOC, MatchConstraintFOK, MatchConstraintFOKBudget, MatchConstraintIOCBudget:
		return true
	}
	return false
}

// IsSupported reports whether the book can execute c.
func (c MatchConstraint) IsSupported() bool {
	return c == MatchConstraintGTC || c == MatchConstraintIOC
}

// OrderType represents the type of order.
type OrderType string

const (
	// OrderTypeLimit represents a limit order.
	OrderTypeLimit OrderType = "LIMIT"
	// OrderTypeMarket represents a market order.
	OrderTypeMarket OrderType = "MARKET"
)

// Direction is the side of the book an order belongs to.
type Direction string

const (
	// DirectionBid is a buy order.
	DirectionBid Direction = "BID"
	// DirectionAsk is a sell order.
	DirectionAsk Direction = "ASK"
)

// Opposite returns the side an order in direction d matches against.
func (d Direction) Opposite() Direction {
	if d == DirectionBid {
		return DirectionAsk
	}
	return DirectionBid
}

// Order represents a single order in the order book.
// Prices and quantities are integer ticks.
type Order struct {
	ID              int64           `json:"id"`
	OUID            string          `json:"ouid"`
	UUID            string          `json:"uuid"`
	Price           int64           `json:"price"`
	Quantity        int64           `json:"quantity"`
	FilledQuantity  int64           `json:"filledQuantity"`
	MatchConstraint MatchConstraint `json:"matchConstraint"`
	OrderType       OrderType       `json:"orderType"`
	Direction       Direction       `json:"direction"`
}

// OrderInput is the caller's submission. ID is only honoured on replay.
type OrderInput struct {
	ID              int64           `json:"id,omitempty"`
	OUID            string          `json:"ouid"`
	UUID            string          `json:"uuid"`
	Price           int64           `json:"price,omitempty"`
	Quantity        int64           `json:"quantity"`
	MatchConstraint MatchConstraint `json:"matchConstraint"`
	OrderType       OrderType       `json:"orderType"`
	Direction       Direction       `json:"direction"`
	FilledQuantity  int64           `json:"filledQuantity,omitempty"`
}

// OrderUpdates carries the fields an edit replaces. Nil pointers and empty
// strings keep the previous value.
type OrderUpdates struct {
	Price           *int64          `json:"price,omitempty"`
	Quantity        *int64          `json:"quantity,omitempty"`
	MatchConstraint MatchConstraint `json:"matchConstraint,omitempty"`
	OrderType       OrderType       `json:"orderType,omitempty"`
	Direction       Direction       `json:"direction,omitempty"`
}

// NewOrder builds an order with the given sequence id from input.
func NewOrder(id int64, input OrderInput) Order {
	return Order{
		ID:              id,
		OUID:            input.OUID,
		UUID:            input.UUID,
		Price:           input.Price,
		Quantity:        input.Quantity,
		FilledQuantity:  input.FilledQuantity,
		MatchConstraint: input.MatchConstraint,
		OrderType:       input.OrderType,
		Direction:       input.Direction,
	}
}

// Input returns the order as a submission carrying its id.
func (o Order) Input() OrderInput {
	return OrderInput{
		ID:              o.ID,
		OUID:            o.OUID,
		UUID:            o.UUID,
		Price:           o.Price,
		Quantity:        o.Quantity,
		MatchConstraint: o.MatchConstraint,
		OrderType:       o.OrderType,
		Direction:       o.Direction,
		FilledQuantity:  o.FilledQuantity,
	}
}

// Apply returns the replacement order for an edit. Identity and filled
// quantity always carry over.
func (o Order) Apply(updates OrderUpdates) Order {
	next := o
	if updates.Price != nil {
		next.Price = *updates.Price
	}
	if updates.Quantity != nil {
		next.Quantity = *updates.Quantity
	}
	if updates.MatchConstraint != "" {
		next.MatchConstraint = updates.MatchConstraint
	}
	if updates.OrderType != "" {
		next.OrderType = updates.OrderType
	}
	if updates.Direction != "" {
		next.Direction = updates.Direction
	}
	return next
}

// Remaining returns the unfilled quantity.
func (o Order) Remaining() int64 {
	return o.Quantity - o.FilledQuantity
}

// IsBid checks if the order is a bid (buy) order.
func (o Order) IsBid() bool {
	return o.Direction == DirectionBid
}

// IsAsk checks if the order is an ask (sell) order.
func (o Order) IsAsk() bool {
	return o.Direction == DirectionAsk
}

// IsFilled checks if nothing remains to fill.
func (o Order) IsFilled() bool {
	return o.Remaining() == 0
}

// Crosses reports whether o, as a taker, may trade against a maker resting at makerPrice.
func (o Order) Crosses(makerPrice int64) bool {
	if o.OrderType == OrderTypeMarket {
		return true
	}
	if o.IsBid() {
		return makerPrice <= o.Price
	}
	return makerPrice >= o.Price
}
