package orderbookv1

// Trade is one execution between an incoming taker and a resting maker.
// Both orders are copies taken right after the fill was applied.
type Trade struct {
	TradeID  int64  `json:"tradeId"`
	Pair     string `json:"pair"`
	Taker    Order  `json:"taker"`
	Maker    Order  `json:"maker"`
	Quantity int64  `json:"matchedQuantity"`
	Price    int64  `json:"price"`
}

// Bid returns the buying side of the trade.
func (t Trade) Bid() Order {
	if t.Taker.IsBid() {
		return t.Taker
	}
	return t.Maker
}

// Ask returns the selling side of the trade.
func (t Trade) Ask() Order {
	if t.Taker.IsAsk() {
		return t.Taker
	}
	return t.Maker
}
