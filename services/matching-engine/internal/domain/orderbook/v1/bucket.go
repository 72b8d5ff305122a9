package orderbookv1

// NoSlot marks an absent arena reference.
const NoSlot int32 = -1

// Bucket aggregates every resting order at one price on one side.
type Bucket struct {
	Direction     Direction `json:"direction"`
	Price         int64     `json:"price"`
	TotalQuantity int64     `json:"totalQuantity"`
	OrderCount    int       `json:"orderCount"`

	// Tail is the arena slot of the most recently appended order, the lowest
	// time priority within the bucket.
	Tail int32 `json:"-"`
}

// NewBucket creates an empty bucket at price.
func NewBucket(direction Direction, price int64) *Bucket {
	return &Bucket{
		Direction: direction,
		Price:     price,
		Tail:      NoSlot,
	}
}

// IsEmpty reports whether no order is linked into the bucket.
func (b *Bucket) IsEmpty() bool {
	return b.OrderCount == 0
}

// Better reports whether b has strictly better price priority than price on its side.
func (b *Bucket) Better(price int64) bool {
	if b.Direction == DirectionBid {
		return b.Price > price
	}
	return b.Price < price
}

// PriceLevel is the aggregated, read-only view of a bucket.
type PriceLevel struct {
	Price      int64 `json:"price"`
	Quantity   int64 `json:"quantity"`
	OrderCount int   `json:"orderCount"`
}

// Level returns the bucket as a PriceLevel.
func (b *Bucket) Level() PriceLevel {
	return PriceLevel{Price: b.Price, Quantity: b.TotalQuantity, OrderCount: b.OrderCount}
}
