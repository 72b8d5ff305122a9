package orderbookv1

// Buckets represents a slice of Bucket pointers, representing multiple price levels.
type Buckets []*Bucket

// ByBestAsk sorts Buckets by the best ask price (lowest price).
type ByBestAsk struct {
	Buckets
}

func (a ByBestAsk) Len() int {
	return len(a.Buckets)
}

func (a ByBestAsk) Less(i, j int) bool {
	return a.Buckets[i].Price < a.Buckets[j].Price
}

func (a ByBestAsk) Swap(i, j int) {
	a.Buckets[i], a.Buckets[j] = a.Buckets[j], a.Buckets[i]
}

// ByBestBid sorts Buckets by the best bid price (highest price).
type ByBestBid struct {
	Buckets
}

func (b ByBestBid) Len() int {
	return len(b.Buckets)
}

func (b ByBestBid) Less(i, j int) bool {
	return b.Buckets[i].Price > b.Buckets[j].Price
}

func (b ByBestBid) Swap(i, j int) {
	b.Buckets[i], b.Buckets[j] = b.Buckets[j], b.Buckets[i]
}

// Levels returns the aggregated view of every bucket in order.
func (bs Buckets) Levels() []PriceLevel {
	levels := make([]PriceLevel, 0, len(bs))
	for _, b := range bs {
		levels = append(levels, b.Level())
	}
	return levels
}
