package journal

import (
	"context"

	orderbookv1 "github.com/muhammadchandra19/exchange/services/matching-engine/internal/domain/orderbook/v1"
)

//go:generate mockgen -source=interface.go -destination=mock/repository_mock.go -package=mock

// Repository is the SQL journal of orders, trades and rejects.
type Repository interface {
	// SaveOrder upserts the order. A terminal status is never replaced.
	SaveOrder(ctx context.Context, record OrderRecord) error
	// SaveTrade records the trade and both orders' fills in one transaction.
	SaveTrade(ctx context.Context, trade orderbookv1.Trade) error
	SaveReject(ctx context.Context, record RejectRecord) error
	// OpenOrders returns pair's open orders by placement time, then id.
	OpenOrders(ctx context.Context, pair string) ([]orderbookv1.Order, error)
}
