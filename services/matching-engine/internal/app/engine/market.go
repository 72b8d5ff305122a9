package engine

import (
	"context"

	"github.com/muhammadchandra19/exchange/services/matching-engine/internal/app/gateway"
	"github.com/muhammadchandra19/exchange/services/matching-engine/internal/app/orchestrator"
	authv1 "github.com/muhammadchandra19/exchange/services/matching-engine/internal/domain/auth/v1"
	orderbookv1 "github.com/muhammadchandra19/exchange/services/matching-engine/internal/domain/orderbook/v1"
	snapshotv1 "github.com/muhammadchandra19/exchange/services/matching-engine/internal/domain/snapshot/v1"
)

// Market is the front end of one pair's book.
type Market interface {
	Pair() string
	Init(ctx context.Context) error
	Submit(ctx context.Context, session authv1.Session, input orderbookv1.OrderInput) (*orderbookv1.Order, error)
	Cancel(ctx context.Context, session authv1.Session, ouid string) (*orderbookv1.Order, error)
	Edit(ctx context.Context, session authv1.Session, ouid string, updates orderbookv1.OrderUpdates) (*orderbookv1.Order, error)
	Snapshot() *snapshotv1.Snapshot
	Depth(levels int) (bids, asks []orderbookv1.PriceLevel)
	Close(ctx context.Context) error
}

type gatewayMarket struct {
	gateway *gateway.Gateway
}

// NewGatewayMarket exposes g as a Market. Sessions are ignored.
func NewGatewayMarket(g *gateway.Gateway) Market {
	return &gatewayMarket{gateway: g}
}

func (m *gatewayMarket) Pair() string { return m.gateway.Pair() }

func (m *gatewayMarket) Init(ctx context.Context) error { return m.gateway.Restore(ctx) }

func (m *gatewayMarket) Submit(_ context.Context, _ authv1.Session, input orderbookv1.OrderInput) (*orderbookv1.Order, error) {
	return m.gateway.Submit(input)
}

func (m *gatewayMarket) Cancel(_ context.Context, _ authv1.Session, ouid string) (*orderbookv1.Order, error) {
	return m.gateway.Cancel(ouid)
}

func (m *gatewayMarket) Edit(_ context.Context, _ authv1.Session, ouid string, updates orderbookv1.OrderUpdates) (*orderbookv1.Order, error) {
	return m.gateway.Update(ouid, updates)
}

func (m *gatewayMarket) Snapshot() *snapshotv1.Snapshot { return m.gateway.Snapshot() }

func (m *gatewayMarket) Depth(levels int) (bids, asks []orderbookv1.PriceLevel) {
	return m.gateway.Book().Depth(levels)
}

func (m *gatewayMarket) Close(ctx context.Context) error { return m.gateway.Stop(ctx) }

type orchestratorMarket struct {
	*orchestrator.Orchestrator
}

// NewOrchestratorMarket exposes o as a Market.
func NewOrchestratorMarket(o *orchestrator.Orchestrator) Market {
	return &orchestratorMarket{Orchestrator: o}
}

func (m *orchestratorMarket) Submit(ctx context.Context, session authv1.Session, input orderbookv1.OrderInput) (*orderbookv1.Order, error) {
	return m.SubmitOrder(ctx, session, input)
}

func (m *orchestratorMarket) Cancel(ctx context.Context, session authv1.Session, ouid string) (*orderbookv1.Order, error) {
	return m.CancelOrder(ctx, session, ouid)
}

func (m *orchestratorMarket) Edit(ctx context.Context, session authv1.Session, ouid string, updates orderbookv1.OrderUpdates) (*orderbookv1.Order, error) {
	return m.EditOrder(ctx, session, ouid, updates)
}

func (m *orchestratorMarket) Depth(levels int) (bids, asks []orderbookv1.PriceLevel) {
	return m.Book().Depth(levels)
}

var (
	_ Market = (*gatewayMarket)(nil)
	_ Market = (*orchestratorMarket)(nil)
)
