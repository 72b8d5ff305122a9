package persistencev1

import (
	"context"

	authv1 "github.com/muhammadchandra19/exchange/services/matching-engine/internal/domain/auth/v1"
	orderbookv1 "github.com/muhammadchandra19/exchange/services/matching-engine/internal/domain/orderbook/v1"
	snapshotv1 "github.com/muhammadchandra19/exchange/services/matching-engine/internal/domain/snapshot/v1"
)

// Action tells the journal which operation produced a record.
type Action string

const (
	ActionSubmit Action = "submit"
	ActionCancel Action = "cancel"
	ActionEdit   Action = "edit"
	// ActionUpdate is used for records written from create and update events.
	ActionUpdate Action = "update"
)

// Meta accompanies every journaled order record.
type Meta struct {
	Pair    string
	Session authv1.Session
	Action  Action
}

// SnapshotPersister loads and saves whole-book snapshots.
// LoadSnapshot returns nil without error when there is none.
type SnapshotPersister interface {
	LoadSnapshot(ctx context.Context, pair string) (*snapshotv1.Snapshot, error)
	SaveSnapshot(ctx context.Context, pair string, snapshot *snapshotv1.Snapshot) error
}

// Adapter is the full persistence collaborator of an orchestrated book.
//
//go:generate mockgen -source interface.go -destination=mock/interface_mock.go -package=persistencev1_mock
type Adapter interface {
	SnapshotPersister

	// LoadOpenOrders returns the resting orders of pair in priority order.
	LoadOpenOrders(ctx context.Context, pair string) ([]orderbookv1.Order, error)
	PersistTrade(ctx context.Context, trade orderbookv1.Trade) error
	PersistOrder(ctx context.Context, order orderbookv1.Order, meta Meta) error
	PersistOrderCancel(ctx context.Context, order orderbookv1.Order, meta Meta) error
	PersistOrderReject(ctx context.Context, input orderbookv1.OrderInput, reason orderbookv1.RejectReason, meta Meta) error
}

// Nop stores nothing and loads nothing.
type Nop struct{}

var _ Adapter = Nop{}

// LoadSnapshot implements Adapter.
func (Nop) LoadSnapshot(context.Context, string) (*snapshotv1.Snapshot, error) { return nil, nil }

// SaveSnapshot implements Adapter.
func (Nop) SaveSnapshot(context.Context, string, *snapshotv1.Snapshot) error { return nil }

// LoadOpenOrders implements Adapter.
func (Nop) LoadOpenOrders(context.Context, string) ([]orderbookv1.Order, error) { return nil, nil }

// PersistTrade implements Adapter.
func (Nop) PersistTrade(context.Context, orderbookv1.Trade) error { return nil }

// PersistOrder implements Adapter.
func (Nop) PersistOrder(context.Context, orderbookv1.Order, Meta) error { return nil }

// PersistOrderCancel implements Adapter.
func (Nop) PersistOrderCancel(context.Context, orderbookv1.Order, Meta) error { return nil }

// PersistOrderReject implements Adapter.
func (Nop) PersistOrderReject(context.Context, orderbookv1.OrderInput, orderbookv1.RejectReason, Meta) error {
	return nil
}
