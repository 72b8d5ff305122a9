package persistence

import (
	"context"

	"github.com/muhammadchandra19/exchange/pkg/logger"
	orderbookv1 "github.com/muhammadchandra19/exchange/services/matching-engine/internal/domain/orderbook/v1"
	persistencev1 "github.com/muhammadchandra19/exchange/services/matching-engine/internal/domain/persistence/v1"
	snapshotv1 "github.com/muhammadchandra19/exchange/services/matching-engine/internal/domain/snapshot/v1"
	"github.com/muhammadchandra19/exchange/services/matching-engine/internal/infrastructure/postgresql/journal"
)

// Store is the persistence adapter of an orchestrated book: whole-book
// snapshots go to a snapshot store and per-order history to the SQL journal.
// Without a journal the order methods do nothing and LoadOpenOrders is empty.
type Store struct {
	snapshots snapshotv1.Store
	journal   journal.Repository
	logger    *logger.Logger
}

var _ persistencev1.Adapter = (*Store)(nil)

// NewStore creates a Store. repo may be nil.
func NewStore(snapshots snapshotv1.Store, repo journal.Repository, log *logger.Logger) *Store {
	return &Store{
		snapshots: snapshots,
		journal:   repo,
		logger:    log,
	}
}

// LoadSnapshot implements persistencev1.Adapter.
func (s *Store) LoadSnapshot(ctx context.Context, pair string) (*snapshotv1.Snapshot, error) {
	return s.snapshots.Load(ctx, pair)
}

// SaveSnapshot implements persistencev1.Adapter.
func (s *Store) SaveSnapshot(ctx context.Context, pair string, snapshot *snapshotv1.Snapshot) error {
	return s.snapshots.Save(ctx, pair, snapshot)
}

// LoadOpenOrders implements persistencev1.Adapter.
func (s *Store) LoadOpenOrders(ctx context.Context, pair string) ([]orderbookv1.Order, error) {
	if s.journal == nil {
		s.logger.WarnContext(ctx, "no journal configured, starting with an empty book", logger.NewField("pair", pair))
		return nil, nil
	}
	return s.journal.OpenOrders(ctx, pair)
}

// PersistTrade implements persistencev1.Adapter.
func (s *Store) PersistTrade(ctx context.Context, trade orderbookv1.Trade) error {
	if s.journal == nil {
		return nil
	}
	return s.journal.SaveTrade(ctx, trade)
}

// PersistOrder implements persistencev1.Adapter.
func (s *Store) PersistOrder(ctx context.Context, order orderbookv1.Order, meta persistencev1.Meta) error {
	if s.journal == nil {
		return nil
	}
	return s.journal.SaveOrder(ctx, journal.OrderRecord{
		Pair:   meta.Pair,
		Order:  order,
		UserID: meta.Session.UserID,
		Status: journal.StatusOf(order),
		Action: string(meta.Action),
	})
}

// PersistOrderCancel implements persistencev1.Adapter.
func (s *Store) PersistOrderCancel(ctx context.Context, order orderbookv1.Order, meta persistencev1.Meta) error {
	if s.journal == nil {
		return nil
	}
	return s.journal.SaveOrder(ctx, journal.OrderRecord{
		Pair:   meta.Pair,
		Order:  order,
		UserID: meta.Session.UserID,
		Status: journal.StatusCancelled,
		Action: string(meta.Action),
	})
}

// PersistOrderReject implements persistencev1.Adapter.
func (s *Store) PersistOrderReject(ctx context.Context, input orderbookv1.OrderInput, reason orderbookv1.RejectReason, meta persistencev1.Meta) error {
	if s.journal == nil {
		return nil
	}
	return s.journal.SaveReject(ctx, journal.RejectRecord{
		Pair:   meta.Pair,
		Input:  input,
		Reason: reason,
		UserID: meta.Session.UserID,
		Action: string(meta.Action),
	})
}
